package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/spf13/cobra"
)

type HealthCmd struct {
	env *Env
}

func NewHealthCmd(env *Env) *cobra.Command {
	hc := &HealthCmd{env: env}
	return &cobra.Command{
		Use:   "health",
		Short: "Check the report service and list its templates",
		RunE:  hc.run,
	}
}

func (hc *HealthCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reports, err := hc.env.Reports("")
	if err != nil {
		return err
	}
	status, err := reports.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", report.UserMessage(err), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report service at %s: %s (%s)\n",
		hc.env.Config.API.BaseURL, status.Status, status.Timestamp)

	templates, err := reports.Templates(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", report.UserMessage(err), err)
	}
	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates available")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Templates:\n%s\n", strings.Join(templates, "\n"))
	return nil
}
