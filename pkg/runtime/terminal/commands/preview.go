package commands

import (
	"github.com/spf13/cobra"
)

type PreviewCmd struct {
	formPath string
	env      *Env
	reporter PreviewHandler
}

func NewPreviewCmd(env *Env, reporter PreviewHandler) *cobra.Command {
	pc := &PreviewCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Validate a form file and print the report preview",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.formPath, "form", "", "Path to the YAML form file")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reports, err := pc.env.Reports("")
	if err != nil {
		return err
	}
	s, err := pc.env.LoadSession(ctx, pc.formPath, reports)
	if err != nil {
		return err
	}
	p, err := s.Preview(ctx)
	if err != nil {
		return err
	}
	return pc.reporter.Handle(p)
}
