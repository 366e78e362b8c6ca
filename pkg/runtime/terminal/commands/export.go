package commands

import (
	"fmt"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	formPath   string
	reportType string
	filename   string
	outputDir  string
	env        *Env
}

func NewExportCmd(env *Env) *cobra.Command {
	ec := &ExportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a report document from a form file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.formPath, "form", "", "Path to the YAML form file")
	cmd.Flags().StringVar(&ec.reportType, "type", "", "Report format (pdf, docx or excel); overrides the form")
	cmd.Flags().StringVar(&ec.filename, "filename", "", "File name without extension")
	cmd.Flags().StringVar(&ec.outputDir, "out", "", "Directory the report is saved to")
	_ = cmd.MarkFlagRequired("form")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reports, err := ec.env.Reports(ec.outputDir)
	if err != nil {
		return err
	}
	s, err := ec.env.LoadSession(ctx, ec.formPath, reports)
	if err != nil {
		return err
	}
	if ec.reportType != "" {
		err := s.Edit(func(m form.Manager) error {
			return m.SetField(ctx, domain.FieldReportType, ec.reportType)
		})
		if err != nil {
			return err
		}
	}

	if _, err := s.Preview(ctx); err != nil {
		return err
	}
	doc, err := s.Export(ctx, ec.filename)
	if err != nil {
		return fmt.Errorf("%s: %w", report.UserMessage(err), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", doc.Path)
	return nil
}
