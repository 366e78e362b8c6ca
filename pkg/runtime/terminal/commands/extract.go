package commands

import (
	"fmt"
	"path/filepath"

	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type ExtractCmd struct {
	pdfPath string
	env     *Env
}

func NewExtractCmd(env *Env) *cobra.Command {
	ec := &ExtractCmd{env: env}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Read the client details from a birth chart PDF",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.pdfPath, "pdf", "", "Path to the birth chart PDF")
	_ = cmd.MarkFlagRequired("pdf")

	return cmd
}

func (ec *ExtractCmd) run(cmd *cobra.Command, _ []string) error {
	content, err := afero.ReadFile(ec.env.Fs, ec.pdfPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ec.pdfPath, err)
	}
	reports, err := ec.env.Reports("")
	if err != nil {
		return err
	}

	ex, err := reports.ExtractPDFData(cmd.Context(), filepath.Base(ec.pdfPath), content)
	if err != nil {
		return fmt.Errorf("%s: %w", report.UserMessage(err), err)
	}

	out := cmd.OutOrStdout()
	for _, row := range [][2]string{
		{"name", ex.Client.Name},
		{"dateOfBirth", ex.Client.DateOfBirth},
		{"timeOfBirth", ex.Client.TimeOfBirth},
		{"placeOfBirth", ex.Client.PlaceOfBirth},
	} {
		if row[1] != "" {
			fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
		}
	}
	return nil
}
