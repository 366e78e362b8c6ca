package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/runtime/terminal/formfile"
	"github.com/de-tools/destiny-report/pkg/services/config"
	"github.com/de-tools/destiny-report/pkg/services/derive"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/de-tools/destiny-report/pkg/services/session"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Env is filled in by the root command before any subcommand runs.
type Env struct {
	Config    *config.Config
	Fs        afero.Fs
	NewClient func(cfg report.Config) (report.Client, error)
}

type PreviewHandler interface {
	Handle(p *preview.PreviewData) error
}

type LookupPrinter interface {
	Planet(info api.PlanetInfo) error
	Nakshatra(info api.NakshatraInfo) error
	Direction(info api.DirectionInfo) error
}

// Reports builds a client for the configured service. An empty outputDir
// keeps the configured one.
func (e *Env) Reports(outputDir string) (report.Client, error) {
	if outputDir == "" {
		outputDir = e.Config.Report.OutputDir
	}
	client, err := e.NewClient(report.Config{
		BaseURL:   e.Config.API.BaseURL,
		Timeout:   e.Config.API.Timeout,
		OutputDir: outputDir,
		Fs:        e.Fs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report client: %w", err)
	}
	return client, nil
}

// LoadSession starts a session and replays the form file into it.
func (e *Env) LoadSession(ctx context.Context, formPath string, reports report.Client) (*session.Session, error) {
	types, err := e.Config.ReportTypes()
	if err != nil {
		return nil, err
	}
	s, err := session.New(uuid.NewString(), session.Dependencies{
		Engine:      derive.NewDefaultEngine(),
		Exporter:    preview.NewExporter(e.Fs),
		Reports:     reports,
		ReportTypes: types,
	})
	if err != nil {
		return nil, err
	}

	f, err := formfile.Load(e.Fs, formPath)
	if err != nil {
		return nil, err
	}
	if err := f.Apply(ctx, e.Fs, s); err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", formPath, err)
	}
	return s, nil
}
