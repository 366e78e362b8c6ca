package preview

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	keyKundli      = "kundliPdf"
	keyKundliPages = "kundliPages"
	keyHouseMaps   = "houseMaps"
	pdfMime        = "application/pdf"
)

// Payload is the body of a generate-report call with reportType split out
// of the form data.
type Payload struct {
	ReportType domain.ReportType
	FormData   map[string]any
}

type Exporter interface {
	BuildExportPayload(ctx context.Context, p *PreviewData) (*Payload, error)
}

type exporter struct {
	fs afero.Fs
}

// NewExporter reads attachments that were saved by path through fs.
func NewExporter(fs afero.Fs) Exporter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &exporter{fs: fs}
}

func (e *exporter) BuildExportPayload(ctx context.Context, p *PreviewData) (*Payload, error) {
	if p == nil || p.Form == nil {
		return nil, fmt.Errorf("preview is required")
	}
	logger := zerolog.Ctx(ctx)
	f := p.Form

	data := make(map[string]any)
	for _, field := range domain.ScalarFields() {
		if field == domain.FieldReportType {
			continue
		}
		if flag := f.Flag(field); flag != nil {
			data[field.String()] = *flag
			continue
		}
		data[field.String()] = *f.Text(field)
	}

	data[domain.FieldAspectsOnHouses.String()] = strings.Join(p.HouseAspects, "\n")
	data[domain.FieldAspectsOnPlanets.String()] = strings.Join(p.PlanetAspects, "\n")
	data[domain.FieldRemovalItems.String()] = strings.Join(p.Removals, "\n")
	data[domain.FieldPlacementItems.String()] = strings.Join(p.Placements, "\n")

	maps := make([]map[string]any, 0, len(p.HouseMaps))
	for i, summary := range p.HouseMaps {
		entry := map[string]any{
			"label": summary.Label,
			"rooms": strings.Join(summary.Lines, "\n"),
		}
		if img := f.HouseMaps[i].Image; img != nil {
			if url, err := e.dataURL(img); err != nil {
				logger.Warn().Err(err).Str("attachment", img.Name).Msg("house map image dropped from export")
			} else {
				entry["image"] = url
			}
		}
		maps = append(maps, entry)
	}
	data[keyHouseMaps] = maps

	if f.Kundli != nil {
		url, err := e.dataURL(f.Kundli)
		switch {
		case err != nil:
			logger.Warn().Err(err).Str("attachment", f.Kundli.Name).Msg("kundli dropped from export")
		case !strings.HasPrefix(url, "data:"+pdfMime):
			logger.Warn().Str("attachment", f.Kundli.Name).Msg("kundli is not a PDF, dropped from export")
		default:
			data[keyKundli] = url
			data[keyKundliPages] = append([]int(nil), domain.KundliPages...)
		}
	}

	return &Payload{ReportType: f.ReportType, FormData: data}, nil
}

// dataURL encodes an attachment as "data:<mime>;base64,<content>". The
// content is read from disk when it was not uploaded in memory.
func (e *exporter) dataURL(a *domain.Attachment) (string, error) {
	content := a.Data
	if len(content) == 0 {
		if a.Path == "" {
			return "", fmt.Errorf("attachment %q has no content", a.Name)
		}
		b, err := afero.ReadFile(e.fs, a.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read attachment %q: %w", a.Name, err)
		}
		content = b
	}

	mime := a.MimeType
	if mime == "" {
		mime = mimetype.Detect(content).String()
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(content)), nil
}
