package terminal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/de-tools/destiny-report/pkg/services/report/reporttest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const clientForm = `
fields:
  name: Asha Verma
  dateOfBirth: "1990-05-15"
  timeOfBirth: "14:30"
  placeOfBirth: Jaipur
  mahadasha_planet: Jupiter
`

type fixture struct {
	fs      afero.Fs
	out     *bytes.Buffer
	reports *reporttest.Client
	configs []report.Config
	cli     *CLI
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()
	t.Chdir(t.TempDir())

	f := &fixture{
		fs:      afero.NewMemMapFs(),
		out:     &bytes.Buffer{},
		reports: &reporttest.Client{},
	}
	f.cli = NewCLI(Options{
		Output: f.out,
		Logs:   &bytes.Buffer{},
		Fs:     f.fs,
		NewClient: func(cfg report.Config) (report.Client, error) {
			f.configs = append(f.configs, cfg)
			return f.reports, nil
		},
	})
	require.NoError(t, afero.WriteFile(f.fs, "/forms/asha.yaml", []byte(clientForm), 0o644))
	require.NoError(t, afero.WriteFile(f.fs, "/forms/empty.yaml", []byte("fields: {}\n"), 0o644))
	return f
}

func (f *fixture) run(args ...string) error {
	f.cli.SetArgs(args)
	return f.cli.Execute()
}

func TestLookup(t *testing.T) {
	f := setupFixture(t)

	require.NoError(t, f.run("lookup", "planet", "Jupiter"))
	assert.Contains(t, f.out.String(), "Jupiter (JU)")

	f.out.Reset()
	require.NoError(t, f.run("lookup", "direction", "North-East"))
	assert.Contains(t, f.out.String(), "North-East")

	assert.ErrorContains(t, f.run("lookup", "direction", "Up"), `unknown direction "Up"`)
	assert.ErrorContains(t, f.run("lookup", "planet", "Pluto"), `unknown planet "Pluto"`)
}

func TestPreview(t *testing.T) {
	f := setupFixture(t)

	require.NoError(t, f.run("preview", "--form", "/forms/asha.yaml"))
	out := f.out.String()
	assert.Contains(t, out, "DESTINY REPORT")
	assert.Contains(t, out, "=== ABOUT THE CLIENT ===")
	assert.Contains(t, out, "Asha Verma")
	assert.Contains(t, out, "Format: pdf")

	err := setupFixture(t).run("preview", "--form", "/forms/empty.yaml")
	assert.ErrorContains(t, err, "Date of birth is required")
}

func TestExport(t *testing.T) {
	f := setupFixture(t)

	isDocx := mock.MatchedBy(func(p *preview.Payload) bool {
		return p.ReportType == domain.ReportTypeDOCX && p.FormData["name"] == "Asha Verma"
	})
	f.reports.On("GenerateReport", mock.Anything, isDocx, "asha").
		Return(&report.GeneratedReport{Filename: "asha.docx", Path: "/reports/asha.docx"}, nil).Once()

	require.NoError(t, f.run("export", "--form", "/forms/asha.yaml", "--type", "docx", "--filename", "asha", "--out", "/reports"))
	assert.Equal(t, "Report saved to /reports/asha.docx\n", f.out.String())
	require.Len(t, f.configs, 1)
	assert.Equal(t, "/reports", f.configs[0].OutputDir)
	f.reports.AssertExpectations(t)
}

func TestExport_ServiceFailure(t *testing.T) {
	f := setupFixture(t)

	f.reports.On("GenerateReport", mock.Anything, mock.Anything, "").
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	err := f.run("export", "--form", "/forms/asha.yaml")
	assert.ErrorContains(t, err, "An unexpected error occurred.")

	assert.ErrorContains(t, setupFixture(t).run("export", "--form", "/forms/asha.yaml", "--type", "odt"), "odt")
}

func TestHealth(t *testing.T) {
	f := setupFixture(t)

	f.reports.On("Health", mock.Anything).
		Return(&report.HealthStatus{Status: "healthy", Timestamp: "2025-01-01T10:00:00"}, nil).Once()
	f.reports.On("Templates", mock.Anything).Return([]string{"destiny.docx"}, nil).Once()

	require.NoError(t, f.run("health"))
	assert.Equal(t,
		"Report service at http://localhost:5001/api: healthy (2025-01-01T10:00:00)\nTemplates:\ndestiny.docx\n",
		f.out.String())

	f = setupFixture(t)
	f.reports.On("Health", mock.Anything).Return(nil, report.ErrBackendDown).Once()
	assert.ErrorContains(t, f.run("health"), "Backend server is not responding")
}

func TestExtract(t *testing.T) {
	f := setupFixture(t)
	pdf := []byte("%PDF-1.4\n")
	require.NoError(t, afero.WriteFile(f.fs, "/charts/asha.pdf", pdf, 0o644))

	f.reports.On("ExtractPDFData", mock.Anything, "asha.pdf", pdf).
		Return(&report.Extraction{Client: domain.ClientInfo{Name: "Asha Verma", PlaceOfBirth: "Jaipur"}}, nil).Once()

	require.NoError(t, f.run("extract", "--pdf", "/charts/asha.pdf"))
	assert.Equal(t, "name: Asha Verma\nplaceOfBirth: Jaipur\n", f.out.String())

	assert.ErrorContains(t, f.run("extract", "--pdf", "/charts/missing.pdf"), "failed to read")
}

func TestProfile(t *testing.T) {
	f := setupFixture(t)
	profiles := filepath.Join(t.TempDir(), ".destinyrc")
	require.NoError(t, os.WriteFile(profiles, []byte("[shared]\nbase_url = https://reports.example.com/api\n"), 0o600))

	f.reports.On("Health", mock.Anything).Return(&report.HealthStatus{Status: "healthy"}, nil).Once()
	f.reports.On("Templates", mock.Anything).Return([]string{}, nil).Once()

	require.NoError(t, f.run("health", "--profiles", profiles, "--profile", "shared"))
	require.Len(t, f.configs, 1)
	assert.Equal(t, "https://reports.example.com/api", f.configs[0].BaseURL)
	assert.Contains(t, f.out.String(), "No templates available")

	assert.ErrorContains(t, setupFixture(t).run("health", "--profiles", profiles, "--profile", "missing"), "failed to load profile")
}
