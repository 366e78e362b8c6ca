package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Given a working directory without destiny.yaml
	t.Chdir(t.TempDir())

	// When loading without an explicit path
	cfg, err := Load("")

	// Then the defaults apply
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001/api", cfg.API.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "reports", cfg.Archive.Prefix)
	assert.Empty(t, cfg.Drafts.Path)

	types, err := cfg.ReportTypes()
	require.NoError(t, err)
	assert.Equal(t, domain.ReportTypes, types)
}

func TestLoad_FileAndEnv(t *testing.T) {
	// Given a config file and environment overrides
	path := writeFile(t, "destiny.yaml", `
api:
  base_url: http://reports.internal:5001/api
  timeout: 15s
report:
  formats: [docx, pdf]
  output_dir: /var/reports
server:
  port: 9090
drafts:
  path: /var/lib/destiny/drafts.db
`)
	t.Setenv("DESTINY_SERVER_PORT", "7070")
	t.Setenv("DESTINY_ARCHIVE_BUCKET", "destiny-reports")

	// When loading
	cfg, err := Load(path)

	// Then the environment wins over the file
	require.NoError(t, err)
	assert.Equal(t, "http://reports.internal:5001/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/var/reports", cfg.Report.OutputDir)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/var/lib/destiny/drafts.db", cfg.Drafts.Path)
	assert.Equal(t, "destiny-reports", cfg.Archive.Bucket)

	types, err := cfg.ReportTypes()
	require.NoError(t, err)
	assert.Equal(t, []domain.ReportType{domain.ReportTypeDOCX, domain.ReportTypePDF}, types)
}

func TestLoad_APIURLEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DESTINY_API_URL", "https://reports.example.com/api")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://reports.example.com/api", cfg.API.BaseURL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "destiny.yaml", "report:\n  formats: [pdf, odt]\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, "invalid report.formats")
}

func TestProfiles(t *testing.T) {
	// Given a profile file with two endpoints and an unrelated section
	path := writeFile(t, ProfileFile, `
[local]
base_url = http://localhost:5001/api

[shared]
base_url = https://reports.example.com/api
timeout = 2m

[notes]
owner = practice
`)
	registry, err := NewRegistry(path)
	require.NoError(t, err)
	ctx := context.Background()

	// Then only endpoint sections are listed
	profiles, err := registry.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"local", "shared"}, profiles)

	shared, err := registry.GetProfile(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, &Profile{Name: "shared", BaseURL: "https://reports.example.com/api", Timeout: 2 * time.Minute}, shared)

	_, err = registry.GetProfile(ctx, "notes")
	assert.Error(t, err)
	_, err = registry.GetProfile(ctx, "missing")
	assert.Error(t, err)

	// When applied, the profile replaces the endpoint only where set
	cfg := &Config{API: APIConfig{BaseURL: "http://default/api", Timeout: time.Minute}}
	local, err := registry.GetProfile(ctx, "local")
	require.NoError(t, err)
	cfg.ApplyProfile(local)
	assert.Equal(t, APIConfig{BaseURL: "http://localhost:5001/api", Timeout: time.Minute}, cfg.API)
}
