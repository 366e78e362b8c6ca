package report

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.UnixMilli(1735725600123)

type fixture struct {
	server *httptest.Server
	fs     afero.Fs
	client Client
}

func setupFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	fs := afero.NewMemMapFs()
	c, err := NewClient(Config{
		BaseURL:    srv.URL + "/api/",
		OutputDir:  "/reports",
		HTTPClient: srv.Client(),
		Fs:         fs,
		Now:        func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return &fixture{server: srv, fs: fs, client: c}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		custom   string
		rt       domain.ReportType
		expected string
	}{
		{custom: "", rt: domain.ReportTypePDF, expected: "report_1735725600123.pdf"},
		{custom: "", rt: domain.ReportTypeExcel, expected: "report_1735725600123.xlsx"},
		{custom: "asha-2025", rt: domain.ReportTypeDOCX, expected: "asha-2025.docx"},
		{custom: "  asha ", rt: domain.ReportTypeExcel, expected: "asha.xlsx"},
		{custom: "../../etc/passwd", rt: domain.ReportTypePDF, expected: "passwd.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Filename(tt.custom, tt.rt, fixedNow))
		})
	}
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "localhost:5001"})
	assert.Error(t, err)

	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.(*client).baseURL)
}

func TestGenerateReport_SavesDocument(t *testing.T) {
	pdf := []byte("%PDF-1.4 generated")
	var got map[string]any

	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-report", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	})

	payload := &preview.Payload{
		ReportType: domain.ReportTypePDF,
		FormData:   map[string]any{"name": "Asha Verma", "mahadasha_no_star": true},
	}
	report, err := f.client.GenerateReport(context.Background(), payload, "")
	require.NoError(t, err)

	assert.Equal(t, "pdf", got["reportType"])
	assert.Nil(t, got["filename"])
	assert.Equal(t, map[string]any{"name": "Asha Verma", "mahadasha_no_star": true}, got["formData"])

	assert.Equal(t, "report_1735725600123.pdf", report.Filename)
	assert.Equal(t, "/reports/report_1735725600123.pdf", report.Path)
	assert.Equal(t, "application/pdf", report.ContentType)
	assert.Equal(t, pdf, report.Content)

	saved, err := afero.ReadFile(f.fs, report.Path)
	require.NoError(t, err)
	assert.Equal(t, pdf, saved)
}

func TestGenerateReport_CustomFilename(t *testing.T) {
	var got generateRequest
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("xlsx bytes"))
	})

	report, err := f.client.GenerateReport(context.Background(),
		&preview.Payload{ReportType: domain.ReportTypeExcel, FormData: map[string]any{}}, "asha")
	require.NoError(t, err)

	require.NotNil(t, got.Filename)
	assert.Equal(t, "asha", *got.Filename)
	assert.Equal(t, "asha.xlsx", report.Filename)
}

func TestGenerateReport_Rejected(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid report type. Must be pdf, docx, or excel"}`))
	})

	_, err := f.client.GenerateReport(context.Background(),
		&preview.Payload{ReportType: "odt", FormData: map[string]any{}}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrServerRejected))
	assert.Equal(t, "Failed to generate report. Please try again.", UserMessage(err))

	exists, _ := afero.DirExists(f.fs, "/reports")
	assert.False(t, exists)
}

func TestGenerateReport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: url, Fs: afero.NewMemMapFs(), HTTPClient: &http.Client{Timeout: time.Second}})
	require.NoError(t, err)

	_, err = c.GenerateReport(context.Background(),
		&preview.Payload{ReportType: domain.ReportTypePDF, FormData: map[string]any{}}, "")
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, "Cannot connect to server. Please check if the backend is running.", UserMessage(err))
}

func TestGenerateReport_NilPayload(t *testing.T) {
	c, err := NewClient(Config{Fs: afero.NewMemMapFs()})
	require.NoError(t, err)

	_, err = c.GenerateReport(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.Equal(t, "An unexpected error occurred.", UserMessage(err))
}

func TestExtractPDFData(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/extract-pdf-data", r.URL.Path)
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "kundli.pdf", header.Filename)
		assert.Equal(t, "%PDF-chart", string(content))

		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"Asha","placeOfBirth":"Jaipur"},"extractedText":"Name: Asha"}`))
	})

	ex, err := f.client.ExtractPDFData(context.Background(), "/tmp/kundli.pdf", []byte("%PDF-chart"))
	require.NoError(t, err)
	assert.Equal(t, domain.ClientInfo{Name: "Asha", PlaceOfBirth: "Jaipur"}, ex.Client)
	assert.Equal(t, "Name: Asha", ex.ExtractedText)
}

func TestExtractPDFData_Failure(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"no text layer"}`))
	})

	_, err := f.client.ExtractPDFData(context.Background(), "scan.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Equal(t, "Failed to extract data from PDF", UserMessage(err))
}

func TestConvertPDFToImage(t *testing.T) {
	page1 := []byte{0x89, 'P', 'N', 'G', 1}
	page2 := []byte{0x89, 'P', 'N', 'G', 2}

	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/convert-pdf-to-image", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"images": []string{
				"data:image/png;base64," + base64.StdEncoding.EncodeToString(page1),
				base64.StdEncoding.EncodeToString(page2),
			},
		})
	})

	images, err := f.client.ConvertPDFToImage(context.Background(), "plan.pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{page1, page2}, images)
}

func TestConvertPDFToImage_ServerError(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := f.client.ConvertPDFToImage(context.Background(), "plan.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.ErrorIs(t, err, ErrServerRejected)
	assert.Equal(t, "Failed to convert PDF to images", UserMessage(err))
}

func TestHealthAndTemplates(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"2025-01-01T10:00:00"}`))
		case "/api/templates":
			_, _ = w.Write([]byte(`{"templates":["classic","modern"]}`))
		default:
			http.NotFound(w, r)
		}
	})

	status, err := f.client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &HealthStatus{Status: "healthy", Timestamp: "2025-01-01T10:00:00"}, status)

	templates, err := f.client.Templates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "modern"}, templates)
}

func TestHealth_Down(t *testing.T) {
	f := setupFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := f.client.Health(context.Background())
	assert.ErrorIs(t, err, ErrBackendDown)
	assert.Equal(t, "Backend server is not responding", UserMessage(err))
}
