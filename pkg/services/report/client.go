// Package report talks to the external report-generation service.
package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	DefaultBaseURL = "http://localhost:5001/api"
	DefaultTimeout = 60 * time.Second
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	OutputDir string
	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
	Fs         afero.Fs
	Now        func() time.Time
}

// GeneratedReport is a document saved by GenerateReport.
type GeneratedReport struct {
	Filename    string
	Path        string
	ContentType string
	Content     []byte
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Extraction is the client identity read from an uploaded chart. Any field
// may be empty.
type Extraction struct {
	Client        domain.ClientInfo
	ExtractedText string
}

type Client interface {
	GenerateReport(ctx context.Context, payload *preview.Payload, filename string) (*GeneratedReport, error)
	ExtractPDFData(ctx context.Context, name string, content []byte) (*Extraction, error)
	ConvertPDFToImage(ctx context.Context, name string, content []byte) ([][]byte, error)
	Health(ctx context.Context) (*HealthStatus, error)
	Templates(ctx context.Context) ([]string, error)
}

type client struct {
	baseURL   string
	http      *http.Client
	fs        afero.Fs
	outputDir string
	now       func() time.Time
}

func NewClient(cfg Config) (Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("invalid report service url %q", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &client{
		baseURL:   base,
		http:      httpClient,
		fs:        fs,
		outputDir: outputDir,
		now:       now,
	}, nil
}

// Filename is the saved name of a report: the custom name when given,
// report_<unix millis> otherwise, with the extension of the report type.
func Filename(custom string, rt domain.ReportType, now time.Time) string {
	custom = strings.TrimSpace(custom)
	if custom != "" {
		return filepath.Base(custom) + "." + rt.Extension()
	}
	return fmt.Sprintf("report_%d.%s", now.UnixMilli(), rt.Extension())
}

type generateRequest struct {
	ReportType domain.ReportType `json:"reportType"`
	FormData   map[string]any    `json:"formData"`
	Filename   *string           `json:"filename"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GenerateReport posts the payload once and saves the returned document.
func (c *client) GenerateReport(ctx context.Context, payload *preview.Payload, filename string) (*GeneratedReport, error) {
	logger := zerolog.Ctx(ctx)
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", ErrUnexpected)
	}

	req := generateRequest{ReportType: payload.ReportType, FormData: payload.FormData}
	if filename = strings.TrimSpace(filename); filename != "" {
		req.Filename = &filename
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %w", ErrUnexpected, err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/generate-report", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		_ = json.Unmarshal(content, &e)
		logger.Warn().Int("status", resp.StatusCode).Str("error", e.Error).Msg("report generation rejected")
		return nil, fmt.Errorf("%w: %s", ErrServerRejected, resp.Status)
	}

	name := Filename(filename, payload.ReportType, c.now())
	path := filepath.Join(c.outputDir, name)
	if err := c.fs.MkdirAll(c.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create output dir: %w", ErrUnexpected, err)
	}
	if err := afero.WriteFile(c.fs, path, content, 0o644); err != nil {
		return nil, fmt.Errorf("%w: failed to save report: %w", ErrUnexpected, err)
	}

	logger.Info().Str("path", path).Int("bytes", len(content)).Msg("report saved")
	return &GeneratedReport{
		Filename:    name,
		Path:        path,
		ContentType: resp.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

type extractResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		Name         string `json:"name"`
		DateOfBirth  string `json:"dateOfBirth"`
		TimeOfBirth  string `json:"timeOfBirth"`
		PlaceOfBirth string `json:"placeOfBirth"`
	} `json:"data"`
	ExtractedText string `json:"extractedText"`
	Error         string `json:"error"`
}

func (c *client) ExtractPDFData(ctx context.Context, name string, content []byte) (*Extraction, error) {
	var out extractResponse
	if err := c.upload(ctx, "/extract-pdf-data", name, content, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("%w: %s", ErrExtractionFailed, out.Error)
	}

	ex := &Extraction{ExtractedText: out.ExtractedText}
	if out.Data != nil {
		ex.Client = domain.ClientInfo{
			Name:         out.Data.Name,
			DateOfBirth:  out.Data.DateOfBirth,
			TimeOfBirth:  out.Data.TimeOfBirth,
			PlaceOfBirth: out.Data.PlaceOfBirth,
		}
	}
	return ex, nil
}

type convertResponse struct {
	Success bool     `json:"success"`
	Images  []string `json:"images"`
	Error   string   `json:"error"`
}

// ConvertPDFToImage returns one decoded image per PDF page.
func (c *client) ConvertPDFToImage(ctx context.Context, name string, content []byte) ([][]byte, error) {
	var out convertResponse
	if err := c.upload(ctx, "/convert-pdf-to-image", name, content, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}
	if !out.Success {
		return nil, fmt.Errorf("%w: %s", ErrConversionFailed, out.Error)
	}

	images := make([][]byte, 0, len(out.Images))
	for i, encoded := range out.Images {
		if _, data, ok := strings.Cut(encoded, ";base64,"); ok {
			encoded = data
		}
		img, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("%w: image %d: %w", ErrConversionFailed, i, err)
		}
		images = append(images, img)
	}
	return images, nil
}

func (c *client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendDown, err)
	}
	return &out, nil
}

func (c *client) Templates(ctx context.Context) ([]string, error) {
	var out struct {
		Templates []string `json:"templates"`
	}
	if err := c.getJSON(ctx, "/templates", &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplates, err)
	}
	return out.Templates, nil
}

func (c *client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrUnexpected, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return resp, nil
}

func (c *client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *client) upload(ctx context.Context, path, name string, content []byte, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(name))
	if err != nil {
		return fmt.Errorf("%w: failed to create form file: %w", ErrUnexpected, err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("%w: failed to write form file: %w", ErrUnexpected, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("%w: failed to close multipart body: %w", ErrUnexpected, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, mw.FormDataContentType(), &buf)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrServerRejected, resp.Status)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrUnexpected, err)
	}
	return nil
}
