// Package session hosts one editing session per practitioner: the form,
// its latest preview and the export lock.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/derive"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

var (
	ErrExportInProgress  = errors.New("an export is already in progress")
	ErrNoPreview         = errors.New("preview the report before exporting")
	ErrUnsupportedUpload = errors.New("unsupported upload type")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDraftsDisabled    = errors.New("draft storage is not configured")
)

const (
	mimePDF  = "application/pdf"
	mimePNG  = "image/png"
	mimeJPEG = "image/jpeg"
)

// Archive keeps a copy of every generated report.
type Archive interface {
	Store(ctx context.Context, name string, content []byte, contentType string) (string, error)
}

type DraftStore interface {
	Save(ctx context.Context, draft domain.Draft) error
	Load(ctx context.Context, id string) (*domain.Draft, error)
	List(ctx context.Context) ([]domain.DraftSummary, error)
	Delete(ctx context.Context, id string) error
}

// ExportObserver is told the outcome of every export attempt.
type ExportObserver interface {
	ObserveExport(outcome string, elapsed time.Duration)
}

type Dependencies struct {
	Engine      derive.Engine
	Exporter    preview.Exporter
	Reports     report.Client
	ReportTypes []domain.ReportType
	// Optional.
	Archive  Archive
	Drafts   DraftStore
	Observer ExportObserver
	Now      func() time.Time
	NewID    func() string
}

type Info struct {
	ID         string
	ClientName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Exporting  bool
}

type Session struct {
	id   string
	deps Dependencies

	mu        sync.Mutex
	form      form.Manager
	preview   *preview.PreviewData
	createdAt time.Time
	updatedAt time.Time
	// revision counts mutations; previewRevision is its value when the
	// current preview was built.
	revision        uint64
	previewRevision uint64

	exporting atomic.Bool
}

func New(id string, deps Dependencies) (*Session, error) {
	if deps.Engine == nil || deps.Exporter == nil || deps.Reports == nil {
		return nil, fmt.Errorf("engine, exporter and report client are required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	opts := []form.Option{form.WithReportTypes(deps.ReportTypes)}
	if deps.NewID != nil {
		opts = append(opts, form.WithIDGenerator(deps.NewID))
	}
	m, err := form.NewManager(deps.Engine, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create form manager: %w", err)
	}

	now := deps.Now()
	return &Session{
		id:        id,
		deps:      deps,
		form:      m,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoLocked()
}

func (s *Session) infoLocked() Info {
	name, _ := s.form.Field(domain.FieldName)
	return Info{
		ID:         s.id,
		ClientName: name,
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
		Exporting:  s.exporting.Load(),
	}
}

// Edit runs fn with exclusive access to the form.
func (s *Session) Edit(fn func(m form.Manager) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return fn(s.form)
}

func (s *Session) touchLocked() {
	s.revision++
	s.updatedAt = s.deps.Now()
}

// View runs fn with exclusive access to the form without marking the
// session as modified.
func (s *Session) View(fn func(m form.Manager)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.form)
}

// Preview validates the form and freezes it. The frozen copy is what a
// following Export sends.
func (s *Session) Preview(ctx context.Context) (*preview.PreviewData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.form.Validate(); err != nil {
		return nil, err
	}
	s.preview = preview.BuildPreview(s.form.Snapshot(), s.deps.Now())
	s.previewRevision = s.revision
	zerolog.Ctx(ctx).Debug().Str("session", s.id).Int("sections", len(s.preview.Sections)).Msg("preview built")
	return s.preview, nil
}

// Export sends the last preview to the report service. Only one export may
// run per session; a second call fails fast. After a successful export the
// form is reset unless it was edited after the preview, in which case the
// edits are kept and only the preview is dropped. A failure keeps both.
func (s *Session) Export(ctx context.Context, filename string) (*report.GeneratedReport, error) {
	if !s.exporting.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer s.exporting.Store(false)

	logger := zerolog.Ctx(ctx).With().Str("session", s.id).Logger()
	started := s.deps.Now()

	s.mu.Lock()
	p := s.preview
	s.mu.Unlock()
	if p == nil {
		return nil, ErrNoPreview
	}

	doc, err := s.generate(ctx, p, filename)
	if err != nil {
		s.observe("failure", started)
		logger.Warn().Err(err).Msg("export failed, form retained")
		return nil, err
	}

	if s.deps.Archive != nil {
		key, err := s.deps.Archive.Store(ctx, doc.Filename, doc.Content, doc.ContentType)
		if err != nil {
			logger.Warn().Err(err).Str("file", doc.Filename).Msg("failed to archive report")
		} else {
			logger.Info().Str("key", key).Msg("report archived")
		}
	}

	s.mu.Lock()
	edited := s.revision != s.previewRevision
	if !edited {
		s.form.Reset(ctx)
	}
	s.preview = nil
	s.touchLocked()
	s.mu.Unlock()

	if edited {
		logger.Info().Msg("form edited after preview, keeping edits")
	}
	s.observe("success", started)
	logger.Info().Str("file", doc.Path).Msg("report exported")
	return doc, nil
}

func (s *Session) generate(ctx context.Context, p *preview.PreviewData, filename string) (*report.GeneratedReport, error) {
	payload, err := s.deps.Exporter.BuildExportPayload(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to build export payload: %w", err)
	}
	return s.deps.Reports.GenerateReport(ctx, payload, filename)
}

func (s *Session) observe(outcome string, started time.Time) {
	if s.deps.Observer != nil {
		s.deps.Observer.ObserveExport(outcome, s.deps.Now().Sub(started))
	}
}

// Exporting reports whether an export is in flight.
func (s *Session) Exporting() bool {
	return s.exporting.Load()
}

func sniff(content []byte, allowed ...string) (string, error) {
	mt := mimetype.Detect(content)
	for _, a := range allowed {
		if mt.Is(a) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedUpload, mt.String())
}

// UploadKundli attaches a birth chart PDF. With extract set the chart is
// also sent for identity extraction first; if that fails nothing changes.
func (s *Session) UploadKundli(ctx context.Context, name string, content []byte, extract bool) ([]domain.Field, error) {
	if _, err := sniff(content, mimePDF); err != nil {
		return nil, err
	}

	var info domain.ClientInfo
	if extract {
		ex, err := s.deps.Reports.ExtractPDFData(ctx, name, content)
		if err != nil {
			return nil, err
		}
		info = ex.Client
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.form.SetKundli(ctx, &domain.Attachment{Name: name, MimeType: mimePDF, Data: content})
	return s.form.ApplyExtracted(ctx, info), nil
}

// UploadHouseMap adds one house map per image. A PDF is converted by the
// report service into one image per page.
func (s *Session) UploadHouseMap(ctx context.Context, name string, content []byte) ([]string, error) {
	mime, err := sniff(content, mimePDF, mimePNG, mimeJPEG)
	if err != nil {
		return nil, err
	}

	type page struct {
		label string
		image *domain.Attachment
	}
	var pages []page
	if mime == mimePDF {
		images, err := s.deps.Reports.ConvertPDFToImage(ctx, name, content)
		if err != nil {
			return nil, err
		}
		for i, img := range images {
			pages = append(pages, page{
				label: fmt.Sprintf("%s (page %d)", name, i+1),
				image: &domain.Attachment{Name: fmt.Sprintf("%s-%d.png", name, i+1), Data: img},
			})
		}
	} else {
		pages = append(pages, page{label: name, image: &domain.Attachment{Name: name, MimeType: mime, Data: content}})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	ids := make([]string, 0, len(pages))
	for _, p := range pages {
		id, err := s.form.AddHouseMap(ctx, p.label, p.image)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SaveDraft stores the current form under the session id.
func (s *Session) SaveDraft(ctx context.Context) (*domain.Draft, error) {
	if s.deps.Drafts == nil {
		return nil, ErrDraftsDisabled
	}

	s.mu.Lock()
	name, _ := s.form.Field(domain.FieldName)
	draft := domain.Draft{
		ID:         s.id,
		ClientName: name,
		Form:       s.form.Snapshot(),
		Overrides:  s.form.Overridden(),
		UpdatedAt:  s.deps.Now(),
	}
	s.mu.Unlock()

	if err := s.deps.Drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return &draft, nil
}

// RestoreDraft replaces the form with a saved draft and drops any preview.
func (s *Session) RestoreDraft(ctx context.Context, id string) error {
	if s.deps.Drafts == nil {
		return ErrDraftsDisabled
	}
	draft, err := s.deps.Drafts.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load draft: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Restore(ctx, draft.Form, draft.Overrides)
	s.preview = nil
	s.touchLocked()
	return nil
}
