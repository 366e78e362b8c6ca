package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/de-tools/destiny-report/pkg/adapters"
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/de-tools/destiny-report/pkg/services/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

var errMalformedBody = errors.New("malformed request body")

type Handler struct {
	sessions session.Registry
	reports  report.Client
	drafts   session.DraftStore
	now      func() time.Time
}

// NewHandler builds the session API. drafts may be nil when draft storage
// is not configured.
func NewHandler(sessions session.Registry, reports report.Client, drafts session.DraftStore) *Handler {
	return &Handler{
		sessions: sessions,
		reports:  reports,
		drafts:   drafts,
		now:      time.Now,
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func statusOf(err error) int {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, form.ErrRecordNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, errMalformedBody),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrInvalidValue),
		errors.Is(err, form.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, form.ErrReadOnlyField),
		errors.Is(err, session.ErrExportInProgress),
		errors.Is(err, session.ErrNoPreview):
		return http.StatusConflict
	case errors.Is(err, session.ErrUnsupportedUpload):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, session.ErrDraftsDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, report.ErrServerRejected),
		errors.Is(err, report.ErrUnreachable),
		errors.Is(err, report.ErrBackendDown),
		errors.Is(err, report.ErrExtractionFailed),
		errors.Is(err, report.ErrConversionFailed),
		errors.Is(err, report.ErrTemplates):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := api.Error{Error: err.Error()}

	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Fields = make(map[string]string, len(verr.Fields))
		for field, msg := range verr.Fields {
			body.Fields[field.String()] = msg
		}
	case status == http.StatusBadGateway:
		body.Error = report.UserMessage(err)
	case status == http.StatusInternalServerError:
		body.Error = "An unexpected error occurred."
	}

	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, r, status, body)
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, errors.Join(errMalformedBody, err)
	}
	return v, nil
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return s, true
}

func formView(s *session.Session) api.Form {
	var out api.Form
	s.View(func(m form.Manager) {
		out = adapters.MapDomainFormToAPI(m.Snapshot(), m.Overridden(), m.ReportTypes())
	})
	return out
}

// edit applies fn and answers with the resulting form, derived fields
// included.
func (h *Handler) edit(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, m form.Manager) error) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	err := s.Edit(func(m form.Manager) error {
		return fn(r.Context(), m)
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, formView(s))
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, m form.Manager) (string, error)) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var id string
	err := s.Edit(func(m form.Manager) error {
		var err error
		id, err = fn(r.Context(), m)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, api.Created{ID: id})
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapSessionInfoToAPI(s.Info()))
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	infos := h.sessions.List()
	response := make([]api.Session, 0, len(infos))
	for _, info := range infos {
		response = append(response, adapters.MapSessionInfoToAPI(info))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapSessionInfoToAPI(s.Info()))
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "session")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, formView(s))
}

func (h *Handler) GetField(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	field := domain.Field(chi.URLParam(r, "field"))

	var (
		response api.FieldValue
		err      error
	)
	s.View(func(m form.Manager) {
		var value string
		value, err = m.Field(field)
		response = api.FieldValue{Field: field.String(), Value: value}
		for _, o := range m.Overridden() {
			if o == field {
				response.Overridden = true
			}
		}
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) {
	req, err := decode[api.SetFieldRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	field := domain.Field(chi.URLParam(r, "field"))
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.SetField(ctx, field, req.Value)
	})
}
