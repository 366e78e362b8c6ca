package session

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/de-tools/destiny-report/pkg/adapters"
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/session"
	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20

// readUpload returns the "file" part of a multipart request.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errMalformedBody, err)
	}
	return header.Filename, content, nil
}

func (h *Handler) UploadKundli(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	name, content, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	extract, _ := strconv.ParseBool(r.URL.Query().Get("extract"))

	fields, err := s.UploadKundli(r.Context(), name, content, extract)
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := api.Applied{Fields: make([]string, 0, len(fields))}
	for _, f := range fields {
		response.Fields = append(response.Fields, f.String())
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) UploadHouseMap(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	name, content, err := readUpload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	ids, err := s.UploadHouseMap(r.Context(), name, content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, api.CreatedList{IDs: ids})
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	p, err := s.Preview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, adapters.MapPreviewToAPI(p))
}

// Export generates the document from the last preview and streams it back.
// An empty body uses the default file name.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req api.ExportRequest
	if r.ContentLength != 0 {
		if req, ok = decodeOrFail[api.ExportRequest](w, r); !ok {
			return
		}
	}

	doc, err := s.Export(r.Context(), req.Filename)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}

func decodeOrFail[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	v, err := decode[T](r)
	if err != nil {
		writeError(w, r, err)
		return v, false
	}
	return v, true
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	draft, err := s.SaveDraft(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, adapters.MapDraftSummaryToAPI(domain.DraftSummary{
		ID:         draft.ID,
		ClientName: draft.ClientName,
		UpdatedAt:  draft.UpdatedAt,
	}))
}

func (h *Handler) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.RestoreDraft(r.Context(), chi.URLParam(r, "draft")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, formView(s))
}

func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	if h.drafts == nil {
		writeError(w, r, session.ErrDraftsDisabled)
		return
	}
	drafts, err := h.drafts.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.Draft, 0, len(drafts))
	for _, d := range drafts {
		response = append(response, adapters.MapDraftSummaryToAPI(d))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if h.drafts == nil {
		writeError(w, r, session.ErrDraftsDisabled)
		return
	}
	if err := h.drafts.Delete(r.Context(), chi.URLParam(r, "draft")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
