package session

import (
	"fmt"
	"net/http"

	"github.com/de-tools/destiny-report/pkg/adapters"
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func (h *Handler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "planet")
	info, ok := adapters.MapPlanetToAPI(domain.Planet(name))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: planet %q", form.ErrRecordNotFound, name))
		return
	}
	writeJSON(w, r, http.StatusOK, info)
}

func (h *Handler) GetNakshatra(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "nakshatra")
	info, ok := adapters.MapNakshatraToAPI(name)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: nakshatra %q", form.ErrRecordNotFound, name))
		return
	}
	writeJSON(w, r, http.StatusOK, info)
}

func (h *Handler) GetDirection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "direction")
	info, ok := adapters.MapDirectionToAPI(domain.Direction(name))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: direction %q", form.ErrRecordNotFound, name))
		return
	}
	writeJSON(w, r, http.StatusOK, info)
}

// Health reports this server as healthy and passes through the report
// service status; an unreachable backend does not fail the check.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := api.Health{
		Status:    "healthy",
		Timestamp: h.now().Format("2006-01-02T15:04:05.000000"),
	}
	status, err := h.reports.Health(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("report service health check failed")
		response.Backend = "unreachable"
	} else {
		response.Backend = status.Status
	}
	writeJSON(w, r, http.StatusOK, response)
}
