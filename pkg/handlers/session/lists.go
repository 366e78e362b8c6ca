package session

import (
	"context"
	"net/http"

	"github.com/de-tools/destiny-report/pkg/adapters"
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/form"
	"github.com/go-chi/chi/v5"
)

// withBody decodes the request body before running one of the list
// handlers; a malformed body never reaches the session.
func withBody[T any](w http.ResponseWriter, r *http.Request, next func(req T)) {
	req, err := decode[T](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	next(req)
}

func (h *Handler) AddHouseAspect(w http.ResponseWriter, r *http.Request) {
	withBody(w, r, func(req api.PlanetRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddHouseAspect(ctx, domain.Planet(req.Planet))
		})
	})
}

func (h *Handler) SetHouseAspect(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	withBody(w, r, func(req api.PlanetRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetHouseAspectPlanet(ctx, aspect, domain.Planet(req.Planet))
		})
	})
}

func (h *Handler) RemoveHouseAspect(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemoveHouseAspect(ctx, aspect)
	})
}

func (h *Handler) AddHouseGroup(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	withBody(w, r, func(req api.HouseGroupRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddHouseGroup(ctx, aspect, req.Houses, req.Degree)
		})
	})
}

func (h *Handler) SetHouseGroup(w http.ResponseWriter, r *http.Request) {
	aspect, group := chi.URLParam(r, "aspect"), chi.URLParam(r, "group")
	withBody(w, r, func(req api.HouseGroupRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetHouseGroup(ctx, aspect, group, req.Houses, req.Degree)
		})
	})
}

func (h *Handler) RemoveHouseGroup(w http.ResponseWriter, r *http.Request) {
	aspect, group := chi.URLParam(r, "aspect"), chi.URLParam(r, "group")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemoveHouseGroup(ctx, aspect, group)
	})
}

func (h *Handler) AddPlanetAspect(w http.ResponseWriter, r *http.Request) {
	withBody(w, r, func(req api.PlanetRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddPlanetAspect(ctx, domain.Planet(req.Planet))
		})
	})
}

func (h *Handler) SetPlanetAspect(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	withBody(w, r, func(req api.PlanetRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetPlanetAspectPlanet(ctx, aspect, domain.Planet(req.Planet))
		})
	})
}

func (h *Handler) RemovePlanetAspect(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemovePlanetAspect(ctx, aspect)
	})
}

func (h *Handler) AddPlanetGroup(w http.ResponseWriter, r *http.Request) {
	aspect := chi.URLParam(r, "aspect")
	withBody(w, r, func(req api.PlanetGroupRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddPlanetGroup(ctx, aspect, adapters.MapAPIPlanets(req.Planets), req.Degree)
		})
	})
}

func (h *Handler) SetPlanetGroup(w http.ResponseWriter, r *http.Request) {
	aspect, group := chi.URLParam(r, "aspect"), chi.URLParam(r, "group")
	withBody(w, r, func(req api.PlanetGroupRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetPlanetGroup(ctx, aspect, group, adapters.MapAPIPlanets(req.Planets), req.Degree)
		})
	})
}

func (h *Handler) RemovePlanetGroup(w http.ResponseWriter, r *http.Request) {
	aspect, group := chi.URLParam(r, "aspect"), chi.URLParam(r, "group")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemovePlanetGroup(ctx, aspect, group)
	})
}

func (h *Handler) AddDirectionSlot(w http.ResponseWriter, r *http.Request) {
	removal := chi.URLParam(r, "removal")
	h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
		return m.AddDirectionSlot(ctx, removal)
	})
}

func (h *Handler) RemoveDirectionSlot(w http.ResponseWriter, r *http.Request) {
	removal, slot := chi.URLParam(r, "removal"), chi.URLParam(r, "slot")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemoveDirectionSlot(ctx, removal, slot)
	})
}

func (h *Handler) SetRemovalDirection(w http.ResponseWriter, r *http.Request) {
	removal, slot := chi.URLParam(r, "removal"), chi.URLParam(r, "slot")
	withBody(w, r, func(req api.DirectionRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetRemovalDirection(ctx, removal, slot, domain.Direction(req.Direction))
		})
	})
}

func (h *Handler) SetPlacementDirection(w http.ResponseWriter, r *http.Request) {
	placement := chi.URLParam(r, "placement")
	withBody(w, r, func(req api.DirectionRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetPlacementDirection(ctx, placement, domain.Direction(req.Direction))
		})
	})
}

func (h *Handler) AddRelationLink(w http.ResponseWriter, r *http.Request) {
	rel := form.Relation(chi.URLParam(r, "relation"))
	withBody(w, r, func(req api.RelationLinkRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddRelationLink(ctx, rel, req.Code, req.Benefic)
		})
	})
}

func (h *Handler) SetRelationLink(w http.ResponseWriter, r *http.Request) {
	rel, link := form.Relation(chi.URLParam(r, "relation")), chi.URLParam(r, "link")
	withBody(w, r, func(req api.RelationLinkRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetRelationLink(ctx, rel, link, req.Code, req.Benefic)
		})
	})
}

func (h *Handler) RemoveRelationLink(w http.ResponseWriter, r *http.Request) {
	rel, link := form.Relation(chi.URLParam(r, "relation")), chi.URLParam(r, "link")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemoveRelationLink(ctx, rel, link)
	})
}

func (h *Handler) AddHouseMap(w http.ResponseWriter, r *http.Request) {
	withBody(w, r, func(req api.HouseMapRequest) {
		h.add(w, r, func(ctx context.Context, m form.Manager) (string, error) {
			return m.AddHouseMap(ctx, req.Label, nil)
		})
	})
}

func (h *Handler) RemoveHouseMap(w http.ResponseWriter, r *http.Request) {
	houseMap := chi.URLParam(r, "map")
	h.edit(w, r, func(ctx context.Context, m form.Manager) error {
		return m.RemoveHouseMap(ctx, houseMap)
	})
}

func (h *Handler) SetRoomDirection(w http.ResponseWriter, r *http.Request) {
	houseMap, room := chi.URLParam(r, "map"), chi.URLParam(r, "room")
	withBody(w, r, func(req api.DirectionRequest) {
		h.edit(w, r, func(ctx context.Context, m form.Manager) error {
			return m.SetRoomDirection(ctx, houseMap, room, domain.Direction(req.Direction))
		})
	})
}
