package adapters

import (
	"strconv"

	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
)

// FieldValue renders a scalar field the way SetField accepts it.
func FieldValue(f *domain.ReportFormData, field domain.Field) string {
	if flag := f.Flag(field); flag != nil {
		return strconv.FormatBool(*flag)
	}
	if text := f.Text(field); text != nil {
		return *text
	}
	return ""
}

func MapDomainFormToAPI(f *domain.ReportFormData, overridden []domain.Field, reportTypes []domain.ReportType) api.Form {
	out := api.Form{
		Fields:                make(map[string]string),
		Overridden:            make([]string, 0, len(overridden)),
		ReportTypes:           make([]string, 0, len(reportTypes)),
		AspectsOnHouses:       make([]api.HouseAspect, 0, len(f.AspectsOnHouses)),
		AspectsOnPlanets:      make([]api.PlanetAspect, 0, len(f.AspectsOnPlanets)),
		RemovalItems:          make([]api.RemovalItem, 0, len(f.RemovalItems)),
		PlacementItems:        make([]api.PlacementItem, 0, len(f.PlacementItems)),
		SaturnRelationPlanets: mapLinks(f.SaturnRelationPlanets),
		VenusRelationPlanets:  mapLinks(f.VenusRelationPlanets),
		HouseMaps:             make([]api.HouseMap, 0, len(f.HouseMaps)),
		Kundli:                mapAttachment(f.Kundli),
	}

	for _, field := range domain.ScalarFields() {
		out.Fields[field.String()] = FieldValue(f, field)
	}
	for _, field := range overridden {
		out.Overridden = append(out.Overridden, field.String())
	}
	for _, rt := range reportTypes {
		out.ReportTypes = append(out.ReportTypes, rt.String())
	}

	for _, a := range f.AspectsOnHouses {
		groups := make([]api.HouseGroup, 0, len(a.Groups))
		for _, g := range a.Groups {
			groups = append(groups, api.HouseGroup{ID: g.ID, Houses: append([]int{}, g.Houses...), Degree: g.Degree})
		}
		out.AspectsOnHouses = append(out.AspectsOnHouses, api.HouseAspect{ID: a.ID, Planet: a.Planet.String(), Groups: groups})
	}
	for _, a := range f.AspectsOnPlanets {
		groups := make([]api.PlanetGroup, 0, len(a.Groups))
		for _, g := range a.Groups {
			groups = append(groups, api.PlanetGroup{ID: g.ID, Planets: planetNames(g.Planets), Degree: g.Degree})
		}
		out.AspectsOnPlanets = append(out.AspectsOnPlanets, api.PlanetAspect{ID: a.ID, Planet: a.Planet.String(), Groups: groups})
	}
	for _, r := range f.RemovalItems {
		slots := make([]api.DirectionSlot, 0, len(r.Slots))
		for _, s := range r.Slots {
			slots = append(slots, api.DirectionSlot{ID: s.ID, Direction: string(s.Direction)})
		}
		out.RemovalItems = append(out.RemovalItems, api.RemovalItem{ID: r.ID, Planet: r.Planet.String(), Slots: slots})
	}
	for _, p := range f.PlacementItems {
		out.PlacementItems = append(out.PlacementItems, api.PlacementItem{ID: p.ID, Planet: p.Planet.String(), Direction: string(p.Direction)})
	}
	for _, m := range f.HouseMaps {
		rooms := make([]api.Room, 0, len(m.Rooms))
		for _, r := range m.Rooms {
			rooms = append(rooms, api.Room{Room: r.Room, Direction: string(r.Direction)})
		}
		out.HouseMaps = append(out.HouseMaps, api.HouseMap{ID: m.ID, Label: m.Label, Image: mapAttachment(m.Image), Rooms: rooms})
	}
	return out
}

func mapLinks(links []domain.RelationLink) []api.RelationLink {
	out := make([]api.RelationLink, 0, len(links))
	for _, l := range links {
		out = append(out, api.RelationLink{ID: l.ID, Code: l.Code, Benefic: l.Benefic})
	}
	return out
}

func mapAttachment(a *domain.Attachment) *api.Attachment {
	if a == nil {
		return nil
	}
	return &api.Attachment{Name: a.Name, MimeType: a.MimeType, Size: len(a.Data)}
}

func planetNames(planets []domain.Planet) []string {
	out := make([]string, 0, len(planets))
	for _, p := range planets {
		out = append(out, p.String())
	}
	return out
}

func MapAPIPlanets(names []string) []domain.Planet {
	out := make([]domain.Planet, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Planet(n))
	}
	return out
}
