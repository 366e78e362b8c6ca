package form

import (
	"context"
	"fmt"

	"github.com/de-tools/destiny-report/pkg/models/domain"
)

const (
	minHouse = 1
	maxHouse = 12
)

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrRecordNotFound, kind, id)
}

func validPlanet(p domain.Planet) error {
	if p != "" && !p.Valid() {
		return fmt.Errorf("%w: %q is not a planet", ErrInvalidValue, p)
	}
	return nil
}

func validDirection(d domain.Direction) error {
	if d != "" && !d.Valid() {
		return fmt.Errorf("%w: %q is not a direction", ErrInvalidValue, d)
	}
	return nil
}

func validDegree(degree int) error {
	for _, d := range domain.AspectDegrees {
		if d == degree {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported aspect degree %d", ErrInvalidValue, degree)
}

func validHouses(houses []int) error {
	for _, h := range houses {
		if h < minHouse || h > maxHouse {
			return fmt.Errorf("%w: house %d out of range", ErrInvalidValue, h)
		}
	}
	return nil
}

func validPlanets(planets []domain.Planet) error {
	for _, p := range planets {
		if p == "" || !p.Valid() {
			return fmt.Errorf("%w: %q is not a planet", ErrInvalidValue, p)
		}
	}
	return nil
}

func houseAspectID(a domain.HouseAspect) string   { return a.ID }
func houseGroupID(g domain.HouseGroup) string     { return g.ID }
func planetAspectID(a domain.PlanetAspect) string { return a.ID }
func planetGroupID(g domain.PlanetGroup) string   { return g.ID }
func removalID(r domain.RemovalItem) string       { return r.ID }
func slotID(s domain.DirectionSlot) string        { return s.ID }
func placementID(p domain.PlacementItem) string   { return p.ID }
func linkID(l domain.RelationLink) string         { return l.ID }
func houseMapID(m domain.HouseMap) string         { return m.ID }

// Aspects on houses.

func (m *manager) AddHouseAspect(ctx context.Context, planet domain.Planet) (string, error) {
	if err := validPlanet(planet); err != nil {
		return "", err
	}
	id := m.newID()
	f := m.state.Form
	f.AspectsOnHouses = append(f.AspectsOnHouses, domain.HouseAspect{ID: id, Planet: planet})
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return id, nil
}

func (m *manager) SetHouseAspectPlanet(ctx context.Context, aspectID string, planet domain.Planet) error {
	if err := validPlanet(planet); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnHouses, aspectID, houseAspectID)
	if i < 0 {
		return notFound("house aspect", aspectID)
	}
	f.AspectsOnHouses[i].Planet = planet
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return nil
}

func (m *manager) RemoveHouseAspect(ctx context.Context, aspectID string) error {
	f := m.state.Form
	i := indexOf(f.AspectsOnHouses, aspectID, houseAspectID)
	if i < 0 {
		return notFound("house aspect", aspectID)
	}
	f.AspectsOnHouses = append(f.AspectsOnHouses[:i], f.AspectsOnHouses[i+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return nil
}

func (m *manager) AddHouseGroup(ctx context.Context, aspectID string, houses []int, degree int) (string, error) {
	if err := validHouses(houses); err != nil {
		return "", err
	}
	if err := validDegree(degree); err != nil {
		return "", err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnHouses, aspectID, houseAspectID)
	if i < 0 {
		return "", notFound("house aspect", aspectID)
	}
	id := m.newID()
	f.AspectsOnHouses[i].Groups = append(f.AspectsOnHouses[i].Groups, domain.HouseGroup{
		ID:     id,
		Houses: append([]int(nil), houses...),
		Degree: degree,
	})
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return id, nil
}

func (m *manager) SetHouseGroup(ctx context.Context, aspectID, groupID string, houses []int, degree int) error {
	if err := validHouses(houses); err != nil {
		return err
	}
	if err := validDegree(degree); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnHouses, aspectID, houseAspectID)
	if i < 0 {
		return notFound("house aspect", aspectID)
	}
	groups := f.AspectsOnHouses[i].Groups
	j := indexOf(groups, groupID, houseGroupID)
	if j < 0 {
		return notFound("house group", groupID)
	}
	groups[j].Houses = append([]int(nil), houses...)
	groups[j].Degree = degree
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return nil
}

func (m *manager) RemoveHouseGroup(ctx context.Context, aspectID, groupID string) error {
	f := m.state.Form
	i := indexOf(f.AspectsOnHouses, aspectID, houseAspectID)
	if i < 0 {
		return notFound("house aspect", aspectID)
	}
	groups := f.AspectsOnHouses[i].Groups
	j := indexOf(groups, groupID, houseGroupID)
	if j < 0 {
		return notFound("house group", groupID)
	}
	f.AspectsOnHouses[i].Groups = append(groups[:j], groups[j+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnHouses)
	return nil
}

// Aspects on planets.

func (m *manager) AddPlanetAspect(ctx context.Context, planet domain.Planet) (string, error) {
	if err := validPlanet(planet); err != nil {
		return "", err
	}
	id := m.newID()
	f := m.state.Form
	f.AspectsOnPlanets = append(f.AspectsOnPlanets, domain.PlanetAspect{ID: id, Planet: planet})
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return id, nil
}

func (m *manager) SetPlanetAspectPlanet(ctx context.Context, aspectID string, planet domain.Planet) error {
	if err := validPlanet(planet); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnPlanets, aspectID, planetAspectID)
	if i < 0 {
		return notFound("planet aspect", aspectID)
	}
	f.AspectsOnPlanets[i].Planet = planet
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return nil
}

func (m *manager) RemovePlanetAspect(ctx context.Context, aspectID string) error {
	f := m.state.Form
	i := indexOf(f.AspectsOnPlanets, aspectID, planetAspectID)
	if i < 0 {
		return notFound("planet aspect", aspectID)
	}
	f.AspectsOnPlanets = append(f.AspectsOnPlanets[:i], f.AspectsOnPlanets[i+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return nil
}

func (m *manager) AddPlanetGroup(ctx context.Context, aspectID string, planets []domain.Planet, degree int) (string, error) {
	if err := validPlanets(planets); err != nil {
		return "", err
	}
	if err := validDegree(degree); err != nil {
		return "", err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnPlanets, aspectID, planetAspectID)
	if i < 0 {
		return "", notFound("planet aspect", aspectID)
	}
	id := m.newID()
	f.AspectsOnPlanets[i].Groups = append(f.AspectsOnPlanets[i].Groups, domain.PlanetGroup{
		ID:      id,
		Planets: append([]domain.Planet(nil), planets...),
		Degree:  degree,
	})
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return id, nil
}

func (m *manager) SetPlanetGroup(ctx context.Context, aspectID, groupID string, planets []domain.Planet, degree int) error {
	if err := validPlanets(planets); err != nil {
		return err
	}
	if err := validDegree(degree); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.AspectsOnPlanets, aspectID, planetAspectID)
	if i < 0 {
		return notFound("planet aspect", aspectID)
	}
	groups := f.AspectsOnPlanets[i].Groups
	j := indexOf(groups, groupID, planetGroupID)
	if j < 0 {
		return notFound("planet group", groupID)
	}
	groups[j].Planets = append([]domain.Planet(nil), planets...)
	groups[j].Degree = degree
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return nil
}

func (m *manager) RemovePlanetGroup(ctx context.Context, aspectID, groupID string) error {
	f := m.state.Form
	i := indexOf(f.AspectsOnPlanets, aspectID, planetAspectID)
	if i < 0 {
		return notFound("planet aspect", aspectID)
	}
	groups := f.AspectsOnPlanets[i].Groups
	j := indexOf(groups, groupID, planetGroupID)
	if j < 0 {
		return notFound("planet group", groupID)
	}
	f.AspectsOnPlanets[i].Groups = append(groups[:j], groups[j+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldAspectsOnPlanets)
	return nil
}

// Removal and placement directions. The items themselves are derived from
// the aspect lists; only their directions are edited here.

func (m *manager) AddDirectionSlot(ctx context.Context, removal string) (string, error) {
	f := m.state.Form
	i := indexOf(f.RemovalItems, removal, removalID)
	if i < 0 {
		return "", notFound("removal item", removal)
	}
	id := m.newID()
	f.RemovalItems[i].Slots = append(f.RemovalItems[i].Slots, domain.DirectionSlot{ID: id})
	m.engine.Notify(ctx, m.state, domain.FieldRemovalItems)
	return id, nil
}

func (m *manager) RemoveDirectionSlot(ctx context.Context, removal, slot string) error {
	f := m.state.Form
	i := indexOf(f.RemovalItems, removal, removalID)
	if i < 0 {
		return notFound("removal item", removal)
	}
	slots := f.RemovalItems[i].Slots
	j := indexOf(slots, slot, slotID)
	if j < 0 {
		return notFound("direction slot", slot)
	}
	f.RemovalItems[i].Slots = append(slots[:j], slots[j+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldRemovalItems)
	return nil
}

func (m *manager) SetRemovalDirection(ctx context.Context, removal, slot string, dir domain.Direction) error {
	if err := validDirection(dir); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.RemovalItems, removal, removalID)
	if i < 0 {
		return notFound("removal item", removal)
	}
	slots := f.RemovalItems[i].Slots
	j := indexOf(slots, slot, slotID)
	if j < 0 {
		return notFound("direction slot", slot)
	}
	slots[j].Direction = dir
	m.engine.Notify(ctx, m.state, domain.FieldRemovalItems)
	return nil
}

func (m *manager) SetPlacementDirection(ctx context.Context, placement string, dir domain.Direction) error {
	if err := validDirection(dir); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.PlacementItems, placement, placementID)
	if i < 0 {
		return notFound("placement item", placement)
	}
	f.PlacementItems[i].Direction = dir
	m.engine.Notify(ctx, m.state, domain.FieldPlacementItems)
	return nil
}

// Relation chains.

func (m *manager) chain(rel Relation) (*[]domain.RelationLink, domain.Field, error) {
	f := m.state.Form
	switch rel {
	case RelationSaturn:
		return &f.SaturnRelationPlanets, domain.FieldSaturnRelationPlanets, nil
	case RelationVenus:
		return &f.VenusRelationPlanets, domain.FieldVenusRelationPlanets, nil
	}
	return nil, "", fmt.Errorf("%w: unknown relation %q", ErrInvalidValue, rel)
}

func validCode(code string) error {
	if code != "" && !domain.ValidPlanetCode(code) {
		return fmt.Errorf("%w: %q is not a planet code", ErrInvalidValue, code)
	}
	return nil
}

func (m *manager) AddRelationLink(ctx context.Context, rel Relation, code string, benefic bool) (string, error) {
	links, field, err := m.chain(rel)
	if err != nil {
		return "", err
	}
	if err := validCode(code); err != nil {
		return "", err
	}
	id := m.newID()
	*links = append(*links, domain.RelationLink{ID: id, Code: code, Benefic: benefic})
	m.engine.Notify(ctx, m.state, field)
	return id, nil
}

func (m *manager) SetRelationLink(ctx context.Context, rel Relation, link, code string, benefic bool) error {
	links, field, err := m.chain(rel)
	if err != nil {
		return err
	}
	if err := validCode(code); err != nil {
		return err
	}
	i := indexOf(*links, link, linkID)
	if i < 0 {
		return notFound("relation link", link)
	}
	(*links)[i].Code = code
	(*links)[i].Benefic = benefic
	m.engine.Notify(ctx, m.state, field)
	return nil
}

func (m *manager) RemoveRelationLink(ctx context.Context, rel Relation, link string) error {
	links, field, err := m.chain(rel)
	if err != nil {
		return err
	}
	i := indexOf(*links, link, linkID)
	if i < 0 {
		return notFound("relation link", link)
	}
	*links = append((*links)[:i], (*links)[i+1:]...)
	m.engine.Notify(ctx, m.state, field)
	return nil
}

// House maps.

// AddHouseMap appends a floor plan with every canonical room unassigned. An
// empty label becomes "Map N".
func (m *manager) AddHouseMap(ctx context.Context, label string, image *domain.Attachment) (string, error) {
	f := m.state.Form
	if label == "" {
		label = fmt.Sprintf("Map %d", len(f.HouseMaps)+1)
	}
	id := m.newID()
	f.HouseMaps = append(f.HouseMaps, domain.HouseMap{
		ID:    id,
		Label: label,
		Image: image.Clone(),
		Rooms: domain.DefaultRooms(),
	})
	m.engine.Notify(ctx, m.state, domain.FieldHouseMaps)
	return id, nil
}

func (m *manager) RemoveHouseMap(ctx context.Context, mapID string) error {
	f := m.state.Form
	i := indexOf(f.HouseMaps, mapID, houseMapID)
	if i < 0 {
		return notFound("house map", mapID)
	}
	f.HouseMaps = append(f.HouseMaps[:i], f.HouseMaps[i+1:]...)
	m.engine.Notify(ctx, m.state, domain.FieldHouseMaps)
	return nil
}

func (m *manager) SetRoomDirection(ctx context.Context, mapID, room string, dir domain.Direction) error {
	if err := validDirection(dir); err != nil {
		return err
	}
	f := m.state.Form
	i := indexOf(f.HouseMaps, mapID, houseMapID)
	if i < 0 {
		return notFound("house map", mapID)
	}
	rooms := f.HouseMaps[i].Rooms
	for j := range rooms {
		if rooms[j].Room == room {
			rooms[j].Direction = dir
			m.engine.Notify(ctx, m.state, domain.FieldHouseMaps)
			return nil
		}
	}
	return notFound("room", room)
}
