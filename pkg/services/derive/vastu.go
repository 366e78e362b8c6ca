package derive

import (
	"fmt"
	"strings"

	"github.com/de-tools/destiny-report/pkg/lookup"
	"github.com/de-tools/destiny-report/pkg/models/domain"
)

const colorsPerBullet = 3

// RemovalSlots is the number of removal directions a planet needs given its
// aspects. 120 degree aspects are benign and ignored here.
//
//   - more than one house and at least one planet aspect: 3 slots
//   - planets only, at two or more distinct degrees: collapsed to 1 slot
//   - anything else: 1 slot
func RemovalSlots(houses []domain.HouseGroup, planets []domain.PlanetGroup) int {
	houseSet := make(map[int]bool)
	for _, g := range houses {
		if g.Degree == domain.Degree120 {
			continue
		}
		for _, h := range g.Houses {
			houseSet[h] = true
		}
	}

	degrees := make(map[int]bool)
	for _, g := range planets {
		if g.Degree == domain.Degree120 || len(g.Planets) == 0 {
			continue
		}
		degrees[g.Degree] = true
	}

	if len(houseSet) > 1 && len(degrees) > 0 {
		return 3
	}
	// Planets only at several degrees collapse to a single slot, which is
	// the same count as every remaining case.
	return 1
}

// aspectUnion collects the planets of both aspect lists, in first-seen
// order with house aspects first.
func aspectUnion(f *domain.ReportFormData) (
	order []domain.Planet,
	houses map[domain.Planet][]domain.HouseGroup,
	planets map[domain.Planet][]domain.PlanetGroup,
) {
	houses = make(map[domain.Planet][]domain.HouseGroup)
	planets = make(map[domain.Planet][]domain.PlanetGroup)
	seen := make(map[domain.Planet]bool)
	add := func(p domain.Planet) {
		if !seen[p] {
			seen[p] = true
			order = append(order, p)
		}
	}

	for _, a := range f.AspectsOnHouses {
		if a.Planet == "" {
			continue
		}
		add(a.Planet)
		houses[a.Planet] = append(houses[a.Planet], a.Groups...)
	}
	for _, a := range f.AspectsOnPlanets {
		if a.Planet == "" {
			continue
		}
		add(a.Planet)
		planets[a.Planet] = append(planets[a.Planet], a.Groups...)
	}
	return order, houses, planets
}

// deriveRemovalAndPlacement rebuilds both lists from the aspect lists. Items
// for planets that are still present keep their ids and chosen directions.
func deriveRemovalAndPlacement(w *Writer) {
	f := w.Form()
	order, houses, planets := aspectUnion(f)

	prevRemoval := make(map[domain.Planet]domain.RemovalItem, len(f.RemovalItems))
	for _, r := range f.RemovalItems {
		prevRemoval[r.Planet] = r
	}
	prevPlacement := make(map[domain.Planet]domain.PlacementItem, len(f.PlacementItems))
	for _, p := range f.PlacementItems {
		prevPlacement[p.Planet] = p
	}

	removal := make([]domain.RemovalItem, 0, len(order))
	placement := make([]domain.PlacementItem, 0, len(order))
	for _, planet := range order {
		n := RemovalSlots(houses[planet], planets[planet])

		item, ok := prevRemoval[planet]
		if !ok {
			item = domain.RemovalItem{ID: w.NewID(), Planet: planet}
		}
		if !ok || item.SlotPolicy != n {
			item.Slots = resizeSlots(item.Slots, n, w.NewID)
			item.SlotPolicy = n
		}
		removal = append(removal, item)

		pl, ok := prevPlacement[planet]
		if !ok {
			pl = domain.PlacementItem{ID: w.NewID(), Planet: planet}
		}
		placement = append(placement, pl)
	}

	if !sameRemoval(f.RemovalItems, removal) {
		f.RemovalItems = removal
		w.Touch(domain.FieldRemovalItems)
	}
	if !samePlacement(f.PlacementItems, placement) {
		f.PlacementItems = placement
		w.Touch(domain.FieldPlacementItems)
	}
}

// resizeSlots returns exactly n slots. Slots that already carry a direction
// are kept before empty ones, in their original order, and the rest is
// padded with fresh empty slots.
func resizeSlots(prev []domain.DirectionSlot, n int, newID func() string) []domain.DirectionSlot {
	keep := make([]bool, len(prev))
	kept := 0
	for i, s := range prev {
		if kept < n && s.Direction != "" {
			keep[i] = true
			kept++
		}
	}
	for i := range prev {
		if kept < n && !keep[i] {
			keep[i] = true
			kept++
		}
	}

	slots := make([]domain.DirectionSlot, 0, n)
	for i, s := range prev {
		if keep[i] {
			slots = append(slots, s)
		}
	}
	for len(slots) < n {
		slots = append(slots, domain.DirectionSlot{ID: newID()})
	}
	return slots
}

func sameRemoval(a, b []domain.RemovalItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Planet != b[i].Planet || a[i].SlotPolicy != b[i].SlotPolicy ||
			len(a[i].Slots) != len(b[i].Slots) {
			return false
		}
		for j := range a[i].Slots {
			if a[i].Slots[j] != b[i].Slots[j] {
				return false
			}
		}
	}
	return true
}

func samePlacement(a, b []domain.PlacementItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// describeZones renders "Neck (Necklace), Waist (Belt, Waistband, Kamarbandh)".
func describeZones(zones []lookup.BodyZone) string {
	parts := make([]string, 0, len(zones))
	for _, z := range zones {
		if len(z.Accessories) == 0 {
			parts = append(parts, z.BodyPart)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", z.BodyPart, strings.Join(z.Accessories, ", ")))
	}
	return strings.Join(parts, ", ")
}

func colorBullet(head, verb string, planet domain.Planet, zones []lookup.BodyZone) string {
	line := fmt.Sprintf("• %s: %s %s", head, verb, strings.Join(lookup.ColorsFor(planet, colorsPerBullet), ", "))
	if desc := describeZones(zones); desc != "" {
		line += " on " + desc
	}
	return line
}

// colorsToUse emits one bullet per complete placement pair.
func colorsToUse(w *Writer) {
	var lines []string
	for _, p := range w.Form().PlacementItems {
		if p.Planet == "" || p.Direction == "" {
			continue
		}
		head := fmt.Sprintf("%s in %s", p.Planet, p.Direction)
		lines = append(lines, colorBullet(head, "Use", p.Planet, lookup.BodyZonesForDirection(p.Direction)))
	}
	w.Set(domain.FieldColorObjectsToUse, strings.Join(lines, "\n"))
}

// colorsToAvoid emits one bullet per removal item with at least one
// direction, merging the body zones of all its directions.
func colorsToAvoid(w *Writer) {
	var lines []string
	for _, r := range w.Form().RemovalItems {
		dirs := r.Directions()
		if r.Planet == "" || len(dirs) == 0 {
			continue
		}

		var zones []lookup.BodyZone
		seen := make(map[string]bool)
		names := make([]string, 0, len(dirs))
		for _, d := range dirs {
			names = append(names, d.String())
			for _, z := range lookup.BodyZonesForDirection(d) {
				if !seen[z.Sign] {
					seen[z.Sign] = true
					zones = append(zones, z)
				}
			}
		}

		head := fmt.Sprintf("%s from %s", r.Planet, strings.Join(names, " and "))
		lines = append(lines, colorBullet(head, "Avoid", r.Planet, zones))
	}
	w.Set(domain.FieldColorObjectsNotToUse, strings.Join(lines, "\n"))
}
