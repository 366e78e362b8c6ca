package derive

import (
	"fmt"
	"strings"
	"testing"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemovalSlots(t *testing.T) {
	tests := []struct {
		name     string
		houses   []domain.HouseGroup
		planets  []domain.PlanetGroup
		expected int
	}{
		{
			name: "two houses at two degrees plus a planet aspect",
			houses: []domain.HouseGroup{
				{Houses: []int{4}, Degree: 90},
				{Houses: []int{7}, Degree: 180},
			},
			planets:  []domain.PlanetGroup{{Planets: []domain.Planet{domain.PlanetMoon}, Degree: 90}},
			expected: 3,
		},
		{
			name:     "two houses without planet aspect",
			houses:   []domain.HouseGroup{{Houses: []int{4, 7}, Degree: 90}},
			expected: 1,
		},
		{
			name:     "one house and a planet",
			houses:   []domain.HouseGroup{{Houses: []int{4}, Degree: 90}},
			planets:  []domain.PlanetGroup{{Planets: []domain.Planet{domain.PlanetMoon}, Degree: 180}},
			expected: 1,
		},
		{
			name: "planets only at two degrees collapses",
			planets: []domain.PlanetGroup{
				{Planets: []domain.Planet{domain.PlanetMoon}, Degree: 90},
				{Planets: []domain.Planet{domain.PlanetVenus}, Degree: 180},
			},
			expected: 1,
		},
		{
			name: "120 degree houses do not count",
			houses: []domain.HouseGroup{
				{Houses: []int{4}, Degree: 120},
				{Houses: []int{7}, Degree: 90},
			},
			planets:  []domain.PlanetGroup{{Planets: []domain.Planet{domain.PlanetMoon}, Degree: 90}},
			expected: 1,
		},
		{
			name: "120 degree planet aspect does not count",
			houses: []domain.HouseGroup{
				{Houses: []int{4}, Degree: 90},
				{Houses: []int{7}, Degree: 180},
			},
			planets:  []domain.PlanetGroup{{Planets: []domain.Planet{domain.PlanetMoon}, Degree: 120}},
			expected: 1,
		},
		{
			name:     "nothing",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemovalSlots(tt.houses, tt.planets))
		})
	}
}

func TestRemovalPlacement_ThreeSlotPolicy(t *testing.T) {
	f := newFixture()
	f.state.Form.AspectsOnHouses = []domain.HouseAspect{{
		ID:     "h1",
		Planet: domain.PlanetSaturn,
		Groups: []domain.HouseGroup{
			{ID: "g1", Houses: []int{2}, Degree: 90},
			{ID: "g2", Houses: []int{11}, Degree: 180},
		},
	}}
	f.state.Form.AspectsOnPlanets = []domain.PlanetAspect{{
		ID:     "p1",
		Planet: domain.PlanetSaturn,
		Groups: []domain.PlanetGroup{{ID: "g3", Planets: []domain.Planet{domain.PlanetSun}, Degree: 90}},
	}}

	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)

	require.Len(t, f.state.Form.RemovalItems, 1)
	assert.Equal(t, domain.PlanetSaturn, f.state.Form.RemovalItems[0].Planet)
	assert.Len(t, f.state.Form.RemovalItems[0].Slots, 3)
	require.Len(t, f.state.Form.PlacementItems, 1)
	assert.Equal(t, domain.PlanetSaturn, f.state.Form.PlacementItems[0].Planet)
}

func TestRemovalPlacement_UnionAndPreservation(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.AspectsOnHouses = []domain.HouseAspect{
		{ID: "h1", Planet: domain.PlanetMars, Groups: []domain.HouseGroup{{ID: "g1", Houses: []int{7}, Degree: 90}}},
	}
	form.AspectsOnPlanets = []domain.PlanetAspect{
		{ID: "p1", Planet: domain.PlanetJupiter, Groups: []domain.PlanetGroup{{ID: "g2", Planets: []domain.Planet{domain.PlanetMoon}, Degree: 120}}},
		{ID: "p2", Planet: domain.PlanetMars},
	}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnPlanets)

	require.Len(t, form.RemovalItems, 2)
	assert.Equal(t, domain.PlanetMars, form.RemovalItems[0].Planet)
	assert.Equal(t, domain.PlanetJupiter, form.RemovalItems[1].Planet)

	// Practitioner picks directions.
	form.RemovalItems[0].Slots[0].Direction = domain.DirectionSouth
	form.PlacementItems[1].Direction = domain.DirectionNorthEast
	marsID := form.RemovalItems[0].ID
	jupiterPlacement := form.PlacementItems[1]

	// Mars leaves the house list but stays through the planet list; Venus joins.
	form.AspectsOnHouses = []domain.HouseAspect{
		{ID: "h2", Planet: domain.PlanetVenus, Groups: []domain.HouseGroup{{ID: "g3", Houses: []int{1}, Degree: 180}}},
	}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)

	planets := make([]domain.Planet, 0, len(form.RemovalItems))
	for _, r := range form.RemovalItems {
		planets = append(planets, r.Planet)
	}
	assert.Equal(t, []domain.Planet{domain.PlanetVenus, domain.PlanetJupiter, domain.PlanetMars}, planets)

	mars := form.RemovalItems[2]
	assert.Equal(t, marsID, mars.ID)
	assert.Equal(t, domain.DirectionSouth, mars.Slots[0].Direction)

	if diff := cmp.Diff(jupiterPlacement, form.PlacementItems[1]); diff != "" {
		t.Errorf("jupiter placement changed (-want +got):\n%s", diff)
	}
}

func TestRemovalPlacement_ShrinkKeepsChosenDirections(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.AspectsOnHouses = []domain.HouseAspect{{
		ID: "h1", Planet: domain.PlanetSaturn,
		Groups: []domain.HouseGroup{{ID: "g1", Houses: []int{2, 11}, Degree: 90}},
	}}
	form.AspectsOnPlanets = []domain.PlanetAspect{{
		ID: "p1", Planet: domain.PlanetSaturn,
		Groups: []domain.PlanetGroup{{ID: "g2", Planets: []domain.Planet{domain.PlanetSun}, Degree: 180}},
	}}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnPlanets)
	require.Len(t, form.RemovalItems[0].Slots, 3)

	form.RemovalItems[0].Slots[2].Direction = domain.DirectionWest

	form.AspectsOnPlanets = nil
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnPlanets)

	slots := form.RemovalItems[0].Slots
	require.Len(t, slots, 1)
	assert.Equal(t, domain.DirectionWest, slots[0].Direction)
}

func TestRemovalPlacement_HandAddedSlotsSurviveOtherPlanets(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.AspectsOnHouses = []domain.HouseAspect{{
		ID: "h1", Planet: domain.PlanetSaturn,
		Groups: []domain.HouseGroup{{ID: "g1", Houses: []int{10}, Degree: 90}},
	}}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)
	require.Len(t, form.RemovalItems[0].Slots, 1)

	// A second direction added by hand.
	form.RemovalItems[0].Slots = append(form.RemovalItems[0].Slots,
		domain.DirectionSlot{ID: "manual", Direction: domain.DirectionEast})

	// Mars joins; Saturn's slot count is unchanged.
	form.AspectsOnHouses = append(form.AspectsOnHouses, domain.HouseAspect{
		ID: "h2", Planet: domain.PlanetMars,
		Groups: []domain.HouseGroup{{ID: "g2", Houses: []int{4}, Degree: 90}},
	})
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)

	require.Len(t, form.RemovalItems, 2)
	saturn := form.RemovalItems[0]
	require.Len(t, saturn.Slots, 2)
	assert.Equal(t, "manual", saturn.Slots[1].ID)
	assert.Equal(t, domain.DirectionEast, saturn.Slots[1].Direction)

	// Saturn now needs three slots: the hand-picked direction is kept.
	form.AspectsOnHouses[0].Groups[0].Houses = []int{10, 11}
	form.AspectsOnPlanets = []domain.PlanetAspect{{
		ID: "p1", Planet: domain.PlanetSaturn,
		Groups: []domain.PlanetGroup{{ID: "g3", Planets: []domain.Planet{domain.PlanetSun}, Degree: 180}},
	}}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnPlanets)

	saturn = form.RemovalItems[0]
	require.Len(t, saturn.Slots, 3)
	assert.Equal(t, 3, saturn.SlotPolicy)
	assert.Equal(t, []domain.Direction{domain.DirectionEast}, saturn.Directions())
}

func TestResizeSlots(t *testing.T) {
	ids := 0
	newID := func() string {
		ids++
		return fmt.Sprintf("new-%d", ids)
	}
	prev := []domain.DirectionSlot{
		{ID: "a"},
		{ID: "b", Direction: domain.DirectionNorth},
		{ID: "c", Direction: domain.DirectionWest},
	}

	tests := []struct {
		name     string
		n        int
		expected []domain.DirectionSlot
	}{
		{
			name:     "unchanged",
			n:        3,
			expected: prev,
		},
		{
			name:     "shrink prefers chosen directions",
			n:        1,
			expected: []domain.DirectionSlot{{ID: "b", Direction: domain.DirectionNorth}},
		},
		{
			name: "shrink keeps order",
			n:    2,
			expected: []domain.DirectionSlot{
				{ID: "b", Direction: domain.DirectionNorth},
				{ID: "c", Direction: domain.DirectionWest},
			},
		},
		{
			name: "grow pads with empty slots",
			n:    4,
			expected: []domain.DirectionSlot{
				{ID: "a"},
				{ID: "b", Direction: domain.DirectionNorth},
				{ID: "c", Direction: domain.DirectionWest},
				{ID: "new-1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids = 0
			got := resizeSlots(prev, tt.n, newID)
			require.Len(t, got, tt.n)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColorsToUse_RoundTrip(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.PlacementItems = []domain.PlacementItem{
		{ID: "a", Planet: domain.PlanetSun, Direction: domain.DirectionEast},
		{ID: "b", Planet: domain.PlanetVenus},
	}
	f.engine.Notify(t.Context(), f.state, domain.FieldPlacementItems)

	assert.Equal(t,
		"• Sun in East: Use Saffron, Golden, Red on Chest (Left side) (Broach)",
		form.ColorObjectsToUse)

	form.PlacementItems[1].Direction = domain.DirectionSouthEast
	f.engine.Notify(t.Context(), f.state, domain.FieldPlacementItems)
	lines := strings.Split(form.ColorObjectsToUse, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "• Venus in South-East:"))

	form.PlacementItems[0].Direction = ""
	f.engine.Notify(t.Context(), f.state, domain.FieldPlacementItems)
	assert.NotContains(t, form.ColorObjectsToUse, "• Sun in East:")
	assert.True(t, strings.HasPrefix(form.ColorObjectsToUse, "• Venus in South-East:"))
}

func TestColorsToAvoid_MergesDirections(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.RemovalItems = []domain.RemovalItem{{
		ID:     "r",
		Planet: domain.PlanetRahu,
		Slots: []domain.DirectionSlot{
			{ID: "1", Direction: domain.DirectionWest},
			{ID: "2"},
			{ID: "3", Direction: domain.DirectionWestSouthWest},
		},
	}}
	f.engine.Notify(t.Context(), f.state, domain.FieldRemovalItems)

	assert.Equal(t,
		"• Rahu from West and West-South-West: Avoid Smoky Blue, Charcoal, Muddy Brown on "+
			"Knees / lower legs (Trousers, Lowers), Ankles (Anklet)",
		form.ColorObjectsNotToUse)
}

func TestAspectChangeCascadesToColours(t *testing.T) {
	f := newFixture()
	form := f.state.Form
	form.AspectsOnHouses = []domain.HouseAspect{
		{ID: "h1", Planet: domain.PlanetMoon, Groups: []domain.HouseGroup{{ID: "g", Houses: []int{4}, Degree: 90}}},
	}
	f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)
	form.PlacementItems[0].Direction = domain.DirectionNorthWest
	f.engine.Notify(t.Context(), f.state, domain.FieldPlacementItems)
	require.NotEmpty(t, form.ColorObjectsToUse)

	form.AspectsOnHouses = nil
	written := f.engine.Notify(t.Context(), f.state, domain.FieldAspectsOnHouses)

	assert.Empty(t, form.RemovalItems)
	assert.Empty(t, form.PlacementItems)
	assert.Empty(t, form.ColorObjectsToUse)
	assert.Contains(t, written, domain.FieldColorObjectsToUse)
}
