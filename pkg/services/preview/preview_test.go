package preview

import (
	"testing"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() *domain.ReportFormData {
	f := &domain.ReportFormData{ReportType: domain.ReportTypeDOCX}
	f.Client = domain.ClientInfo{Name: "Asha Verma", DateOfBirth: "1990-05-15", TimeOfBirth: "14:30", PlaceOfBirth: "Jaipur"}
	f.Mahadasha = domain.Dasha{
		Planet: domain.PlanetSaturn, Source: "6, 8",
		NL: domain.PlanetMoon, NLSource: "4",
		AdditionalHouse: "11",
		SL: domain.PlanetVenus,
	}
	f.Pratyantardasha = domain.Dasha{
		Planet:     domain.PlanetMars,
		PeriodFrom: "2025-01-05",
		PeriodTo:   "2025-03-20",
	}
	f.AspectsOnHouses = []domain.HouseAspect{{
		ID: "h1", Planet: domain.PlanetMars,
		Groups: []domain.HouseGroup{
			{ID: "g1", Houses: []int{7, 8}, Degree: 90},
			{ID: "g2", Houses: []int{4}, Degree: 180},
		},
	}}
	f.AspectsOnPlanets = []domain.PlanetAspect{{
		ID: "p1", Planet: domain.PlanetJupiter,
		Groups: []domain.PlanetGroup{{ID: "g3", Planets: []domain.Planet{domain.PlanetSun, domain.PlanetMoon, domain.PlanetRahu}, Degree: 120}},
	}}
	f.RemovalItems = []domain.RemovalItem{
		{ID: "r1", Planet: domain.PlanetMars, Slots: []domain.DirectionSlot{{ID: "s1", Direction: domain.DirectionSouth}, {ID: "s2"}, {ID: "s3", Direction: domain.DirectionWest}}},
		{ID: "r2", Planet: domain.PlanetJupiter, Slots: []domain.DirectionSlot{{ID: "s4"}}},
	}
	f.PlacementItems = []domain.PlacementItem{
		{ID: "p1", Planet: domain.PlanetMars, Direction: domain.DirectionSouthEast},
		{ID: "p2", Planet: domain.PlanetJupiter},
	}
	rooms := domain.DefaultRooms()
	rooms[4].Direction = domain.DirectionSouthEast
	f.HouseMaps = []domain.HouseMap{{ID: "m1", Label: "Ground floor", Rooms: rooms}}
	f.Gemstones = "Saturn - Blue Sapphire (नीलम (Neelam))"
	return f
}

func TestDashaChain(t *testing.T) {
	tests := []struct {
		name       string
		dasha      domain.Dasha
		withPeriod bool
		expected   string
	}{
		{
			name:     "full chain",
			dasha:    domain.Dasha{Planet: "Saturn", Source: "6, 8", NL: "Moon", NLSource: "4", AdditionalHouse: "11", SL: "Venus", SLSource: "2"},
			expected: "Saturn(6, 8), Moon(4), (11), Venus(2)",
		},
		{
			name:     "planets without sources",
			dasha:    domain.Dasha{Planet: "Rahu", SL: "Ketu"},
			expected: "Rahu, Ketu",
		},
		{
			name:     "source without planet ignored",
			dasha:    domain.Dasha{Source: "8", NLSource: "12"},
			expected: "",
		},
		{
			name:     "no star marker",
			dasha:    domain.Dasha{Planet: "Mercury", NoStar: true},
			expected: "Mercury, No Star",
		},
		{
			name:       "period",
			dasha:      domain.Dasha{Planet: "Mars", PeriodFrom: "2025-01-05", PeriodTo: "2025-03-20"},
			withPeriod: true,
			expected:   "Mars, Period: Jan 5, 2025 - Mar 20, 2025",
		},
		{
			name:       "period needs both dates",
			dasha:      domain.Dasha{Planet: "Mars", PeriodFrom: "2025-01-05"},
			withPeriod: true,
			expected:   "Mars",
		},
		{
			name:     "period ignored outside pratyantardasha",
			dasha:    domain.Dasha{Planet: "Mars", PeriodFrom: "2025-01-05", PeriodTo: "2025-03-20"},
			expected: "Mars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DashaChain(&tt.dasha, tt.withPeriod))
		})
	}
}

func TestBuildPreview_SynthesizedText(t *testing.T) {
	at := time.Date(2025, time.February, 3, 16, 5, 0, 0, time.UTC)
	p := BuildPreview(sampleForm(), at)

	assert.Equal(t, "DESTINY REPORT", p.Title)
	assert.Equal(t, "Generated on: February 3, 2025 at 4:05 PM", p.Timestamp())
	assert.Equal(t, []string{"Mars hits House 7 and 8 at 90°, House 4 at 180°"}, p.HouseAspects)
	assert.Equal(t, []string{"Jupiter hits Planet Sun, Moon and Rahu at 120°"}, p.PlanetAspects)
	assert.Equal(t, []string{"Remove Mars from South and West"}, p.Removals)
	assert.Equal(t, []string{"Place Mars in South-East"}, p.Placements)
	assert.Equal(t, []HouseMapSummary{{ID: "m1", Label: "Ground floor", Lines: []string{"Kitchen: South-East"}}}, p.HouseMaps)
	assert.Equal(t, "Saturn(6, 8), Moon(4), (11), Venus", p.DashaChains[domain.DashaMaha])
	assert.Equal(t, "", p.DashaChains[domain.DashaAntar])
	assert.Equal(t, "Mars, Period: Jan 5, 2025 - Mar 20, 2025", p.DashaChains[domain.DashaPratyantar])
}

func TestBuildPreview_Sections(t *testing.T) {
	p := BuildPreview(sampleForm(), time.Now())

	titles := make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		titles = append(titles, s.Title)
	}
	// GUIDELINES and BHRIGUNANDA NADI have nothing to show.
	assert.Equal(t, []string{"ABOUT THE CLIENT", "VASTU ANALYSIS", "ASTROLOGY", "ASTRO VASTU SOLUTION"}, titles)

	expected := []Entry{
		{Label: "Mahadasha", Value: "Saturn(6, 8), Moon(4), (11), Venus"},
		{Label: "Pratyantar Dasha", Value: "Mars, Period: Jan 5, 2025 - Mar 20, 2025"},
		{Label: "Gemstones", Value: "Saturn - Blue Sapphire (नीलम (Neelam))"},
	}
	if diff := cmp.Diff(expected, p.Sections[2].Entries); diff != "" {
		t.Errorf("astrology entries mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, Entry{Label: "Ground floor", Value: "Kitchen: South-East"}, p.Sections[1].Entries[0])
	assert.Equal(t, "Aspects on Houses", p.Sections[3].Entries[0].Label)
}

func TestBuildPreview_IsFrozen(t *testing.T) {
	form := sampleForm()
	p := BuildPreview(form, time.Now())

	form.Client.Name = "Someone else"
	form.AspectsOnHouses[0].Groups[0].Houses[0] = 1
	form.HouseMaps[0].Rooms[4].Direction = domain.DirectionNorth

	require.NotSame(t, form, p.Form)
	assert.Equal(t, "Asha Verma", p.Form.Client.Name)
	assert.Equal(t, 7, p.Form.AspectsOnHouses[0].Groups[0].Houses[0])
	assert.Equal(t, domain.DirectionSouthEast, p.Form.HouseMaps[0].Rooms[4].Direction)
	assert.Equal(t, "Asha Verma", p.Sections[0].Entries[0].Value)
}
