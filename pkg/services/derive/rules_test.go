package derive

import (
	"strings"
	"testing"

	"github.com/de-tools/destiny-report/pkg/lookup"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonations_DedupeByPlanet(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldMahadashaPlanet, "Mars")
	f.set(domain.FieldMahadashaSource, "18-20")
	f.set(domain.FieldAntardashaPlanet, "Mars")
	f.set(domain.FieldAntardashaSource, "2020-28")

	todo := f.state.Form.DonationsToDo
	assert.Equal(t, 1, strings.Count(todo, "Mars (Tuesday): "))
	assert.Equal(t,
		"Mars (Tuesday): Red lentils (masoor dal), Red cloth, Copper/red coral, Jaggery, Weapons/iron tools",
		todo)
	assert.Equal(t, "Mars: Soldiers, laborers, temple caretakers", f.state.Form.DonationsToWhom)
}

func TestDonations_Policy(t *testing.T) {
	tests := []struct {
		name     string
		form     func(*domain.ReportFormData)
		expected string
	}{
		{
			name: "substring match not numeric",
			form: func(r *domain.ReportFormData) {
				r.Mahadasha.Planet = domain.PlanetSun
				r.Mahadasha.Source = "80"
				r.Antardasha.NL = domain.PlanetMoon
				r.Antardasha.NLSource = "house 8"
			},
			expected: "Sun: Brahmins, the poor, or temples\nMoon: Women, mothers, or temple priests",
		},
		{
			name: "source without 8 ignored",
			form: func(r *domain.ReportFormData) {
				r.Mahadasha.Planet = domain.PlanetSun
				r.Mahadasha.Source = "1, 5, 9"
			},
			expected: "",
		},
		{
			name: "source without planet ignored",
			form: func(r *domain.ReportFormData) {
				r.Pratyantardasha.SLSource = "8"
			},
			expected: "",
		},
		{
			name: "order follows dasha slots",
			form: func(r *domain.ReportFormData) {
				r.Pratyantardasha.SL = domain.PlanetKetu
				r.Pratyantardasha.SLSource = "8"
				r.Mahadasha.NL = domain.PlanetSaturn
				r.Mahadasha.NLSource = "8, 12"
			},
			expected: "Saturn: Poor, handicapped, old people, sweepers\nKetu: Temples, stray animals, poor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.form(f.state.Form)
			f.engine.Notify(t.Context(), f.state, domain.FieldMahadashaSource)
			assert.Equal(t, tt.expected, f.state.Form.DonationsToWhom)
		})
	}
}

func TestDonations_ClearedWhenTriggerRemoved(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldMahadashaPlanet, "Venus")
	f.set(domain.FieldMahadashaSource, "8")
	require.NotEmpty(t, f.state.Form.DonationsToDo)

	f.set(domain.FieldMahadashaSource, "6")
	assert.Empty(t, f.state.Form.DonationsToDo)
	assert.Empty(t, f.state.Form.DonationsToWhom)
}

func TestGemstoneAndMantra(t *testing.T) {
	f := newFixture()

	f.set(domain.FieldGemstonePlanet, "Jupiter")
	assert.Equal(t, "Jupiter - Yellow Sapphire (पुखराज (Pukhraj))", f.state.Form.Gemstones)

	f.set(domain.FieldMantraPlanet, "Ketu")
	assert.Equal(t, "Ketu - Lord Ganesha: Om Stram Streem Stroum Sah Ketave Namah", f.state.Form.Mantra)

	f.set(domain.FieldGemstonePlanet, "")
	f.set(domain.FieldMantraPlanet, "")
	assert.Empty(t, f.state.Form.Gemstones)
	assert.Empty(t, f.state.Form.Mantra)
}

func TestNakshatraFill(t *testing.T) {
	for _, name := range lookup.NakshatraNames {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.set(domain.FieldBirthNakshatra, name)

			expected, _ := lookup.NakshatraByName(name)
			assert.Equal(t, expected.Symbols(), f.state.Form.Symbols)
			assert.NotEmpty(t, f.state.Form.Symbols.Avoid)
		})
	}
}

func TestNakshatraFill_UnknownNameKeepsPriorValues(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldBirthNakshatra, "Rohini")
	before := f.state.Form.Symbols

	for _, typo := range []string{"rohini", "Rohini ", "Abhijit"} {
		f.set(domain.FieldBirthNakshatra, typo)
		assert.Equal(t, before, f.state.Form.Symbols, typo)
	}
}

func TestSourceCarry(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldMahadashaPlanet, "Saturn")
	f.set(domain.FieldMahadashaSource, "6, 8")

	f.set(domain.FieldPratyantardashaNL, "Saturn")
	assert.Equal(t, "6, 8", f.state.Form.Pratyantardasha.NLSource)

	t.Run("does not overwrite a typed source", func(t *testing.T) {
		f.set(domain.FieldAntardashaSource, "2")
		f.set(domain.FieldAntardashaPlanet, "Saturn")
		assert.Equal(t, "2", f.state.Form.Antardasha.Source)
	})

	t.Run("carried source feeds donations", func(t *testing.T) {
		assert.Contains(t, f.state.Form.DonationsToDo, "Saturn (Saturday): ")
	})

	t.Run("unknown planet carries nothing", func(t *testing.T) {
		f.set(domain.FieldPratyantardashaSL, "Mercury")
		assert.Empty(t, f.state.Form.Pratyantardasha.SLSource)
	})
}

func TestInkColor(t *testing.T) {
	tests := []struct {
		direction string
		expected  string
	}{
		{direction: "East", expected: "Saffron or Golden"},
		{direction: "North-East", expected: "Yellow or Light Yellow"},
		{direction: "North", expected: "Green or Pale Green"},
		{direction: "Center", expected: ""},
		{direction: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.direction, func(t *testing.T) {
			f := newFixture()
			f.state.Form.WishListInkColor = "stale"
			f.set(domain.FieldLaughingBuddhaDirection, tt.direction)
			assert.Equal(t, tt.expected, f.state.Form.WishListInkColor)
		})
	}
}

func TestBooks(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldMahadashaPlanet, "Venus")
	f.set(domain.FieldAntardashaPlanet, "Venus")

	venus := lookup.BooksFor(domain.PlanetVenus, 3)
	expected := "Venus:\n• " + strings.Join(venus, "\n• ")
	assert.Equal(t, expected, f.state.Form.ImportantBooks)

	f.set(domain.FieldAntardashaPlanet, "Sun")
	sun := lookup.BooksFor(domain.PlanetSun, 3)
	expected += "\n\nSun:\n• " + strings.Join(sun, "\n• ")
	assert.Equal(t, expected, f.state.Form.ImportantBooks)
}

func TestGiftsAreIndependent(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldGiftsToGivePlanet, "Mercury")

	assert.True(t, strings.HasPrefix(f.state.Form.GiftsToGive, "• Books or stationery\n"))
	assert.Empty(t, f.state.Form.GiftsToReceive)

	f.set(domain.FieldGiftsToReceivePlanet, "Moon")
	assert.Equal(t, len(lookup.GiftsFor(domain.PlanetMoon)), strings.Count(f.state.Form.GiftsToReceive, "• "))
	assert.True(t, strings.HasPrefix(f.state.Form.GiftsToGive, "• Books or stationery\n"))
}

func TestMindsets(t *testing.T) {
	f := newFixture()
	f.set(domain.FieldSaturnFollowing, "Mars")
	f.set(domain.FieldVenusFollowing, "Jupiter")

	professional, _ := lookup.ProfessionalMindset(domain.PlanetMars)
	financial, _ := lookup.FinancialMindset(domain.PlanetJupiter)
	assert.Equal(t, professional, f.state.Form.ProfessionalMindset)
	assert.Equal(t, financial, f.state.Form.FinancialMindset)
}

func TestFormatRelation(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		links    []domain.RelationLink
		expected string
	}{
		{
			name:   "codes and benefic tag",
			prefix: "SA",
			links: []domain.RelationLink{
				{ID: "1", Code: "SU"},
				{ID: "2", Code: "MA", Benefic: true},
			},
			expected: "SA-SU-MA(b)",
		},
		{
			name:     "all empty",
			prefix:   "SA",
			links:    []domain.RelationLink{{ID: "1"}, {ID: "2", Benefic: true}},
			expected: "",
		},
		{
			name:     "no links",
			prefix:   "VE",
			expected: "",
		},
		{
			name:   "gaps skipped in order",
			prefix: "VE",
			links: []domain.RelationLink{
				{ID: "1", Code: "JU", Benefic: true},
				{ID: "2"},
				{ID: "3", Code: "KE"},
			},
			expected: "VE-JU(b)-KE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRelation(tt.prefix, tt.links))
			assert.Equal(t, tt.expected, FormatRelation(tt.prefix, tt.links))
		})
	}
}

func TestRelationRule(t *testing.T) {
	f := newFixture()
	f.state.Form.SaturnRelationPlanets = []domain.RelationLink{{ID: "a", Code: "SU"}, {ID: "b", Code: "MA", Benefic: true}}
	f.engine.Notify(t.Context(), f.state, domain.FieldSaturnRelationPlanets)
	assert.Equal(t, "SA-SU-MA(b)", f.state.Form.SaturnRelation)
	assert.Empty(t, f.state.Form.VenusRelation)
}
