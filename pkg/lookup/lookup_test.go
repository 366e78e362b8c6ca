package lookup

import (
	"strings"
	"testing"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesCoverEveryPlanet(t *testing.T) {
	for _, p := range domain.Planets {
		t.Run(p.String(), func(t *testing.T) {
			_, ok := DonationFor(p)
			assert.True(t, ok, "donation")
			_, ok = GemstoneFor(p)
			assert.True(t, ok, "gemstone")
			_, ok = MantraFor(p)
			assert.True(t, ok, "mantra")
			_, ok = ProfessionalMindset(p)
			assert.True(t, ok, "professional mindset")
			_, ok = FinancialMindset(p)
			assert.True(t, ok, "financial mindset")

			assert.NotEmpty(t, ColorsFor(p, 0), "colours")
			assert.NotEmpty(t, SignsRuledBy(p), "rulership")
			assert.Len(t, BooksFor(p, 3), 3, "books")
			assert.NotEmpty(t, GiftsFor(p), "gifts")
		})
	}
}

func TestTablesCoverEveryDirection(t *testing.T) {
	for _, d := range domain.Directions {
		info, ok := DirectionFor(d)
		require.True(t, ok, d)
		if d == domain.DirectionCenter {
			assert.Empty(t, info.Planets)
			continue
		}
		assert.NotEmpty(t, info.Planets, d)
		for _, p := range info.Planets {
			assert.True(t, p.Valid(), "%s rules by unknown planet %s", d, p)
		}
	}
}

func TestNakshatraByName(t *testing.T) {
	require.Len(t, NakshatraNames, 27)

	for _, name := range NakshatraNames {
		n, ok := NakshatraByName(name)
		require.True(t, ok, name)
		for _, block := range []string{
			n.MobileDisplayPicture, n.Beneficial, n.Prosperity,
			n.MentalPhysical, n.Accomplishments, n.Avoid,
		} {
			assert.True(t, strings.HasPrefix(block, "• "), "%s: %q", name, block)
		}
	}

	tests := []struct {
		name string
		ok   bool
	}{
		{name: "Ashvini", ok: true},
		{name: "ashvini", ok: false},
		{name: "Ashwini", ok: false},
		{name: "", ok: false},
	}
	for _, tt := range tests {
		_, ok := NakshatraByName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestNakshatra_CanonicalBlocks(t *testing.T) {
	n, ok := NakshatraByName("Krittika")
	require.True(t, ok)
	assert.Equal(t, "• Inverted triangle/ELEPHANT/crow", n.MobileDisplayPicture)
	assert.Equal(t, n.MobileDisplayPicture, n.Beneficial)
	assert.Equal(t, "• SHOOT OF A PLANT/MALE BUFFALO", n.MentalPhysical)
}

func TestColorsFor_LimitsAndCopies(t *testing.T) {
	colors := ColorsFor(domain.PlanetSun, 3)
	assert.Equal(t, []string{"Saffron", "Golden", "Red"}, colors)

	colors[0] = "changed"
	assert.Equal(t, "Saffron", ColorsFor(domain.PlanetSun, 1)[0])

	assert.Equal(t, []string{"Green", "Pale Green"}, ColorsFor(domain.PlanetMercury, 3))
	assert.Empty(t, ColorsFor(domain.Planet("Pluto"), 3))
}

func TestBodyZonesForDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction domain.Direction
		expected  []string
	}{
		{
			name:      "single ruler",
			direction: domain.DirectionEast,
			expected:  []string{"Chest (Left side)"},
		},
		{
			name:      "two rulers",
			direction: domain.DirectionSouthEast,
			expected:  []string{"Neck", "Waist", "Head / Hair region", "Private / inner clothing area"},
		},
		{
			name:      "shared sign reported once",
			direction: domain.DirectionWestSouthWest,
			expected:  []string{"Knees / lower legs", "Ankles"},
		},
		{
			name:      "center has none",
			direction: domain.DirectionCenter,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parts []string
			for _, z := range BodyZonesForDirection(tt.direction) {
				parts = append(parts, z.BodyPart)
			}
			assert.Equal(t, tt.expected, parts)
		})
	}
}
