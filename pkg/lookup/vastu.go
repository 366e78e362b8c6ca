package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

// DirectionInfo describes one vastu zone and the planets that rule it.
type DirectionInfo struct {
	Sanskrit string
	Planets  []domain.Planet
	Colors   []string
	Energy   string
}

var directions = map[domain.Direction]DirectionInfo{
	domain.DirectionEast: {
		Sanskrit: "Poorva",
		Planets:  []domain.Planet{domain.PlanetSun},
		Colors:   []string{"Saffron", "Golden", "Red"},
		Energy:   "Vitality, beginnings, clarity",
	},
	domain.DirectionWest: {
		Sanskrit: "Paschim",
		Planets:  []domain.Planet{domain.PlanetSaturn},
		Colors:   []string{"Navy Blue", "Dark Grey", "Black"},
		Energy:   "Stability, control, introspection",
	},
	domain.DirectionNorth: {
		Sanskrit: "Uttara",
		Planets:  []domain.Planet{domain.PlanetMercury},
		Colors:   []string{"Green"},
		Energy:   "Communication, intelligence",
	},
	domain.DirectionSouth: {
		Sanskrit: "Dakshina",
		Planets:  []domain.Planet{domain.PlanetMars},
		Colors:   []string{"Red", "Maroon"},
		Energy:   "Action, strength, assertiveness",
	},
	domain.DirectionNorthEast: {
		Sanskrit: "Ishan",
		Planets:  []domain.Planet{domain.PlanetJupiter, domain.PlanetKetu},
		Colors:   []string{"Yellow", "Cream", "White"},
		Energy:   "Divine, wisdom, spiritual uplift",
	},
	domain.DirectionNorthWest: {
		Sanskrit: "Vayavya",
		Planets:  []domain.Planet{domain.PlanetMoon, domain.PlanetRahu},
		Colors:   []string{"White", "Light Blue", "Light Grey"},
		Energy:   "Movement, change, diplomacy",
	},
	domain.DirectionSouthEast: {
		Sanskrit: "Agneya",
		Planets:  []domain.Planet{domain.PlanetVenus, domain.PlanetMars},
		Colors:   []string{"Light Pink", "Orange", "Saffron"},
		Energy:   "Energy, luxury, wealth",
	},
	domain.DirectionSouthWest: {
		Sanskrit: "Nairutya",
		Planets:  []domain.Planet{domain.PlanetRahu},
		Colors:   []string{"Smoky Blue", "Charcoal", "Muddy Brown"},
		Energy:   "Stability, hidden power",
	},
	domain.DirectionEastNorthEast: {
		Sanskrit: "Eshaanya (ENE)",
		Planets:  []domain.Planet{domain.PlanetSun, domain.PlanetJupiter},
		Colors:   []string{"Light Yellow", "White", "Golden"},
		Energy:   "Illumination, clarity",
	},
	domain.DirectionEastSouthEast: {
		Sanskrit: "Aagneya (ESE)",
		Planets:  []domain.Planet{domain.PlanetSun, domain.PlanetVenus},
		Colors:   []string{"Orange", "Peach", "Warm tones"},
		Energy:   "Power, relationship energy",
	},
	domain.DirectionSouthSouthEast: {
		Sanskrit: "Dakshina-Agneya (SSE)",
		Planets:  []domain.Planet{domain.PlanetMars, domain.PlanetVenus},
		Colors:   []string{"Fiery Red", "Orange-Red"},
		Energy:   "Passion, ambition",
	},
	domain.DirectionSouthSouthWest: {
		Sanskrit: "Dakshina-Nairutya (SSW)",
		Planets:  []domain.Planet{domain.PlanetMars, domain.PlanetRahu},
		Colors:   []string{"Terracotta", "Brown", "Rust"},
		Energy:   "Grounding, control",
	},
	domain.DirectionWestSouthWest: {
		Sanskrit: "Paschima-Nairutya (WSW)",
		Planets:  []domain.Planet{domain.PlanetSaturn, domain.PlanetRahu},
		Colors:   []string{"Earthy Brown", "Dark Grey"},
		Energy:   "Security, persistence",
	},
	domain.DirectionWestNorthWest: {
		Sanskrit: "Paschima-Vayavya (WNW)",
		Planets:  []domain.Planet{domain.PlanetSaturn, domain.PlanetMoon},
		Colors:   []string{"Light Grey", "Mist Blue"},
		Energy:   "Emotional balance, flexibility",
	},
	domain.DirectionNorthNorthWest: {
		Sanskrit: "Uttara-Vayavya (NNW)",
		Planets:  []domain.Planet{domain.PlanetMoon, domain.PlanetMercury},
		Colors:   []string{"Pale Green", "Aqua", "Sky tones"},
		Energy:   "Support, movement",
	},
	domain.DirectionNorthNorthEast: {
		Sanskrit: "Uttara-Ishan (NNE)",
		Planets:  []domain.Planet{domain.PlanetJupiter, domain.PlanetMoon},
		Colors:   []string{"Aqua", "Light Green", "White"},
		Energy:   "Healing, prosperity",
	},
	// The centre of the plot has no ruling planet.
	domain.DirectionCenter: {
		Sanskrit: "Brahmasthan",
		Energy:   "Openness, balance",
	},
}

func DirectionFor(d domain.Direction) (DirectionInfo, bool) {
	info, ok := directions[d]
	if !ok {
		return DirectionInfo{}, false
	}
	info.Planets = append([]domain.Planet(nil), info.Planets...)
	info.Colors = copyOf(info.Colors)
	return info, true
}

// PlanetsFor returns the planets ruling d, primary ruler first.
func PlanetsFor(d domain.Direction) []domain.Planet {
	return append([]domain.Planet(nil), directions[d].Planets...)
}

var planetColors = map[domain.Planet][]string{
	domain.PlanetSun:     {"Saffron", "Golden", "Red", "Orange"},
	domain.PlanetMoon:    {"White", "Light Blue", "Light Grey", "Aqua"},
	domain.PlanetMars:    {"Red", "Maroon", "Fiery Red", "Orange-Red"},
	domain.PlanetMercury: {"Green", "Pale Green"},
	domain.PlanetJupiter: {"Yellow", "Light Yellow", "Cream", "Golden"},
	domain.PlanetVenus:   {"Light Pink", "Orange", "Peach", "White"},
	domain.PlanetSaturn:  {"Navy Blue", "Dark Grey", "Black", "Light Grey"},
	domain.PlanetRahu:    {"Smoky Blue", "Charcoal", "Muddy Brown", "Earthy Brown"},
	domain.PlanetKetu:    {"Yellow", "Cream", "White"},
}

// ColorsFor returns up to n palette colours of p, strongest first. A
// non-positive n returns the whole palette.
func ColorsFor(p domain.Planet, n int) []string {
	palette := planetColors[p]
	if n > 0 {
		palette = firstN(palette, n)
	}
	return copyOf(palette)
}
