package domain

// Planet is one of the nine classical grahas, including the lunar nodes.
type Planet string

const (
	PlanetSun     Planet = "Sun"
	PlanetMoon    Planet = "Moon"
	PlanetMars    Planet = "Mars"
	PlanetMercury Planet = "Mercury"
	PlanetJupiter Planet = "Jupiter"
	PlanetVenus   Planet = "Venus"
	PlanetSaturn  Planet = "Saturn"
	PlanetRahu    Planet = "Rahu"
	PlanetKetu    Planet = "Ketu"
)

// Planets lists the grahas in their traditional weekday order.
var Planets = []Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMars,
	PlanetMercury,
	PlanetJupiter,
	PlanetVenus,
	PlanetSaturn,
	PlanetRahu,
	PlanetKetu,
}

var planetCodes = map[Planet]string{
	PlanetSun:     "SU",
	PlanetMoon:    "MO",
	PlanetMars:    "MA",
	PlanetMercury: "ME",
	PlanetJupiter: "JU",
	PlanetVenus:   "VE",
	PlanetSaturn:  "SA",
	PlanetRahu:    "RA",
	PlanetKetu:    "KE",
}

func (p Planet) Valid() bool {
	_, ok := planetCodes[p]
	return ok
}

// Code returns the two-letter abbreviation used in Bhrigunanda Nadi chains.
func (p Planet) Code() string {
	return planetCodes[p]
}

func (p Planet) String() string {
	return string(p)
}

// PlanetByCode resolves a two-letter code such as "SA" back to its planet.
func PlanetByCode(code string) (Planet, bool) {
	for p, c := range planetCodes {
		if c == code {
			return p, true
		}
	}
	return "", false
}

// ValidPlanetCode reports whether code is one of the nine two-letter codes.
func ValidPlanetCode(code string) bool {
	_, ok := PlanetByCode(code)
	return ok
}
