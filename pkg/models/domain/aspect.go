package domain

// Aspect degrees the form offers. A 120 degree aspect is treated as benign.
const (
	Degree90  = 90
	Degree120 = 120
	Degree180 = 180
)

var AspectDegrees = []int{Degree90, Degree120, Degree180}

// HouseGroup is a set of houses a planet hits at one degree.
type HouseGroup struct {
	ID     string
	Houses []int
	Degree int
}

// HouseAspect lists every house group for a single planet.
type HouseAspect struct {
	ID     string
	Planet Planet
	Groups []HouseGroup
}

func (a HouseAspect) clone() HouseAspect {
	c := a
	c.Groups = make([]HouseGroup, 0, len(a.Groups))
	for _, g := range a.Groups {
		g.Houses = append([]int(nil), g.Houses...)
		c.Groups = append(c.Groups, g)
	}
	return c
}

// PlanetGroup is a set of planets hit at one degree.
type PlanetGroup struct {
	ID      string
	Planets []Planet
	Degree  int
}

type PlanetAspect struct {
	ID     string
	Planet Planet
	Groups []PlanetGroup
}

func (a PlanetAspect) clone() PlanetAspect {
	c := a
	c.Groups = make([]PlanetGroup, 0, len(a.Groups))
	for _, g := range a.Groups {
		g.Planets = append([]Planet(nil), g.Planets...)
		c.Groups = append(c.Groups, g)
	}
	return c
}
