package domain

// Direction is one of the sixteen vastu compass zones or the centre of the plot.
type Direction string

const (
	DirectionNorth          Direction = "North"
	DirectionNorthNorthEast Direction = "North-North-East"
	DirectionNorthEast      Direction = "North-East"
	DirectionEastNorthEast  Direction = "East-North-East"
	DirectionEast           Direction = "East"
	DirectionEastSouthEast  Direction = "East-South-East"
	DirectionSouthEast      Direction = "South-East"
	DirectionSouthSouthEast Direction = "South-South-East"
	DirectionSouth          Direction = "South"
	DirectionSouthSouthWest Direction = "South-South-West"
	DirectionSouthWest      Direction = "South-West"
	DirectionWestSouthWest  Direction = "West-South-West"
	DirectionWest           Direction = "West"
	DirectionWestNorthWest  Direction = "West-North-West"
	DirectionNorthWest      Direction = "North-West"
	DirectionNorthNorthWest Direction = "North-North-West"
	DirectionCenter         Direction = "Center"
)

// Directions lists all zones clockwise from North, centre last.
var Directions = []Direction{
	DirectionNorth,
	DirectionNorthNorthEast,
	DirectionNorthEast,
	DirectionEastNorthEast,
	DirectionEast,
	DirectionEastSouthEast,
	DirectionSouthEast,
	DirectionSouthSouthEast,
	DirectionSouth,
	DirectionSouthSouthWest,
	DirectionSouthWest,
	DirectionWestSouthWest,
	DirectionWest,
	DirectionWestNorthWest,
	DirectionNorthWest,
	DirectionNorthNorthWest,
	DirectionCenter,
}

func (d Direction) Valid() bool {
	for _, known := range Directions {
		if d == known {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	return string(d)
}
