package domain

// Rooms are the canonical room labels every house map carries.
var Rooms = []string{
	"Main Entrance",
	"Living Room",
	"Drawing Room",
	"Dining Area",
	"Kitchen",
	"Master Bedroom",
	"Children's Bedroom",
	"Guest Bedroom",
	"Pooja Room",
	"Study Room",
	"Toilet",
	"Bathroom",
	"Store Room",
	"Staircase",
	"Balcony",
	"Garage",
	"Water Tank",
	"Septic Tank",
}

type RoomDirection struct {
	Room      string
	Direction Direction
}

// HouseMap is one uploaded floor plan page with its room directions.
type HouseMap struct {
	ID    string
	Label string
	Image *Attachment
	Rooms []RoomDirection
}

// DefaultRooms returns every canonical room with no direction assigned.
func DefaultRooms() []RoomDirection {
	rooms := make([]RoomDirection, 0, len(Rooms))
	for _, r := range Rooms {
		rooms = append(rooms, RoomDirection{Room: r})
	}
	return rooms
}

func ValidRoom(room string) bool {
	for _, r := range Rooms {
		if r == room {
			return true
		}
	}
	return false
}

func (m HouseMap) clone() HouseMap {
	m.Rooms = append([]RoomDirection(nil), m.Rooms...)
	m.Image = m.Image.Clone()
	return m
}
