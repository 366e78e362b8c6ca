package api

type FieldValue struct {
	Field      string `json:"field"`
	Value      string `json:"value"`
	Overridden bool   `json:"overridden"`
}

type SetFieldRequest struct {
	Value string `json:"value"`
}

// Form is the full editable state of a session. Scalar fields are keyed by
// the names the report service expects.
type Form struct {
	Fields                map[string]string `json:"fields"`
	Overridden            []string          `json:"overridden"`
	ReportTypes           []string          `json:"report_types"`
	AspectsOnHouses       []HouseAspect     `json:"aspects_on_houses"`
	AspectsOnPlanets      []PlanetAspect    `json:"aspects_on_planets"`
	RemovalItems          []RemovalItem     `json:"removal_items"`
	PlacementItems        []PlacementItem   `json:"placement_items"`
	SaturnRelationPlanets []RelationLink    `json:"saturn_relation_planets"`
	VenusRelationPlanets  []RelationLink    `json:"venus_relation_planets"`
	HouseMaps             []HouseMap        `json:"house_maps"`
	Kundli                *Attachment       `json:"kundli,omitempty"`
}

type HouseGroup struct {
	ID     string `json:"id"`
	Houses []int  `json:"houses"`
	Degree int    `json:"degree"`
}

type HouseAspect struct {
	ID     string       `json:"id"`
	Planet string       `json:"planet"`
	Groups []HouseGroup `json:"groups"`
}

type PlanetGroup struct {
	ID      string   `json:"id"`
	Planets []string `json:"planets"`
	Degree  int      `json:"degree"`
}

type PlanetAspect struct {
	ID     string        `json:"id"`
	Planet string        `json:"planet"`
	Groups []PlanetGroup `json:"groups"`
}

type DirectionSlot struct {
	ID        string `json:"id"`
	Direction string `json:"direction"`
}

type RemovalItem struct {
	ID     string          `json:"id"`
	Planet string          `json:"planet"`
	Slots  []DirectionSlot `json:"slots"`
}

type PlacementItem struct {
	ID        string `json:"id"`
	Planet    string `json:"planet"`
	Direction string `json:"direction"`
}

type RelationLink struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Benefic bool   `json:"benefic"`
}

type Room struct {
	Room      string `json:"room"`
	Direction string `json:"direction"`
}

type HouseMap struct {
	ID    string      `json:"id"`
	Label string      `json:"label"`
	Image *Attachment `json:"image,omitempty"`
	Rooms []Room      `json:"rooms"`
}

type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
}

type PlanetRequest struct {
	Planet string `json:"planet"`
}

type HouseGroupRequest struct {
	Houses []int `json:"houses"`
	Degree int   `json:"degree"`
}

type PlanetGroupRequest struct {
	Planets []string `json:"planets"`
	Degree  int      `json:"degree"`
}

type DirectionRequest struct {
	Direction string `json:"direction"`
}

type RelationLinkRequest struct {
	Code    string `json:"code"`
	Benefic bool   `json:"benefic"`
}

type HouseMapRequest struct {
	Label string `json:"label"`
}
