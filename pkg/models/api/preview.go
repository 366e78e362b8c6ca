package api

type Entry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

type HouseMapSummary struct {
	Label string   `json:"label"`
	Lines []string `json:"lines"`
}

type Preview struct {
	Title         string            `json:"title"`
	Generated     string            `json:"generated"`
	ReportType    string            `json:"report_type"`
	Sections      []Section         `json:"sections"`
	DashaChains   map[string]string `json:"dasha_chains"`
	HouseAspects  []string          `json:"aspects_on_houses"`
	PlanetAspects []string          `json:"aspects_on_planets"`
	Removals      []string          `json:"removals"`
	Placements    []string          `json:"placements"`
	HouseMaps     []HouseMapSummary `json:"house_maps"`
}
