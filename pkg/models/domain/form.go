package domain

type DashaLevel string

const (
	DashaMaha       DashaLevel = "mahadasha"
	DashaAntar      DashaLevel = "antardasha"
	DashaPratyantar DashaLevel = "pratyantardasha"
)

var DashaLevels = []DashaLevel{DashaMaha, DashaAntar, DashaPratyantar}

type ClientInfo struct {
	Name         string
	DateOfBirth  string // YYYY-MM-DD
	TimeOfBirth  string // HH:MM
	PlaceOfBirth string
}

// Dasha is one planetary period with its star lord (NL) and sub lord (SL).
type Dasha struct {
	Planet          Planet
	Source          string
	NL              Planet
	NLSource        string
	AdditionalHouse string
	SL              Planet
	SLSource        string
	NoStar          bool
	PeriodFrom      string // pratyantardasha only
	PeriodTo        string // pratyantardasha only
}

// NakshatraSymbols are the six text blocks filled from the birth nakshatra.
type NakshatraSymbols struct {
	MobileDisplayPicture string
	Beneficial           string
	Prosperity           string
	MentalPhysical       string
	Accomplishments      string
	Avoid                string
}

// RelationLink is one planet in a Bhrigunanda Nadi relation chain.
type RelationLink struct {
	ID      string
	Code    string // two-letter planet code, may be empty while editing
	Benefic bool   // rendered as "(b)"
}

type ReportFormData struct {
	Client ClientInfo

	MapOfHouse    string
	VastuAnalysis string
	VastuRemedies string

	Mahadasha       Dasha
	Antardasha      Dasha
	Pratyantardasha Dasha

	DonationsToDo   string
	DonationsToWhom string
	GemstonePlanet  Planet
	Gemstones       string
	MantraPlanet    Planet
	Mantra          string
	BirthNakshatra  string
	Symbols         NakshatraSymbols

	AspectsOnHouses  []HouseAspect
	AspectsOnPlanets []PlanetAspect
	RemovalItems     []RemovalItem
	PlacementItems   []PlacementItem

	AstroVastuRemediesHouse string
	WhatToRemove            string
	WhatToPlace             string
	AstroVastuRemediesBody  string
	ColorObjectsToUse       string
	ColorObjectsNotToUse    string
	LockerLocation          Direction
	LaughingBuddhaDirection Direction
	WishListInkColor        string

	NeverCriticize       string
	ImportantBooks       string
	GiftsToGivePlanet    Planet
	GiftsToGive          string
	GiftsToReceivePlanet Planet
	GiftsToReceive       string

	SaturnRelationPlanets []RelationLink
	SaturnRelation        string
	SaturnFollowing       Planet
	ProfessionalMindset   string
	VenusRelationPlanets  []RelationLink
	VenusRelation         string
	VenusFollowing        Planet
	FinancialMindset      string

	HouseMaps []HouseMap
	Kundli    *Attachment

	ReportType ReportType
}

func (f *ReportFormData) Dasha(level DashaLevel) *Dasha {
	switch level {
	case DashaMaha:
		return &f.Mahadasha
	case DashaAntar:
		return &f.Antardasha
	case DashaPratyantar:
		return &f.Pratyantardasha
	}
	return nil
}

// Clone returns a deep copy; no slice, map or attachment is shared with f.
func (f *ReportFormData) Clone() *ReportFormData {
	c := *f

	c.AspectsOnHouses = make([]HouseAspect, 0, len(f.AspectsOnHouses))
	for _, a := range f.AspectsOnHouses {
		c.AspectsOnHouses = append(c.AspectsOnHouses, a.clone())
	}
	c.AspectsOnPlanets = make([]PlanetAspect, 0, len(f.AspectsOnPlanets))
	for _, a := range f.AspectsOnPlanets {
		c.AspectsOnPlanets = append(c.AspectsOnPlanets, a.clone())
	}
	c.RemovalItems = make([]RemovalItem, 0, len(f.RemovalItems))
	for _, r := range f.RemovalItems {
		c.RemovalItems = append(c.RemovalItems, r.clone())
	}
	c.PlacementItems = append([]PlacementItem(nil), f.PlacementItems...)
	c.SaturnRelationPlanets = append([]RelationLink(nil), f.SaturnRelationPlanets...)
	c.VenusRelationPlanets = append([]RelationLink(nil), f.VenusRelationPlanets...)

	c.HouseMaps = make([]HouseMap, 0, len(f.HouseMaps))
	for _, m := range f.HouseMaps {
		c.HouseMaps = append(c.HouseMaps, m.clone())
	}
	c.Kundli = f.Kundli.Clone()

	return &c
}
