package api

type PlanetInfo struct {
	Planet              string   `json:"planet"`
	Code                string   `json:"code"`
	Gemstone            string   `json:"gemstone,omitempty"`
	GemstoneHindi       string   `json:"gemstone_hindi,omitempty"`
	MantraDeity         string   `json:"mantra_deity,omitempty"`
	Mantra              string   `json:"mantra,omitempty"`
	DonationDay         string   `json:"donation_day,omitempty"`
	DonationItems       string   `json:"donation_items,omitempty"`
	DonationTo          string   `json:"donation_to,omitempty"`
	Signs               []string `json:"signs"`
	Colors              []string `json:"colors"`
	Books               []string `json:"books"`
	Gifts               []string `json:"gifts"`
	ProfessionalMindset string   `json:"professional_mindset,omitempty"`
	FinancialMindset    string   `json:"financial_mindset,omitempty"`
}

type NakshatraInfo struct {
	Name                 string `json:"name"`
	MobileDisplayPicture string `json:"mobile_display_picture"`
	Beneficial           string `json:"beneficial"`
	Prosperity           string `json:"prosperity"`
	MentalPhysical       string `json:"mental_physical"`
	Accomplishments      string `json:"accomplishments"`
	Avoid                string `json:"avoid"`
}

type DirectionInfo struct {
	Direction string   `json:"direction"`
	Sanskrit  string   `json:"sanskrit"`
	Planets   []string `json:"planets"`
	Colors    []string `json:"colors"`
	Energy    string   `json:"energy"`
}
