package adapters

import (
	"github.com/de-tools/destiny-report/pkg/lookup"
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
)

// MapPlanetToAPI gathers every table entry for p. ok is false for an
// unknown planet.
func MapPlanetToAPI(p domain.Planet) (api.PlanetInfo, bool) {
	if !p.Valid() {
		return api.PlanetInfo{}, false
	}
	info := api.PlanetInfo{
		Planet: p.String(),
		Code:   p.Code(),
		Signs:  nonNil(lookup.SignsRuledBy(p)),
		Colors: nonNil(lookup.ColorsFor(p, 0)),
		Books:  nonNil(lookup.BooksFor(p, 0)),
		Gifts:  nonNil(lookup.GiftsFor(p)),
	}
	if g, ok := lookup.GemstoneFor(p); ok {
		info.Gemstone = g.English
		info.GemstoneHindi = g.Hindi
	}
	if m, ok := lookup.MantraFor(p); ok {
		info.MantraDeity = m.Deity
		info.Mantra = m.Text
	}
	if d, ok := lookup.DonationFor(p); ok {
		info.DonationDay = d.Day
		info.DonationItems = d.Items
		info.DonationTo = d.Beneficiaries
	}
	info.ProfessionalMindset, _ = lookup.ProfessionalMindset(p)
	info.FinancialMindset, _ = lookup.FinancialMindset(p)
	return info, true
}

func MapNakshatraToAPI(name string) (api.NakshatraInfo, bool) {
	n, ok := lookup.NakshatraByName(name)
	if !ok {
		return api.NakshatraInfo{}, false
	}
	return api.NakshatraInfo{
		Name:                 name,
		MobileDisplayPicture: n.MobileDisplayPicture,
		Beneficial:           n.Beneficial,
		Prosperity:           n.Prosperity,
		MentalPhysical:       n.MentalPhysical,
		Accomplishments:      n.Accomplishments,
		Avoid:                n.Avoid,
	}, true
}

func MapDirectionToAPI(d domain.Direction) (api.DirectionInfo, bool) {
	info, ok := lookup.DirectionFor(d)
	if !ok {
		return api.DirectionInfo{}, false
	}
	return api.DirectionInfo{
		Direction: string(d),
		Sanskrit:  info.Sanskrit,
		Planets:   planetNames(info.Planets),
		Colors:    nonNil(info.Colors),
		Energy:    info.Energy,
	}, true
}
