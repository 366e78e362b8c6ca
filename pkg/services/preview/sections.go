package preview

import (
	"strings"

	"github.com/de-tools/destiny-report/pkg/models/domain"
)

type labelled struct {
	field domain.Field
	label string
}

var (
	clientFields = []labelled{
		{domain.FieldName, "Name"},
		{domain.FieldDateOfBirth, "Date of Birth"},
		{domain.FieldTimeOfBirth, "Time of Birth"},
		{domain.FieldPlaceOfBirth, "Place of Birth"},
	}
	vastuFields = []labelled{
		{domain.FieldMapOfHouse, "Map of the House"},
		{domain.FieldVastuAnalysis, "Analysis (Entrances, Kitchen, Washrooms)"},
		{domain.FieldVastuRemedies, "Remedies"},
	}
	astrologyFields = []labelled{
		{domain.FieldDonationsToDo, "Donations to Do"},
		{domain.FieldDonationsToWhom, "Donations - To Whom"},
		{domain.FieldGemstones, "Gemstones"},
		{domain.FieldMantra, "Mantra to Make Situation Positive"},
		{domain.FieldBirthNakshatra, "Your Birth Nakshatra"},
		{domain.FieldMobileDisplayPicture, "Beneficial Mobile Display Picture"},
		{domain.FieldBeneficialSymbols, "Most Beneficial Symbols"},
		{domain.FieldNakshatraProsperitySymbols, "Prosperity Giving Symbols"},
		{domain.FieldNakshatraMentalPhysicalWellbeing, "Mental/Physical Wellbeing Symbols"},
		{domain.FieldNakshatraAccomplishments, "Accomplishment/Achievement Symbols"},
		{domain.FieldNakshatraAvoidSymbols, "Symbols to Avoid"},
	}
	astroVastuFields = []labelled{
		{domain.FieldAstroVastuRemediesHouse, "Astro Vastu Remedies for House"},
		{domain.FieldWhatToRemove, "What to Remove from Which Directions"},
		{domain.FieldWhatToPlace, "What to Place in Which Directions"},
		{domain.FieldAstroVastuRemediesBody, "Astro Vastu Remedies for Body"},
		{domain.FieldColorObjectsToUse, "What Color or Objects to Use on Body"},
		{domain.FieldColorObjectsNotToUse, "What Color or Objects NOT to Use on Body"},
		{domain.FieldLockerLocation, "Most Favorable Location of Locker"},
		{domain.FieldLaughingBuddhaDirection, "Placement of Laughing Buddha/Vision Board - Direction"},
		{domain.FieldWishListInkColor, "Color of Ink to Write Wish List"},
	}
	guidelineFields = []labelled{
		{domain.FieldNeverCriticize, "To Whom You Should Never Criticize or Judge"},
		{domain.FieldImportantBooks, "Important Books to Read to Uplift Your Life"},
		{domain.FieldGiftsToGive, "Gifts - To Give"},
		{domain.FieldGiftsToReceive, "Gifts - To Receive"},
	}
	nadiFields = []labelled{
		{domain.FieldSaturnRelation, "Saturn Relation"},
		{domain.FieldSaturnFollowing, "Saturn is following"},
		{domain.FieldProfessionalMindset, "Professional Mindset"},
		{domain.FieldVenusRelation, "Venus Relation"},
		{domain.FieldVenusFollowing, "Venus is following"},
		{domain.FieldFinancialMindset, "Financial Mindset"},
	}
)

// buildSections lays the snapshot out in report order. Synthesized entries
// come before plain fields; empty values and empty sections are dropped.
func (p *PreviewData) buildSections() []Section {
	f := p.Form

	var mapEntries []Entry
	for _, m := range p.HouseMaps {
		mapEntries = append(mapEntries, Entry{Label: m.Label, Value: strings.Join(m.Lines, "\n")})
	}

	layout := []struct {
		title  string
		before []Entry
		fields []labelled
		after  []Entry
	}{
		{title: "ABOUT THE CLIENT", fields: clientFields},
		{title: "VASTU ANALYSIS", fields: vastuFields, after: mapEntries},
		{
			title: "ASTROLOGY",
			before: []Entry{
				{Label: "Mahadasha", Value: p.DashaChains[domain.DashaMaha]},
				{Label: "Antardasha", Value: p.DashaChains[domain.DashaAntar]},
				{Label: "Pratyantar Dasha", Value: p.DashaChains[domain.DashaPratyantar]},
			},
			fields: astrologyFields,
		},
		{
			title: "ASTRO VASTU SOLUTION",
			before: []Entry{
				{Label: "Aspects on Houses", Value: strings.Join(p.HouseAspects, "\n")},
				{Label: "Aspects on Planets", Value: strings.Join(p.PlanetAspects, "\n")},
				{Label: "Remove from Directions", Value: strings.Join(p.Removals, "\n")},
				{Label: "Place in Directions", Value: strings.Join(p.Placements, "\n")},
			},
			fields: astroVastuFields,
		},
		{title: "GUIDELINES", fields: guidelineFields},
		{title: "BHRIGUNANDA NADI", fields: nadiFields},
	}

	var sections []Section
	for _, l := range layout {
		s := Section{Title: l.title}
		add := func(e Entry) {
			if strings.TrimSpace(e.Value) != "" {
				s.Entries = append(s.Entries, e)
			}
		}
		for _, e := range l.before {
			add(e)
		}
		for _, lf := range l.fields {
			add(Entry{Label: lf.label, Value: *f.Text(lf.field)})
		}
		for _, e := range l.after {
			add(e)
		}
		if len(s.Entries) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}
