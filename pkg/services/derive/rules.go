package derive

import (
	"fmt"
	"strings"

	"github.com/de-tools/destiny-report/pkg/lookup"
	"github.com/de-tools/destiny-report/pkg/models/domain"
)

const (
	booksPerPlanet = 3
	// donationTrigger is matched as text, so "18" and "80" both qualify.
	donationTrigger = "8"
)

func dashaFields() []domain.Field {
	fields := make([]domain.Field, 0, 2*len(domain.DashaPairs))
	for _, p := range domain.DashaPairs {
		fields = append(fields, p.Planet, p.Source)
	}
	return fields
}

// DefaultRules returns the built-in rules. Rules that feed others come first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "source-carry",
			Sources: dashaFields(),
			Apply:   carrySources,
		},
		{
			Name:    "donations",
			Sources: dashaFields(),
			Outputs: []domain.Field{domain.FieldDonationsToDo, domain.FieldDonationsToWhom},
			Apply:   suggestDonations,
		},
		{
			Name:    "gemstone",
			Sources: []domain.Field{domain.FieldGemstonePlanet},
			Outputs: []domain.Field{domain.FieldGemstones},
			Apply:   suggestGemstone,
		},
		{
			Name:    "mantra",
			Sources: []domain.Field{domain.FieldMantraPlanet},
			Outputs: []domain.Field{domain.FieldMantra},
			Apply:   suggestMantra,
		},
		{
			Name:    "nakshatra",
			Sources: []domain.Field{domain.FieldBirthNakshatra},
			Outputs: nakshatraOutputs,
			Apply:   fillNakshatra,
		},
		{
			Name:    "removal-placement",
			Sources: []domain.Field{domain.FieldAspectsOnHouses, domain.FieldAspectsOnPlanets},
			Apply:   deriveRemovalAndPlacement,
		},
		{
			Name:    "colours-to-use",
			Sources: []domain.Field{domain.FieldPlacementItems},
			Outputs: []domain.Field{domain.FieldColorObjectsToUse},
			Apply:   colorsToUse,
		},
		{
			Name:    "colours-to-avoid",
			Sources: []domain.Field{domain.FieldRemovalItems},
			Outputs: []domain.Field{domain.FieldColorObjectsNotToUse},
			Apply:   colorsToAvoid,
		},
		{
			Name:    "ink-colour",
			Sources: []domain.Field{domain.FieldLaughingBuddhaDirection},
			Outputs: []domain.Field{domain.FieldWishListInkColor},
			Apply:   inkColor,
		},
		{
			Name:    "books",
			Sources: []domain.Field{domain.FieldMahadashaPlanet, domain.FieldAntardashaPlanet},
			Outputs: []domain.Field{domain.FieldImportantBooks},
			Apply:   recommendBooks,
		},
		{
			Name:    "gifts-to-give",
			Sources: []domain.Field{domain.FieldGiftsToGivePlanet},
			Outputs: []domain.Field{domain.FieldGiftsToGive},
			Apply:   giftsRule(domain.FieldGiftsToGivePlanet, domain.FieldGiftsToGive),
		},
		{
			Name:    "gifts-to-receive",
			Sources: []domain.Field{domain.FieldGiftsToReceivePlanet},
			Outputs: []domain.Field{domain.FieldGiftsToReceive},
			Apply:   giftsRule(domain.FieldGiftsToReceivePlanet, domain.FieldGiftsToReceive),
		},
		{
			Name:    "professional-mindset",
			Sources: []domain.Field{domain.FieldSaturnFollowing},
			Outputs: []domain.Field{domain.FieldProfessionalMindset},
			Apply:   mindsetRule(domain.FieldSaturnFollowing, domain.FieldProfessionalMindset, lookup.ProfessionalMindset),
		},
		{
			Name:    "financial-mindset",
			Sources: []domain.Field{domain.FieldVenusFollowing},
			Outputs: []domain.Field{domain.FieldFinancialMindset},
			Apply:   mindsetRule(domain.FieldVenusFollowing, domain.FieldFinancialMindset, lookup.FinancialMindset),
		},
		{
			Name:    "saturn-relation",
			Sources: []domain.Field{domain.FieldSaturnRelationPlanets},
			Outputs: []domain.Field{domain.FieldSaturnRelation},
			Apply: func(w *Writer) {
				w.Set(domain.FieldSaturnRelation, FormatRelation("SA", w.Form().SaturnRelationPlanets))
			},
		},
		{
			Name:    "venus-relation",
			Sources: []domain.Field{domain.FieldVenusRelationPlanets},
			Outputs: []domain.Field{domain.FieldVenusRelation},
			Apply: func(w *Writer) {
				w.Set(domain.FieldVenusRelation, FormatRelation("VE", w.Form().VenusRelationPlanets))
			},
		},
	}
}

// carrySources remembers the source typed for a planet and offers it again
// when the same planet is picked in another dasha slot whose source is empty.
func carrySources(w *Writer) {
	memo := w.LastSource()

	for _, pair := range domain.DashaPairs {
		if !w.Changed(pair.Planet) && !w.Changed(pair.Source) {
			continue
		}
		planet := domain.Planet(w.Get(pair.Planet))
		source := w.Get(pair.Source)
		if planet != "" && source != "" {
			memo[planet] = source
		}
	}

	for _, pair := range domain.DashaPairs {
		if !w.Changed(pair.Planet) {
			continue
		}
		planet := domain.Planet(w.Get(pair.Planet))
		if source, ok := memo[planet]; ok && planet != "" {
			w.Fill(pair.Source, source)
		}
	}
}

func suggestDonations(w *Writer) {
	var planets []domain.Planet
	seen := make(map[domain.Planet]bool)
	for _, pair := range domain.DashaPairs {
		planet := domain.Planet(w.Get(pair.Planet))
		if planet == "" || seen[planet] || !strings.Contains(w.Get(pair.Source), donationTrigger) {
			continue
		}
		seen[planet] = true
		planets = append(planets, planet)
	}

	todo := make([]string, 0, len(planets))
	whom := make([]string, 0, len(planets))
	for _, p := range planets {
		info, ok := lookup.DonationFor(p)
		if !ok {
			todo = append(todo, p.String())
			whom = append(whom, p.String())
			continue
		}
		todo = append(todo, fmt.Sprintf("%s (%s): %s", p, info.Day, info.Items))
		whom = append(whom, fmt.Sprintf("%s: %s", p, info.Beneficiaries))
	}

	w.Set(domain.FieldDonationsToDo, strings.Join(todo, "\n\n"))
	w.Set(domain.FieldDonationsToWhom, strings.Join(whom, "\n"))
}

func suggestGemstone(w *Writer) {
	planet := domain.Planet(w.Get(domain.FieldGemstonePlanet))
	g, ok := lookup.GemstoneFor(planet)
	if !ok {
		w.Set(domain.FieldGemstones, "")
		return
	}
	w.Set(domain.FieldGemstones, fmt.Sprintf("%s - %s (%s)", planet, g.English, g.Hindi))
}

func suggestMantra(w *Writer) {
	planet := domain.Planet(w.Get(domain.FieldMantraPlanet))
	m, ok := lookup.MantraFor(planet)
	if !ok {
		w.Set(domain.FieldMantra, "")
		return
	}
	w.Set(domain.FieldMantra, fmt.Sprintf("%s - %s: %s", planet, m.Deity, m.Text))
}

var nakshatraOutputs = []domain.Field{
	domain.FieldMobileDisplayPicture,
	domain.FieldBeneficialSymbols,
	domain.FieldNakshatraProsperitySymbols,
	domain.FieldNakshatraMentalPhysicalWellbeing,
	domain.FieldNakshatraAccomplishments,
	domain.FieldNakshatraAvoidSymbols,
}

// fillNakshatra copies the six symbol blocks. An unknown name leaves the
// fields as they were.
func fillNakshatra(w *Writer) {
	n, ok := lookup.NakshatraByName(w.Get(domain.FieldBirthNakshatra))
	if !ok {
		return
	}
	w.Set(domain.FieldMobileDisplayPicture, n.MobileDisplayPicture)
	w.Set(domain.FieldBeneficialSymbols, n.Beneficial)
	w.Set(domain.FieldNakshatraProsperitySymbols, n.Prosperity)
	w.Set(domain.FieldNakshatraMentalPhysicalWellbeing, n.MentalPhysical)
	w.Set(domain.FieldNakshatraAccomplishments, n.Accomplishments)
	w.Set(domain.FieldNakshatraAvoidSymbols, n.Avoid)
}

func inkColor(w *Writer) {
	planets := lookup.PlanetsFor(domain.Direction(w.Get(domain.FieldLaughingBuddhaDirection)))
	if len(planets) == 0 {
		w.Set(domain.FieldWishListInkColor, "")
		return
	}
	w.Set(domain.FieldWishListInkColor, strings.Join(lookup.ColorsFor(planets[0], 2), " or "))
}

func recommendBooks(w *Writer) {
	var blocks []string
	seen := make(map[domain.Planet]bool)
	for _, field := range []domain.Field{domain.FieldMahadashaPlanet, domain.FieldAntardashaPlanet} {
		planet := domain.Planet(w.Get(field))
		if planet == "" || seen[planet] {
			continue
		}
		seen[planet] = true

		list := lookup.BooksFor(planet, booksPerPlanet)
		if len(list) == 0 {
			continue
		}
		blocks = append(blocks, planet.String()+":\n"+bullets(list))
	}
	w.Set(domain.FieldImportantBooks, strings.Join(blocks, "\n\n"))
}

func giftsRule(source, output domain.Field) func(*Writer) {
	return func(w *Writer) {
		w.Set(output, bullets(lookup.GiftsFor(domain.Planet(w.Get(source)))))
	}
}

func mindsetRule(source, output domain.Field, table func(domain.Planet) (string, bool)) func(*Writer) {
	return func(w *Writer) {
		text, _ := table(domain.Planet(w.Get(source)))
		w.Set(output, text)
	}
}

// FormatRelation renders a Bhrigunanda Nadi chain such as "SA-SU-MA(b)".
// Links without a code are skipped; a chain with no codes renders as "".
func FormatRelation(prefix string, links []domain.RelationLink) string {
	parts := []string{prefix}
	for _, l := range links {
		if l.Code == "" {
			continue
		}
		code := l.Code
		if l.Benefic {
			code += "(b)"
		}
		parts = append(parts, code)
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, "-")
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
