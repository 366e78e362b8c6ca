// Package preview freezes a form into the read-only view shown before
// export and turns that view into the payload the report service accepts.
package preview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/domain"
)

const (
	Title = "DESTINY REPORT"

	timestampLayout = "January 2, 2006 at 3:04 PM"
	periodLayout    = "Jan 2, 2006"
	inputDateLayout = "2006-01-02"
)

type Entry struct {
	Label string
	Value string
}

type Section struct {
	Title   string
	Entries []Entry
}

type HouseMapSummary struct {
	ID    string
	Label string
	Lines []string
}

// PreviewData is an immutable snapshot. Form is a private copy, so later
// edits to the session never show up here.
type PreviewData struct {
	Form          *domain.ReportFormData
	Title         string
	Sections      []Section
	DashaChains   map[domain.DashaLevel]string
	HouseAspects  []string
	PlanetAspects []string
	Removals      []string
	Placements    []string
	HouseMaps     []HouseMapSummary
	GeneratedAt   time.Time
}

func (p *PreviewData) Timestamp() string {
	return "Generated on: " + p.GeneratedAt.Format(timestampLayout)
}

func BuildPreview(form *domain.ReportFormData, generatedAt time.Time) *PreviewData {
	frozen := form.Clone()

	p := &PreviewData{
		Form:          frozen,
		Title:         Title,
		DashaChains:   make(map[domain.DashaLevel]string, len(domain.DashaLevels)),
		HouseAspects:  houseAspectLines(frozen.AspectsOnHouses),
		PlanetAspects: planetAspectLines(frozen.AspectsOnPlanets),
		Removals:      removalLines(frozen.RemovalItems),
		Placements:    placementLines(frozen.PlacementItems),
		HouseMaps:     houseMapSummaries(frozen.HouseMaps),
		GeneratedAt:   generatedAt,
	}
	for _, level := range domain.DashaLevels {
		p.DashaChains[level] = DashaChain(frozen.Dasha(level), level == domain.DashaPratyantar)
	}
	p.Sections = p.buildSections()
	return p
}

// DashaChain renders "Planet(Source), NL(NL Source), (Additional house),
// SL(SL Source)". Empty parts are left out.
func DashaChain(d *domain.Dasha, withPeriod bool) string {
	var parts []string
	withSource := func(p domain.Planet, source string) {
		if p == "" {
			return
		}
		if source == "" {
			parts = append(parts, p.String())
			return
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", p, source))
	}

	withSource(d.Planet, d.Source)
	withSource(d.NL, d.NLSource)
	if d.AdditionalHouse != "" {
		parts = append(parts, "("+d.AdditionalHouse+")")
	}
	withSource(d.SL, d.SLSource)
	if d.NoStar {
		parts = append(parts, "No Star")
	}
	if withPeriod && d.PeriodFrom != "" && d.PeriodTo != "" {
		parts = append(parts, fmt.Sprintf("Period: %s - %s", periodDate(d.PeriodFrom), periodDate(d.PeriodTo)))
	}
	return strings.Join(parts, ", ")
}

func periodDate(s string) string {
	t, err := time.Parse(inputDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(periodLayout)
}

// joinAnd renders "a", "a and b" or "a, b and c".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// houseAspectLines renders one line per planet, e.g.
// "Mars hits House 7 and 8 at 90°, House 4 at 180°".
func houseAspectLines(aspects []domain.HouseAspect) []string {
	var lines []string
	for _, a := range aspects {
		if a.Planet == "" {
			continue
		}
		var hits []string
		for _, g := range a.Groups {
			if len(g.Houses) == 0 {
				continue
			}
			houses := make([]string, 0, len(g.Houses))
			for _, h := range g.Houses {
				houses = append(houses, strconv.Itoa(h))
			}
			hits = append(hits, fmt.Sprintf("House %s at %d°", joinAnd(houses), g.Degree))
		}
		if len(hits) > 0 {
			lines = append(lines, fmt.Sprintf("%s hits %s", a.Planet, strings.Join(hits, ", ")))
		}
	}
	return lines
}

func planetAspectLines(aspects []domain.PlanetAspect) []string {
	var lines []string
	for _, a := range aspects {
		if a.Planet == "" {
			continue
		}
		var hits []string
		for _, g := range a.Groups {
			if len(g.Planets) == 0 {
				continue
			}
			names := make([]string, 0, len(g.Planets))
			for _, p := range g.Planets {
				names = append(names, p.String())
			}
			hits = append(hits, fmt.Sprintf("Planet %s at %d°", joinAnd(names), g.Degree))
		}
		if len(hits) > 0 {
			lines = append(lines, fmt.Sprintf("%s hits %s", a.Planet, strings.Join(hits, ", ")))
		}
	}
	return lines
}

func removalLines(items []domain.RemovalItem) []string {
	var lines []string
	for _, r := range items {
		dirs := r.Directions()
		if r.Planet == "" || len(dirs) == 0 {
			continue
		}
		names := make([]string, 0, len(dirs))
		for _, d := range dirs {
			names = append(names, d.String())
		}
		lines = append(lines, fmt.Sprintf("Remove %s from %s", r.Planet, strings.Join(names, " and ")))
	}
	return lines
}

func placementLines(items []domain.PlacementItem) []string {
	var lines []string
	for _, p := range items {
		if p.Planet == "" || p.Direction == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("Place %s in %s", p.Planet, p.Direction))
	}
	return lines
}

func houseMapSummaries(maps []domain.HouseMap) []HouseMapSummary {
	summaries := make([]HouseMapSummary, 0, len(maps))
	for _, m := range maps {
		s := HouseMapSummary{ID: m.ID, Label: m.Label}
		for _, r := range m.Rooms {
			if r.Direction != "" {
				s.Lines = append(s.Lines, fmt.Sprintf("%s: %s", r.Room, r.Direction))
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
