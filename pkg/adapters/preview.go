package adapters

import (
	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/services/preview"
)

func MapPreviewToAPI(p *preview.PreviewData) api.Preview {
	out := api.Preview{
		Title:         p.Title,
		Generated:     p.Timestamp(),
		ReportType:    p.Form.ReportType.String(),
		Sections:      make([]api.Section, 0, len(p.Sections)),
		DashaChains:   make(map[string]string, len(p.DashaChains)),
		HouseAspects:  nonNil(p.HouseAspects),
		PlanetAspects: nonNil(p.PlanetAspects),
		Removals:      nonNil(p.Removals),
		Placements:    nonNil(p.Placements),
		HouseMaps:     make([]api.HouseMapSummary, 0, len(p.HouseMaps)),
	}
	for _, s := range p.Sections {
		entries := make([]api.Entry, 0, len(s.Entries))
		for _, e := range s.Entries {
			entries = append(entries, api.Entry{Label: e.Label, Value: e.Value})
		}
		out.Sections = append(out.Sections, api.Section{Title: s.Title, Entries: entries})
	}
	for level, chain := range p.DashaChains {
		if chain != "" {
			out.DashaChains[string(level)] = chain
		}
	}
	for _, m := range p.HouseMaps {
		out.HouseMaps = append(out.HouseMaps, api.HouseMapSummary{Label: m.Label, Lines: nonNil(m.Lines)})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
