package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/destiny-report/pkg/models/api"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestMapDomainFormToAPI(t *testing.T) {
	f := &domain.ReportFormData{
		Client: domain.ClientInfo{Name: "Asha Verma"},
		AspectsOnHouses: []domain.HouseAspect{{
			ID:     "a1",
			Planet: domain.PlanetSaturn,
			Groups: []domain.HouseGroup{{ID: "g1", Houses: []int{3, 7}, Degree: 90}},
		}},
		AspectsOnPlanets: []domain.PlanetAspect{{
			ID:     "a2",
			Planet: domain.PlanetMars,
			Groups: []domain.PlanetGroup{{ID: "g2", Planets: []domain.Planet{domain.PlanetSun}, Degree: 180}},
		}},
		SaturnRelationPlanets: []domain.RelationLink{{ID: "l1", Code: "JU", Benefic: true}},
		HouseMaps: []domain.HouseMap{{
			ID:    "m1",
			Label: "Ground floor",
			Image: &domain.Attachment{Name: "plan.png", MimeType: "image/png", Data: []byte("1234")},
			Rooms: []domain.RoomDirection{{Room: "Kitchen", Direction: domain.DirectionSouthEast}},
		}},
		ReportType: domain.ReportTypePDF,
	}
	f.Mahadasha.NoStar = true

	out := MapDomainFormToAPI(f, []domain.Field{domain.FieldGemstones}, []domain.ReportType{domain.ReportTypePDF})

	assert.Equal(t, "Asha Verma", out.Fields["name"])
	assert.Equal(t, "true", out.Fields["mahadasha_no_star"])
	assert.Equal(t, "false", out.Fields["antardasha_no_star"])
	assert.Equal(t, []string{"gemstones"}, out.Overridden)
	assert.Equal(t, []string{"pdf"}, out.ReportTypes)
	assert.Nil(t, out.Kundli)
	assert.Empty(t, out.RemovalItems)
	assert.NotNil(t, out.VenusRelationPlanets)

	want := []api.HouseAspect{{ID: "a1", Planet: "Saturn", Groups: []api.HouseGroup{{ID: "g1", Houses: []int{3, 7}, Degree: 90}}}}
	if diff := cmp.Diff(want, out.AspectsOnHouses); diff != "" {
		t.Errorf("house aspects mismatch (-want +got):\n%s", diff)
	}
	wantPlanets := []api.PlanetAspect{{ID: "a2", Planet: "Mars", Groups: []api.PlanetGroup{{ID: "g2", Planets: []string{"Sun"}, Degree: 180}}}}
	if diff := cmp.Diff(wantPlanets, out.AspectsOnPlanets); diff != "" {
		t.Errorf("planet aspects mismatch (-want +got):\n%s", diff)
	}
	wantMaps := []api.HouseMap{{
		ID:    "m1",
		Label: "Ground floor",
		Image: &api.Attachment{Name: "plan.png", MimeType: "image/png", Size: 4},
		Rooms: []api.Room{{Room: "Kitchen", Direction: "South-East"}},
	}}
	if diff := cmp.Diff(wantMaps, out.HouseMaps); diff != "" {
		t.Errorf("house maps mismatch (-want +got):\n%s", diff)
	}
}

func TestMapPreviewToAPI(t *testing.T) {
	p := &preview.PreviewData{
		Form:     &domain.ReportFormData{ReportType: domain.ReportTypeDOCX},
		Title:    preview.Title,
		Sections: []preview.Section{{Title: "ABOUT THE CLIENT", Entries: []preview.Entry{{Label: "Name", Value: "Asha Verma"}}}},
		DashaChains: map[domain.DashaLevel]string{
			domain.DashaMaha:  "Jupiter",
			domain.DashaAntar: "",
		},
		GeneratedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	out := MapPreviewToAPI(p)

	assert.Equal(t, "docx", out.ReportType)
	assert.Equal(t, "Generated on: January 1, 2025 at 10:00 AM", out.Generated)
	assert.Equal(t, map[string]string{"mahadasha": "Jupiter"}, out.DashaChains)
	assert.Equal(t, []string{}, out.HouseAspects)
	assert.Equal(t, []api.Section{{Title: "ABOUT THE CLIENT", Entries: []api.Entry{{Label: "Name", Value: "Asha Verma"}}}}, out.Sections)
}

func TestLookups(t *testing.T) {
	_, ok := MapPlanetToAPI("Pluto")
	assert.False(t, ok)

	jupiter, ok := MapPlanetToAPI(domain.PlanetJupiter)
	assert.True(t, ok)
	assert.Equal(t, "JU", jupiter.Code)
	assert.NotNil(t, jupiter.Colors)

	_, ok = MapDirectionToAPI("Up")
	assert.False(t, ok)
	_, ok = MapNakshatraToAPI("Nowhere")
	assert.False(t, ok)
}
