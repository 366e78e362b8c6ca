package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/destiny-report/pkg/models/api"
)

// Reporter prints lookup table entries in a plain text form.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

const planetTemplate = `
{{.Planet}} ({{.Code}})
{{if .Signs}}Rules: {{join .Signs}}
{{end}}{{if .Gemstone}}Gemstone: {{.Gemstone}}{{if .GemstoneHindi}} ({{.GemstoneHindi}}){{end}}
{{end}}{{if .Mantra}}Mantra ({{.MantraDeity}}): {{.Mantra}}
{{end}}{{if .DonationDay}}Donation: {{.DonationItems}} on {{.DonationDay}} to {{.DonationTo}}
{{end}}{{if .Colors}}Colours: {{join .Colors}}
{{end}}{{if .Books}}Books: {{join .Books}}
{{end}}{{if .Gifts}}Gifts: {{join .Gifts}}
{{end}}{{if .ProfessionalMindset}}
Professional mindset:
{{.ProfessionalMindset}}
{{end}}{{if .FinancialMindset}}
Financial mindset:
{{.FinancialMindset}}
{{end}}`

const nakshatraTemplate = `
{{.Name}}
Mobile display picture: {{.MobileDisplayPicture}}
Beneficial: {{.Beneficial}}
Prosperity: {{.Prosperity}}
Mental and physical: {{.MentalPhysical}}
Accomplishments: {{.Accomplishments}}
Avoid: {{.Avoid}}
`

const directionTemplate = `
{{.Direction}}{{if .Sanskrit}} ({{.Sanskrit}}){{end}}
{{if .Planets}}Planets: {{join .Planets}}
{{end}}{{if .Colors}}Colours: {{join .Colors}}
{{end}}{{if .Energy}}Energy: {{.Energy}}
{{end}}`

func (c *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(template.FuncMap{
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
	}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(c.writer, data)
}

func (c *Reporter) Planet(info api.PlanetInfo) error {
	return c.render("planet", planetTemplate, info)
}

func (c *Reporter) Nakshatra(info api.NakshatraInfo) error {
	return c.render("nakshatra", nakshatraTemplate, info)
}

func (c *Reporter) Direction(info api.DirectionInfo) error {
	return c.render("direction", directionTemplate, info)
}
