package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/destiny-report/pkg/services/preview"
)

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 32,
		ValueWidth: 80,
	}
}

// Reporter prints a report preview as one table per section.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// rows splits a multi line value so continuation lines get an empty label.
func (c *Reporter) rows(label, value string) []string {
	var out []string
	for i, line := range strings.Split(value, "\n") {
		if i > 0 {
			label = ""
		}
		out = append(out, fmt.Sprintf("| %-*s | %-*s |",
			c.config.LabelWidth, label,
			c.config.ValueWidth, line))
	}
	return out
}

func (c *Reporter) Handle(p *preview.PreviewData) error {
	funcMap := template.FuncMap{
		"rows": c.rows,
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
{{.Title}}
{{.Timestamp}}
Format: {{.Form.ReportType}}
{{range .Sections}}
=== {{.Title}} ===
{{separator}}
{{range .Entries}}{{range rows .Label .Value}}{{.}}
{{end}}{{end}}{{separator}}
{{end}}`

	t, err := template.New("preview").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, p)
}
