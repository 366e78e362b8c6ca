package derive

import "github.com/de-tools/destiny-report/pkg/models/domain"

// Writer is the only way a rule mutates the form. It skips fields the
// practitioner has overridden and records what actually changed so the
// engine can cascade.
type Writer struct {
	state   *State
	newID   func() string
	pending map[domain.Field]bool
	changed []domain.Field
}

func (w *Writer) Form() *domain.ReportFormData {
	return w.state.Form
}

// Changed reports whether field is part of the change set being processed.
func (w *Writer) Changed(field domain.Field) bool {
	return w.pending[field]
}

// Get returns the current string value of a scalar field.
func (w *Writer) Get(field domain.Field) string {
	if p := w.state.Form.Text(field); p != nil {
		return *p
	}
	return ""
}

// Set writes value unless the field is overridden or already holds it.
func (w *Writer) Set(field domain.Field, value string) {
	if w.state.Overrides[field] {
		return
	}
	p := w.state.Form.Text(field)
	if p == nil || *p == value {
		return
	}
	*p = value
	w.changed = append(w.changed, field)
}

// Fill writes value only when the field is currently empty.
func (w *Writer) Fill(field domain.Field, value string) {
	p := w.state.Form.Text(field)
	if p == nil || *p != "" || value == "" {
		return
	}
	*p = value
	w.changed = append(w.changed, field)
}

// Touch records a structural change to a list field made through Form.
func (w *Writer) Touch(field domain.Field) {
	w.changed = append(w.changed, field)
}

func (w *Writer) LastSource() map[domain.Planet]string {
	return w.state.LastSource
}

func (w *Writer) NewID() string {
	return w.newID()
}
