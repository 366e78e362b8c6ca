package domain

// Attachment is an uploaded document or image. Data holds the content when it
// was uploaded in memory; otherwise Path points at a file read on export.
type Attachment struct {
	Name     string
	MimeType string
	Data     []byte
	Path     string
}

func (a *Attachment) Clone() *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

// KundliPages are the chart pages the report service merges in front of the
// generated document.
var KundliPages = []int{1, 3, 4}
