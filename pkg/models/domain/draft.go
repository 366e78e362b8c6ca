package domain

import (
	"errors"
	"time"
)

var ErrDraftNotFound = errors.New("draft not found")

// Draft is a saved editing session, kept so a failed or unfinished report
// can be corrected later.
type Draft struct {
	ID         string
	ClientName string
	Form       *ReportFormData
	Overrides  []Field
	UpdatedAt  time.Time
}

// DraftSummary is a draft listing entry without the form payload.
type DraftSummary struct {
	ID         string
	ClientName string
	UpdatedAt  time.Time
}
