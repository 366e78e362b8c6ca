package form

import (
	"errors"
	"strings"

	"github.com/de-tools/destiny-report/pkg/models/domain"
)

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrReadOnlyField     = errors.New("field is read-only")
	ErrInvalidValue      = errors.New("invalid value")
	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrRecordNotFound    = errors.New("record not found")
)

var requiredMessages = map[domain.Field]string{
	domain.FieldName:         "Name is required",
	domain.FieldDateOfBirth:  "Date of birth is required",
	domain.FieldTimeOfBirth:  "Time of birth is required",
	domain.FieldPlaceOfBirth: "Place of birth is required",
	domain.FieldReportType:   "Please select a report format",
}

// ValidationError carries one message per missing required field.
type ValidationError struct {
	Fields map[domain.Field]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range domain.RequiredFields {
		if msg, ok := e.Fields[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
