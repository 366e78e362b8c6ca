package store

import "time"

// Draft is a row of the drafts table. Payload is the JSON encoded form.
type Draft struct {
	ID         string
	ClientName string
	Payload    []byte
	UpdatedAt  time.Time
}
