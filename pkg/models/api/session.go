package api

import "time"

type Error struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type Session struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Exporting  bool      `json:"exporting"`
}

type Draft struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Backend   string `json:"backend,omitempty"`
}

type Created struct {
	ID string `json:"id"`
}

type CreatedList struct {
	IDs []string `json:"ids"`
}

type Applied struct {
	Fields []string `json:"fields"`
}

type ExportRequest struct {
	Filename string `json:"filename"`
}
