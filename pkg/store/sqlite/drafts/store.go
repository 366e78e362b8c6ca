package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/models/store"
)

var ErrNotFound = domain.ErrDraftNotFound

type Store interface {
	Save(ctx context.Context, draft domain.Draft) error
	Load(ctx context.Context, id string) (*domain.Draft, error)
	List(ctx context.Context) ([]domain.DraftSummary, error)
	Delete(ctx context.Context, id string) error
}

type payload struct {
	Form      *domain.ReportFormData `json:"form"`
	Overrides []domain.Field         `json:"overrides,omitempty"`
}

type defaultStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &defaultStore{db: db}, nil
}

func toRecord(d domain.Draft) (store.Draft, error) {
	if d.ID == "" {
		return store.Draft{}, fmt.Errorf("draft id is required")
	}
	data, err := json.Marshal(payload{Form: d.Form, Overrides: d.Overrides})
	if err != nil {
		return store.Draft{}, fmt.Errorf("marshal draft: %w", err)
	}
	return store.Draft{
		ID:         d.ID,
		ClientName: d.ClientName,
		Payload:    data,
		UpdatedAt:  d.UpdatedAt.UTC(),
	}, nil
}

func fromRecord(r store.Draft) (*domain.Draft, error) {
	var p payload
	if err := json.Unmarshal(r.Payload, &p); err != nil {
		return nil, fmt.Errorf("unmarshal draft %q: %w", r.ID, err)
	}
	return &domain.Draft{
		ID:         r.ID,
		ClientName: r.ClientName,
		Form:       p.Form,
		Overrides:  p.Overrides,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

// Save inserts the draft or replaces the one with the same id.
func (s *defaultStore) Save(ctx context.Context, draft domain.Draft) error {
	record, err := toRecord(draft)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO drafts (id, client_name, payload, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			client_name = excluded.client_name,
			payload = excluded.payload,
			updated_at = excluded.updated_at`

	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.ClientName, record.Payload, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *defaultStore) Load(ctx context.Context, id string) (*domain.Draft, error) {
	query := `SELECT id, client_name, payload, updated_at FROM drafts WHERE id = ?`

	var r store.Draft
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&r.ID, &r.ClientName, &r.Payload, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return fromRecord(r)
}

// List returns every draft, most recently saved first.
func (s *defaultStore) List(ctx context.Context) ([]domain.DraftSummary, error) {
	query := `SELECT id, client_name, updated_at FROM drafts ORDER BY updated_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	summaries := []domain.DraftSummary{}
	for rows.Next() {
		var d domain.DraftSummary
		if err := rows.Scan(&d.ID, &d.ClientName, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		summaries = append(summaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}
	return summaries, nil
}

func (s *defaultStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}
