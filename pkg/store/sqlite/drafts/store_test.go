package drafts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/destiny-report/pkg/models/domain"
	"github.com/de-tools/destiny-report/pkg/store/sqlite"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	store, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{
		db:    db,
		store: store,
	}
}

func sampleDraft(id, name string, updated time.Time) domain.Draft {
	form := &domain.ReportFormData{ReportType: domain.ReportTypeDOCX}
	form.Client.Name = name
	form.Mahadasha.Planet = domain.PlanetJupiter
	form.Mahadasha.NoStar = true
	form.SaturnRelationPlanets = []domain.RelationLink{{ID: "l1", Code: "SU", Benefic: true}}
	form.Kundli = &domain.Attachment{Name: "chart.pdf", MimeType: "application/pdf", Data: []byte("%PDF")}
	return domain.Draft{
		ID:         id,
		ClientName: name,
		Form:       form,
		Overrides:  []domain.Field{domain.FieldWishListInkColor},
		UpdatedAt:  updated,
	}
}

func TestNewStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := setupFixture(t)
		assert.NotNil(t, f.store)
	})

	t.Run("nil db", func(t *testing.T) {
		store, err := NewStore(nil)
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestStore_SaveAndLoad(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	updated := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	draft := sampleDraft("d1", "Asha Verma", updated)
	require.NoError(t, f.store.Save(ctx, draft))

	got, err := f.store.Load(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, updated.Equal(got.UpdatedAt))
	got.UpdatedAt = draft.UpdatedAt
	if diff := cmp.Diff(&draft, got); diff != "" {
		t.Errorf("loaded draft mismatch (-want +got):\n%s", diff)
	}

	t.Run("save replaces", func(t *testing.T) {
		again := sampleDraft("d1", "Asha V.", updated.Add(time.Hour))
		require.NoError(t, f.store.Save(ctx, again))

		got, err := f.store.Load(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "Asha V.", got.ClientName)

		var count int
		require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM drafts").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := f.store.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		assert.Error(t, f.store.Save(ctx, domain.Draft{}))
	})
}

func TestStore_ListAndDelete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, f.store.Save(ctx, sampleDraft("old", "Ravi", base)))
	require.NoError(t, f.store.Save(ctx, sampleDraft("new", "Asha", base.Add(time.Hour))))

	list, err := f.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "Asha", list[0].ClientName)
	assert.Equal(t, "old", list[1].ID)

	require.NoError(t, f.store.Delete(ctx, "old"))
	assert.ErrorIs(t, f.store.Delete(ctx, "old"), ErrNotFound)

	list, err = f.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_DatabaseErrors(t *testing.T) {
	// Given: a sqlmock DB that fails every statement
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()
	boom := errors.New("disk I/O error")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO drafts (id, client_name, payload, updated_at)")).
		WithArgs("d1", "Asha", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(boom)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name, payload, updated_at FROM drafts WHERE id = ?")).
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_name", "payload", "updated_at"}).
			AddRow("d1", "Asha", []byte("{not json"), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name, updated_at FROM drafts")).
		WillReturnError(boom)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drafts WHERE id = ?")).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// When / Then
	assert.ErrorIs(t, store.Save(ctx, sampleDraft("d1", "Asha", time.Now())), boom)

	_, err = store.Load(ctx, "d1")
	assert.ErrorContains(t, err, "unmarshal draft")

	_, err = store.List(ctx)
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, store.Delete(ctx, "d1"), ErrNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}
