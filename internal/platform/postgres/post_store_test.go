package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unusableDB satisfies store.DBTX but fails the test if touched. The
// unparseable-id paths must resolve before any query is issued.
type unusableDB struct {
	store.DBTX
	t *testing.T
}

func newUnusableDB(t *testing.T) *unusableDB {
	return &unusableDB{t: t}
}

// errRecorded aborts a recorded query so no rows need materializing.
var errRecorded = errors.New("recorded")

// recordingDB satisfies store.DBTX and captures the text and arguments of
// the query issued against it.
type recordingDB struct {
	store.DBTX
	query string
	args  []any
}

func (db *recordingDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	db.query = query
	db.args = args
	return nil, errRecorded
}

func TestPostStore_UnparseableIDIsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		op   func(s *PostgresPostStore) error
	}{
		{
			name: "GetByID",
			op: func(s *PostgresPostStore) error {
				_, err := s.GetByID(ctx, "invalid-id")
				return err
			},
		},
		{
			name: "Update",
			op: func(s *PostgresPostStore) error {
				title := "new title"
				_, err := s.Update(ctx, "invalid-id", store.PostUpdate{Title: &title})
				return err
			},
		},
		{
			name: "Delete",
			op: func(s *PostgresPostStore) error {
				return s.Delete(ctx, "invalid-id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewPostgresPostStore(newUnusableDB(t), nil)
			err := tt.op(s)
			assert.ErrorIs(t, err, store.ErrPostNotFound)
		})
	}
}

func TestPostStore_ListQueryShape(t *testing.T) {
	t.Parallel()

	t.Run("listing is newest-first with a trailing window", func(t *testing.T) {
		t.Parallel()

		db := &recordingDB{}
		s := NewPostgresPostStore(db, nil)

		_, err := s.List(context.Background(), store.PostFilter{Offset: 20, Limit: 10})
		require.ErrorIs(t, err, errRecorded)

		assert.Contains(t, db.query, "ORDER BY created_at DESC")
		assert.Contains(t, db.query, "LIMIT $1 OFFSET $2")
		assert.Equal(t, []any{10, 20}, db.args)
	})

	t.Run("category filter shifts the window placeholders", func(t *testing.T) {
		t.Parallel()

		categoryID := uuid.New()
		db := &recordingDB{}
		s := NewPostgresPostStore(db, nil)

		_, err := s.List(context.Background(), store.PostFilter{
			CategoryID: categoryID.String(),
			Offset:     5,
			Limit:      5,
		})
		require.ErrorIs(t, err, errRecorded)

		assert.Contains(t, db.query, "WHERE category_id = $1")
		assert.Contains(t, db.query, "ORDER BY created_at DESC")
		assert.Contains(t, db.query, "LIMIT $2 OFFSET $3")
		assert.Equal(t, []any{categoryID, 5, 5}, db.args)
	})
}

func TestPostStore_InvalidCategoryFilterIsFault(t *testing.T) {
	t.Parallel()

	s := NewPostgresPostStore(newUnusableDB(t), nil)
	filter := store.PostFilter{CategoryID: "not-a-uuid", Limit: 10}

	_, err := s.List(context.Background(), filter)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	_, err = s.Count(context.Background(), filter)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestCategoryStore_UnparseableIDIsNotFound(t *testing.T) {
	t.Parallel()

	s := NewPostgresCategoryStore(newUnusableDB(t), nil)

	_, err := s.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}
