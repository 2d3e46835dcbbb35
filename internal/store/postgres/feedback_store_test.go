package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NomadCrew/feedback-service/internal/store"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedbackColumns = []string{"id", "username", "message", "created_at"}

func strPtr(s string) *string { return &s }

func setupMockStore(t *testing.T) (*FeedbackStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewFeedbackStore(mock), mock
}

func TestFeedbackStore_Insert(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("with username", func(t *testing.T) {
		s, mock := setupMockStore(t)
		username := strPtr("Alice")

		mock.ExpectQuery("INSERT INTO feedbacks").
			WithArgs(username, "Great service!").
			WillReturnRows(pgxmock.NewRows(feedbackColumns).AddRow(int64(1), username, "Great service!", now))

		fb, err := s.Insert(ctx, username, "Great service!")

		require.NoError(t, err)
		assert.Equal(t, int64(1), fb.ID)
		require.NotNil(t, fb.Username)
		assert.Equal(t, "Alice", *fb.Username)
		assert.Equal(t, "Great service!", fb.Message)
		assert.Equal(t, now, fb.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without username", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery("INSERT INTO feedbacks").
			WithArgs((*string)(nil), "hello").
			WillReturnRows(pgxmock.NewRows(feedbackColumns).AddRow(int64(2), nil, "hello", now))

		fb, err := s.Insert(ctx, nil, "hello")

		require.NoError(t, err)
		assert.Equal(t, int64(2), fb.ID)
		assert.Nil(t, fb.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		s, mock := setupMockStore(t)
		dbErr := errors.New("connection refused")

		mock.ExpectQuery("INSERT INTO feedbacks").
			WithArgs((*string)(nil), "hello").
			WillReturnError(dbErr)

		fb, err := s.Insert(ctx, nil, "hello")

		assert.Nil(t, fb)
		require.Error(t, err)
		assert.True(t, store.IsStorageError(err))
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedbackStore_ListAll(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("empty table", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		page, err := s.ListAll(ctx, 0, 20)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, int64(0), page.TotalElements)
		assert.Equal(t, 0, page.TotalPages)
		assert.True(t, page.First)
		assert.True(t, page.Last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second page of 25 entries", func(t *testing.T) {
		s, mock := setupMockStore(t)

		rows := pgxmock.NewRows(feedbackColumns)
		for i := 5; i >= 1; i-- {
			rows.AddRow(int64(i), strPtr("Alice"), "message", now.Add(-time.Duration(25-i)*time.Second))
		}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(25)))
		mock.ExpectQuery("SELECT id, username, message, created_at FROM feedbacks").
			WithArgs(20, int64(20)).
			WillReturnRows(rows)

		page, err := s.ListAll(ctx, 1, 20)

		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, int64(25), page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 20, page.Size)
		assert.False(t, page.First)
		assert.True(t, page.Last)
		assert.Equal(t, int64(5), page.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null username scanned as nil", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
		mock.ExpectQuery("SELECT id, username, message, created_at FROM feedbacks").
			WithArgs(20, int64(0)).
			WillReturnRows(pgxmock.NewRows(feedbackColumns).
				AddRow(int64(2), nil, "second", now).
				AddRow(int64(1), strPtr("Bob"), "first", now.Add(-time.Minute)))

		page, err := s.ListAll(ctx, 0, 20)

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Nil(t, page.Items[0].Username)
		require.NotNil(t, page.Items[1].Username)
		assert.Equal(t, "Bob", *page.Items[1].Username)
		assert.True(t, page.First)
		assert.True(t, page.Last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("page beyond the end skips the item query", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

		page, err := s.ListAll(ctx, 4, 20)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(3), page.TotalElements)
		assert.Equal(t, 1, page.TotalPages)
		assert.True(t, page.Last)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("huge page index returns an empty page", func(t *testing.T) {
		for _, tc := range []struct {
			page int
			size int
		}{
			{1 << 62, 4}, // offset wraps to zero
			{1 << 61, 6}, // offset wraps negative
		} {
			s, mock := setupMockStore(t)

			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(100)))

			page, err := s.ListAll(ctx, tc.page, tc.size)

			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Equal(t, int64(100), page.TotalElements)
			assert.Equal(t, tc.page, page.Number)
			assert.False(t, page.First)
			assert.True(t, page.Last)
			assert.NoError(t, mock.ExpectationsWereMet())
		}
	})

	t.Run("invalid page request", func(t *testing.T) {
		s, mock := setupMockStore(t)

		_, err := s.ListAll(ctx, -1, 20)
		assert.ErrorIs(t, err, store.ErrInvalidPage)

		_, err = s.ListAll(ctx, 0, 0)
		assert.ErrorIs(t, err, store.ErrInvalidPage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count fails", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnError(errors.New("timeout"))

		page, err := s.ListAll(ctx, 0, 20)

		assert.Nil(t, page)
		assert.True(t, store.IsStorageError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query fails", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
		mock.ExpectQuery("SELECT id, username, message, created_at FROM feedbacks").
			WithArgs(20, int64(0)).
			WillReturnError(errors.New("timeout"))

		page, err := s.ListAll(ctx, 0, 20)

		assert.Nil(t, page)
		assert.True(t, store.IsStorageError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeedbackStore_ListByUsername(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("matching entries", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks WHERE username = \$1`).
			WithArgs("Alice").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
		mock.ExpectQuery("SELECT id, username, message, created_at FROM feedbacks").
			WithArgs("Alice", 10, int64(0)).
			WillReturnRows(pgxmock.NewRows(feedbackColumns).
				AddRow(int64(7), strPtr("Alice"), "newer", now).
				AddRow(int64(3), strPtr("Alice"), "older", now.Add(-time.Hour)))

		page, err := s.ListByUsername(ctx, "Alice", 0, 10)

		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		for _, fb := range page.Items {
			require.NotNil(t, fb.Username)
			assert.Equal(t, "Alice", *fb.Username)
		}
		assert.Equal(t, int64(7), page.Items[0].ID)
		assert.Equal(t, int64(2), page.TotalElements)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matches", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks WHERE username = \$1`).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

		page, err := s.ListByUsername(ctx, "alice", 0, 10)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("huge page index returns an empty page", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks WHERE username = \$1`).
			WithArgs("Alice").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(9)))

		page, err := s.ListByUsername(ctx, "Alice", 1<<62, 4)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(9), page.TotalElements)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row error", func(t *testing.T) {
		s, mock := setupMockStore(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM feedbacks WHERE username = \$1`).
			WithArgs("Alice").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
		mock.ExpectQuery("SELECT id, username, message, created_at FROM feedbacks").
			WithArgs("Alice", 10, int64(0)).
			WillReturnRows(pgxmock.NewRows(feedbackColumns).
				AddRow(int64(7), strPtr("Alice"), "newer", now).
				RowError(0, errors.New("broken row")))

		page, err := s.ListByUsername(ctx, "Alice", 0, 10)

		assert.Nil(t, page)
		assert.True(t, store.IsStorageError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
