package postgres

import (
	"context"
	"fmt"

	"github.com/NomadCrew/feedback-service/internal/store"
	"github.com/NomadCrew/feedback-service/types"
	"github.com/jackc/pgx/v5"
)

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

const (
	insertFeedbackSQL = `INSERT INTO feedbacks (username, message)
		VALUES ($1, $2)
		RETURNING id, username, message, created_at`

	countFeedbacksSQL = `SELECT COUNT(*) FROM feedbacks`

	listFeedbacksSQL = `SELECT id, username, message, created_at FROM feedbacks
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	countFeedbacksByUsernameSQL = `SELECT COUNT(*) FROM feedbacks WHERE username = $1`

	listFeedbacksByUsernameSQL = `SELECT id, username, message, created_at FROM feedbacks
		WHERE username = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
)

// FeedbackStore implements store.FeedbackStore on PostgreSQL.
type FeedbackStore struct {
	db store.DBTX
}

// NewFeedbackStore creates a feedback store backed by db, usually a *pgxpool.Pool.
func NewFeedbackStore(db store.DBTX) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// Insert adds a new entry. id and created_at are assigned by the database.
func (s *FeedbackStore) Insert(ctx context.Context, username *string, message string) (*types.Feedback, error) {
	var fb types.Feedback
	err := s.db.QueryRow(ctx, insertFeedbackSQL, username, message).Scan(
		&fb.ID,
		&fb.Username,
		&fb.Message,
		&fb.CreatedAt,
	)
	if err != nil {
		return nil, store.NewStorageError("insert feedback", err)
	}
	return &fb, nil
}

// ListAll returns one page of all entries, newest first.
func (s *FeedbackStore) ListAll(ctx context.Context, pageNumber, pageSize int) (*types.Page[types.Feedback], error) {
	if err := checkPage(pageNumber, pageSize); err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.QueryRow(ctx, countFeedbacksSQL).Scan(&total); err != nil {
		return nil, store.NewStorageError("count feedbacks", err)
	}

	if types.PastEnd(pageNumber, pageSize, total) {
		return types.NewPage[types.Feedback](nil, total, pageNumber, pageSize), nil
	}
	offset := types.Offset(pageNumber, pageSize)

	rows, err := s.db.Query(ctx, listFeedbacksSQL, pageSize, offset)
	if err != nil {
		return nil, store.NewStorageError("list feedbacks", err)
	}
	items, err := scanFeedbacks(rows)
	if err != nil {
		return nil, store.NewStorageError("list feedbacks", err)
	}

	return types.NewPage(items, total, pageNumber, pageSize), nil
}

// ListByUsername returns one page of the entries whose stored username equals
// username exactly.
func (s *FeedbackStore) ListByUsername(ctx context.Context, username string, pageNumber, pageSize int) (*types.Page[types.Feedback], error) {
	if err := checkPage(pageNumber, pageSize); err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.QueryRow(ctx, countFeedbacksByUsernameSQL, username).Scan(&total); err != nil {
		return nil, store.NewStorageError("count feedbacks by username", err)
	}

	if types.PastEnd(pageNumber, pageSize, total) {
		return types.NewPage[types.Feedback](nil, total, pageNumber, pageSize), nil
	}
	offset := types.Offset(pageNumber, pageSize)

	rows, err := s.db.Query(ctx, listFeedbacksByUsernameSQL, username, pageSize, offset)
	if err != nil {
		return nil, store.NewStorageError("list feedbacks by username", err)
	}
	items, err := scanFeedbacks(rows)
	if err != nil {
		return nil, store.NewStorageError("list feedbacks by username", err)
	}

	return types.NewPage(items, total, pageNumber, pageSize), nil
}

func scanFeedbacks(rows pgx.Rows) ([]types.Feedback, error) {
	defer rows.Close()

	var feedbacks []types.Feedback
	for rows.Next() {
		var fb types.Feedback
		if err := rows.Scan(&fb.ID, &fb.Username, &fb.Message, &fb.CreatedAt); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func checkPage(pageNumber, pageSize int) error {
	if pageNumber < 0 || pageSize < 1 {
		return fmt.Errorf("%w: page=%d size=%d", store.ErrInvalidPage, pageNumber, pageSize)
	}
	return nil
}
