package store

import (
	"context"

	"github.com/NomadCrew/feedback-service/types"
	"github.com/jackc/pgx/v5"
)

// DBTX is the subset of a pgx connection used by the stores. Both
// *pgxpool.Pool and pgxmock pools satisfy it.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FeedbackStore persists feedback entries and reads them back newest first
// (created_at DESC, id DESC). Entries are never updated or deleted.
type FeedbackStore interface {
	// Insert stores an already sanitized entry and returns it with its
	// server-assigned id and creation time.
	Insert(ctx context.Context, username *string, message string) (*types.Feedback, error)
	ListAll(ctx context.Context, pageNumber, pageSize int) (*types.Page[types.Feedback], error)
	// ListByUsername matches username exactly and case-sensitively.
	ListByUsername(ctx context.Context, username string, pageNumber, pageSize int) (*types.Page[types.Feedback], error)
}
