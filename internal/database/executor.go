package database

import (
	"context"
	"fmt"

	"github.com/surrealdb/surrealdb.go"
)

// Executor runs statements that don't return rows.
type Executor interface {
	Execute(ctx context.Context, query string, params map[string]any) error
}

// SurrealExecutor executes statements against a SurrealDB connection.
type SurrealExecutor struct {
	db *surrealdb.DB
}

// NewSurrealExecutor wraps a SurrealDB connection.
func NewSurrealExecutor(db *surrealdb.DB) *SurrealExecutor {
	return &SurrealExecutor{db: db}
}

// Execute runs the statement and discards its results.
func (e *SurrealExecutor) Execute(ctx context.Context, query string, params map[string]any) error {
	if _, err := surrealdb.Query[any](ctx, e.db, query, params); err != nil {
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return nil
}
