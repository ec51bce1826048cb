package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Applier pushes rendered schema definitions to the database. It runs
// each statement once, in order, and keeps no record of what was applied.
type Applier struct {
	exec    Executor
	timeout time.Duration
}

// NewApplier creates an Applier that gives each statement up to timeout.
func NewApplier(exec Executor, timeout time.Duration) (*Applier, error) {
	if exec == nil {
		return nil, NewDBError(ErrInvalidInput, "executor cannot be nil")
	}
	if timeout <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_EXECUTE_TIMEOUT must be a positive duration")
	}
	return &Applier{exec: exec, timeout: timeout}, nil
}

// Apply executes the statements and returns how many succeeded. It stops
// at the first failure.
func (a *Applier) Apply(ctx context.Context, statements []string) (int, error) {
	for i, stmt := range statements {
		if err := a.execute(ctx, stmt); err != nil {
			return i, NewDBError(err, fmt.Sprintf("statement %d of %d failed", i+1, len(statements))).WithQuery(stmt)
		}
		slog.DebugContext(ctx, "Applied schema statement", "index", i, "statement", stmt)
	}
	slog.InfoContext(ctx, "Schema applied", "statements", len(statements))
	return len(statements), nil
}

func (a *Applier) execute(ctx context.Context, stmt string) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.exec.Execute(ctx, stmt, nil)
}
