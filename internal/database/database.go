package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/surrealdb/surrealdb.go"

	"github.com/nfrund/goby-db/internal/config"
)

// NewDB creates and configures a new SurrealDB connection.
func NewDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	if err := cfg.RequireDB(); err != nil {
		return nil, NewDBError(err, "incomplete database configuration")
	}

	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb at %s: %w", redactDBURL(cfg.GetDBUrl()), err)
	}

	if cfg.GetDBUser() != "" {
		authData := &surrealdb.Auth{
			Username: cfg.GetDBUser(),
			Password: cfg.GetDBPass(),
		}
		if _, err = db.SignIn(ctx, authData); err != nil {
			db.Close(ctx)
			return nil, fmt.Errorf("failed to sign in: %w", err)
		}
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.InfoContext(ctx, "Connected to SurrealDB",
		"db_url", redactDBURL(cfg.GetDBUrl()), "ns", cfg.GetDBNs(), "db", cfg.GetDBDb())
	return db, nil
}

func redactDBURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	return parsedURL.Redacted()
}
