// Package sqlite is the embedded, pure-Go storage backend built on database/sql and modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/fx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"lobby/config"
	"lobby/internal/domain/lifecycle"
	"lobby/internal/errors"
	"lobby/internal/infra/persistence/migrations"
)

const driverName = "sqlite"

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database file and registers ping, migration and close hooks.
func New(params Params) (*sql.DB, error) {
	db, err := Open(params.Config.Storage.SQLitePath)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			if params.Config.Storage.AutoMigrate {
				return migrations.Up(ctx, db, migrations.SQLite, params.Logger)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open opens a SQLite database at path with foreign keys enforced.
// A single connection serialises writers, which is what SQLite supports anyway.
func Open(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
