// Package migrations embeds the schema for every storage backend and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"lobby/internal/errors"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Dialect names the schema flavour to apply.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func (d Dialect) goose() (goose.Dialect, error) {
	switch d {
	case Postgres:
		return goose.DialectPostgres, nil
	case SQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", errors.Errorf("unsupported migration dialect %q", d)
	}
}

// Up applies every pending migration for dialect on db.
func Up(ctx context.Context, db *sql.DB, dialect Dialect, logger *slog.Logger) error {
	gooseDialect, err := dialect.goose()
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedded, string(dialect))
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return errors.Wrap(err, "create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrapf(err, "apply %s migrations", dialect)
	}

	if logger != nil {
		for _, result := range results {
			logger.InfoContext(ctx, "Migration applied",
				slog.String("dialect", string(dialect)),
				slog.String("source", result.Source.Path),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	return nil
}
