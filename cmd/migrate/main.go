// Command migrate applies the embedded schema to the configured storage
// backend. Use it when storage.autoMigrate is off.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"lobby/config"
	"lobby/internal/domain/lifecycle"
	logs "lobby/internal/infra/log"
	"lobby/internal/infra/persistence/migrations"
	"lobby/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.NewWithWriter(cfg, os.Stdout)
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, dialect, err := open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	return migrations.Up(ctx, db, dialect, logger)
}

func open(cfg *config.Config) (*sql.DB, migrations.Dialect, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)

		return db, migrations.SQLite, err

	case config.StorageDriverPostgres:
		gormDB, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db, err := gormDB.DB()
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}

		return db, migrations.Postgres, nil

	default:
		return nil, "", errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
