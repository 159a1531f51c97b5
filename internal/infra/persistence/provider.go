// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"lobby/config"
	"lobby/internal/domain/repository"
	"lobby/internal/infra/persistence/postgres"
	"lobby/internal/infra/persistence/sqlite"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the stores, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Stores is the set of repositories every use case depends on.
type Stores struct {
	fx.Out

	TxManager repository.TransactionManager
	Accounts  repository.AccountRepository
	Profiles  repository.ProfileRepository
}

// NewStores opens the configured backend and returns its repositories.
func NewStores(params Params) (Stores, error) {
	driver := params.Config.Storage.Driver
	logger := params.Logger

	switch driver {
	case config.StorageDriverPostgres:
		logger.Info("Using PostgreSQL storage")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			TxManager: postgres.NewTransactionManager(db),
			Accounts:  postgres.NewAccountRepository(db),
			Profiles:  postgres.NewProfileRepository(db),
		}, nil

	case config.StorageDriverSQLite:
		logger.Info("Using SQLite storage",
			slog.String("path", params.Config.Storage.SQLitePath),
		)

		db, err := sqlite.New(sqlite.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			TxManager: sqlite.NewTransactionManager(db),
			Accounts:  sqlite.NewAccountRepository(db),
			Profiles:  sqlite.NewProfileRepository(db),
		}, nil

	default:
		return Stores{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStores),
)
