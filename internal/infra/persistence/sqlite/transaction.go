package sqlite

import (
	"context"
	"database/sql"

	"lobby/internal/domain/repository"
	"lobby/internal/errors"
)

// sqlTransactionManager implements the domain's TransactionManager interface on database/sql.
type sqlTransactionManager struct {
	db *sql.DB
}

// sqlRepositoryFactory hands out repositories bound to a single *sql.Tx.
type sqlRepositoryFactory struct {
	tx *sql.Tx
}

// AccountRepo returns an account repository bound to the transaction.
func (f *sqlRepositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{db: f.tx}
}

// ProfileRepo returns a profile repository bound to the transaction.
func (f *sqlRepositoryFactory) ProfileRepo() repository.ProfileRepository {
	return &profileRepository{db: f.tx}
}

// NewTransactionManager is the constructor for sqlTransactionManager.
func NewTransactionManager(db *sql.DB) repository.TransactionManager {
	return &sqlTransactionManager{db: db}
}

// Execute runs fn inside one transaction, committing on success and rolling back on error or panic.
func (tm *sqlTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&sqlRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
