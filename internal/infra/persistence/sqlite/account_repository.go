package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	"lobby/internal/errors"
)

const accountColumns = `id, email, name, avatar, password_hash, created_at, updated_at`

type accountRepository struct {
	db dbtx
}

// NewAccountRepository returns an AccountRepository running outside any transaction.
func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id.String())

	account, err := scanAccount(row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	row := repo.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)

	account, err := scanAccount(row)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.ID.String(),
		account.Email,
		account.Name,
		account.Avatar,
		account.PasswordHash,
		toMillis(account.CreatedAt),
		toMillis(account.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var (
		account            entity.Account
		createdAt, updated int64
	)
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Avatar,
		&account.PasswordHash,
		&createdAt,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, err
	}
	account.CreatedAt = fromMillis(createdAt)
	account.UpdatedAt = fromMillis(updated)

	return &account, nil
}
