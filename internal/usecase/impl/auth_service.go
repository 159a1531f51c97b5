// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "lobby/internal/delivery/context"
	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	"lobby/internal/domain/service"
	"lobby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// fallbackDummyHash is a well-formed cost-10 bcrypt hash matching no password
// the service ever issues.
const fallbackDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	avatars      service.AvatarResolver
	logger       *slog.Logger
	now          func() time.Time

	// dummyHash is compared against on unknown emails so both login failure
	// paths pay for one bcrypt comparison.
	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Avatars      service.AvatarResolver
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		avatars:      params.Avatars,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and returns a session token for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenOutput, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, err
	}

	accountID, err := uuid.NewV7()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate account id")
	}

	now := srv.now().UTC()
	account := &entity.Account{
		ID:           accountID,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Avatar:       srv.avatars.Resolve(email),
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up account by email")
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			// A concurrent registration won the unique index.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrAccountAlreadyExists
			}

			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAccountAlreadyExists) {
			srv.log(ctx).Debug("Registration rejected, email already registered", slog.String("email", email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return srv.issue(ctx, account.ID)
}

// Login verifies credentials and returns a fresh session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if err := validateLoginInput(input); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(input.Password, srv.getDummyHash(ctx))
			srv.log(ctx).Debug("Login failed, unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, account.ID)
}

// CurrentAccount loads the caller's account. A token whose subject no longer
// resolves is treated as unauthenticated.
func (srv *authService) CurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

func (srv *authService) issue(ctx context.Context, accountID uuid.UUID) (*usecase.TokenOutput, error) {
	token, err := srv.tokenService.Issue(accountID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return &usecase.TokenOutput{Token: token}, nil
}

func (srv *authService) getDummyHash(ctx context.Context) string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(uuid.NewString())
		if err != nil {
			srv.log(ctx).Warn("Failed to hash dummy password, using fallback", slog.Any("error", err))
			hash = fallbackDummyHash
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func validateRegisterInput(input *usecase.RegisterInput) error {
	var fields []domainerrors.FieldError
	if input == nil {
		input = &usecase.RegisterInput{}
	}
	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Message: "Name is required"})
	}
	if !looksLikeEmail(input.Email) {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if len(input.Password) < minPasswordLength {
		fields = append(fields, domainerrors.FieldError{Field: "password", Message: "Please enter a password with 6 or more characters"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func validateLoginInput(input *usecase.LoginInput) error {
	var fields []domainerrors.FieldError
	if input == nil {
		input = &usecase.LoginInput{}
	}
	if !looksLikeEmail(input.Email) {
		fields = append(fields, domainerrors.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if input.Password == "" {
		fields = append(fields, domainerrors.FieldError{Field: "password", Message: "Password is required"})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

// looksLikeEmail is a last-line check; the HTTP validator does the strict one.
func looksLikeEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")

	return at > 0 && at < len(email)-1
}
