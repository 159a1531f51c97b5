package impl

import (
	"context"
	"testing"

	"lobby/internal/domain/entity"
	domainerrors "lobby/internal/domain/errors"
	"lobby/internal/domain/repository"
	mockRepo "lobby/internal/mocks/repository"
	mockSvc "lobby/internal/mocks/service"
	"lobby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	avatars      *mockSvc.MockAvatarResolver
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		avatars:      mockSvc.NewMockAvatarResolver(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		AccountRepo:  fx.accountRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Avatars:      fx.avatars,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{Name: " Test User ", Email: " Test@Example.com", Password: "secret1"}

	txAccounts := mockRepo.NewMockAccountRepository(t)
	onExecute(t, fx.txManager, txAccounts, nil)

	fx.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)
	fx.avatars.EXPECT().Resolve("test@example.com").Return("https://avatar/x")
	txAccounts.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrAccountNotFound)

	var created *entity.Account
	txAccounts.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) { created = account }).
		Return(nil)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(id uuid.UUID) (string, error) {
			require.NotNil(t, created)
			assert.Equal(t, created.ID, id)

			return "signed-token", nil
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	require.NotNil(t, created)
	assert.Equal(t, "test@example.com", created.Email)
	assert.Equal(t, "Test User", created.Name)
	assert.Equal(t, "hashed_password", created.PasswordHash)
	assert.Equal(t, "https://avatar/x", created.Avatar)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, uuid.Version(7), created.ID.Version())
}

func TestAuthService_Register_ExistingEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	txAccounts := mockRepo.NewMockAccountRepository(t)
	onExecute(t, fx.txManager, txAccounts, nil)

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().Resolve("taken@example.com").Return("a")
	txAccounts.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.Account{ID: uuid.New()}, nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "n", Email: "taken@example.com", Password: "secret1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAuthService_Register_LostRaceOnUniqueIndex(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	txAccounts := mockRepo.NewMockAccountRepository(t)
	onExecute(t, fx.txManager, txAccounts, nil)

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().Resolve("race@example.com").Return("a")
	txAccounts.EXPECT().FindByEmail(ctx, "race@example.com").Return(nil, repository.ErrAccountNotFound)
	txAccounts.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "n", Email: "race@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAuthService_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		input  *usecase.RegisterInput
		fields []string
	}{
		{name: "missing name", input: &usecase.RegisterInput{Email: "a@b.c", Password: "secret1"}, fields: []string{"name"}},
		{name: "bad email", input: &usecase.RegisterInput{Name: "n", Email: "nope", Password: "secret1"}, fields: []string{"email"}},
		{name: "short password", input: &usecase.RegisterInput{Name: "n", Email: "a@b.c", Password: "12345"}, fields: []string{"password"}},
		{name: "everything missing", input: &usecase.RegisterInput{}, fields: []string{"name", "email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), tt.input)

			require.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			var vErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			got := make([]string, 0, len(vErr.Fields()))
			for _, f := range vErr.Fields() {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", domainerrors.ErrPasswordTooLong)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "n", Email: "a@b.c", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooLong))
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	txAccounts := mockRepo.NewMockAccountRepository(t)
	onExecute(t, fx.txManager, txAccounts, nil)

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.avatars.EXPECT().Resolve("a@b.c").Return("a")
	txAccounts.EXPECT().FindByEmail(ctx, "a@b.c").Return(nil, dbErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "n", Email: "a@b.c", Password: "secret1"})

	assert.True(t, errors.Is(err, dbErr))
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "store failures are not client errors")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("secret1", "hash").Return(true)
	fx.tokenService.EXPECT().Issue(account.ID).Return("token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "USER@example.com ", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong1", "hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "wrong1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailStillChecksAHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound).Twice()
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("secret1", "dummy-hash").Return(false).Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_Login_UnknownEmailFallsBackWhenDummyHashFails(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound).Twice()
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.New("entropy exhausted")).Once()
	fx.hasher.EXPECT().Check("secret1", fallbackDummyHash).Return(false).Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	}
}

func TestAuthService_Login_Validation(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "user@example.com"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), PasswordHash: "hash"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("secret1", "hash").Return(true)
	fx.tokenService.EXPECT().Issue(account.ID).Return("", errors.New("sign failed"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "user@example.com", Password: "secret1"})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}

func TestAuthService_CurrentAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAuthService(t)
		account := &entity.Account{ID: uuid.New(), Email: "user@example.com"}
		fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

		got, err := fx.service.CurrentAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("account vanished", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := uuid.New()
		fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.CurrentAccount(ctx, id)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
