package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lobby/internal/domain/repository"
	mockRepo "lobby/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// onExecute makes txManager run the callback against a factory that hands out
// the given repositories.
func onExecute(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	accountRepo repository.AccountRepository,
	profileRepo repository.ProfileRepository,
) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if accountRepo != nil {
				factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()
			}
			if profileRepo != nil {
				factory.EXPECT().ProfileRepo().Return(profileRepo).Maybe()
			}

			return fn(factory)
		})
}
