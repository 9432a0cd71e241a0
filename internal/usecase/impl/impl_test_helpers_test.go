package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homiio/config"
	"homiio/internal/domain/repository"
	mockRepo "homiio/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Folders: &config.FoldersConfig{
			DefaultName:   "My Saves",
			MaxPerProfile: 20,
		},
	}
}

// expectExecute wires a transaction manager mock to run the supplied setup
// against a fresh factory and propagate the transactional function's error.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
