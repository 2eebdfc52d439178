package impl

import (
	"context"
	"io"
	"log/slog"

	"cumple/config"
	"cumple/internal/domain/repository"
	mockRepo "cumple/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.App.BaseURL = baseURL

	return cfg
}

// passthroughTx wires a transaction manager mock to run the transactional
// function against the given factory, returning whatever it returns.
func passthroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
