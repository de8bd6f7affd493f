// Package backend opens the storage backend selected by the configuration
// and builds a loaded task store on top of it.
package backend

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tarefas/internal/config"
	"tarefas/internal/logging"
	"tarefas/internal/storage"
	"tarefas/internal/storage/fsstore"
	"tarefas/internal/storage/sqlite"
	"tarefas/internal/tasks"
)

// Open opens the backend named by cfg.Storage.Backend under cfg.DataPath().
func Open(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite, "":
		st, err := sqlite.Open(filepath.Join(cfg.DataPath(), sqlite.FileName))
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.BackendFile:
		st, err := fsstore.NewOS(cfg.DataPath())
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// NewStore builds the logger, opens the backend and loads the stored tasks.
func NewStore(ctx context.Context, cfg *config.Config) (*tasks.Store, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}

	st, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("dir", cfg.DataPath()))

	store := tasks.New(st,
		tasks.WithLogger(logger),
		tasks.WithTimeout(cfg.Storage.Timeout))
	store.Load(ctx)
	return store, nil
}
