package store

import (
	"context"

	"github.com/mkarpov/linkvault/internal/config"
	"github.com/mkarpov/linkvault/internal/logger"
)

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository
}

// NewStorages connects to the configured database backend and constructs all
// repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
	}, nil
}
