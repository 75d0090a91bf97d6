package service

import (
	"github.com/mkarpov/linkvault/internal/config"
	"github.com/mkarpov/linkvault/internal/enrich"
	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/store"
)

type Services struct {
	AuthService     AuthService
	BookmarkService BookmarkService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		BookmarkService: NewBookmarkService(
			storages.BookmarkRepository,
			enrich.NewMetadataExtractor(cfg.Enrich, logger),
			enrich.NewSummaryFetcher(cfg.Enrich, logger),
			logger,
		),
	}
}
