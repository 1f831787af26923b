package service

import (
	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/store"
)

type Services struct {
	AuthService    AuthService
	AdminService   AdminService
	CatalogService CatalogService
	ReviewService  ReviewService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, notifier Notifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, notifier, cfg.App, logger),
		AdminService:   NewAdminService(storages.AdminRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.SongRepository, logger),
		ReviewService:  NewReviewService(storages.SongRepository, storages.ReviewRepository, storages.AccountRepository, logger),
	}
}
