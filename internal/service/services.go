package service

import (
	"fmt"

	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	TagService     TagService
	AppInfoService AppInfoService
}

// NewServices wires every service to the repositories in storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	issuer, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.App.TokenIssuer, cfg.App.TokenDuration)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}

	if cfg.App.Version != "" {
		buildInfo.Version = cfg.App.Version
	}
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, issuer,
			utils.NewPasswordHasher(cfg.App.PasswordHashCost), validator, logger),
		TaskService: NewTaskService(storages.UserRepository, storages.TaskRepository,
			storages.TagRepository, storages.CompletionRepository, validator, logger),
		TagService:     NewTagService(storages.UserRepository, storages.TagRepository, storages.TaskRepository, validator, logger),
		AppInfoService: appInfoService,
	}, nil
}
