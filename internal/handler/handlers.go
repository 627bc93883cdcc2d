// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/handler/grpc"
	"github.com/MKhiriev/ergo/internal/handler/http"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/service"
	"github.com/MKhiriev/ergo/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// The auth guard is given the JWT secret here so it never reads the
// environment itself.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, pinger grpc.Pinger, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		guard := http.NewAuthGuard(utils.NewTokenVerifier(cfg.Auth.JWTSecret))
		handlers.HTTP = http.NewHandler(services, guard, cfg.Server, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
