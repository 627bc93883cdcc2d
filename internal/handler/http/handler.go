// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/service"
)

// Handler serves the REST API.
type Handler struct {
	services *service.Services
	guard    *AuthGuard
	metrics  *metrics

	corsOrigins []string

	logger *logger.Logger
}

// NewHandler constructs a Handler. guard protects the per-user routes;
// cfg supplies the allowed CORS origins.
func NewHandler(services *service.Services, guard *AuthGuard, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		guard:       guard,
		metrics:     newMetrics(),
		corsOrigins: cfg.CORSOrigins,
		logger:      logger,
	}
}
