// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-chi/chi/v5"
)

// userIDParam is the route parameter naming the user whose data is accessed.
const userIDParam = "userId"

// restricted is the Auth Guard middleware for per-user routes.
//
// It must be mounted below a route carrying the {userId} parameter. On
// success the verified payload is stored in the request context (see
// [utils.GetTokenPayloadFromContext]) and next is called exactly once.
// Otherwise the guard answers with its fixed status and message and next is
// not called:
//   - no authorization header: 400;
//   - token fails verification: 400;
//   - token issued to a different user: 401.
func (h *Handler) restricted(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := h.guard.Check(r.Header.Get("Authorization"), chi.URLParam(r, userIDParam))

		if !result.Allowed() {
			logger.FromRequest(r).Info().
				Err(result.Err).
				Stringer("outcome", result.Outcome).
				Msg("request rejected by auth guard")
			h.metrics.guardRejections.WithLabelValues(result.Outcome.String()).Inc()
			utils.WriteJSON(w, models.Message{Message: guardMessages[result.Outcome]}, guardStatuses[result.Outcome])
			return
		}

		ctx := utils.WithTokenPayload(r.Context(), result.Payload)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
