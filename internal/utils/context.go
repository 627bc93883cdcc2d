// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: context keys, JSON responses, token issuing and
// verification, password hashing, UUID generation and the HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/ergo/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// TokenPayloadCtxKey is the key under which the auth guard stores the
// verified [models.TokenPayload] of an allowed request.
var TokenPayloadCtxKey = contextKey("tokenPayload")

// WithTokenPayload returns a copy of ctx carrying payload.
func WithTokenPayload(ctx context.Context, payload models.TokenPayload) context.Context {
	return context.WithValue(ctx, TokenPayloadCtxKey, payload)
}

// GetTokenPayloadFromContext retrieves the payload stored by the auth guard.
//
// ok is false when the value is missing or has an unexpected type.
func GetTokenPayloadFromContext(ctx context.Context) (models.TokenPayload, bool) {
	payload, ok := ctx.Value(TokenPayloadCtxKey).(models.TokenPayload)
	return payload, ok
}
