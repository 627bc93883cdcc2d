// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
)

// GuardOutcome is the terminal state of one Auth Guard check.
type GuardOutcome int

const (
	// GuardAllowed lets the request through to the route handler.
	GuardAllowed GuardOutcome = iota
	// GuardMissingToken rejects a request without an authorization header.
	GuardMissingToken
	// GuardTokenInvalid rejects a malformed, forged or expired token.
	GuardTokenInvalid
	// GuardUnauthorized rejects a valid token issued to another user.
	GuardUnauthorized
)

// String implements [fmt.Stringer].
func (o GuardOutcome) String() string {
	switch o {
	case GuardAllowed:
		return "allowed"
	case GuardMissingToken:
		return "missing_token"
	case GuardTokenInvalid:
		return "token_invalid"
	case GuardUnauthorized:
		return "unauthorized"
	default:
		return fmt.Sprintf("GuardOutcome(%d)", int(o))
	}
}

var guardStatuses = map[GuardOutcome]int{
	GuardMissingToken: http.StatusBadRequest,
	GuardTokenInvalid: http.StatusBadRequest,
	GuardUnauthorized: http.StatusUnauthorized,
}

var guardMessages = map[GuardOutcome]string{
	GuardMissingToken: "Bad request, please provide token in authorization headers",
	GuardTokenInvalid: "Cannot parse passed in authorization token",
	GuardUnauthorized: "You are not authorized to view this information",
}

// GuardResult is the outcome of [AuthGuard.Check]. Payload is set only when
// Outcome is GuardAllowed; Err explains every other outcome.
type GuardResult struct {
	Outcome GuardOutcome
	Payload models.TokenPayload
	Err     error
}

// Allowed reports whether the request may proceed.
func (r GuardResult) Allowed() bool {
	return r.Outcome == GuardAllowed
}

// AuthGuard decides whether a request may access the data of a route user.
// It holds only the verifier built from the shared secret at startup and is
// safe for concurrent use.
type AuthGuard struct {
	verifier *utils.TokenVerifier
}

// NewAuthGuard returns an AuthGuard verifying tokens with verifier.
func NewAuthGuard(verifier *utils.TokenVerifier) *AuthGuard {
	return &AuthGuard{verifier: verifier}
}

// Check evaluates one request given its raw authorization header and the
// userId route parameter. Both "<token>" and "Bearer <token>" headers are
// accepted. An empty routeUserID never matches.
func (g *AuthGuard) Check(authorization, routeUserID string) GuardResult {
	if authorization == "" {
		return GuardResult{Outcome: GuardMissingToken, Err: ErrMissingToken}
	}

	payload, err := g.verifier.Verify(utils.TokenFromHeader(authorization))
	if err != nil {
		return GuardResult{Outcome: GuardTokenInvalid, Err: fmt.Errorf("%w: %w", ErrTokenInvalid, err)}
	}

	if routeUserID == "" || payload.ID != routeUserID {
		return GuardResult{
			Outcome: GuardUnauthorized,
			Err:     fmt.Errorf("%w: token id %q, route id %q", ErrForeignUser, payload.ID, routeUserID),
		}
	}

	return GuardResult{Outcome: GuardAllowed, Payload: payload}
}
