// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Rejection reasons of the Auth Guard. They are carried in [GuardResult.Err]
// and only ever logged; clients see the fixed messages of guardMessages.
var (
	// ErrMissingToken means the request carried no authorization header.
	ErrMissingToken = errors.New("missing authorization token")

	// ErrTokenInvalid means the token failed signature or expiry checks.
	ErrTokenInvalid = errors.New("authorization token cannot be verified")

	// ErrForeignUser means the token belongs to a different user than the
	// one named in the route.
	ErrForeignUser = errors.New("token does not belong to route user")
)

// ErrInvalidJSON is reported when a request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid JSON was passed")
