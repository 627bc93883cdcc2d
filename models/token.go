// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// TokenPayload is the claim set carried inside every issued token.
//
// Email and ID are the application claims; the embedded
// [jwt.RegisteredClaims] carry iss, iat and exp. ID must match the
// `userId` route parameter of every guarded request.
type TokenPayload struct {
	Email string `json:"email"`
	ID    string `json:"id"`

	jwt.RegisteredClaims
}

// Token couples a signed token string with the payload it was built from.
type Token struct {
	// SignedString is the compact header.payload.signature form.
	SignedString string `json:"-"`

	Payload TokenPayload `json:"-"`
}

// String returns the compact serialized token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
