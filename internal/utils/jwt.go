// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ergo/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by [TokenVerifier.Verify] for every token that
// fails verification: malformed input, unexpected signing method, bad
// signature or expired claims.
var ErrInvalidToken = errors.New("invalid token")

// hmacMethods are the signing algorithms accepted during verification.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// TokenIssuer creates HMAC-SHA256 signed tokens carrying a [models.TokenPayload].
type TokenIssuer struct {
	signKey  []byte
	issuer   string
	duration time.Duration
	now      func() time.Time
}

// NewTokenIssuer constructs a [TokenIssuer].
//
// signKey must be non-empty and duration must be positive. issuer is written
// into the "iss" claim and may be empty.
func NewTokenIssuer(signKey, issuer string, duration time.Duration) (*TokenIssuer, error) {
	if signKey == "" || duration <= 0 {
		return nil, errors.New("invalid params for token issuer")
	}

	return &TokenIssuer{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
	}, nil
}

// Issue signs a token for the user identified by id and email.
//
// The token includes:
//   - email, id  - application claims checked by the auth guard
//   - iss        - the configured issuer
//   - iat, exp   - issue time and issue time plus the configured duration
func (i *TokenIssuer) Issue(email, id string) (models.Token, error) {
	if id == "" {
		return models.Token{}, errors.New("empty subject id")
	}

	now := i.now()
	payload := models.TokenPayload{
		Email: email,
		ID:    id,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(i.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{SignedString: signed, Payload: payload}, nil
}

// TokenVerifier checks token signatures against a shared secret.
// It holds no mutable state and is safe for concurrent use.
type TokenVerifier struct {
	signKey []byte
}

// NewTokenVerifier constructs a [TokenVerifier] bound to signKey.
func NewTokenVerifier(signKey string) *TokenVerifier {
	return &TokenVerifier{signKey: []byte(signKey)}
}

// Verify validates tokenString and returns its decoded payload.
//
// The signature must be a valid HMAC signature made with the verifier's key,
// and time-based claims (exp, nbf, iat), when present, must hold. Every
// failure is reported as [ErrInvalidToken] wrapping the underlying cause.
func (v *TokenVerifier) Verify(tokenString string) (models.TokenPayload, error) {
	var payload models.TokenPayload

	_, err := jwt.ParseWithClaims(tokenString, &payload, func(*jwt.Token) (any, error) {
		return v.signKey, nil
	}, jwt.WithValidMethods(hmacMethods))
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return payload, nil
}

// TokenFromHeader extracts the token from an Authorization header value.
//
// Both the bare form ("<token>") and the bearer form ("Bearer <token>") are
// accepted; surrounding whitespace is trimmed. An empty result means no
// token was supplied.
func TokenFromHeader(authorizationHeader string) string {
	value := strings.TrimSpace(authorizationHeader)

	scheme, rest, found := strings.Cut(value, " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}

	return value
}
