// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token issuance
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenIssuer signs tokens carrying the user's email and id.
	tokenIssuer *utils.TokenIssuer

	// passwordHasher hashes passwords at registration and compares them at
	// login.
	passwordHasher *utils.PasswordHasher

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokenIssuer *utils.TokenIssuer,
	passwordHasher *utils.PasswordHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		passwordHasher: passwordHasher,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the registration fields, hashes the password and delegates
// persistence to the UserRepository.
//
// Returns the persisted user without password material, or:
//   - a validators error if a field is missing or malformed.
//   - a wrapped storage error if the repository call fails (e.g. email
//     already taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("user validation failed: %w", err)
	}

	hash, err := a.passwordHasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.ID = a.ids.Generate()
	user.PasswordHash = hash
	user.Password = ""
	user.CreatedAt = a.now().Truncate(time.Microsecond)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - a validators error if email or password is missing.
//   - ErrWrongCredentials if no user has the email or the password does not
//     match.
func (a *authService) Login(ctx context.Context, credentials models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Err(err).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("credentials validation failed: %w", err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.passwordHasher.Compare(foundUser.PasswordHash, credentials.Password); err != nil {
		log.Info().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := a.tokenIssuer.Issue(user.Email, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
