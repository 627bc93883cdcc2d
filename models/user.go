// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns tasks and tags.
type User struct {
	// ID is the server-assigned UUID of the user. It is the value embedded
	// in issued tokens and the one expected in the `userId` route parameter.
	ID string `json:"id"`

	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	UserName  string `json:"userName" validate:"required,max=255"`

	// Email is unique across all users and is the login identifier.
	Email string `json:"email" validate:"required,email,max=320"`

	// Password holds the plain-text password received at registration.
	// It is cleared before the user leaves the service layer.
	Password string `json:"password,omitempty" validate:"required,min=8,max=72"`

	// PasswordHash is the bcrypt digest persisted in storage.
	// It is never serialized.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}
