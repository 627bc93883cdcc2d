package service

import "errors"

var (
	// ErrWrongCredentials is returned by Login for an unknown email and for a
	// wrong password alike, so callers cannot probe for registered emails.
	ErrWrongCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidTags is returned when a task references tags that do not
	// exist or belong to another user.
	ErrInvalidTags = errors.New("invalid tag(s)")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
