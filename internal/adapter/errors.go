package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotLoggedIn is returned by guarded calls made before Login or
	// SetUserID.
	ErrNotLoggedIn = errors.New("not logged in: user id is not set")
)
