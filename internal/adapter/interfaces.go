// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the ergo REST API.
//
// [APIClient] hides the HTTP details from the command-line client: paths,
// bearer headers and the owner id in every guarded route. Non-2xx responses
// are mapped by mapHTTPError to the sentinels in errors.go so callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/ergo/models"
)

// APIClient talks to one ergo server on behalf of one user.
type APIClient interface {
	// SetToken stores the bearer token attached to guarded requests.
	SetToken(token string)
	Token() string

	// SetUserID stores the owner id used in guarded routes.
	SetUserID(userID string)
	UserID() string

	Register(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token. On success the token and the
	// user id are stored for subsequent requests.
	Login(ctx context.Context, credentials models.LoginRequest) (models.LoginResponse, error)

	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	CompleteTask(ctx context.Context, taskID string, completion models.TaskCompletion) (models.TaskCompletion, error)
	UncompleteTask(ctx context.Context, taskID, completionID string) error

	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	DeleteTag(ctx context.Context, tagID string) error
}
