// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists users, tasks, tags and task completions in a SQL
// database (PostgreSQL through pgx, or SQLite).
//
// Queries are built with squirrel so the same repository code serves both
// drivers; [DB] carries the placeholder format and the driver error
// classifier. Repository methods return the package sentinel errors for
// well-known conditions and scope every task and tag lookup by owner.
package store

import (
	"context"

	"github.com/MKhiriev/ergo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TaskRepository persists tasks and their tag links. Returned tasks carry
// their tags and completions.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)

	// UpdateTask stores the scalar fields of task. A non-nil tagIDs replaces
	// the tag links of the task.
	UpdateTask(ctx context.Context, task models.Task, tagIDs *[]string) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

// TagRepository persists tags.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)

	// CreateTagForTask creates tag and links it to taskID atomically.
	CreateTagForTask(ctx context.Context, tag models.Tag, taskID string) (models.Tag, error)
	ListTags(ctx context.Context, userID string) ([]models.Tag, error)
	GetTag(ctx context.Context, userID, tagID string) (models.Tag, error)

	// FindTagsByIDs returns the tags among tagIDs owned by userID.
	FindTagsByIDs(ctx context.Context, userID string, tagIDs []string) ([]models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID string) error
}

// CompletionRepository persists task completions.
type CompletionRepository interface {
	CreateCompletion(ctx context.Context, completion models.TaskCompletion) (models.TaskCompletion, error)
	DeleteCompletion(ctx context.Context, taskID, completionID string) error
}
