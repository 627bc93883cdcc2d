// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/ergo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

// TaskService manages the tasks of a user and their completions. Every
// method is scoped to userID; tasks of other users are reported as missing.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error

	CompleteTask(ctx context.Context, userID, taskID string, completion models.TaskCompletion) (models.TaskCompletion, error)
	UncompleteTask(ctx context.Context, userID, taskID, completionID string) error
}

// TagService manages the tags of a user.
type TagService interface {
	CreateTag(ctx context.Context, userID string, tag models.Tag) (models.Tag, error)
	CreateTagForTask(ctx context.Context, userID, taskID string, tag models.Tag) (models.Tag, error)
	ListTags(ctx context.Context, userID string) ([]models.Tag, error)
	GetTag(ctx context.Context, userID, tagID string) (models.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID string, update models.TagUpdate) (models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID string) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
