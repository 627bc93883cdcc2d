// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
)

type taskService struct {
	userRepository       store.UserRepository
	taskRepository       store.TaskRepository
	tagRepository        store.TagRepository
	completionRepository store.CompletionRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewTaskService constructs a [TaskService] over the given repositories.
func NewTaskService(
	userRepository store.UserRepository,
	taskRepository store.TaskRepository,
	tagRepository store.TagRepository,
	completionRepository store.CompletionRepository,
	validator validators.Validator,
	logger *logger.Logger,
) TaskService {
	return &taskService{
		userRepository:       userRepository,
		taskRepository:       taskRepository,
		tagRepository:        tagRepository,
		completionRepository: completionRepository,
		validator:            validator,
		ids:                  utils.NewUUIDGenerator(),
		now:                  func() time.Time { return time.Now().UTC() },
		logger:               logger,
	}
}

// CreateTask validates req, checks that every tag belongs to userID and
// stores the task with its tags.
func (s *taskService) CreateTask(ctx context.Context, userID string, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid task provided")
		return models.Task{}, fmt.Errorf("task validation failed: %w", err)
	}

	tags, err := s.ownedTags(ctx, userID, req.TagIDs)
	if err != nil {
		return models.Task{}, err
	}

	now := s.now().Truncate(time.Microsecond)
	task := models.Task{
		ID:              s.ids.Generate(),
		UserID:          userID,
		TaskName:        req.TaskName,
		TaskDescription: req.TaskDescription,
		IsRecursive:     req.IsRecursive,
		TaskDate:        req.TaskDate,
		RecTaskDate:     req.RecTaskDate,
		Tags:            tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// ListTasks returns the tasks of filter.UserID narrowed by the filter.
func (s *taskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, filter); err != nil {
		log.Err(err).Msg("invalid task filter provided")
		return nil, fmt.Errorf("task filter validation failed: %w", err)
	}

	if !utils.IsUUID(filter.UserID) {
		return nil, store.ErrUserNotFound
	}
	if _, err := s.userRepository.FindUserByID(ctx, filter.UserID); err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	tasks, err := s.taskRepository.ListTasks(ctx, filter)
	if err != nil {
		log.Err(err).Str("user_id", filter.UserID).Msg("listing tasks ended with error")
		return nil, fmt.Errorf("listing tasks ended with error: %w", err)
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	if !utils.IsUUID(taskID) {
		return models.Task{}, store.ErrTaskNotFound
	}

	task, err := s.taskRepository.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("getting task ended with error: %w", err)
	}

	return task, nil
}

// UpdateTask applies req to the stored task. The merged task must still
// satisfy the date rule; a non-nil req.TagIDs replaces the tag set.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid task update provided")
		return models.Task{}, fmt.Errorf("task update validation failed: %w", err)
	}

	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	req.Apply(&task)
	if err = s.validator.Validate(ctx, task); err != nil {
		log.Err(err).Str("task_id", taskID).Msg("updated task is invalid")
		return models.Task{}, fmt.Errorf("task validation failed: %w", err)
	}

	var tagIDs *[]string
	if req.TagIDs != nil {
		if _, err = s.ownedTags(ctx, userID, *req.TagIDs); err != nil {
			return models.Task{}, err
		}
		tagIDs = req.TagIDs
	}

	task.UpdatedAt = s.now().Truncate(time.Microsecond)

	updated, err := s.taskRepository.UpdateTask(ctx, task, tagIDs)
	if err != nil {
		log.Err(err).Str("task_id", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if !utils.IsUUID(taskID) {
		return store.ErrTaskNotFound
	}

	if err := s.taskRepository.DeleteTask(ctx, userID, taskID); err != nil {
		logger.FromContext(ctx).Err(err).Str("task_id", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

// CompleteTask marks the task done on completion.CompletionDate, which
// defaults to the current UTC day.
func (s *taskService) CompleteTask(ctx context.Context, userID, taskID string, completion models.TaskCompletion) (models.TaskCompletion, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, completion); err != nil {
		log.Err(err).Msg("invalid completion provided")
		return models.TaskCompletion{}, fmt.Errorf("completion validation failed: %w", err)
	}

	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return models.TaskCompletion{}, err
	}

	now := s.now().Truncate(time.Microsecond)
	completion.ID = s.ids.Generate()
	completion.TaskID = taskID
	completion.CompletionTime = now
	if completion.CompletionDate == "" {
		completion.CompletionDate = now.Format(models.CompletionDateLayout)
	}

	created, err := s.completionRepository.CreateCompletion(ctx, completion)
	if err != nil {
		log.Err(err).Str("task_id", taskID).Msg("task completion ended with error")
		return models.TaskCompletion{}, fmt.Errorf("task completion ended with error: %w", err)
	}

	return created, nil
}

func (s *taskService) UncompleteTask(ctx context.Context, userID, taskID, completionID string) error {
	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return err
	}

	if !utils.IsUUID(completionID) {
		return store.ErrCompletionNotFound
	}

	if err := s.completionRepository.DeleteCompletion(ctx, taskID, completionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("task_id", taskID).Msg("removing completion ended with error")
		return fmt.Errorf("removing completion ended with error: %w", err)
	}

	return nil
}

// ownedTags loads tagIDs and fails with ErrInvalidTags unless every id names
// a tag of userID.
func (s *taskService) ownedTags(ctx context.Context, userID string, tagIDs []string) ([]models.Tag, error) {
	unique := slices.Compact(slices.Sorted(slices.Values(tagIDs)))
	if len(unique) == 0 {
		return []models.Tag{}, nil
	}

	tags, err := s.tagRepository.FindTagsByIDs(ctx, userID, unique)
	if err != nil {
		return nil, fmt.Errorf("tag lookup failed: %w", err)
	}

	if len(tags) != len(unique) {
		logger.FromContext(ctx).Info().Strs("tag_ids", tagIDs).Msg("task references unknown tags")
		return nil, ErrInvalidTags
	}

	return tags, nil
}
