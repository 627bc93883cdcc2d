package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
)

type tagService struct {
	userRepository store.UserRepository
	tagRepository  store.TagRepository
	taskRepository store.TaskRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewTagService constructs a [TagService].
func NewTagService(
	userRepository store.UserRepository,
	tagRepository store.TagRepository,
	taskRepository store.TaskRepository,
	validator validators.Validator,
	logger *logger.Logger,
) TagService {
	return &tagService{
		userRepository: userRepository,
		tagRepository:  tagRepository,
		taskRepository: taskRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *tagService) CreateTag(ctx context.Context, userID string, tag models.Tag) (models.Tag, error) {
	tag, err := s.prepare(ctx, userID, tag)
	if err != nil {
		return models.Tag{}, err
	}

	created, err := s.tagRepository.CreateTag(ctx, tag)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("tag creation ended with error")
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}

	return created, nil
}

// CreateTagForTask creates the tag and attaches it to taskID, which must
// belong to userID.
func (s *tagService) CreateTagForTask(ctx context.Context, userID, taskID string, tag models.Tag) (models.Tag, error) {
	tag, err := s.prepare(ctx, userID, tag)
	if err != nil {
		return models.Tag{}, err
	}

	if !utils.IsUUID(taskID) {
		return models.Tag{}, store.ErrTaskNotFound
	}
	if _, err = s.taskRepository.GetTask(ctx, userID, taskID); err != nil {
		return models.Tag{}, fmt.Errorf("task lookup failed: %w", err)
	}

	created, err := s.tagRepository.CreateTagForTask(ctx, tag, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("task_id", taskID).Msg("tag creation for task ended with error")
		return models.Tag{}, fmt.Errorf("tag creation for task ended with error: %w", err)
	}

	return created, nil
}

// ListTags returns the tags of userID. An unknown user is reported as
// [store.ErrUserNotFound] rather than an empty list.
func (s *tagService) ListTags(ctx context.Context, userID string) ([]models.Tag, error) {
	if !utils.IsUUID(userID) {
		return nil, store.ErrUserNotFound
	}
	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	tags, err := s.tagRepository.ListTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tags ended with error: %w", err)
	}

	return tags, nil
}

func (s *tagService) GetTag(ctx context.Context, userID, tagID string) (models.Tag, error) {
	if !utils.IsUUID(tagID) {
		return models.Tag{}, store.ErrTagNotFound
	}

	tag, err := s.tagRepository.GetTag(ctx, userID, tagID)
	if err != nil {
		return models.Tag{}, fmt.Errorf("getting tag ended with error: %w", err)
	}

	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, userID, tagID string, update models.TagUpdate) (models.Tag, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("invalid tag update provided")
		return models.Tag{}, fmt.Errorf("tag update validation failed: %w", err)
	}

	tag, err := s.GetTag(ctx, userID, tagID)
	if err != nil {
		return models.Tag{}, err
	}

	update.Apply(&tag)

	updated, err := s.tagRepository.UpdateTag(ctx, tag)
	if err != nil {
		log.Err(err).Str("tag_id", tagID).Msg("tag update ended with error")
		return models.Tag{}, fmt.Errorf("tag update ended with error: %w", err)
	}

	return updated, nil
}

func (s *tagService) DeleteTag(ctx context.Context, userID, tagID string) error {
	if !utils.IsUUID(tagID) {
		return store.ErrTagNotFound
	}

	if err := s.tagRepository.DeleteTag(ctx, userID, tagID); err != nil {
		logger.FromContext(ctx).Err(err).Str("tag_id", tagID).Msg("tag deletion ended with error")
		return fmt.Errorf("tag deletion ended with error: %w", err)
	}

	return nil
}

// prepare validates the client fields of tag and fills the server ones.
func (s *tagService) prepare(ctx context.Context, userID string, tag models.Tag) (models.Tag, error) {
	if err := s.validator.Validate(ctx, tag, "TagName", "TagColor"); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid tag provided")
		return models.Tag{}, fmt.Errorf("tag validation failed: %w", err)
	}

	tag.ID = s.ids.Generate()
	tag.UserID = userID
	tag.CreatedAt = s.now().Truncate(time.Microsecond)

	return tag, nil
}
