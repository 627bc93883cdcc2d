// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/models"
)

var tagColumns = []string{"id", "user_id", "tag_name", "tag_color", "created_at"}

// tagRepository is the SQL-backed implementation of [TagRepository].
type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] over db.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	if err := r.insertTag(ctx, r.db, tag); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.CreateTag").Msg("error inserting tag")
		return models.Tag{}, err
	}

	return tag, nil
}

func (r *tagRepository) CreateTagForTask(ctx context.Context, tag models.Tag, taskID string) (models.Tag, error) {
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.insertTag(ctx, tx, tag); err != nil {
			return err
		}

		return linkTags(ctx, r.db, tx, taskID, []string{tag.ID})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.CreateTagForTask").Msg("error creating tag for task")
		return models.Tag{}, err
	}

	return tag, nil
}

func (r *tagRepository) insertTag(ctx context.Context, q querier, tag models.Tag) error {
	insert := r.db.builder.Insert("tags").
		Columns(tagColumns...).
		Values(tag.ID, tag.UserID, tag.TagName, tag.TagColor, tag.CreatedAt)

	if _, err := exec(ctx, q, insert); err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			return ErrTagAlreadyExists
		case ForeignKeyViolation:
			return ErrUserNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

func (r *tagRepository) ListTags(ctx context.Context, userID string) ([]models.Tag, error) {
	return r.findMany(ctx, "*tagRepository.ListTags", sq.Eq{"user_id": userID})
}

func (r *tagRepository) FindTagsByIDs(ctx context.Context, userID string, tagIDs []string) ([]models.Tag, error) {
	if len(tagIDs) == 0 {
		return []models.Tag{}, nil
	}

	return r.findMany(ctx, "*tagRepository.FindTagsByIDs", sq.Eq{"user_id": userID, "id": tagIDs})
}

func (r *tagRepository) GetTag(ctx context.Context, userID, tagID string) (models.Tag, error) {
	log := logger.FromContext(ctx)

	row, err := queryRow(ctx, r.db, r.db.builder.Select(tagColumns...).From("tags").
		Where(sq.Eq{"id": tagID, "user_id": userID}))
	if err != nil {
		return models.Tag{}, err
	}

	var tag models.Tag
	err = row.Scan(&tag.ID, &tag.UserID, &tag.TagName, &tag.TagColor, &tag.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Tag{}, ErrTagNotFound
	case err != nil:
		log.Err(err).Str("func", "*tagRepository.GetTag").Msg("error scanning tag")
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return tag, nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	update := r.db.builder.Update("tags").
		Set("tag_name", tag.TagName).
		Set("tag_color", tag.TagColor).
		Where(sq.Eq{"id": tag.ID, "user_id": tag.UserID})

	affected, err := exec(ctx, r.db, update)
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.UpdateTag").Msg("error updating tag")
		if r.db.classify(err) == UniqueViolation {
			return models.Tag{}, ErrTagAlreadyExists
		}
		return models.Tag{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Tag{}, ErrTagNotFound
	}

	return tag, nil
}

func (r *tagRepository) DeleteTag(ctx context.Context, userID, tagID string) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, r.db.builder.Delete("tags").Where(sq.Eq{"id": tagID, "user_id": userID}))
	if err != nil {
		log.Err(err).Str("func", "*tagRepository.DeleteTag").Msg("error deleting tag")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTagNotFound
	}

	return nil
}

func (r *tagRepository) findMany(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	rows, err := query(ctx, r.db, r.db.builder.Select(tagColumns...).From("tags").
		Where(where).
		OrderBy("tag_name", "id"))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying tags")
		return nil, err
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err = rows.Scan(&tag.ID, &tag.UserID, &tag.TagName, &tag.TagColor, &tag.CreatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning tag")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}

// linkTags attaches tagIDs to taskID inside tx.
func linkTags(ctx context.Context, db *DB, tx *sql.Tx, taskID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}

	insert := db.builder.Insert("task_tags").Columns("task_id", "tag_id")
	for _, tagID := range tagIDs {
		insert = insert.Values(taskID, tagID)
	}

	if _, err := exec(ctx, tx, insert); err != nil {
		switch db.classify(err) {
		case UniqueViolation:
			return ErrTagAlreadyLinked
		case ForeignKeyViolation:
			return ErrTagNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}
