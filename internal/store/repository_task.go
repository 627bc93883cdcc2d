// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/models"
)

var taskColumns = []string{
	"id", "user_id", "task_name", "task_description", "is_recursive",
	"task_date", "rec_task_date", "created_at", "updated_at",
}

// taskRepository is the SQL-backed implementation of [TaskRepository].
//
// Tags and completions of the returned tasks are loaded with one extra
// query each, keyed by the ids of the page of tasks.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] over db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask inserts task and links task.Tags in one transaction.
//
// Error handling:
//   - foreign key violation on the owner → [ErrUserNotFound].
//   - foreign key violation on a tag → [ErrTagNotFound].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		insert := r.db.builder.Insert("tasks").
			Columns(taskColumns...).
			Values(task.ID, task.UserID, task.TaskName, task.TaskDescription, task.IsRecursive,
				task.TaskDate, task.RecTaskDate, task.CreatedAt, task.UpdatedAt)

		if _, err := exec(ctx, tx, insert); err != nil {
			if r.db.classify(err) == ForeignKeyViolation {
				return ErrUserNotFound
			}
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return linkTags(ctx, r.db, tx, task.ID, task.TagIDs())
	})
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error creating task")
		return models.Task{}, err
	}

	if task.Tags == nil {
		task.Tags = []models.Tag{}
	}
	if task.Completions == nil {
		task.Completions = []models.TaskCompletion{}
	}

	return task, nil
}

// ListTasks returns the tasks of filter.UserID matching every given filter,
// oldest first. Date bounds apply to TaskDate, so recurring tasks are left
// out whenever From or To is set.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	sel := r.db.builder.Select(taskColumns...).From("tasks").
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("created_at", "id")

	if len(filter.TagIDs) > 0 {
		// a task qualifies only when it carries every requested tag
		carriesAll := sq.Select("task_id").From("task_tags").
			Where(sq.Eq{"tag_id": filter.TagIDs}).
			GroupBy("task_id").
			Having("COUNT(DISTINCT tag_id) = ?", len(uniqueStrings(filter.TagIDs)))
		sel = sel.Where(sq.Expr("id IN (?)", carriesAll))
	}

	switch filter.Status {
	case models.TaskStatusCompleted:
		sel = sel.Where("EXISTS (SELECT 1 FROM task_completions c WHERE c.task_id = tasks.id)")
	case models.TaskStatusInProgress:
		sel = sel.Where("NOT EXISTS (SELECT 1 FROM task_completions c WHERE c.task_id = tasks.id)")
	}

	if filter.From != nil {
		sel = sel.Where(sq.GtOrEq{"task_date": *filter.From})
	}
	if filter.To != nil {
		sel = sel.Where(sq.LtOrEq{"task_date": *filter.To})
	}

	tasks, err := r.scanTasks(ctx, r.db, sel)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error listing tasks")
		return nil, err
	}

	if err = r.loadRelations(ctx, tasks); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error loading task relations")
		return nil, err
	}

	return tasks, nil
}

// GetTask returns the task taskID owned by userID.
func (r *taskRepository) GetTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := r.scanTasks(ctx, r.db, r.db.builder.Select(taskColumns...).From("tasks").
		Where(sq.Eq{"id": taskID, "user_id": userID}))
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error getting task")
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrTaskNotFound
	}

	if err = r.loadRelations(ctx, tasks); err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("error loading task relations")
		return models.Task{}, err
	}

	return tasks[0], nil
}

// UpdateTask stores the scalar fields of task and, when tagIDs is non-nil,
// replaces its tag links, all in one transaction.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task, tagIDs *[]string) (models.Task, error) {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		update := r.db.builder.Update("tasks").
			Set("task_name", task.TaskName).
			Set("task_description", task.TaskDescription).
			Set("is_recursive", task.IsRecursive).
			Set("task_date", task.TaskDate).
			Set("rec_task_date", task.RecTaskDate).
			Set("updated_at", task.UpdatedAt).
			Where(sq.Eq{"id": task.ID, "user_id": task.UserID})

		affected, err := exec(ctx, tx, update)
		if err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}
		if affected == 0 {
			return ErrTaskNotFound
		}

		if tagIDs == nil {
			return nil
		}

		if _, err = exec(ctx, tx, r.db.builder.Delete("task_tags").Where(sq.Eq{"task_id": task.ID})); err != nil {
			return fmt.Errorf("unexpected DB error: %w", err)
		}

		return linkTags(ctx, r.db, tx, task.ID, uniqueStrings(*tagIDs))
	})
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error updating task")
		return models.Task{}, err
	}

	return r.GetTask(ctx, task.UserID, task.ID)
}

// DeleteTask removes the task; tag links and completions cascade.
func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, r.db.builder.Delete("tasks").Where(sq.Eq{"id": taskID, "user_id": userID}))
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error deleting task")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) scanTasks(ctx context.Context, q querier, sel sq.SelectBuilder) ([]models.Task, error) {
	rows, err := query(ctx, q, sel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var (
			task     models.Task
			taskDate sql.NullInt64
		)
		if err = rows.Scan(&task.ID, &task.UserID, &task.TaskName, &task.TaskDescription, &task.IsRecursive,
			&taskDate, &task.RecTaskDate, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if taskDate.Valid {
			task.TaskDate = &taskDate.Int64
		}
		task.Tags = []models.Tag{}
		task.Completions = []models.TaskCompletion{}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// loadRelations fills Tags and Completions of tasks in place.
func (r *taskRepository) loadRelations(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tasks))
	index := make(map[string]int, len(tasks))
	for i, task := range tasks {
		ids = append(ids, task.ID)
		index[task.ID] = i
	}

	tagRows, err := query(ctx, r.db, r.db.builder.
		Select("tt.task_id", "t.id", "t.user_id", "t.tag_name", "t.tag_color", "t.created_at").
		From("task_tags tt").
		Join("tags t ON t.id = tt.tag_id").
		Where(sq.Eq{"tt.task_id": ids}).
		OrderBy("t.tag_name", "t.id"))
	if err != nil {
		return err
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var (
			taskID string
			tag    models.Tag
		)
		if err = tagRows.Scan(&taskID, &tag.ID, &tag.UserID, &tag.TagName, &tag.TagColor, &tag.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		i := index[taskID]
		tasks[i].Tags = append(tasks[i].Tags, tag)
	}
	if err = tagRows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	completions, err := listCompletions(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for _, completion := range completions {
		i := index[completion.TaskID]
		tasks[i].Completions = append(tasks[i].Completions, completion)
	}

	return nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
