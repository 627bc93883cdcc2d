package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/models"
)

var completionColumns = []string{"id", "task_id", "completion_date", "completion_time"}

// completionRepository is the SQL-backed implementation of
// [CompletionRepository]. Ownership of the task is checked by the caller.
type completionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCompletionRepository constructs a [CompletionRepository] over db.
func NewCompletionRepository(db *DB, logger *logger.Logger) CompletionRepository {
	logger.Debug().Msg("creating task completion repository")
	return &completionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCompletion records a completion. A second completion of the same
// task on the same date yields [ErrCompletionAlreadyExists].
func (r *completionRepository) CreateCompletion(ctx context.Context, completion models.TaskCompletion) (models.TaskCompletion, error) {
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert("task_completions").
		Columns(completionColumns...).
		Values(completion.ID, completion.TaskID, completion.CompletionDate, completion.CompletionTime)

	if _, err := exec(ctx, r.db, insert); err != nil {
		log.Err(err).Str("func", "*completionRepository.CreateCompletion").Msg("error inserting completion")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.TaskCompletion{}, ErrCompletionAlreadyExists
		case ForeignKeyViolation:
			return models.TaskCompletion{}, ErrTaskNotFound
		default:
			return models.TaskCompletion{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return completion, nil
}

// DeleteCompletion removes completionID of taskID.
func (r *completionRepository) DeleteCompletion(ctx context.Context, taskID, completionID string) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, r.db.builder.Delete("task_completions").
		Where(sq.Eq{"id": completionID, "task_id": taskID}))
	if err != nil {
		log.Err(err).Str("func", "*completionRepository.DeleteCompletion").Msg("error deleting completion")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCompletionNotFound
	}

	return nil
}

// listCompletions returns the completions of taskIDs, oldest date first.
func listCompletions(ctx context.Context, db *DB, taskIDs []string) ([]models.TaskCompletion, error) {
	rows, err := query(ctx, db, db.builder.Select(completionColumns...).
		From("task_completions").
		Where(sq.Eq{"task_id": taskIDs}).
		OrderBy("completion_date", "id"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make([]models.TaskCompletion, 0)
	for rows.Next() {
		var c models.TaskCompletion
		if err = rows.Scan(&c.ID, &c.TaskID, &c.CompletionDate, &c.CompletionTime); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		completions = append(completions, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return completions, nil
}
