package store

import "github.com/MKhiriev/ergo/internal/logger"

// Storages aggregates every repository backed by a single [DB].
type Storages struct {
	UserRepository       UserRepository
	TaskRepository       TaskRepository
	TagRepository        TagRepository
	CompletionRepository CompletionRepository
}

// NewStorages constructs all repositories over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		TaskRepository:       NewTaskRepository(db, log),
		TagRepository:        NewTagRepository(db, log),
		CompletionRepository: NewCompletionRepository(db, log),
	}
}
