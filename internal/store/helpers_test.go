package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB opens a private in-memory SQLite database with the schema
// applied.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

// newMockDB wraps sqlmock in a postgres-flavoured DB.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

var ids = utils.NewUUIDGenerator()

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func seedUser(t *testing.T, s *Storages, email string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		ID:           ids.Generate(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		UserName:     "ada",
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    now(),
	})
	require.NoError(t, err)
	return user
}

func seedTag(t *testing.T, s *Storages, userID, name string) models.Tag {
	t.Helper()

	tag, err := s.TagRepository.CreateTag(context.Background(), models.Tag{
		ID:        ids.Generate(),
		UserID:    userID,
		TagName:   name,
		TagColor:  "#00ff00",
		CreatedAt: now(),
	})
	require.NoError(t, err)
	return tag
}

func seedTask(t *testing.T, s *Storages, userID, name string, date *int64, tags ...models.Tag) models.Task {
	t.Helper()

	task := models.Task{
		ID:        ids.Generate(),
		UserID:    userID,
		TaskName:  name,
		TaskDate:  date,
		Tags:      tags,
		CreatedAt: now(),
		UpdatedAt: now(),
	}
	if date == nil {
		task.IsRecursive = true
		task.RecTaskDate = models.Schedule{{Day: models.Monday, Time: 900}}
	}

	created, err := s.TaskRepository.CreateTask(context.Background(), task)
	require.NoError(t, err)
	return created
}

func ptr[T any](v T) *T { return &v }
