package adapter

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/ergo/internal/config"
	ergohttp "github.com/MKhiriev/ergo/internal/handler/http"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/service"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const e2eSecret = "e2e-secret"

// newE2EServer serves the real router backed by a private in-memory SQLite
// database.
func newE2EServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.NewConnectSQLite(ctx, "file:"+name+"?mode=memory&cache=shared", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenIssuer:      "ergo-e2e",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
		},
		Auth: config.Auth{JWTSecret: e2eSecret},
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg, models.NewAppBuildInfo("e2e", "", ""), log)
	require.NoError(t, err)

	h := ergohttp.NewHandler(services, ergohttp.NewAuthGuard(utils.NewTokenVerifier(e2eSecret)), cfg.Server, log)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return srv
}

func newE2EClient(t *testing.T, serverURL string) APIClient {
	t.Helper()
	c, err := NewHTTPAPIClient(config.ClientConfig{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c
}

func registerAndLogin(t *testing.T, c APIClient, email string) {
	t.Helper()
	ctx := context.Background()

	_, err := c.Register(ctx, models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		UserName:  strings.Split(email, "@")[0],
		Email:     email,
		Password:  "correct-horse",
	})
	require.NoError(t, err)

	_, err = c.Login(ctx, models.LoginRequest{Email: email, Password: "correct-horse"})
	require.NoError(t, err)
}

func TestE2E_TaskLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newE2EClient(t, newE2EServer(t).URL)
	registerAndLogin(t, c, "ada@example.com")

	tag, err := c.CreateTag(ctx, models.Tag{TagName: "home", TagColor: "green"})
	require.NoError(t, err)

	_, err = c.CreateTag(ctx, models.Tag{TagName: "home", TagColor: "red"})
	require.ErrorIs(t, err, ErrConflict)

	due := int64(1_700_000_000)
	task, err := c.CreateTask(ctx, models.CreateTaskRequest{
		TaskName: "Water plants",
		TaskDate: &due,
		TagIDs:   []string{tag.ID},
	})
	require.NoError(t, err)
	require.Len(t, task.Tags, 1)
	assert.Equal(t, tag.ID, task.Tags[0].ID)

	_, err = c.CreateTask(ctx, models.CreateTaskRequest{TaskName: "No date"})
	require.ErrorIs(t, err, ErrBadRequest)

	tasks, err := c.ListTasks(ctx, models.TaskFilter{TagIDs: []string{tag.ID}})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	completion, err := c.CompleteTask(ctx, task.ID, models.TaskCompletion{CompletionDate: "2026-03-14"})
	require.NoError(t, err)

	_, err = c.CompleteTask(ctx, task.ID, models.TaskCompletion{CompletionDate: "2026-03-14"})
	require.ErrorIs(t, err, ErrConflict)

	tasks, err = c.ListTasks(ctx, models.TaskFilter{Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, c.UncompleteTask(ctx, task.ID, completion.ID))

	tasks, err = c.ListTasks(ctx, models.TaskFilter{Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	name := "Water all plants"
	updated, err := c.UpdateTask(ctx, task.ID, models.UpdateTaskRequest{TaskName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.TaskName)

	require.NoError(t, c.DeleteTask(ctx, task.ID))
	_, err = c.GetTask(ctx, task.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.DeleteTag(ctx, tag.ID))
	tags, err := c.ListTags(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestE2E_GuardRejectsForeignAndMissingTokens(t *testing.T) {
	ctx := context.Background()
	url := newE2EServer(t).URL

	ada := newE2EClient(t, url)
	registerAndLogin(t, ada, "ada@example.com")

	bob := newE2EClient(t, url)
	registerAndLogin(t, bob, "bob@example.com")

	// ada's token against bob's routes
	intruder := newE2EClient(t, url)
	intruder.SetToken(ada.Token())
	intruder.SetUserID(bob.UserID())

	_, err := intruder.ListTasks(ctx, models.TaskFilter{})
	require.ErrorIs(t, err, ErrUnauthorized)

	anonymous := newE2EClient(t, url)
	anonymous.SetUserID(ada.UserID())

	_, err = anonymous.ListTags(ctx)
	require.ErrorIs(t, err, ErrBadRequest)

	forged := newE2EClient(t, url)
	forged.SetToken("not-a-jwt")
	forged.SetUserID(ada.UserID())

	_, err = forged.ListTags(ctx)
	require.ErrorIs(t, err, ErrBadRequest)
}
