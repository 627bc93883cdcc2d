package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ergo/internal/adapter"
	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "0190c1c4-7b6a-7cc0-8a39-5b1a4e4a7a01"

// run executes the client with args against handler and returns stdout.
func run(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := adapter.NewHTTPAPIClient(config.ClientConfig{
		ServerURL:      srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          "tok",
		UserID:         testUserID,
	}, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	root := newRootCmd(api, models.NewAppBuildInfo("v1.2.3", "", ""))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), err
}

func respond(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, nil, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build version: v1.2.3")
	assert.Contains(t, out, "Build date: N/A")
}

func TestLoginCmd_PrintsExports(t *testing.T) {
	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		var creds models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds.Email)

		respond(t, w, http.StatusOK, models.LoginResponse{Token: "signed", ID: testUserID})
	}, "login", "--email", "ada@example.com", "--password", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "export ERGO_TOKEN=signed\nexport ERGO_USER_ID="+testUserID+"\n", out)
}

func TestTasksAddCmd_Weekly(t *testing.T) {
	var got models.CreateTaskRequest

	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/"+testUserID, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, http.StatusCreated, models.Task{ID: "t1"})
	}, "tasks", "add", "Gym", "--weekly", "monday@0730", "--weekly", "THURSDAY@1900", "--tag", "g1")

	require.NoError(t, err)
	assert.Equal(t, "Gym", got.TaskName)
	assert.True(t, got.IsRecursive)
	assert.Equal(t, models.Schedule{{Day: models.Monday, Time: 730}, {Day: models.Thursday, Time: 1900}}, got.RecTaskDate)
	assert.Equal(t, []string{"g1"}, got.TagIDs)
	assert.Nil(t, got.TaskDate)
}

func TestTasksAddCmd_DateAndWeeklyExclusive(t *testing.T) {
	_, err := run(t, nil, "tasks", "add", "x", "--date", "1", "--weekly", "MONDAY@0100")

	assert.Error(t, err)
}

func TestTasksListCmd(t *testing.T) {
	due := int64(0)

	out, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "in-progress", r.URL.Query().Get("status"))
		assert.Equal(t, "5", r.URL.Query().Get("from"))
		respond(t, w, http.StatusOK, []models.Task{{
			ID:       "t1",
			TaskName: "Water plants",
			TaskDate: &due,
			Tags:     []models.Tag{{TagName: "home"}},
		}})
	}, "tasks", "list", "--status", "in-progress", "--from", "5")

	require.NoError(t, err)
	assert.Contains(t, out, "Water plants")
	assert.Contains(t, out, "1970-01-01 00:00:00")
	assert.Contains(t, out, "home")
}

func TestTagsRmCmd_NotFound(t *testing.T) {
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, http.StatusNotFound, models.Message{Message: "Not Found"})
	}, "tags", "rm", "g1")

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestParseSchedule_Invalid(t *testing.T) {
	for _, slot := range []string{"MONDAY", "MONDAY@noon"} {
		_, err := parseSchedule([]string{slot})
		assert.Error(t, err, slot)
	}
}

func TestDueString(t *testing.T) {
	assert.Equal(t, "-", dueString(models.Task{}))
	assert.Equal(t, "MONDAY 07:30, FRIDAY 18:05", dueString(models.Task{
		IsRecursive: true,
		RecTaskDate: models.Schedule{{Day: models.Monday, Time: 730}, {Day: models.Friday, Time: 1805}},
	}))
}

func TestRootFlags_OverrideIdentity(t *testing.T) {
	_, err := run(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags/other-user", r.URL.Path)
		assert.Equal(t, "Bearer flag-token", r.Header.Get("Authorization"))
		respond(t, w, http.StatusOK, []models.Tag{})
	}, "tags", "list", "--token", "flag-token", "--user-id", "other-user")

	require.NoError(t, err)
}
