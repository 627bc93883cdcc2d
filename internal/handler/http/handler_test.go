package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/mock"
	"github.com/MKhiriev/ergo/internal/service"
	"github.com/MKhiriev/ergo/internal/store"
	"github.com/MKhiriev/ergo/internal/validators"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = "0190c1c4-7b6a-7cc0-8a39-5b1a4e4a7a01"
	testTaskID = "0190c1c4-7b6a-7cc0-8a39-5b1a4e4a7a02"
	testTagID  = "0190c1c4-7b6a-7cc0-8a39-5b1a4e4a7a03"
)

type testAPI struct {
	router *chi.Mux
	token  string

	auth    *mock.MockAuthService
	tasks   *mock.MockTaskService
	tags    *mock.MockTagService
	appInfo *mock.MockAppInfoService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		token:   signToken(t, testUserID),
		auth:    mock.NewMockAuthService(ctrl),
		tasks:   mock.NewMockTaskService(ctrl),
		tags:    mock.NewMockTagService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    api.auth,
		TaskService:    api.tasks,
		TagService:     api.tags,
		AppInfoService: api.appInfo,
	}

	h := NewHandler(services, newTestGuard(), config.Server{CORSOrigins: []string{"https://app.example.com"}}, logger.Nop())
	api.router = h.Init()

	return api
}

// do sends an authenticated request; pass an empty token via doAs to skip
// the header.
func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	return a.doAs(a.token, method, path, body)
}

func (a *testAPI) doAs(token, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func int64Ptr(v int64) *int64 { return &v }

// ---- root, version and ops endpoints ----

func TestRoot(t *testing.T) {
	api := newTestAPI(t)

	rr := api.doAs("", http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Ergo api running here", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.0.0", "", "abc123"))

	rr := api.doAs("", http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	info := decodeBody[models.AppBuildInfo](t, rr)
	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	api.doAs("", http.MethodGet, "/", "")
	api.doAs("", http.MethodGet, "/api/tasks/"+testUserID, "")
	rr := api.doAs("", http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `ergo_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, body, `ergo_auth_guard_rejections_total{outcome="missing_token"} 1`)
	assert.Contains(t, body, "ergo_http_request_duration_seconds")
}

func TestSwaggerDocument(t *testing.T) {
	api := newTestAPI(t)

	rr := api.doAs("", http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/api/tasks/{userId}"`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "unsupported method on public route", method: http.MethodDelete, path: "/api/users/login"},
		{name: "unsupported method on root", method: http.MethodPost, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := api.doAs("", tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "Not Found", decodeMessage(t, rr))
		})
	}
}

func TestMiddlewareChainHeaders(t *testing.T) {
	api := newTestAPI(t)

	rr := api.doAs("", http.MethodGet, "/", "")

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	for name, value := range securityHeaders {
		assert.Equal(t, value, rr.Header().Get(name), name)
	}
}

func TestCORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks/"+testUserID, nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rr := httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)

	assert.Equal(t, "https://app.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

// ---- users ----

func TestRegister(t *testing.T) {
	body := `{"firstName":"Ada","lastName":"Lovelace","userName":"ada","email":"ada@example.com","password":"correct-horse"}`

	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated},
		{name: "duplicate email", body: body, serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), wantStatus: http.StatusConflict, wantMessage: "Email already in use"},
		{name: "invalid field", body: body, serviceErr: fmt.Errorf("%w: email must be a valid email", validators.ErrInvalidData), wantStatus: http.StatusBadRequest, wantMessage: "Bad Request"},
		{name: "broken json", body: `{"firstName":`, wantStatus: http.StatusBadRequest, wantMessage: "Bad Request: Invalid JSON"},
		{name: "empty body", wantStatus: http.StatusBadRequest, wantMessage: "Bad Request: Empty body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			if strings.HasPrefix(tt.body, "{\"firstName\":\"Ada\"") {
				api.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u models.User) (models.User, error) {
						if tt.serviceErr != nil {
							return models.User{}, tt.serviceErr
						}
						u.ID = testUserID
						return u.Public(), nil
					},
				)
			}

			rr := api.doAs("", http.MethodPost, "/api/users", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
				return
			}

			user := decodeBody[map[string]any](t, rr)
			assert.Equal(t, testUserID, user["id"])
			assert.Equal(t, "ada@example.com", user["email"])
			assert.NotContains(t, user, "password")
		})
	}
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	user := models.User{ID: testUserID, Email: "ada@example.com"}
	api.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "ada@example.com", Password: "correct-horse"}).
		Return(user, nil)
	api.auth.EXPECT().CreateToken(gomock.Any(), user).
		Return(models.Token{SignedString: "signed.token.value"}, nil)

	rr := api.doAs("", http.MethodPost, "/api/users/login", `{"email":"ada@example.com","password":"correct-horse"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.LoginResponse](t, rr)
	assert.Equal(t, "signed.token.value", resp.Token)
	assert.Equal(t, testUserID, resp.ID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongCredentials)

	rr := api.doAs("", http.MethodPost, "/api/users/login", `{"email":"ada@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid email or password", decodeMessage(t, rr))
}

func TestLogin_TokenFailure(t *testing.T) {
	api := newTestAPI(t)
	api.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{ID: testUserID}, nil)
	api.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.Join(service.ErrTokenCreationFailed, errors.New("boom")))

	rr := api.doAs("", http.MethodPost, "/api/users/login", `{"email":"ada@example.com","password":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeMessage(t, rr))
}
