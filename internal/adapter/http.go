// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ergo/internal/config"
	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	token  string
	userID string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an [APIClient] for cfg.ServerURL. The token and
// user id from cfg, if any, are preloaded so guarded calls work without a
// fresh Login.
//
// Returns an error if cfg.ServerURL is empty or is not a valid URL.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	c := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(cfg.Token)
	c.SetUserID(cfg.UserID)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAPIClient) SetToken(token string) {
	c.token = utils.TokenFromHeader(strings.TrimSpace(token))
}

func (c *httpAPIClient) Token() string {
	return c.token
}

func (c *httpAPIClient) SetUserID(userID string) {
	c.userID = strings.TrimSpace(userID)
}

func (c *httpAPIClient) UserID() string {
	return c.userID
}

// Register implements [APIClient]. It POSTs the new user to /api/users and
// returns the created user without its password.
func (c *httpAPIClient) Register(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(user).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [APIClient].
func (c *httpAPIClient) Login(ctx context.Context, credentials models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&login).
		Post("/api/users/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetToken(login.Token)
	c.SetUserID(login.ID)
	c.logger.Debug().Str("user_id", login.ID).Msg("logged in")

	return login, nil
}

func (c *httpAPIClient) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.call(ctx, "create task", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&task).Post("/api/tasks/" + base)
	})
	return task, err
}

// ListTasks implements [APIClient]. filter.UserID is ignored; the stored
// user id is used instead.
func (c *httpAPIClient) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := url.Values{}
	for _, tagID := range filter.TagIDs {
		query.Add("tag", tagID)
	}
	if filter.Status != models.TaskStatusAny {
		query.Set("status", string(filter.Status))
	}
	if filter.From != nil {
		query.Set("from", strconv.FormatInt(*filter.From, 10))
	}
	if filter.To != nil {
		query.Set("to", strconv.FormatInt(*filter.To, 10))
	}

	var tasks []models.Task
	err := c.call(ctx, "list tasks", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetQueryParamsFromValues(query).SetResult(&tasks).Get("/api/tasks/" + base)
	})
	return tasks, err
}

func (c *httpAPIClient) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	var task models.Task
	err := c.call(ctx, "get task", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetResult(&task).Get("/api/tasks/" + base + "/" + url.PathEscape(taskID))
	})
	return task, err
}

func (c *httpAPIClient) UpdateTask(ctx context.Context, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	err := c.call(ctx, "update task", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&task).Put("/api/tasks/" + base + "/" + url.PathEscape(taskID))
	})
	return task, err
}

func (c *httpAPIClient) DeleteTask(ctx context.Context, taskID string) error {
	return c.call(ctx, "delete task", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.Delete("/api/tasks/" + base + "/" + url.PathEscape(taskID))
	})
}

// CompleteTask implements [APIClient]. An empty completion date lets the
// server pick the current day.
func (c *httpAPIClient) CompleteTask(ctx context.Context, taskID string, completion models.TaskCompletion) (models.TaskCompletion, error) {
	var created models.TaskCompletion
	err := c.call(ctx, "complete task", func(r *resty.Request, base string) (*resty.Response, error) {
		if completion.CompletionDate != "" {
			r.SetBody(models.TaskCompletion{CompletionDate: completion.CompletionDate})
		}
		return r.SetResult(&created).Post("/api/tasks/" + base + "/" + url.PathEscape(taskID) + "/completions")
	})
	return created, err
}

func (c *httpAPIClient) UncompleteTask(ctx context.Context, taskID, completionID string) error {
	return c.call(ctx, "uncomplete task", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.Delete("/api/tasks/" + base + "/" + url.PathEscape(taskID) + "/completions/" + url.PathEscape(completionID))
	})
}

func (c *httpAPIClient) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	var created models.Tag
	err := c.call(ctx, "create tag", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetBody(models.Tag{TagName: tag.TagName, TagColor: tag.TagColor}).SetResult(&created).Post("/api/tags/" + base)
	})
	return created, err
}

func (c *httpAPIClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := c.call(ctx, "list tags", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.SetResult(&tags).Get("/api/tags/" + base)
	})
	return tags, err
}

func (c *httpAPIClient) DeleteTag(ctx context.Context, tagID string) error {
	return c.call(ctx, "delete tag", func(r *resty.Request, base string) (*resty.Response, error) {
		return r.Delete("/api/tags/" + base + "/" + url.PathEscape(tagID))
	})
}

// call runs a guarded request. send receives a request carrying the bearer
// header and the escaped user id to build the path from.
func (c *httpAPIClient) call(ctx context.Context, name string, send func(r *resty.Request, userID string) (*resty.Response, error)) error {
	if c.userID == "" {
		return ErrNotLoggedIn
	}

	resp, err := send(c.authedRequest(ctx), url.PathEscape(c.userID))
	if err != nil {
		return fmt.Errorf("%s request: %w", name, err)
	}
	return mapHTTPError(resp)
}

func (c *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
