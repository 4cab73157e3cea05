// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/go-resty/resty/v2"
)

// envelope is the API response shape with the payload left undecoded.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient builds an [APIClient] for the API at address, which may
// omit the scheme ("localhost:5000"). A zero timeout keeps resty's default.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
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

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req), resty.MethodPost, "/api/auth/register", &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.do(h.request(ctx).SetBody(req), resty.MethodPost, "/api/auth/login", &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAPIClient) Profile(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := h.do(h.authorized(ctx), resty.MethodGet, "/api/users/me", &identity); err != nil {
		return models.Identity{}, fmt.Errorf("get profile: %w", err)
	}

	return identity, nil
}

func (h *httpAPIClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := h.do(h.authorized(ctx).SetBody(req), resty.MethodPut, "/api/users/me", &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("update profile: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpAPIClient) ListTasks(ctx context.Context, search string, status models.TaskStatus) ([]models.Task, error) {
	r := h.authorized(ctx)
	if search != "" {
		r.SetQueryParam("search", search)
	}
	if status != "" {
		r.SetQueryParam("status", status.String())
	}

	tasks := make([]models.Task, 0)
	if err := h.do(r, resty.MethodGet, "/api/tasks", &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (h *httpAPIClient) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	var task models.Task
	r := h.authorized(ctx).SetPathParam("id", taskID)
	if err := h.do(r, resty.MethodGet, "/api/tasks/{id}", &task); err != nil {
		return models.Task{}, fmt.Errorf("get task %q: %w", taskID, err)
	}

	return task, nil
}

func (h *httpAPIClient) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := h.do(h.authorized(ctx).SetBody(req), resty.MethodPost, "/api/tasks", &task); err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

func (h *httpAPIClient) UpdateTask(ctx context.Context, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	r := h.authorized(ctx).SetPathParam("id", taskID).SetBody(req)
	if err := h.do(r, resty.MethodPut, "/api/tasks/{id}", &task); err != nil {
		return models.Task{}, fmt.Errorf("update task %q: %w", taskID, err)
	}

	return task, nil
}

func (h *httpAPIClient) DeleteTask(ctx context.Context, taskID string) error {
	r := h.authorized(ctx).SetPathParam("id", taskID)
	if err := h.do(r, resty.MethodDelete, "/api/tasks/{id}", nil); err != nil {
		return fmt.Errorf("delete task %q: %w", taskID, err)
	}

	return nil
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var report models.HealthResponse
	if err := h.do(h.request(ctx), resty.MethodGet, "/api/health", &report); err != nil {
		return report, fmt.Errorf("health: %w", err)
	}

	return report, nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAPIClient) authorized(ctx context.Context) *resty.Request {
	r := h.request(ctx)
	if token := h.Token(); token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// do executes r and decodes the envelope. The "data" payload is decoded
// into out even for failed calls so that reports such as the 503 health
// answer reach the caller.
func (h *httpAPIClient) do(r *resty.Request, method, path string, out any) error {
	var env envelope
	resp, err := r.SetResult(&env).SetError(&env).Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Msg("api call finished")

	if out != nil && len(env.Data) > 0 {
		if err = json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decoding data: %w", ErrUnexpectedResponse, err)
		}
	}

	return mapAPIError(resp.StatusCode(), env)
}
