// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/mock"
	"github.com/al90012/primetrade-ai-assignment/internal/service"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "valid-token"
	testOrigin = "https://app.example.com"
)

var jo = models.Identity{UserID: "user-1", Name: "Jo", Email: "jo@example.com"}

type testServices struct {
	auth   *mock.MockAuthService
	users  *mock.MockUserService
	tasks  *mock.MockTaskService
	health *mock.MockHealthService
}

// envelope mirrors models.Response with Data kept raw for inspection.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testServices{
		auth:   mock.NewMockAuthService(ctrl),
		users:  mock.NewMockUserService(ctrl),
		tasks:  mock.NewMockTaskService(ctrl),
		health: mock.NewMockHealthService(ctrl),
	}

	services := &service.Services{
		AuthService:   m.auth,
		UserService:   m.users,
		TaskService:   m.tasks,
		HealthService: m.health,
	}
	cfg := config.StructuredConfig{
		App:    config.App{Mode: config.ModeDevelopment},
		Server: config.Server{CORSOrigins: []string{testOrigin}},
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// expectAuthenticated makes the auth middleware accept testToken as jo.
func (m testServices) expectAuthenticated() {
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(jo, nil)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}
