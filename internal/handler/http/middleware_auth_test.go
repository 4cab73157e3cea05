// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/internal/service"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(m testServices)
		wantStatus    int
		wantMessage   string
		wantNext      bool
	}{
		{
			name:        "no header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgNoToken,
		},
		{
			name:          "not a bearer scheme",
			authorization: "Basic am86c2VjcmV0",
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   app.MsgNoToken,
		},
		{
			name:          "bearer without token",
			authorization: "Bearer ",
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   app.MsgNoToken,
		},
		{
			name:          "expired or forged token",
			authorization: "Bearer forged",
			setup: func(m testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), "forged").
					Return(models.Identity{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenFailed,
		},
		{
			name:          "user lookup fails",
			authorization: "Bearer " + testToken,
			setup: func(m testServices) {
				m.auth.EXPECT().Authenticate(gomock.Any(), testToken).
					Return(models.Identity{}, errors.New("database is locked"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "database is locked",
		},
		{
			name:          "valid token",
			authorization: "Bearer " + testToken,
			setup:         func(m testServices) { m.expectAuthenticated() },
			wantStatus:    http.StatusNoContent,
			wantNext:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				identity, ok := utils.IdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, jo, identity)
				w.WriteHeader(http.StatusNoContent)
			})

			headers := map[string]string{}
			if tt.authorization != "" {
				headers["Authorization"] = tt.authorization
			}
			rr := doRequest(t, h.auth(next), http.MethodGet, "/api/tasks", "", headers)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
			if !tt.wantNext {
				env := decodeEnvelope(t, rr)
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantMessage, env.Message)
			}
		})
	}
}

func TestIdentityOrReject_WithoutMiddleware(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := doRequest(t, http.HandlerFunc(h.listTasks), http.MethodGet, "/api/tasks", "", nil)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgNoToken, decodeEnvelope(t, rr).Message)
}
