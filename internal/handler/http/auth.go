// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.UserID).Msg("user successfully registered")
	h.writeSuccess(w, r, http.StatusCreated, app.MsgUserRegistered, models.NewAuthResponse(user, &token))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("id", user.UserID).Msg("user successfully logged in")
	h.writeSuccess(w, r, http.StatusOK, app.MsgLoggedIn, models.NewAuthResponse(user, &token))
}
