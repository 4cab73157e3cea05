// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgProfileFetched, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.UserService.UpdateProfile(r.Context(), identity, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgProfileUpdated, models.NewAuthResponse(user, &token))
}
