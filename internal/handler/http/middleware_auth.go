// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// and loads its user via [service.AuthService.Authenticate], and on success
// stores the resulting [models.Identity] in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// The middleware answers with the envelope and HTTP 401 Unauthorized when:
//   - The header is absent or carries no bearer token ("Not authorized, no token").
//   - The token is invalid, expired, or names a user that no longer exists
//     ("Not authorized, token failed").
//
// Storage failures while loading the user are answered with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			h.writeError(w, r, ErrNoToken)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
