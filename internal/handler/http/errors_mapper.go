// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/internal/service"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrNoToken:       http.StatusUnauthorized,
	ErrRouteNotFound: http.StatusNotFound,

	validators.ErrValidation:           http.StatusBadRequest,
	service.ErrMissingCredentials:      http.StatusBadRequest,
	service.ErrUserAlreadyExists:       http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTaskNotFound:            http.StatusNotFound,
	service.ErrStorageUnavailable:      http.StatusServiceUnavailable,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:   app.MsgInvalidJSON,
	ErrNoToken:       app.MsgNoToken,
	ErrRouteNotFound: app.MsgRouteNotFound,

	validators.ErrValidation:           app.MsgValidationFailed,
	service.ErrMissingCredentials:      app.MsgMissingCredentials,
	service.ErrUserAlreadyExists:       app.MsgUserAlreadyExists,
	service.ErrInvalidCredentials:      app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenFailed,
	service.ErrUnauthenticated:         app.MsgNoToken,
	service.ErrTaskNotFound:            app.MsgTaskNotFound,
	service.ErrStorageUnavailable:      app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for a known error and
// false for anything that should be answered as a server error.
func messageFromError(err error) (string, bool) {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}
