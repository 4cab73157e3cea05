// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrValidation          = errors.New("validation failed")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenFailed         = errors.New("token rejected")
	ErrNotFound            = errors.New("not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)

// APIError is a failed API call: the HTTP status plus the envelope's
// message and itemized errors. It matches the sentinel for its status and,
// when the message is a known one, the more specific sentinel as well.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string

	kinds []error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s (http %d): %s", e.kinds[0], e.StatusCode, e.Message)
	if len(e.Errors) > 0 {
		msg += ": " + strings.Join(e.Errors, "; ")
	}
	return msg
}

func (e *APIError) Unwrap() []error {
	return e.kinds
}
