// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
)

// messageErrors refines a status using the envelope message, which the API
// keeps stable.
var messageErrors = map[string]error{
	app.MsgValidationFailed:   ErrValidation,
	app.MsgUserAlreadyExists:  ErrUserAlreadyExists,
	app.MsgInvalidCredentials: ErrInvalidCredentials,
	app.MsgTokenFailed:        ErrTokenFailed,
	app.MsgTaskNotFound:       ErrTaskNotFound,
}

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapAPIError converts a non-2xx answer into an *APIError. It returns nil
// for successful statuses.
func mapAPIError(statusCode int, env envelope) error {
	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: statusCode, Message: env.Message, Errors: env.Errors}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	if kind, ok := messageErrors[env.Message]; ok {
		apiErr.kinds = append(apiErr.kinds, kind)
	}
	if kind, ok := statusErrors[statusCode]; ok {
		apiErr.kinds = append(apiErr.kinds, kind)
	}
	if len(apiErr.kinds) == 0 {
		apiErr.kinds = append(apiErr.kinds, ErrUnexpectedResponse)
	}

	return apiErr
}
