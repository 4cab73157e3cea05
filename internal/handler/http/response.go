// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
)

// nullData renders as an explicit "data": null in the envelope.
var nullData = json.RawMessage("null")

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	if _, err := utils.WriteJSON(w, models.Response{Success: true, Data: data, Message: message}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError answers with the envelope matching err. Validation errors
// carry their itemized messages. Unknown errors become 500 responses whose
// message is the error text in development and a generic one in production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	response := models.Response{Success: false}
	status := statusFromError(err)

	var validationErr *validators.ValidationError
	message, known := messageFromError(err)
	switch {
	case errors.As(err, &validationErr):
		response.Message = app.MsgValidationFailed
		response.Errors = validationErr.Errors
		log.Debug().Strs("errors", validationErr.Errors).Msg("validation failed")
	case known:
		response.Message = message
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	default:
		status = http.StatusInternalServerError
		response.Message = err.Error()
		if h.production {
			response.Message = app.MsgServerError
		}
		log.Err(err).Msg("unexpected error while handling request")
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}

// decodeJSON decodes the request body into dst. An empty body decodes as
// an empty object so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

// identityOrReject returns the acting user attached by the auth middleware.
func (h *Handler) identityOrReject(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrNoToken)
		return models.Identity{}, false
	}

	return identity, true
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}

func writeRouteNotFound(w http.ResponseWriter) {
	utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgRouteNotFound}, http.StatusNotFound)
}
