// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		response := models.Response{Success: false, Data: report, Message: app.MsgServiceUnavailable}
		utils.WriteJSON(w, response, http.StatusServiceUnavailable)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgHealthy, report)
}
