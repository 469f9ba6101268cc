package handler

import (
	"net/http"
	"training-plan-server/internal/util"
)

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"v1"`
}

// Health godoc
// @Summary Проверка доступности сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Router /health [get]
func Health(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: version})
	}
}
