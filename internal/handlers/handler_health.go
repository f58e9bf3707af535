package handlers

import (
	"net/http"

	"certportal/internal/middlewares"
	"certportal/internal/version"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Version: version.GetVersion(),
	})
}
