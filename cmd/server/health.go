package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
	"github.com/isaqu3d/star-wars-wiki-api/internal/redact"
)

const healthPingTimeout = 2 * time.Second

type healthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// health reports whether the server can reach the database.
func (app *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	resp := healthResponse{
		Status:      "ok",
		Database:    "up",
		Version:     app.config.Server.APIVersion,
		Environment: app.config.Server.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK
	if err := app.db.PingContext(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), app.logger).Warn("health check failed",
			slog.String("error", redact.Error(err)))
		resp.Status = "degraded"
		resp.Database = "down"
		status = http.StatusServiceUnavailable
	}
	shared.RespondWithJSON(w, r, status, resp)
}
