// Handler for miscellaneous endpoints such as health check

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yumyai/cgcfinder/logger"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Runs      int       `json:"runs"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthCheck reports "ok" with the number of stored runs, or "degraded" when
// the store cannot be read.
func (dbctx *DBContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Timestamp: time.Now(),
	}

	status := http.StatusOK
	runs, err := dbctx.Store.ListRuns(r.Context())
	if err != nil {
		logger.Warn("Health check could not list runs", zap.Error(err))
		response.Health = "degraded"
		status = http.StatusServiceUnavailable
	} else {
		response.Runs = len(runs)
	}

	writeJSON(w, status, response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}
