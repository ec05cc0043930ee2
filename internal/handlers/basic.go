package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"claims-assistant/internal/models"

	"go.uber.org/zap"
)

// HealthCheckHandler godoc
// @Summary Health check
// @Description Reports that the server is up
// @Tags general
// @Produce json
// @Success 200 {object} models.BasicResponse
// @Router /health [get]
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	response := models.BasicResponse{
		Message: "Server is healthy",
		Status:  "success",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// HealthCheck probes one backing dependency
type HealthCheck func(ctx context.Context) error

// ReadinessResponse reports the state of each backing dependency
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ReadinessHandler runs named dependency checks
type ReadinessHandler struct {
	responder
	checks  map[string]HealthCheck
	timeout time.Duration
}

// NewReadinessHandler creates a readiness handler over the given checks
func NewReadinessHandler(checks map[string]HealthCheck, logger *zap.Logger) *ReadinessHandler {
	return &ReadinessHandler{
		responder: newResponder(logger),
		checks:    checks,
		timeout:   2 * time.Second,
	}
}

// Ready godoc
// @Summary Readiness check
// @Description Probes the library store and, when configured, the LLM backend
// @Tags general
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /health/ready [get]
func (h *ReadinessHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	resp := ReadinessResponse{
		Status: "ready",
		Checks: make(map[string]string, len(h.checks)),
	}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("check", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	h.sendJSON(w, status, resp)
}
