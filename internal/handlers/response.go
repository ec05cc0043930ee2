package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// SuccessResponse acknowledges a request that returns no resource
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// responder carries the JSON helpers shared by the handlers
type responder struct {
	logger *zap.Logger
}

func newResponder(logger *zap.Logger) responder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return responder{logger: logger}
}

func (h responder) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON", zap.Error(err))
	}
}

func (h responder) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Status:  status,
	})
}

// sendServiceError maps validation errors to 400 and lookup misses to 404.
// Anything else is logged and reported as a 500 about action.
func (h responder) sendServiceError(w http.ResponseWriter, err error, action string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.sendError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repositories.ErrNotFound):
		h.sendError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("Request failed", zap.String("action", action), zap.Error(err))
		h.sendError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// decodeJSON reads a JSON body into dst, answering 400 on failure
func (h responder) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// requireClaim resolves the {claimId} path variable, answering 404 for unknown claims
func (h responder) requireClaim(w http.ResponseWriter, r *http.Request, claims *services.ClaimService) (string, bool) {
	claimID := mux.Vars(r)["claimId"]
	if _, err := claims.Get(claimID); err != nil {
		h.sendServiceError(w, err, "get claim")
		return "", false
	}
	return claimID, true
}
