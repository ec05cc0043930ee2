package handlers

import (
	"net/http"

	"claims-assistant/internal/models"
	"claims-assistant/internal/services"

	"go.uber.org/zap"
)

// SuggestedPromptsResponse lists the starter questions shown in an empty conversation
type SuggestedPromptsResponse struct {
	Prompts []string `json:"prompts"`
}

// AssistantHandler exposes the stateless classifier and citation extractor
type AssistantHandler struct {
	responder
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{responder: newResponder(logger)}
}

// Classify handles question classification requests
// @Summary Classify a question
// @Description Select the response category of a free-text question
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Question"
// @Success 200 {object} models.ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/classify [post]
func (h *AssistantHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	category := services.Classify(req.Text)
	h.logger.Debug("Classified question", zap.String("category", string(category)))
	h.sendJSON(w, http.StatusOK, models.ClassifyResponse{Category: string(category)})
}

// Citations handles citation extraction requests
// @Summary Extract citations
// @Description List the bracketed citation labels of a text in first-seen order
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body models.TextRequest true "Text"
// @Success 200 {object} models.CitationsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/citations [post]
func (h *AssistantHandler) Citations(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	h.sendJSON(w, http.StatusOK, models.CitationsResponse{Citations: services.ExtractCitations(req.Text)})
}

// SuggestedPrompts handles suggested prompt requests
// @Summary Suggested prompts
// @Description Starter questions for an empty conversation
// @Tags assistant
// @Produce json
// @Success 200 {object} SuggestedPromptsResponse
// @Router /api/v1/prompts/suggested [get]
func (h *AssistantHandler) SuggestedPrompts(w http.ResponseWriter, r *http.Request) {
	h.sendJSON(w, http.StatusOK, SuggestedPromptsResponse{Prompts: services.SuggestedPrompts()})
}
