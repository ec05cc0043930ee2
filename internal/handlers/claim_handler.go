package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// ClaimHandler handles claim records and their conversations
type ClaimHandler struct {
	responder
	claims    *services.ClaimService
	sessions  *services.SessionManager
	documents *services.DocumentService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claims *services.ClaimService, sessions *services.SessionManager, documents *services.DocumentService, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		responder: newResponder(logger),
		claims:    claims,
		sessions:  sessions,
		documents: documents,
	}
}

// ListClaims handles requests to list all claims
// @Summary List claims
// @Description Get all known claims
// @Tags claims
// @Produce json
// @Success 200 {object} models.ClaimListResponse
// @Router /api/v1/claims [get]
func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	claims := h.claims.List()
	h.sendJSON(w, http.StatusOK, models.ClaimListResponse{
		Claims: claims,
		Count:  len(claims),
	})
}

// GetClaim handles requests to get a specific claim
// @Summary Get claim
// @Description Get claim by ID
// @Tags claims
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} models.Claim
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId} [get]
func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	claim, err := h.claims.Get(mux.Vars(r)["claimId"])
	if err != nil {
		h.sendServiceError(w, err, "get claim")
		return
	}
	h.sendJSON(w, http.StatusOK, claim)
}

// GetMessages handles requests for the conversation of a claim
// @Summary Get conversation
// @Description Get the message log and loading flag of a claim conversation
// @Tags conversation
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} models.ConversationResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/messages [get]
func (h *ClaimHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	conv := h.sessions.Session(claimID).Conversation
	h.sendJSON(w, http.StatusOK, models.ConversationResponse{
		ClaimID:   claimID,
		Messages:  conv.Messages(),
		IsLoading: conv.IsLoading(),
	})
}

// SendMessage handles a user message
// @Summary Send message
// @Description Append a user message and schedule the assistant reply. Blank text is not accepted and changes nothing. With wait=true the call blocks until the reply is appended.
// @Tags conversation
// @Accept json
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param wait query bool false "Wait for the assistant reply" default(false)
// @Param request body models.SendMessageRequest true "Message"
// @Success 200 {object} models.SendMessageResponse
// @Success 202 {object} models.SendMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/messages [post]
func (h *ClaimHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))

	var attachments []models.StoredDocument
	if len(req.AttachmentIDs) > 0 {
		docs, err := h.documents.Resolve(r.Context(), claimID, req.AttachmentIDs)
		if errors.Is(err, repositories.ErrNotFound) {
			h.sendError(w, http.StatusBadRequest, "Invalid attachment: "+err.Error())
			return
		}
		if err != nil {
			h.sendServiceError(w, err, "resolve attachments")
			return
		}
		attachments = docs
	}

	conv := h.sessions.Session(claimID).Conversation
	dispatch := conv.Send(req.Text, attachments, req.IncludeWebSearch)
	if dispatch == nil {
		h.sendJSON(w, http.StatusOK, models.SendMessageResponse{
			Accepted:  false,
			IsLoading: conv.IsLoading(),
		})
		return
	}

	h.logger.Info("Message accepted",
		zap.String("claim_id", claimID),
		zap.String("message_id", dispatch.UserMessage.ID),
		zap.String("kind", string(dispatch.Kind)),
		zap.Bool("wait", wait))

	resp := models.SendMessageResponse{
		Accepted:    true,
		UserMessage: &dispatch.UserMessage,
	}
	if !wait {
		resp.IsLoading = conv.IsLoading()
		h.sendJSON(w, http.StatusAccepted, resp)
		return
	}

	reply, err := dispatch.Wait(r.Context())
	if errors.Is(err, services.ErrConversationClosed) {
		h.sendError(w, http.StatusServiceUnavailable, "Conversation closed before the reply was ready")
		return
	}
	if err != nil {
		h.sendServiceError(w, err, "generate reply")
		return
	}
	resp.Reply = &reply
	resp.IsLoading = conv.IsLoading()
	h.sendJSON(w, http.StatusOK, resp)
}

// GetReport handles defensible report requests
// @Summary Generate report
// @Description Generate the defensible report of a claim without touching the conversation
// @Tags claims
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} models.ReportData
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/report [get]
func (h *ClaimHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}
	h.sendJSON(w, http.StatusOK, services.GenerateReport(claimID))
}
