package handlers

import (
	"net/http"

	"claims-assistant/internal/models"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// TabHandler handles the tab workspace of a claim session
type TabHandler struct {
	responder
	claims   *services.ClaimService
	sessions *services.SessionManager
}

// NewTabHandler creates a new tab handler
func NewTabHandler(claims *services.ClaimService, sessions *services.SessionManager, logger *zap.Logger) *TabHandler {
	return &TabHandler{
		responder: newResponder(logger),
		claims:    claims,
		sessions:  sessions,
	}
}

// ListTabs handles requests for the open tabs
// @Summary List tabs
// @Description Get the open tabs of a claim and the active tab ID
// @Tags tabs
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} models.TabsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/tabs [get]
func (h *TabHandler) ListTabs(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}
	h.sendJSON(w, http.StatusOK, h.sessions.Session(claimID).Tabs.Snapshot())
}

// AddTab handles requests to open a tab
// @Summary Open tab
// @Description Open a source or editor tab and make it active. Source tabs are unique per title.
// @Tags tabs
// @Accept json
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param request body models.AddTabRequest true "Tab"
// @Success 200 {object} models.Tab
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/tabs [post]
func (h *TabHandler) AddTab(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	var req models.AddTabRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	tab, err := h.sessions.Session(claimID).Tabs.AddTab(req)
	if err != nil {
		h.sendServiceError(w, err, "open tab")
		return
	}
	h.sendJSON(w, http.StatusOK, tab)
}

// CloseTab handles requests to close a tab
// @Summary Close tab
// @Description Close a tab; closing the active tab leaves none active
// @Tags tabs
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param tabId path string true "Tab ID"
// @Success 200 {object} models.TabsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/tabs/{tabId} [delete]
func (h *TabHandler) CloseTab(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	tabs := h.sessions.Session(claimID).Tabs
	if err := tabs.CloseTab(mux.Vars(r)["tabId"]); err != nil {
		h.sendServiceError(w, err, "close tab")
		return
	}
	h.sendJSON(w, http.StatusOK, tabs.Snapshot())
}

// SetActiveTab handles requests to switch the active tab
// @Summary Activate tab
// @Description Make a tab active; an empty tab_id clears the selection
// @Tags tabs
// @Accept json
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param request body models.SetActiveTabRequest true "Tab selection"
// @Success 200 {object} models.TabsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/tabs/active [put]
func (h *TabHandler) SetActiveTab(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	var req models.SetActiveTabRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	tabs := h.sessions.Session(claimID).Tabs
	if err := tabs.SetActive(req.TabID); err != nil {
		h.sendServiceError(w, err, "activate tab")
		return
	}
	h.sendJSON(w, http.StatusOK, tabs.Snapshot())
}
