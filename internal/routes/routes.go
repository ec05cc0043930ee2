package routes

import (
	"net/http"

	"claims-assistant/internal/handlers"

	"github.com/gorilla/mux"
)

// Handlers holds every handler the router serves
type Handlers struct {
	Health    http.HandlerFunc
	Home      http.HandlerFunc
	Metrics   http.Handler
	Readiness *handlers.ReadinessHandler
	Assistant *handlers.AssistantHandler
	Claims    *handlers.ClaimHandler
	Documents *handlers.DocumentHandler
	Tabs      *handlers.TabHandler
	Library   *handlers.LibraryHandler
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(router *mux.Router, h *Handlers) {
	// Health endpoints
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if h.Readiness != nil {
		router.HandleFunc("/health/ready", h.Readiness.Ready).Methods(http.MethodGet)
	}
	if h.Metrics != nil {
		router.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}

	// Main routes
	router.HandleFunc("/", h.Home).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	if h.Assistant != nil {
		api.HandleFunc("/classify", h.Assistant.Classify).Methods(http.MethodPost)
		api.HandleFunc("/citations", h.Assistant.Citations).Methods(http.MethodPost)
		api.HandleFunc("/prompts/suggested", h.Assistant.SuggestedPrompts).Methods(http.MethodGet)
	}

	if h.Claims != nil {
		api.HandleFunc("/claims", h.Claims.ListClaims).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}", h.Claims.GetClaim).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}/messages", h.Claims.GetMessages).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}/messages", h.Claims.SendMessage).Methods(http.MethodPost)
		api.HandleFunc("/claims/{claimId}/report", h.Claims.GetReport).Methods(http.MethodGet)
	}

	if h.Documents != nil {
		api.HandleFunc("/claims/{claimId}/documents", h.Documents.ListDocuments).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}/documents", h.Documents.UploadDocument).Methods(http.MethodPost)
		api.HandleFunc("/claims/{claimId}/documents/{docId}", h.Documents.GetDocument).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}/documents/{docId}", h.Documents.DeleteDocument).Methods(http.MethodDelete)
	}

	if h.Tabs != nil {
		// registered before /tabs/{tabId} so "active" is not taken as an ID
		api.HandleFunc("/claims/{claimId}/tabs/active", h.Tabs.SetActiveTab).Methods(http.MethodPut)
		api.HandleFunc("/claims/{claimId}/tabs", h.Tabs.ListTabs).Methods(http.MethodGet)
		api.HandleFunc("/claims/{claimId}/tabs", h.Tabs.AddTab).Methods(http.MethodPost)
		api.HandleFunc("/claims/{claimId}/tabs/{tabId}", h.Tabs.CloseTab).Methods(http.MethodDelete)
	}

	if h.Library != nil {
		api.HandleFunc("/library", h.Library.GetLibrary).Methods(http.MethodGet)
		api.HandleFunc("/library/files", h.Library.AddFile).Methods(http.MethodPost)
		api.HandleFunc("/library/files/{id}", h.Library.RemoveFile).Methods(http.MethodDelete)
		api.HandleFunc("/library/prompts", h.Library.AddPrompt).Methods(http.MethodPost)
		api.HandleFunc("/library/prompts/{id}", h.Library.RemovePrompt).Methods(http.MethodDelete)
	}
}
