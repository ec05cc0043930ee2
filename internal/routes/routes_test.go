package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"claims-assistant/internal/handlers"
	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	logger := zap.NewNop()

	claims, err := services.NewClaimService([]models.Claim{{ClaimID: "CLM-1", PolicyID: "POL-1"}})
	require.NoError(t, err)
	documents := services.NewDocumentService(repositories.NewMemoryDocumentRepository(), nil, nil, logger)
	sessions := services.NewSessionManager(services.NewMockResponder(0, 0), nil, logger)
	t.Cleanup(sessions.Close)
	library := services.NewLibraryService(repositories.NewMemoryLibraryRepository(), logger)

	router := mux.NewRouter()
	RegisterRoutes(router, &Handlers{
		Health:    handlers.HealthCheckHandler,
		Home:      handlers.HomeHandler,
		Metrics:   http.NotFoundHandler(),
		Readiness: handlers.NewReadinessHandler(nil, logger),
		Assistant: handlers.NewAssistantHandler(logger),
		Claims:    handlers.NewClaimHandler(claims, sessions, documents, logger),
		Documents: handlers.NewDocumentHandler(claims, documents, logger),
		Tabs:      handlers.NewTabHandler(claims, sessions, logger),
		Library:   handlers.NewLibraryHandler(library, logger),
	})
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := newRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/"},
		{http.MethodPost, "/api/v1/classify"},
		{http.MethodPost, "/api/v1/citations"},
		{http.MethodGet, "/api/v1/prompts/suggested"},
		{http.MethodGet, "/api/v1/claims"},
		{http.MethodGet, "/api/v1/claims/CLM-1"},
		{http.MethodGet, "/api/v1/claims/CLM-1/messages"},
		{http.MethodPost, "/api/v1/claims/CLM-1/messages"},
		{http.MethodGet, "/api/v1/claims/CLM-1/report"},
		{http.MethodGet, "/api/v1/claims/CLM-1/documents"},
		{http.MethodPost, "/api/v1/claims/CLM-1/documents"},
		{http.MethodGet, "/api/v1/claims/CLM-1/documents/doc_1"},
		{http.MethodDelete, "/api/v1/claims/CLM-1/documents/doc_1"},
		{http.MethodGet, "/api/v1/claims/CLM-1/tabs"},
		{http.MethodPost, "/api/v1/claims/CLM-1/tabs"},
		{http.MethodPut, "/api/v1/claims/CLM-1/tabs/active"},
		{http.MethodDelete, "/api/v1/claims/CLM-1/tabs/tab-1"},
		{http.MethodGet, "/api/v1/library"},
		{http.MethodPost, "/api/v1/library/files"},
		{http.MethodDelete, "/api/v1/library/files/file-1"},
		{http.MethodPost, "/api/v1/library/prompts"},
		{http.MethodDelete, "/api/v1/library/prompts/prompt-1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			var match mux.RouteMatch
			assert.True(t, router.Match(req, &match), "no route for %s %s", rt.method, rt.path)
			assert.NoError(t, match.MatchErr)
		})
	}
}

func TestRegisterRoutes_ActiveTabNotTreatedAsID(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/claims/CLM-1/tabs/active", nil)
	var match mux.RouteMatch
	require.True(t, router.Match(req, &match))
	_, hasTabID := match.Vars["tabId"]
	assert.False(t, hasTabID)
}

func TestRegisterRoutes_MethodNotAllowed(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/claims", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterRoutes_OptionalHandlers(t *testing.T) {
	router := mux.NewRouter()
	RegisterRoutes(router, &Handlers{
		Health: handlers.HealthCheckHandler,
		Home:   handlers.HomeHandler,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/claims", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
