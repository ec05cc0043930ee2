package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testClaimID  = "CLM-2024-TX-00847"
	emptyClaimID = "CLM-2024-FL-00122"
)

type testEnv struct {
	router    *mux.Router
	sessions  *services.SessionManager
	documents *services.DocumentService
}

func testClaims() []models.Claim {
	return []models.Claim{
		{ClaimID: testClaimID, PolicyID: "POL-2022-TX-04419", Jurisdiction: "US-TX"},
		{ClaimID: emptyClaimID, PolicyID: "POL-2023-FL-08901", Jurisdiction: "US-FL"},
	}
}

func testDocuments() []models.StoredDocument {
	return []models.StoredDocument{
		{
			ID:        "doc_001",
			Filename:  "policy_dec_sheet.pdf",
			DocType:   models.DocTypePolicy,
			Status:    models.DocumentStatusReady,
			CreatedAt: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
			ClaimID:   testClaimID,
		},
		{
			ID:        "doc_002",
			Filename:  "inspection_report.pdf",
			DocType:   models.DocTypeInspectionReport,
			Status:    models.DocumentStatusReady,
			CreatedAt: time.Date(2024, 5, 22, 14, 30, 0, 0, time.UTC),
			ClaimID:   testClaimID,
		},
	}
}

// newTestEnv wires the handlers on in-memory stores with an instant mock responder
func newTestEnv(t *testing.T, responder services.Responder) *testEnv {
	t.Helper()
	logger := zaptest.NewLogger(t)

	if responder == nil {
		responder = services.NewMockResponder(0, 0)
	}

	claims, err := services.NewClaimService(testClaims())
	require.NoError(t, err)

	documents := services.NewDocumentService(repositories.NewMemoryDocumentRepository(), nil, nil, logger)
	require.NoError(t, documents.Seed(t.Context(), testDocuments()))

	sessions := services.NewSessionManager(responder, nil, logger)
	t.Cleanup(sessions.Close)

	library := services.NewLibraryService(repositories.NewMemoryLibraryRepository(), logger)

	assistant := NewAssistantHandler(logger)
	claimHandler := NewClaimHandler(claims, sessions, documents, logger)
	docHandler := NewDocumentHandler(claims, documents, logger)
	tabHandler := NewTabHandler(claims, sessions, logger)
	libHandler := NewLibraryHandler(library, logger)

	r := mux.NewRouter()
	r.HandleFunc("/health", HealthCheckHandler).Methods(http.MethodGet)
	r.HandleFunc("/", HomeHandler).Methods(http.MethodGet)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/classify", assistant.Classify).Methods(http.MethodPost)
	api.HandleFunc("/citations", assistant.Citations).Methods(http.MethodPost)
	api.HandleFunc("/prompts/suggested", assistant.SuggestedPrompts).Methods(http.MethodGet)
	api.HandleFunc("/claims", claimHandler.ListClaims).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}", claimHandler.GetClaim).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/messages", claimHandler.GetMessages).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/messages", claimHandler.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/claims/{claimId}/report", claimHandler.GetReport).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/documents", docHandler.ListDocuments).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/documents", docHandler.UploadDocument).Methods(http.MethodPost)
	api.HandleFunc("/claims/{claimId}/documents/{docId}", docHandler.GetDocument).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/documents/{docId}", docHandler.DeleteDocument).Methods(http.MethodDelete)
	api.HandleFunc("/claims/{claimId}/tabs/active", tabHandler.SetActiveTab).Methods(http.MethodPut)
	api.HandleFunc("/claims/{claimId}/tabs", tabHandler.ListTabs).Methods(http.MethodGet)
	api.HandleFunc("/claims/{claimId}/tabs", tabHandler.AddTab).Methods(http.MethodPost)
	api.HandleFunc("/claims/{claimId}/tabs/{tabId}", tabHandler.CloseTab).Methods(http.MethodDelete)
	api.HandleFunc("/library", libHandler.GetLibrary).Methods(http.MethodGet)
	api.HandleFunc("/library/files", libHandler.AddFile).Methods(http.MethodPost)
	api.HandleFunc("/library/files/{id}", libHandler.RemoveFile).Methods(http.MethodDelete)
	api.HandleFunc("/library/prompts", libHandler.AddPrompt).Methods(http.MethodPost)
	api.HandleFunc("/library/prompts/{id}", libHandler.RemovePrompt).Methods(http.MethodDelete)

	return &testEnv{router: r, sessions: sessions, documents: documents}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}
