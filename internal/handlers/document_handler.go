package handlers

import (
	"errors"
	"mime"
	"net/http"

	"claims-assistant/internal/models"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	// maxUploadMemory bounds the in-memory part of a multipart upload
	maxUploadMemory = 32 << 20
	// maxUploadSize bounds the whole request body of an upload
	maxUploadSize = 50 << 20
)

// DocumentHandler handles HTTP requests for claim documents
type DocumentHandler struct {
	responder
	claims    *services.ClaimService
	documents *services.DocumentService
	maxUpload int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(claims *services.ClaimService, documents *services.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		responder: newResponder(logger),
		claims:    claims,
		documents: documents,
		maxUpload: maxUploadSize,
	}
}

// UploadDocument handles document upload requests
// @Summary Upload a document
// @Description Attach a document to a claim. Accepts a multipart form with a file field, or a JSON body naming the file. The document starts Processing and becomes Ready after the processing delay.
// @Tags documents
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param file formData file false "Document file (.pdf, .docx, .doc)"
// @Param doc_type formData string false "Document type" default(policy)
// @Param folder_id formData string false "Folder ID"
// @Param request body models.UploadDocumentRequest false "JSON upload"
// @Success 201 {object} models.StoredDocument
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/documents [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	var req models.UploadDocumentRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.sendError(w, http.StatusRequestEntityTooLarge, "Upload exceeds the size limit")
				return
			}
			h.logger.Warn("Failed to parse form", zap.Error(err))
			h.sendError(w, http.StatusBadRequest, "Failed to parse form data")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.sendError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		// only the reference is kept
		file.Close()

		req = models.UploadDocumentRequest{
			Filename: header.Filename,
			DocType:  models.DocType(r.FormValue("doc_type")),
			FolderID: r.FormValue("folder_id"),
		}
	} else if !h.decodeJSON(w, r, &req) {
		return
	}

	doc, err := h.documents.Upload(r.Context(), claimID, req)
	if err != nil {
		h.sendServiceError(w, err, "upload document")
		return
	}
	h.sendJSON(w, http.StatusCreated, doc)
}

// ListDocuments handles requests to list the documents of a claim
// @Summary List documents
// @Description Get the documents of a claim in creation order
// @Tags documents
// @Produce json
// @Param claimId path string true "Claim ID"
// @Success 200 {object} models.DocumentListResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/documents [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	docs, err := h.documents.List(r.Context(), claimID)
	if err != nil {
		h.sendServiceError(w, err, "list documents")
		return
	}
	h.sendJSON(w, http.StatusOK, models.DocumentListResponse{
		ClaimID:   claimID,
		Documents: docs,
		Count:     len(docs),
	})
}

// GetDocument handles requests to get a specific document
// @Summary Get document
// @Description Get a claim document by ID
// @Tags documents
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param docId path string true "Document ID"
// @Success 200 {object} models.StoredDocument
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/documents/{docId} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	doc, err := h.documents.Get(r.Context(), claimID, mux.Vars(r)["docId"])
	if err != nil {
		h.sendServiceError(w, err, "get document")
		return
	}
	h.sendJSON(w, http.StatusOK, doc)
}

// DeleteDocument handles requests to delete a document
// @Summary Delete document
// @Description Remove a document from a claim
// @Tags documents
// @Produce json
// @Param claimId path string true "Claim ID"
// @Param docId path string true "Document ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/claims/{claimId}/documents/{docId} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	claimID, ok := h.requireClaim(w, r, h.claims)
	if !ok {
		return
	}

	if err := h.documents.Delete(r.Context(), claimID, mux.Vars(r)["docId"]); err != nil {
		h.sendServiceError(w, err, "delete document")
		return
	}
	h.sendJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Document deleted successfully",
	})
}
