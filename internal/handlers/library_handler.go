package handlers

import (
	"net/http"

	"claims-assistant/internal/models"
	"claims-assistant/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// LibraryHandler handles the user library of files and saved prompts
type LibraryHandler struct {
	responder
	library *services.LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(library *services.LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		responder: newResponder(logger),
		library:   library,
	}
}

// GetLibrary handles requests for the whole library
// @Summary Get library
// @Description Get the library files (insertion order) and saved prompts (newest first)
// @Tags library
// @Produce json
// @Success 200 {object} models.Library
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/library [get]
func (h *LibraryHandler) GetLibrary(w http.ResponseWriter, r *http.Request) {
	lib, err := h.library.Library(r.Context())
	if err != nil {
		h.sendServiceError(w, err, "load library")
		return
	}
	h.sendJSON(w, http.StatusOK, lib)
}

// AddFile handles requests to add a file reference
// @Summary Add library file
// @Description Add a file reference; an existing ID returns the stored record unchanged
// @Tags library
// @Accept json
// @Produce json
// @Param request body models.AddLibraryFileRequest true "File"
// @Success 201 {object} models.LibraryFile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/library/files [post]
func (h *LibraryHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	var req models.AddLibraryFileRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	file, err := h.library.AddFile(r.Context(), req)
	if err != nil {
		h.sendServiceError(w, err, "add library file")
		return
	}
	h.sendJSON(w, http.StatusCreated, file)
}

// RemoveFile handles requests to remove a file reference
// @Summary Remove library file
// @Description Remove a file reference; unknown IDs are ignored
// @Tags library
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/library/files/{id} [delete]
func (h *LibraryHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	if err := h.library.RemoveFile(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.sendServiceError(w, err, "remove library file")
		return
	}
	h.sendJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "File removed",
	})
}

// AddPrompt handles requests to save a prompt
// @Summary Save prompt
// @Description Save a prompt; a blank title is derived from the body keywords
// @Tags library
// @Accept json
// @Produce json
// @Param request body models.AddSavedPromptRequest true "Prompt"
// @Success 201 {object} models.SavedPrompt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/library/prompts [post]
func (h *LibraryHandler) AddPrompt(w http.ResponseWriter, r *http.Request) {
	var req models.AddSavedPromptRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	prompt, err := h.library.AddPrompt(r.Context(), req)
	if err != nil {
		h.sendServiceError(w, err, "save prompt")
		return
	}
	h.sendJSON(w, http.StatusCreated, prompt)
}

// RemovePrompt handles requests to delete a saved prompt
// @Summary Remove saved prompt
// @Description Remove a saved prompt; unknown IDs are ignored
// @Tags library
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/library/prompts/{id} [delete]
func (h *LibraryHandler) RemovePrompt(w http.ResponseWriter, r *http.Request) {
	if err := h.library.RemovePrompt(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.sendServiceError(w, err, "remove prompt")
		return
	}
	h.sendJSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Prompt removed",
	})
}
