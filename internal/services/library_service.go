package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LibraryService manages the user's saved file references and prompts
type LibraryService struct {
	repo     repositories.LibraryRepository
	keywords *KeywordExtractor
	logger   *zap.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(repo repositories.LibraryRepository, logger *zap.Logger) *LibraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibraryService{
		repo:     repo,
		keywords: NewKeywordExtractor(),
		logger:   logger,
	}
}

// Library returns every stored file and prompt
func (s *LibraryService) Library(ctx context.Context) (*models.Library, error) {
	files, err := s.repo.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list library files: %w", err)
	}
	prompts, err := s.repo.ListPrompts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved prompts: %w", err)
	}
	return &models.Library{Files: files, Prompts: prompts}, nil
}

// AddFile stores a file reference. Adding an ID that is already stored
// returns the existing record unchanged.
func (s *LibraryService) AddFile(ctx context.Context, req models.AddLibraryFileRequest) (models.LibraryFile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.LibraryFile{}, &models.ValidationError{Field: "name", Message: "name is required"}
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = "file-" + uuid.New().String()
	}

	file, added, err := s.repo.AddFile(ctx, models.LibraryFile{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return models.LibraryFile{}, fmt.Errorf("add library file: %w", err)
	}
	if added {
		s.logger.Info("Library file added", zap.String("file_id", file.ID), zap.String("name", file.Name))
	}
	return file, nil
}

// RemoveFile deletes a file reference; unknown IDs are ignored
func (s *LibraryService) RemoveFile(ctx context.Context, fileID string) error {
	if err := s.repo.RemoveFile(ctx, fileID); err != nil {
		return fmt.Errorf("remove library file: %w", err)
	}
	return nil
}

// ListFiles returns the stored files in insertion order
func (s *LibraryService) ListFiles(ctx context.Context) ([]models.LibraryFile, error) {
	return s.repo.ListFiles(ctx)
}

// AddPrompt saves a prompt. A blank title is derived from the body.
func (s *LibraryService) AddPrompt(ctx context.Context, req models.AddSavedPromptRequest) (models.SavedPrompt, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return models.SavedPrompt{}, &models.ValidationError{Field: "body", Message: "prompt body is required"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = s.keywords.DeriveTitle(body)
	}

	prompt := models.SavedPrompt{
		ID:        "prompt-" + uuid.New().String(),
		Title:     truncateTitle(title),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddPrompt(ctx, prompt); err != nil {
		return models.SavedPrompt{}, fmt.Errorf("add saved prompt: %w", err)
	}

	s.logger.Info("Prompt saved", zap.String("prompt_id", prompt.ID), zap.String("title", prompt.Title))
	return prompt, nil
}

// RemovePrompt deletes a prompt; unknown IDs are ignored
func (s *LibraryService) RemovePrompt(ctx context.Context, promptID string) error {
	if err := s.repo.RemovePrompt(ctx, promptID); err != nil {
		return fmt.Errorf("remove saved prompt: %w", err)
	}
	return nil
}

// ListPrompts returns the saved prompts newest first
func (s *LibraryService) ListPrompts(ctx context.Context) ([]models.SavedPrompt, error) {
	return s.repo.ListPrompts(ctx)
}
