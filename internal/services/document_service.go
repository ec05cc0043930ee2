package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReadinessScheduler queues the Processing -> Ready transition of a document
type ReadinessScheduler interface {
	Schedule(claimID, documentID string) error
}

// DocumentService manages the documents attached to claims
type DocumentService struct {
	repo      repositories.DocumentRepository
	scheduler ReadinessScheduler
	metrics   *Metrics
	logger    *zap.Logger
}

// NewDocumentService creates a new document service. Without a scheduler,
// uploads are marked Ready immediately.
func NewDocumentService(
	repo repositories.DocumentRepository,
	scheduler ReadinessScheduler,
	metrics *Metrics,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		repo:      repo,
		scheduler: scheduler,
		metrics:   metrics,
		logger:    logger,
	}
}

// Seed registers fixture documents as they are, keeping their status
func (s *DocumentService) Seed(ctx context.Context, docs []models.StoredDocument) error {
	for i := range docs {
		doc := docs[i]
		if err := s.repo.Register(ctx, &doc); err != nil {
			return fmt.Errorf("seed document %s: %w", doc.ID, err)
		}
	}
	s.logger.Info("Seeded fixture documents", zap.Int("count", len(docs)))
	return nil
}

// Upload registers a new Processing document and schedules its readiness
func (s *DocumentService) Upload(ctx context.Context, claimID string, req models.UploadDocumentRequest) (*models.StoredDocument, error) {
	docType := req.DocType
	if docType == "" {
		docType = models.DocTypePolicy
	}
	filename := strings.TrimSpace(req.Filename)
	if filename != "" {
		filename = filepath.Base(filename)
	}

	doc := &models.StoredDocument{
		ID:        "doc_" + uuid.New().String(),
		Filename:  filename,
		DocType:   docType,
		Status:    models.DocumentStatusProcessing,
		CreatedAt: time.Now().UTC(),
		ClaimID:   claimID,
		FolderID:  req.FolderID,
	}

	if err := s.repo.Register(ctx, doc); err != nil {
		s.logger.Warn("Rejected document upload",
			zap.String("claim_id", claimID),
			zap.String("filename", req.Filename),
			zap.Error(err))
		return nil, err
	}

	s.scheduleReadiness(ctx, doc)

	s.logger.Info("Document uploaded",
		zap.String("claim_id", claimID),
		zap.String("doc_id", doc.ID),
		zap.String("filename", doc.Filename),
		zap.String("doc_type", string(doc.DocType)))

	return s.repo.Get(ctx, claimID, doc.ID)
}

func (s *DocumentService) scheduleReadiness(ctx context.Context, doc *models.StoredDocument) {
	if s.scheduler != nil {
		err := s.scheduler.Schedule(doc.ClaimID, doc.ID)
		if err == nil {
			return
		}
		s.logger.Warn("Readiness scheduling failed, marking document ready now",
			zap.String("doc_id", doc.ID),
			zap.Error(err))
	}

	if err := s.repo.UpdateStatus(ctx, doc.ClaimID, doc.ID, models.DocumentStatusReady); err != nil {
		s.logger.Error("Failed to mark document ready", zap.String("doc_id", doc.ID), zap.Error(err))
		return
	}
	s.metrics.DocumentReady()
}

// List returns the documents of a claim in creation order
func (s *DocumentService) List(ctx context.Context, claimID string) ([]models.StoredDocument, error) {
	docs, err := s.repo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	out := make([]models.StoredDocument, len(docs))
	for i, doc := range docs {
		out[i] = *doc
	}
	return out, nil
}

// Get returns one document of a claim
func (s *DocumentService) Get(ctx context.Context, claimID, documentID string) (*models.StoredDocument, error) {
	return s.repo.Get(ctx, claimID, documentID)
}

// Delete removes a document from a claim
func (s *DocumentService) Delete(ctx context.Context, claimID, documentID string) error {
	if err := s.repo.Delete(ctx, claimID, documentID); err != nil {
		return err
	}
	s.logger.Info("Document deleted", zap.String("claim_id", claimID), zap.String("doc_id", documentID))
	return nil
}

// Resolve looks up message attachments by ID, keeping the requested order.
// Repeated IDs are resolved once.
func (s *DocumentService) Resolve(ctx context.Context, claimID string, documentIDs []string) ([]models.StoredDocument, error) {
	if len(documentIDs) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(documentIDs))
	out := make([]models.StoredDocument, 0, len(documentIDs))
	for _, id := range documentIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		doc, err := s.repo.Get(ctx, claimID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}
