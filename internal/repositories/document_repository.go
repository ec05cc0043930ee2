package repositories

import (
	"context"
	"sync"

	"claims-assistant/internal/models"
)

// DocumentRepository defines the interface for claim document storage.
// Documents are session data and are not persisted across restarts.
type DocumentRepository interface {
	Register(ctx context.Context, doc *models.StoredDocument) error
	Get(ctx context.Context, claimID, documentID string) (*models.StoredDocument, error)
	ListByClaim(ctx context.Context, claimID string) ([]*models.StoredDocument, error)
	UpdateStatus(ctx context.Context, claimID, documentID string, status models.DocumentStatus) error
	Delete(ctx context.Context, claimID, documentID string) error
}

// MemoryDocumentRepository implements DocumentRepository in process memory
type MemoryDocumentRepository struct {
	mu     sync.RWMutex
	claims map[string][]*models.StoredDocument
}

// NewMemoryDocumentRepository creates an empty in-memory document repository
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		claims: make(map[string][]*models.StoredDocument),
	}
}

// Register stores a new document under its claim
func (r *MemoryDocumentRepository) Register(ctx context.Context, doc *models.StoredDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.claims[doc.ClaimID] {
		if existing.ID == doc.ID {
			return DocumentAlreadyExistsError(doc.ID)
		}
	}

	stored := *doc
	r.claims[doc.ClaimID] = append(r.claims[doc.ClaimID], &stored)
	return nil
}

// Get retrieves a document of a claim by ID
func (r *MemoryDocumentRepository) Get(ctx context.Context, claimID, documentID string) (*models.StoredDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, doc := r.find(claimID, documentID)
	if doc == nil {
		return nil, DocumentNotFoundError(documentID)
	}
	out := *doc
	return &out, nil
}

// ListByClaim returns the documents of a claim in registration order
func (r *MemoryDocumentRepository) ListByClaim(ctx context.Context, claimID string) ([]*models.StoredDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := r.claims[claimID]
	out := make([]*models.StoredDocument, len(docs))
	for i, doc := range docs {
		d := *doc
		out[i] = &d
	}
	return out, nil
}

// UpdateStatus moves a document to a new processing status
func (r *MemoryDocumentRepository) UpdateStatus(ctx context.Context, claimID, documentID string, status models.DocumentStatus) error {
	if !status.IsValid() {
		return &models.ValidationError{Field: "status", Message: "invalid status: " + string(status)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, doc := r.find(claimID, documentID)
	if doc == nil {
		return DocumentNotFoundError(documentID)
	}
	doc.Status = status
	return nil
}

// Delete removes a document from its claim
func (r *MemoryDocumentRepository) Delete(ctx context.Context, claimID, documentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, doc := r.find(claimID, documentID)
	if doc == nil {
		return DocumentNotFoundError(documentID)
	}
	docs := r.claims[claimID]
	r.claims[claimID] = append(docs[:idx], docs[idx+1:]...)
	return nil
}

// find must be called with mu held
func (r *MemoryDocumentRepository) find(claimID, documentID string) (int, *models.StoredDocument) {
	for i, doc := range r.claims[claimID] {
		if doc.ID == documentID {
			return i, doc
		}
	}
	return -1, nil
}
