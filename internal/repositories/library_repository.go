package repositories

import (
	"context"
	"sync"

	"claims-assistant/internal/models"
)

// LibraryRepository defines the interface for the persisted user library.
// Files are kept in insertion order, prompts newest first.
type LibraryRepository interface {
	// AddFile stores a file reference. If the ID already exists the stored
	// record is returned and added is false.
	AddFile(ctx context.Context, file models.LibraryFile) (stored models.LibraryFile, added bool, err error)
	RemoveFile(ctx context.Context, fileID string) error
	ListFiles(ctx context.Context) ([]models.LibraryFile, error)

	AddPrompt(ctx context.Context, prompt models.SavedPrompt) error
	RemovePrompt(ctx context.Context, promptID string) error
	ListPrompts(ctx context.Context) ([]models.SavedPrompt, error)

	Ping(ctx context.Context) error
	Close() error
}

// MemoryLibraryRepository implements LibraryRepository in process memory
type MemoryLibraryRepository struct {
	mu      sync.RWMutex
	files   []models.LibraryFile
	prompts []models.SavedPrompt
}

// NewMemoryLibraryRepository creates an empty in-memory library
func NewMemoryLibraryRepository() *MemoryLibraryRepository {
	return &MemoryLibraryRepository{
		files:   make([]models.LibraryFile, 0),
		prompts: make([]models.SavedPrompt, 0),
	}
}

func (r *MemoryLibraryRepository) AddFile(ctx context.Context, file models.LibraryFile) (models.LibraryFile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.files {
		if existing.ID == file.ID {
			return existing, false, nil
		}
	}
	r.files = append(r.files, file)
	return file, true, nil
}

// RemoveFile deletes a file reference; unknown IDs are ignored
func (r *MemoryLibraryRepository) RemoveFile(ctx context.Context, fileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.files[:0]
	for _, f := range r.files {
		if f.ID != fileID {
			kept = append(kept, f)
		}
	}
	r.files = kept
	return nil
}

func (r *MemoryLibraryRepository) ListFiles(ctx context.Context) ([]models.LibraryFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LibraryFile, len(r.files))
	copy(out, r.files)
	return out, nil
}

// AddPrompt stores a prompt in front of the existing ones
func (r *MemoryLibraryRepository) AddPrompt(ctx context.Context, prompt models.SavedPrompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts = append([]models.SavedPrompt{prompt}, r.prompts...)
	return nil
}

// RemovePrompt deletes a prompt; unknown IDs are ignored
func (r *MemoryLibraryRepository) RemovePrompt(ctx context.Context, promptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.prompts[:0]
	for _, p := range r.prompts {
		if p.ID != promptID {
			kept = append(kept, p)
		}
	}
	r.prompts = kept
	return nil
}

func (r *MemoryLibraryRepository) ListPrompts(ctx context.Context) ([]models.SavedPrompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.SavedPrompt, len(r.prompts))
	copy(out, r.prompts)
	return out, nil
}

func (r *MemoryLibraryRepository) Ping(ctx context.Context) error {
	return nil
}

func (r *MemoryLibraryRepository) Close() error {
	return nil
}
