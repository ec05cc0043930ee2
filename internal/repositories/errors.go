package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every lookup miss
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is wrapped when a unique ID is registered twice
	ErrAlreadyExists = errors.New("already exists")
)

// RepositoryError represents errors from a repository operation
type RepositoryError struct {
	Operation string
	ID        string
	Err       error
	Message   string
}

func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	prefix := e.Operation
	if e.ID != "" {
		prefix += " (id: " + e.ID + ")"
	}
	if e.Err != nil {
		return prefix + ": " + e.Err.Error()
	}
	return prefix + ": unknown error"
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(operation string, id string, err error, message string) *RepositoryError {
	return &RepositoryError{
		Operation: operation,
		ID:        id,
		Err:       err,
		Message:   message,
	}
}

// Common error constructors
func DocumentNotFoundError(documentID string) error {
	return NewRepositoryError("get_document", documentID, ErrNotFound, "document not found: "+documentID)
}

func DocumentAlreadyExistsError(documentID string) error {
	return NewRepositoryError("register_document", documentID, ErrAlreadyExists, "document already exists: "+documentID)
}

func LibraryFileNotFoundError(fileID string) error {
	return NewRepositoryError("get_library_file", fileID, ErrNotFound, "library file not found: "+fileID)
}
