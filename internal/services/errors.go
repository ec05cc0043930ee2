package services

import (
	"claims-assistant/internal/repositories"
)

// ErrNotFound is wrapped by every lookup miss, including repository misses
var ErrNotFound = repositories.ErrNotFound

// ClaimNotFoundError reports an unknown claim ID
func ClaimNotFoundError(claimID string) error {
	return repositories.NewRepositoryError("get_claim", claimID, ErrNotFound, "claim not found")
}

// TabNotFoundError reports an unknown tab ID
func TabNotFoundError(tabID string) error {
	return repositories.NewRepositoryError("get_tab", tabID, ErrNotFound, "tab not found: "+tabID)
}
