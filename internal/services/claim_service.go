package services

import (
	"fmt"
	"sync"

	"claims-assistant/internal/models"
)

// ClaimService is the registry of known claims
type ClaimService struct {
	mu     sync.RWMutex
	claims map[string]models.Claim
	order  []string
}

// NewClaimService creates a registry from the given claim records.
// Duplicate IDs keep the first record.
func NewClaimService(claims []models.Claim) (*ClaimService, error) {
	s := &ClaimService{
		claims: make(map[string]models.Claim, len(claims)),
		order:  make([]string, 0, len(claims)),
	}
	for i := range claims {
		claim := claims[i]
		if err := claim.Validate(); err != nil {
			return nil, fmt.Errorf("claim %d: %w", i, err)
		}
		if claim.Status == "" {
			claim.Status = models.ClaimStatusOpen
		}
		if _, exists := s.claims[claim.ClaimID]; exists {
			continue
		}
		s.claims[claim.ClaimID] = claim
		s.order = append(s.order, claim.ClaimID)
	}
	return s, nil
}

// List returns all claims in registration order
func (s *ClaimService) List() []models.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Claim, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.claims[id])
	}
	return out
}

// Get returns a claim by ID
func (s *ClaimService) Get(claimID string) (models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claim, ok := s.claims[claimID]
	if !ok {
		return models.Claim{}, ClaimNotFoundError(claimID)
	}
	return claim, nil
}
