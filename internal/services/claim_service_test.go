package services

import (
	"errors"
	"testing"

	"claims-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimService(t *testing.T) {
	svc, err := NewClaimService([]models.Claim{
		{ClaimID: "CLM-A", PolicyID: "POL-1"},
		{ClaimID: "CLM-B", PolicyID: "POL-2", Status: models.ClaimStatusClosed},
		{ClaimID: "CLM-A", PolicyID: "POL-dup"},
	})
	require.NoError(t, err)

	claims := svc.List()
	require.Len(t, claims, 2)
	assert.Equal(t, "CLM-A", claims[0].ClaimID)
	assert.Equal(t, "POL-1", claims[0].PolicyID)
	assert.Equal(t, models.ClaimStatusOpen, claims[0].Status)
	assert.Equal(t, models.ClaimStatusClosed, claims[1].Status)

	claim, err := svc.Get("CLM-B")
	require.NoError(t, err)
	assert.Equal(t, "POL-2", claim.PolicyID)

	_, err = svc.Get("CLM-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "claim not found", err.Error())
}

func TestClaimService_InvalidRecord(t *testing.T) {
	_, err := NewClaimService([]models.Claim{{ClaimID: "CLM-A"}})
	require.Error(t, err)

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
