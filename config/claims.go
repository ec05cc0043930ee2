package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"claims-assistant/internal/models"
)

// LoadClaims reads a JSON array of claims from path
func LoadClaims(path string) ([]models.Claim, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var claims []models.Claim
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode claims file %s: %w", path, err)
	}

	return claims, nil
}

// DefaultClaims returns the built-in claim fixtures
func DefaultClaims() []models.Claim {
	return []models.Claim{
		{
			ClaimID:         "CLM-2024-TX-00847",
			PolicyID:        "POL-2022-TX-04419",
			PropertyID:      "PROP-8821-BELLAIRE-TX",
			PropertyAddress: "4812 Jessamine St, Bellaire, TX 77401",
			LossDate:        "2024-05-15",
			Jurisdiction:    "US-TX",
			Status:          models.ClaimStatusOpen,
		},
		{
			ClaimID:         "CLM-2024-FL-00122",
			PolicyID:        "POL-2023-FL-08901",
			PropertyID:      "PROP-5542-MIAMI-FL",
			PropertyAddress: "1200 Brickell Ave, Miami, FL 33131",
			LossDate:        "2024-08-22",
			Jurisdiction:    "US-FL",
			Status:          models.ClaimStatusOpen,
		},
	}
}

// DefaultDocuments returns the documents already attached to the fixture claims
func DefaultDocuments() []models.StoredDocument {
	return []models.StoredDocument{
		{
			ID:        "doc_001",
			Filename:  "policy_dec_sheet.pdf",
			DocType:   models.DocTypePolicy,
			Status:    models.DocumentStatusReady,
			CreatedAt: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
			ClaimID:   "CLM-2024-TX-00847",
		},
		{
			ID:        "doc_002",
			Filename:  "inspection_report.pdf",
			DocType:   models.DocTypeInspectionReport,
			Status:    models.DocumentStatusReady,
			CreatedAt: time.Date(2024, 5, 22, 14, 30, 0, 0, time.UTC),
			ClaimID:   "CLM-2024-TX-00847",
		},
	}
}
