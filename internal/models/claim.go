package models

// ClaimStatus is the lifecycle state of a claim record
type ClaimStatus string

const (
	ClaimStatusOpen   ClaimStatus = "open"
	ClaimStatusClosed ClaimStatus = "closed"
)

// Claim is the insurance case record that scopes a conversation and its documents
type Claim struct {
	ClaimID         string      `json:"claim_id"`
	PolicyID        string      `json:"policy_id"`
	PropertyID      string      `json:"property_id"`
	PropertyAddress string      `json:"property_address"`
	LossDate        string      `json:"loss_date"`
	Jurisdiction    string      `json:"jurisdiction"`
	Status          ClaimStatus `json:"status"`
}

// Validate checks if the claim record is usable
func (c *Claim) Validate() error {
	if c.ClaimID == "" {
		return &ValidationError{Field: "claim_id", Message: "claim ID is required"}
	}
	if c.PolicyID == "" {
		return &ValidationError{Field: "policy_id", Message: "policy ID is required"}
	}
	return nil
}

// ClaimListResponse lists the known claims
type ClaimListResponse struct {
	Claims []Claim `json:"claims"`
	Count  int     `json:"count"`
}
