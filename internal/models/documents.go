package models

import (
	"path/filepath"
	"strings"
	"time"
)

// StoredDocument represents a document attached to a claim
type StoredDocument struct {
	ID        string         `json:"doc_id"`
	Filename  string         `json:"filename"`
	DocType   DocType        `json:"doc_type"`
	Status    DocumentStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	ClaimID   string         `json:"claim_id"`
	FolderID  string         `json:"folder_id,omitempty"`
}

// DocType classifies a claim document
type DocType string

const (
	DocTypePolicy           DocType = "policy"
	DocTypeInspectionReport DocType = "inspection_report"
	DocTypeEstimate         DocType = "estimate"
	DocTypeAdjusterNotes    DocType = "adjuster_notes"
	DocTypeLegal            DocType = "legal"
	DocTypePermit           DocType = "permit"
)

// DocumentStatus represents the processing status of a document
type DocumentStatus string

const (
	DocumentStatusProcessing DocumentStatus = "Processing"
	DocumentStatusReady      DocumentStatus = "Ready"
	DocumentStatusFailed     DocumentStatus = "Failed"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
}

// IsValid checks if the doc type is one of the known types
func (t DocType) IsValid() bool {
	switch t {
	case DocTypePolicy, DocTypeInspectionReport, DocTypeEstimate, DocTypeAdjusterNotes, DocTypeLegal, DocTypePermit:
		return true
	default:
		return false
	}
}

// IsValid checks if document status is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusProcessing, DocumentStatusReady, DocumentStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of document status
func (s DocumentStatus) String() string {
	return string(s)
}

// HasAllowedExtension reports whether filename is a pdf, docx or doc file
func HasAllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Validate checks if the document is valid
func (d *StoredDocument) Validate() error {
	if d.ID == "" {
		return &ValidationError{Field: "doc_id", Message: "document ID is required"}
	}
	if strings.TrimSpace(d.Filename) == "" {
		return &ValidationError{Field: "filename", Message: "filename is required"}
	}
	if !HasAllowedExtension(d.Filename) {
		return &ValidationError{Field: "filename", Message: "only .pdf, .docx and .doc files are accepted"}
	}
	if !d.DocType.IsValid() {
		return &ValidationError{Field: "doc_type", Message: "unknown document type: " + string(d.DocType)}
	}
	if d.ClaimID == "" {
		return &ValidationError{Field: "claim_id", Message: "claim ID is required"}
	}
	return nil
}

// UploadDocumentRequest is the JSON form of a document upload
type UploadDocumentRequest struct {
	Filename string  `json:"filename"`
	DocType  DocType `json:"doc_type,omitempty"`
	FolderID string  `json:"folder_id,omitempty"`
}

// DocumentListResponse lists the documents of a claim
type DocumentListResponse struct {
	ClaimID   string           `json:"claim_id"`
	Documents []StoredDocument `json:"documents"`
	Count     int              `json:"count"`
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
