package models

// ReportData is the eight-section defensible report for a claim
type ReportData struct {
	ExecutiveSummary      string                `json:"executive_summary"`
	CausationDiagram      string                `json:"causation_diagram,omitempty"`
	CoverageAnalysis      string                `json:"coverage_analysis"`
	EnvironmentalEvidence []EnvironmentalRecord `json:"environmental_evidence"`
	BehavioralSignals     string                `json:"behavioral_signals"`
	Timeline              []TimelineEvent       `json:"timeline"`
	RecommendedAction     string                `json:"recommended_action"`
	CitationIndex         []CitationEntry       `json:"citation_index"`
}

// EnvironmentalRecord is one row of external environmental evidence
type EnvironmentalRecord struct {
	DataType  string `json:"data_type"`
	Value     string `json:"value"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}

// TimelineEvent is a dated event in the claim timeline
type TimelineEvent struct {
	EventID     string `json:"event_id"`
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	Description string `json:"description"`
}

// CitationEntry maps a cited chunk to its source document page
type CitationEntry struct {
	ChunkID string `json:"chunk_id"`
	Source  string `json:"source"`
	Page    string `json:"page"`
}

// Clone returns a deep copy of the report
func (r ReportData) Clone() ReportData {
	out := r
	out.EnvironmentalEvidence = append([]EnvironmentalRecord(nil), r.EnvironmentalEvidence...)
	out.Timeline = append([]TimelineEvent(nil), r.Timeline...)
	out.CitationIndex = append([]CitationEntry(nil), r.CitationIndex...)
	return out
}
