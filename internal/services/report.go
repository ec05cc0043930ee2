package services

import (
	"claims-assistant/internal/models"
)

// ReportContent is the assistant text accompanying a generated report
const ReportContent = "Generated defensible report."

// GenerateReport builds the defensible report for a claim.
// The template is fixed; the claim ID does not change the output.
func GenerateReport(claimID string) models.ReportData {
	return models.ReportData{
		ExecutiveSummary: `The claim at 4812 Jessamine St, Bellaire TX (CLM-2024-TX-00847) is defensible. The May 15, 2024 hail and wind event was the efficient proximate cause of roof damage. Drought-induced foundation micro-movement (PDSI -5.03) predisposed the structure but is excludable under the ACC clause. Coverage A applies; recommend payment subject to wind/hail deductible.`,
		CausationDiagram: `flowchart LR
    subgraph Environmental
        DR[DroughtRecord PDSI -5.03]
        SE[StormEvent Hail 1.75in]
    end
    subgraph Damage
        DE[DamageEvent Roof/Hail]
    end
    DR -->|PREDISPOSED_BY| DE
    SE -->|TRIGGERED_BY| DE`,
		CoverageAnalysis: `**Coverage A — Dwelling:** Applicable. Wind and hail are named perils. Loss date and storm event corroborated.

**Exclusions:** Flood inapplicable (Zone X). Earth movement: foundation differential settlement is excludable; roof damage from hail is covered.

**ACC clause:** Enforceable. Documented causal chain: drought predisposed; hail proximately caused roof loss.`,
		EnvironmentalEvidence: []models.EnvironmentalRecord{
			{DataType: "Storm Event", Value: "Hail 1.75 in, Bellaire", Source: "NCEI Storm Events", Timestamp: "2024-05-20"},
			{DataType: "PDSI Apr 2024", Value: "-5.03 (extreme drought)", Source: "NOAA PDSI", Timestamp: "2024-05-20"},
			{DataType: "Flood Zone", Value: "X (minimal)", Source: "FEMA NFHL", Timestamp: "2024-05-20"},
			{DataType: "Earthquake", Value: "M3.2, 8 km NW Houston", Source: "USGS", Timestamp: "2024-05-20"},
		},
		BehavioralSignals: `No significant behavioral signals detected for this claim. Public adjuster involvement noted; standard review recommended.`,
		Timeline: []models.TimelineEvent{
			{EventID: "evt_1", EventType: "StormEvent", EventDate: "2024-05-15", Description: "Hail 1.75 in"},
			{EventID: "evt_2", EventType: "DamageEvent", EventDate: "2024-05-15", Description: "Roof and exterior damage"},
			{EventID: "evt_3", EventType: "Inspection", EventDate: "2024-05-22", Description: "Field inspection completed"},
		},
		RecommendedAction: `**Recommended action:** Approve coverage for wind/hail damage subject to 2% wind deductible. Document ACC assertion with this report. Legal exposure: low if narrative is maintained.`,
		CitationIndex: []models.CitationEntry{
			{ChunkID: "doc_001_chunk_0001", Source: "Policy Declaration", Page: "1"},
			{ChunkID: "doc_001_chunk_0002", Source: "Policy Coverage A", Page: "3"},
			{ChunkID: "doc_002_chunk_0003", Source: "Inspection Report", Page: "2"},
		},
	}
}
