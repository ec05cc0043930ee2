package services

// Category is a canonical question category of the response catalog
type Category string

const (
	CategoryFoundationDamage      Category = "foundation_damage"
	CategoryCoverageA             Category = "coverage_a"
	CategoryEnvironmentalEvidence Category = "environmental_evidence"
	CategoryReportHint            Category = "report_hint"
	CategoryDefault               Category = "default"
)

// responseCatalog holds the canned answer for every category.
// Citation tokens are inline [label] markers.
var responseCatalog = map[Category]string{
	CategoryFoundationDamage: `Based on the claim documents and environmental data, the foundation damage at 4812 Jessamine St was **predisposed by drought-induced soil movement** and **proximately caused by the May 15, 2024 hail and wind event**.

**Key evidence:**
- [doc_002_chunk_0003] — Inspection report notes differential settlement consistent with shrink-swell cycles in expansive clay soil.
- [node:DroughtRecord:PDSI-4102-202404] — PDSI of **-5.03** in April 2024 indicates extreme drought (threshold < -4.0), supporting soil contraction and foundation micro-movement.
- [node:StormEvent:NCEI-941852] — Golf-ball hail (1.75 in) and wind on May 15, 2024 at Bellaire; roof damage reported at 4800 block Jessamine St.
- [doc_001_chunk_0001] — Policy Coverage A applies to wind/hail; anti-concurrent-causation (ACC) clause requires documented causal chain.

**Conclusion:** The carrier can assert ACC with confidence: drought predisposed the structure; hail/wind was the efficient proximate cause of the claimed roof damage. Foundation movement is excludable as a separate peril.`,

	CategoryCoverageA: `Yes. The loss is **covered under Coverage A** subject to the wind/hail deductible.

**Evidence:**
- [doc_001_chunk_0002] — Coverage A includes wind and hail as named perils.
- [node:StormEvent:NCEI-941852] — Storm event corroborates hail and wind on loss date.
- [node:FloodHazardZone:FHZ-1] — Property in Zone X (minimal flood risk); flood exclusions do not apply.

Deductible: 2% wind/hail per [doc_001_chunk_0005].`,

	CategoryEnvironmentalEvidence: `**Environmental evidence for CLM-2024-TX-00847:**

| Data Type | Value | Source | Fetch Time |
|-----------|-------|--------|------------|
| Storm Event | Hail 1.75 in, Bellaire | NCEI Storm Events | 2024-05-20 |
| PDSI (Apr 2024) | -5.03 (extreme drought) | NOAA PDSI | 2024-05-20 |
| Flood Zone | X (minimal) | FEMA NFHL | 2024-05-20 |
| Earthquake | M3.2, 8 km NW Houston | USGS | 2024-05-20 |

The PDSI value supports drought-induced foundation micro-movement as a predisposing factor.`,

	CategoryReportHint: `Use the "Generate defensible report" button to produce a full litigation-ready report with all 8 sections.`,

	CategoryDefault: `The system has analyzed the claim documents and graph data. Based on available evidence:

- [doc_001_chunk_0001] — Policy terms and coverage apply.
- [doc_002_chunk_0002] — Inspection findings support the damage assessment.
- [node:Claim:CLM-2024-TX-00847] — Claim context and loss date align with documented events.

For more specific analysis, try: "What caused the foundation damage?" or "Generate defensible report."`,
}

// suggestedPrompts are offered on an empty conversation
var suggestedPrompts = []string{
	"What caused the foundation damage?",
	"Is this covered under Coverage A?",
	"Environmental evidence for this claim",
	"Generate defensible report",
}

// Answer returns the canned answer for a category, or the default answer
func Answer(category Category) string {
	if text, ok := responseCatalog[category]; ok {
		return text
	}
	return responseCatalog[CategoryDefault]
}

// SuggestedPrompts returns a copy of the suggested starter questions
func SuggestedPrompts() []string {
	return append([]string(nil), suggestedPrompts...)
}
