package services

import (
	"strings"
)

// categoryRule maps keyword phrases to a category. Rules are tested in order.
type categoryRule struct {
	category Category
	phrases  []string
}

var classificationRules = []categoryRule{
	{category: CategoryFoundationDamage, phrases: []string{"foundation damage", "what caused"}},
	{category: CategoryCoverageA, phrases: []string{"coverage a", "covered"}},
	{category: CategoryEnvironmentalEvidence, phrases: []string{"environmental"}},
	{category: CategoryReportHint, phrases: []string{"report", "defensible"}},
}

// reportKeywords route a message to report generation instead of a query answer
var reportKeywords = []string{"generate", "report", "defensible"}

// NormalizeQuery lower-cases, trims and strips question marks
func NormalizeQuery(question string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(question)), "?", "")
}

// Classify selects the catalog category for a free-text question.
// Unmatched input yields CategoryDefault.
func Classify(question string) Category {
	normalized := NormalizeQuery(question)
	for _, rule := range classificationRules {
		if containsAny(normalized, rule.phrases) {
			return rule.category
		}
	}
	return CategoryDefault
}

// IsReportRequest reports whether a message asks for the defensible report
func IsReportRequest(text string) bool {
	return containsAny(strings.ToLower(text), reportKeywords)
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
