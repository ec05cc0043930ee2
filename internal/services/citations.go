package services

import (
	"regexp"
)

var citationPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// ExtractCitations returns the labels of all [label] tokens in text,
// in order of first appearance and without duplicates.
func ExtractCitations(text string) []string {
	citations := []string{}
	seen := make(map[string]bool)
	for _, match := range citationPattern.FindAllStringSubmatch(text, -1) {
		label := match[1]
		if seen[label] {
			continue
		}
		seen[label] = true
		citations = append(citations, label)
	}
	return citations
}
