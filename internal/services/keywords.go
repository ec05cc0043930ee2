package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

const (
	maxTitleKeywords   = 4
	maxPromptTitleLen  = 100
	fallbackTitleWords = 8
	untitledPrompt     = "Untitled prompt"
)

// KeywordExtractor picks the salient words of a text using POS tags
type KeywordExtractor struct {
	stopWords map[string]bool
	minLength int
}

// NewKeywordExtractor creates a new keyword extractor
func NewKeywordExtractor() *KeywordExtractor {
	stopWords := map[string]bool{
		"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
		"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
		"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
		"be": true, "been": true, "have": true, "has": true, "had": true, "do": true,
		"does": true, "did": true, "will": true, "would": true, "could": true, "should": true,
		"this": true, "that": true, "these": true, "those": true, "i": true, "you": true,
		"it": true, "we": true, "they": true, "my": true, "your": true, "its": true,
		"our": true, "their": true, "what": true, "which": true, "please": true,
	}

	return &KeywordExtractor{
		stopWords: stopWords,
		minLength: 3,
	}
}

// KeywordResult is a keyword with its frequency and importance
type KeywordResult struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Score     float64 `json:"score"`
	PosTag    string  `json:"pos_tag"`

	// position of the first occurrence, used to break ties
	first int
}

// ExtractKeywords scores the words of text, highest score first
func (ke *KeywordExtractor) ExtractKeywords(text string) ([]KeywordResult, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	wordFreq := make(map[string]*KeywordResult)
	for i, tok := range doc.Tokens() {
		word := strings.ToLower(tok.Text)
		if ke.shouldSkipWord(word, tok.Tag) {
			continue
		}

		score := posScore(tok.Tag)
		if existing, ok := wordFreq[word]; ok {
			existing.Frequency++
			existing.Score += score
			continue
		}
		wordFreq[word] = &KeywordResult{
			Word:      word,
			Frequency: 1,
			Score:     score,
			PosTag:    tok.Tag,
			first:     i,
		}
	}

	keywords := make([]KeywordResult, 0, len(wordFreq))
	for _, result := range wordFreq {
		keywords = append(keywords, *result)
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].first < keywords[j].first
	})

	return keywords, nil
}

// DeriveTitle builds a short prompt title from the body's top keywords,
// kept in the order they appear. Falls back to the leading words of body.
func (ke *KeywordExtractor) DeriveTitle(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return untitledPrompt
	}

	keywords, err := ke.ExtractKeywords(body)
	if err != nil || len(keywords) == 0 {
		return leadingWords(body)
	}
	if len(keywords) > maxTitleKeywords {
		keywords = keywords[:maxTitleKeywords]
	}
	sort.Slice(keywords, func(i, j int) bool {
		return keywords[i].first < keywords[j].first
	})

	words := make([]string, len(keywords))
	for i, kw := range keywords {
		words[i] = kw.Word
	}
	title := []rune(strings.Join(words, " "))
	title[0] = unicode.ToUpper(title[0])
	return truncateTitle(string(title))
}

func (ke *KeywordExtractor) shouldSkipWord(word, posTag string) bool {
	if len(word) < ke.minLength || ke.stopWords[word] {
		return true
	}
	if isPureNumber(word) || isPunctuation(word) {
		return true
	}

	switch posTag {
	case "DT", "IN", "TO", "CC", "PRP", "PRP$", "WP", "WDT", "WRB", "MD":
		return true
	}
	return false
}

// posScore weights nouns over adjectives over verbs
func posScore(posTag string) float64 {
	switch posTag {
	case "NNP", "NNPS":
		return 2.0
	case "NN", "NNS":
		return 1.5
	case "JJ", "JJR", "JJS":
		return 1.3
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return 1.2
	case "RB", "RBR", "RBS":
		return 0.8
	}
	return 1.0
}

func leadingWords(body string) string {
	fields := strings.Fields(body)
	if len(fields) > fallbackTitleWords {
		fields = fields[:fallbackTitleWords]
	}
	return truncateTitle(strings.Join(fields, " "))
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > maxPromptTitleLen {
		return strings.TrimSpace(string(runes[:maxPromptTitleLen]))
	}
	return title
}

func isPureNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func isPunctuation(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return len(s) > 0
}
