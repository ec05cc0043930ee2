package services

import (
	"context"
	"math/rand/v2"
	"time"

	"claims-assistant/internal/models"
)

const (
	DefaultMinResponseDelay = 800 * time.Millisecond
	DefaultMaxResponseDelay = 1200 * time.Millisecond

	webSearchAnnotation = " [web search enabled]"

	mockQueryType      = "causation_query"
	mockGraphNodesUsed = 4
	mockChunksUsed     = 3
	mockConfidence     = 0.89
)

// RequestKind tells whether a message asks for a report or a query answer
type RequestKind string

const (
	RequestQuery  RequestKind = "query"
	RequestReport RequestKind = "report"
)

// ResponseRequest is everything a Responder needs to answer one user message
type ResponseRequest struct {
	ClaimID          string
	Text             string
	Kind             RequestKind
	Attachments      []models.StoredDocument
	IncludeWebSearch bool
}

// Responder produces the assistant reply for a user message.
// The conversation stamps ID, sequence and reply linkage on the result.
type Responder interface {
	Respond(ctx context.Context, req ResponseRequest) (models.ChatMessage, error)
}

// ClassifyRequest decides the request kind of a user message
func ClassifyRequest(text string, includeWebSearch bool) RequestKind {
	queryText := text
	if includeWebSearch {
		queryText += webSearchAnnotation
	}
	if IsReportRequest(queryText) {
		return RequestReport
	}
	return RequestQuery
}

// BuildQueryMessage answers a question from the response catalog
func BuildQueryMessage(question string) models.ChatMessage {
	category := Classify(question)
	answer := Answer(category)
	return models.ChatMessage{
		Kind:      models.KindQueryResponse,
		Role:      models.RoleAssistant,
		Content:   answer,
		Timestamp: time.Now().UTC(),
		Query: &models.QueryResult{
			QueryType:      mockQueryType,
			Category:       string(category),
			Citations:      ExtractCitations(answer),
			GraphNodesUsed: mockGraphNodesUsed,
			ChunksUsed:     mockChunksUsed,
			Confidence:     mockConfidence,
		},
	}
}

// BuildReportMessage wraps the generated report of a claim in a message
func BuildReportMessage(claimID string) models.ChatMessage {
	report := GenerateReport(claimID)
	return models.ChatMessage{
		Kind:      models.KindReport,
		Role:      models.RoleAssistant,
		Content:   ReportContent,
		Timestamp: time.Now().UTC(),
		Report:    &report,
	}
}

// MockResponder answers from the static catalog after a simulated delay
type MockResponder struct {
	minDelay time.Duration
	maxDelay time.Duration
}

// NewMockResponder creates a responder whose latency is uniform in [minDelay, maxDelay]
func NewMockResponder(minDelay, maxDelay time.Duration) *MockResponder {
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &MockResponder{
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Delay draws the simulated latency of one response
func (r *MockResponder) Delay() time.Duration {
	spread := r.maxDelay - r.minDelay
	if spread <= 0 {
		return r.minDelay
	}
	return r.minDelay + rand.N(spread+1)
}

// Respond waits out the simulated latency and builds the canned reply
func (r *MockResponder) Respond(ctx context.Context, req ResponseRequest) (models.ChatMessage, error) {
	if delay := r.Delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.ChatMessage{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.ChatMessage{}, err
	}

	if req.Kind == RequestReport {
		return BuildReportMessage(req.ClaimID), nil
	}
	return BuildQueryMessage(req.Text), nil
}
