package models

import (
	"time"
)

// MessageRole identifies who authored a message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// MessageKind is the explicit discriminant of a ChatMessage.
// Query is set only for KindQueryResponse and Report only for KindReport.
type MessageKind string

const (
	KindUser          MessageKind = "user"
	KindQueryResponse MessageKind = "query_response"
	KindReport        MessageKind = "report"
)

// ChatMessage represents a single message in a claim conversation
type ChatMessage struct {
	ID          string           `json:"id"`
	Kind        MessageKind      `json:"kind"`
	Role        MessageRole      `json:"role"`
	Content     string           `json:"content"`
	Timestamp   time.Time        `json:"timestamp"`
	ClaimID     string           `json:"claim_id"`
	Sequence    int64            `json:"sequence"`
	ReplyTo     string           `json:"reply_to,omitempty"`
	Attachments []StoredDocument `json:"attachments,omitempty"`

	Query  *QueryResult `json:"query,omitempty"`
	Report *ReportData  `json:"report,omitempty"`
}

// QueryResult carries the retrieval metadata of a query response
type QueryResult struct {
	QueryType      string   `json:"query_type"`
	Category       string   `json:"category"`
	Citations      []string `json:"citations"`
	GraphNodesUsed int      `json:"graph_nodes_used"`
	ChunksUsed     int      `json:"chunks_used"`
	Confidence     float64  `json:"confidence"`
}

// IsAssistant reports whether the message was produced by the assistant
func (m ChatMessage) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// Clone returns a copy that shares no slices with the original
func (m ChatMessage) Clone() ChatMessage {
	out := m
	if m.Attachments != nil {
		out.Attachments = append([]StoredDocument(nil), m.Attachments...)
	}
	if m.Query != nil {
		q := *m.Query
		if m.Query.Citations != nil {
			q.Citations = make([]string, len(m.Query.Citations))
			copy(q.Citations, m.Query.Citations)
		}
		out.Query = &q
	}
	if m.Report != nil {
		r := m.Report.Clone()
		out.Report = &r
	}
	return out
}

// SendMessageRequest is the body accepted by the conversation endpoint
type SendMessageRequest struct {
	Text             string   `json:"text"`
	AttachmentIDs    []string `json:"attachment_ids,omitempty"`
	IncludeWebSearch bool     `json:"include_web_search,omitempty"`
}

// SendMessageResponse is returned after a message has been submitted
type SendMessageResponse struct {
	Accepted    bool         `json:"accepted"`
	UserMessage *ChatMessage `json:"user_message,omitempty"`
	Reply       *ChatMessage `json:"reply,omitempty"`
	IsLoading   bool         `json:"is_loading"`
}

// ConversationResponse is the observable state of a conversation
type ConversationResponse struct {
	ClaimID   string        `json:"claim_id"`
	Messages  []ChatMessage `json:"messages"`
	IsLoading bool          `json:"is_loading"`
}

// TextRequest wraps free text for the classify and citations endpoints
type TextRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse is the category selected for a question
type ClassifyResponse struct {
	Category string `json:"category"`
}

// CitationsResponse lists the citation labels found in a text
type CitationsResponse struct {
	Citations []string `json:"citations"`
}
