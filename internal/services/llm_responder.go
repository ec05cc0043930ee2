package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"claims-assistant/internal/models"
)

const (
	DefaultLLMBaseURL = "http://localhost:1234/v1"
	DefaultLLMModel   = "llama-3.2-3b-instruct"

	llmSystemPrompt = "You are a claims analysis assistant helping an insurance adjuster. " +
		"Answer about the claim concisely. When you rely on a document chunk or a graph record, " +
		"cite it inline in square brackets, for example [doc_002_chunk_0003]."
)

// chatCompletionMessage is one message of an OpenAI-compatible chat request
type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
	Stream      bool                    `json:"stream"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int                   `json:"index"`
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// LLMResponderConfig configures the OpenAI-compatible backend
type LLMResponderConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LLMResponder answers queries through an OpenAI-compatible chat completions
// endpoint such as LM Studio. Report requests still use the fixed template.
type LLMResponder struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewLLMResponder creates a responder for the given endpoint
func NewLLMResponder(cfg LLMResponderConfig) *LLMResponder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultLLMBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &LLMResponder{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Respond implements Responder
func (r *LLMResponder) Respond(ctx context.Context, req ResponseRequest) (models.ChatMessage, error) {
	if req.Kind == RequestReport {
		return BuildReportMessage(req.ClaimID), nil
	}

	content, err := r.complete(ctx, req)
	if err != nil {
		return models.ChatMessage{}, err
	}

	return models.ChatMessage{
		Kind:      models.KindQueryResponse,
		Role:      models.RoleAssistant,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Query: &models.QueryResult{
			QueryType: mockQueryType,
			Category:  string(Classify(req.Text)),
			Citations: ExtractCitations(content),
		},
	}, nil
}

func (r *LLMResponder) complete(ctx context.Context, req ResponseRequest) (string, error) {
	userContent := "Claim " + req.ClaimID + ": " + req.Text
	if len(req.Attachments) > 0 {
		names := make([]string, len(req.Attachments))
		for i, doc := range req.Attachments {
			names[i] = doc.Filename
		}
		userContent += "\nAttached documents: " + strings.Join(names, ", ")
	}
	if req.IncludeWebSearch {
		userContent += webSearchAnnotation
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: r.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: llmSystemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: 0.2,
		MaxTokens:   -1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach LLM backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM backend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from LLM backend")
	}
	return completion.Choices[0].Message.Content, nil
}

// HealthCheck verifies the backend is reachable and serving models
func (r *LLMResponder) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/models", nil)
	if err != nil {
		return err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("LLM backend not reachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("LLM backend returned status %d", resp.StatusCode)
	}
	return nil
}
