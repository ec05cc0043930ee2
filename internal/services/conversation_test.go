package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"claims-assistant/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testClaimID = "CLM-2024-TX-00847"

// stubResponder answers after a per-text delay and can fail on demand
type stubResponder struct {
	delays map[string]time.Duration
	fail   map[string]error
}

func (s *stubResponder) Respond(ctx context.Context, req ResponseRequest) (models.ChatMessage, error) {
	if d := s.delays[req.Text]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return models.ChatMessage{}, ctx.Err()
		}
	}
	if err := s.fail[req.Text]; err != nil {
		return models.ChatMessage{}, err
	}
	return models.ChatMessage{
		Kind:    models.KindQueryResponse,
		Content: "re: " + req.Text,
		Query:   &models.QueryResult{Citations: []string{}},
	}, nil
}

func newTestConversation(t *testing.T, responder Responder) *Conversation {
	c := NewConversation(testClaimID, responder, NewMetrics(nil), zaptest.NewLogger(t))
	t.Cleanup(c.Close)
	return c
}

func waitReply(t *testing.T, d *Dispatch) models.ChatMessage {
	t.Helper()
	require.NotNil(t, d)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	reply, err := d.Wait(ctx)
	require.NoError(t, err)
	return reply
}

func TestConversation_FoundationQuestion(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(10*time.Millisecond, 20*time.Millisecond))

	d := c.Send("What caused the foundation damage?", nil, false)
	require.NotNil(t, d)
	assert.True(t, c.IsLoading())
	assert.Equal(t, RequestQuery, d.Kind)

	reply := waitReply(t, d)
	assert.False(t, c.IsLoading())

	messages := c.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, models.KindUser, messages[0].Kind)
	assert.Equal(t, "What caused the foundation damage?", messages[0].Content)

	assistant := messages[1]
	assert.Equal(t, reply.ID, assistant.ID)
	assert.Equal(t, models.KindQueryResponse, assistant.Kind)
	assert.Equal(t, messages[0].ID, assistant.ReplyTo)
	assert.Equal(t, testClaimID, assistant.ClaimID)
	require.NotNil(t, assistant.Query)
	assert.Equal(t, []string{
		"doc_002_chunk_0003",
		"node:DroughtRecord:PDSI-4102-202404",
		"node:StormEvent:NCEI-941852",
		"doc_001_chunk_0001",
	}, assistant.Query.Citations)
}

func TestConversation_ReportRequest(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(0, 0))

	d := c.Send("Generate defensible report", nil, false)
	require.NotNil(t, d)
	assert.Equal(t, RequestReport, d.Kind)

	reply := waitReply(t, d)
	assert.Equal(t, models.KindReport, reply.Kind)
	require.NotNil(t, reply.Report)
	require.Len(t, reply.Report.Timeline, 3)
	assert.Equal(t, "2024-05-15", reply.Report.Timeline[0].EventDate)
	assert.Equal(t, "2024-05-15", reply.Report.Timeline[1].EventDate)
	assert.Equal(t, "2024-05-22", reply.Report.Timeline[2].EventDate)
}

func TestConversation_BlankTextIsNoop(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(0, 0))

	for _, text := range []string{"", "   ", "\n\t"} {
		assert.Nil(t, c.Send(text, nil, false))
	}
	assert.Empty(t, c.Messages())
	assert.False(t, c.IsLoading())
}

func TestConversation_UserMessageTrimmedWithAttachments(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(0, 0))
	attachments := []models.StoredDocument{{ID: "doc_001", Filename: "policy_dec_sheet.pdf"}}

	d := c.Send("  Is it covered?  ", attachments, true)
	require.NotNil(t, d)
	waitReply(t, d)

	user := c.Messages()[0]
	assert.Equal(t, "Is it covered?", user.Content)
	require.Len(t, user.Attachments, 1)
	assert.Equal(t, "doc_001", user.Attachments[0].ID)
	assert.Equal(t, int64(1), user.Sequence)
}

func TestConversation_RepliesInCallOrder(t *testing.T) {
	responder := &stubResponder{delays: map[string]time.Duration{
		"first":  80 * time.Millisecond,
		"second": 0,
		"third":  20 * time.Millisecond,
	}}
	c := newTestConversation(t, responder)

	d1 := c.Send("first", nil, false)
	d2 := c.Send("second", nil, false)
	d3 := c.Send("third", nil, false)

	require.NoError(t, c.WaitIdle(context.Background()))
	assert.False(t, c.IsLoading())

	messages := c.Messages()
	require.Len(t, messages, 6)

	// User messages come first since sends return immediately
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)

	assert.Equal(t, d1.UserMessage.ID, messages[3].ReplyTo)
	assert.Equal(t, d2.UserMessage.ID, messages[4].ReplyTo)
	assert.Equal(t, d3.UserMessage.ID, messages[5].ReplyTo)

	for i, msg := range messages {
		assert.Equal(t, int64(i+1), msg.Sequence)
	}
}

func TestConversation_ResponderError(t *testing.T) {
	backendErr := errors.New("backend down")
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	c := NewConversation(testClaimID, &stubResponder{fail: map[string]error{"boom": backendErr}}, metrics, zaptest.NewLogger(t))
	defer c.Close()

	d := c.Send("boom", nil, false)
	require.NotNil(t, d)

	_, err := d.Wait(context.Background())
	assert.ErrorIs(t, err, backendErr)
	assert.ErrorIs(t, d.Err(), backendErr)
	_, ok := d.Reply()
	assert.False(t, ok)

	assert.Len(t, c.Messages(), 1)
	assert.False(t, c.IsLoading())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.dispatchTotal.WithLabelValues(string(RequestQuery), outcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.dispatchInFlight))

	// A later send still goes through
	reply := waitReply(t, c.Send("ok", nil, false))
	assert.Equal(t, "re: ok", reply.Content)
}

func TestConversation_CloseCancelsOutstanding(t *testing.T) {
	c := NewConversation(testClaimID, NewMockResponder(time.Hour, time.Hour), nil, zaptest.NewLogger(t))

	d1 := c.Send("What caused the foundation damage?", nil, false)
	d2 := c.Send("Generate defensible report", nil, false)
	require.NotNil(t, d1)
	require.NotNil(t, d2)
	assert.True(t, c.IsLoading())

	c.Close()

	for _, d := range []*Dispatch{d1, d2} {
		select {
		case <-d.Done():
		default:
			t.Fatal("dispatch not done after Close")
		}
		assert.ErrorIs(t, d.Err(), ErrConversationClosed)
	}
	assert.False(t, c.IsLoading())
	assert.Len(t, c.Messages(), 2)

	assert.Nil(t, c.Send("after close", nil, false))

	// Closing twice is safe
	c.Close()
}

func TestConversation_MessagesAreSnapshots(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(0, 0))
	waitReply(t, c.Send("What caused the foundation damage?", nil, false))

	snapshot := c.Messages()
	snapshot[1].Query.Citations[0] = "tampered"
	snapshot[0].Content = "tampered"

	fresh := c.Messages()
	assert.Equal(t, "doc_002_chunk_0003", fresh[1].Query.Citations[0])
	assert.Equal(t, "What caused the foundation damage?", fresh[0].Content)
}

func TestConversation_ConcurrentSends(t *testing.T) {
	c := newTestConversation(t, NewMockResponder(0, time.Millisecond))

	const n = 20
	done := make(chan *Dispatch, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			done <- c.Send(fmt.Sprintf("question %d", i), nil, false)
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NotNil(t, <-done)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.WaitIdle(ctx))

	messages := c.Messages()
	require.Len(t, messages, 2*n)

	replied := make(map[string]bool)
	for _, msg := range messages {
		if msg.IsAssistant() {
			replied[msg.ReplyTo] = true
		}
	}
	assert.Len(t, replied, n)
}
