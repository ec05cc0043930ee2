package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"claims-assistant/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	outcomeOK        = "ok"
	outcomeError     = "error"
	outcomeCancelled = "cancelled"
)

// ErrConversationClosed is reported by dispatches cut short by Close
var ErrConversationClosed = errors.New("conversation closed")

// Conversation is the claim-scoped, append-only message log and its dispatcher.
// Replies are produced one at a time, so they are appended in the order the
// user messages were sent.
type Conversation struct {
	claimID   string
	responder Responder
	logger    *zap.Logger
	metrics   *Metrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	messages []models.ChatMessage
	nextSeq  int64
	pending  int
	tail     chan struct{}
	closed   bool
}

// Dispatch is the handle of one outstanding send
type Dispatch struct {
	UserMessage models.ChatMessage
	Kind        RequestKind

	done  chan struct{}
	reply *models.ChatMessage
	err   error
}

// NewConversation creates an empty conversation for a claim
func NewConversation(claimID string, responder Responder, metrics *Metrics, logger *zap.Logger) *Conversation {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Conversation{
		claimID:   claimID,
		responder: responder,
		logger:    logger.With(zap.String("claim_id", claimID)),
		metrics:   metrics,
		ctx:       ctx,
		cancel:    cancel,
		messages:  make([]models.ChatMessage, 0),
	}
}

// ClaimID returns the claim the conversation belongs to
func (c *Conversation) ClaimID() string {
	return c.claimID
}

// Send appends the user message and schedules the assistant reply.
// It returns immediately; nil means nothing was sent because the text is
// blank or the conversation is closed.
func (c *Conversation) Send(text string, attachments []models.StoredDocument, includeWebSearch bool) *Dispatch {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	kind := ClassifyRequest(text, includeWebSearch)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Warn("Send on closed conversation ignored")
		return nil
	}

	userMsg := models.ChatMessage{
		ID:        "user-" + uuid.New().String(),
		Kind:      models.KindUser,
		Role:      models.RoleUser,
		Content:   trimmed,
		Timestamp: time.Now().UTC(),
		ClaimID:   c.claimID,
		Sequence:  c.nextSequence(),
	}
	if len(attachments) > 0 {
		userMsg.Attachments = append([]models.StoredDocument(nil), attachments...)
	}
	c.messages = append(c.messages, userMsg)
	c.pending++

	d := &Dispatch{
		UserMessage: userMsg.Clone(),
		Kind:        kind,
		done:        make(chan struct{}),
	}
	prev := c.tail
	c.tail = d.done
	c.wg.Add(1)
	c.mu.Unlock()

	c.metrics.dispatchStarted()
	c.logger.Debug("Dispatch scheduled",
		zap.String("message_id", userMsg.ID),
		zap.String("kind", string(kind)),
		zap.Int("attachments", len(attachments)),
		zap.Bool("web_search", includeWebSearch))

	req := ResponseRequest{
		ClaimID:          c.claimID,
		Text:             text,
		Kind:             kind,
		Attachments:      userMsg.Attachments,
		IncludeWebSearch: includeWebSearch,
	}
	go c.run(d, prev, req)

	return d
}

// run waits for the previous dispatch, asks the responder, and appends the reply
func (c *Conversation) run(d *Dispatch, prev <-chan struct{}, req ResponseRequest) {
	defer c.wg.Done()
	defer close(d.done)

	start := time.Now()
	if prev != nil {
		select {
		case <-prev:
		case <-c.ctx.Done():
		}
	}

	var reply models.ChatMessage
	err := c.ctx.Err()
	if err == nil {
		reply, err = c.responder.Respond(c.ctx, req)
	}

	c.mu.Lock()
	if err == nil {
		reply.ID = "assistant-" + uuid.New().String()
		reply.Role = models.RoleAssistant
		reply.ClaimID = c.claimID
		reply.ReplyTo = d.UserMessage.ID
		reply.Sequence = c.nextSequence()
		if reply.Timestamp.IsZero() {
			reply.Timestamp = time.Now().UTC()
		}
		c.messages = append(c.messages, reply)
		stored := reply.Clone()
		d.reply = &stored
	}
	c.pending--
	c.mu.Unlock()

	switch {
	case err == nil:
		c.metrics.dispatchFinished(req.Kind, outcomeOK, time.Since(start))
		c.logger.Debug("Reply appended",
			zap.String("message_id", reply.ID),
			zap.String("reply_to", reply.ReplyTo),
			zap.Duration("elapsed", time.Since(start)))
	case c.ctx.Err() != nil:
		d.err = ErrConversationClosed
		c.metrics.dispatchFinished(req.Kind, outcomeCancelled, time.Since(start))
		c.logger.Info("Dispatch cancelled", zap.String("message_id", d.UserMessage.ID))
	default:
		d.err = err
		c.metrics.dispatchFinished(req.Kind, outcomeError, time.Since(start))
		c.logger.Error("Responder failed", zap.String("message_id", d.UserMessage.ID), zap.Error(err))
	}
}

// nextSequence must be called with mu held
func (c *Conversation) nextSequence() int64 {
	c.nextSeq++
	return c.nextSeq
}

// Messages returns a snapshot of the log in append order
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.ChatMessage, len(c.messages))
	for i, msg := range c.messages {
		out[i] = msg.Clone()
	}
	return out
}

// IsLoading reports whether any dispatch is still waiting for its reply
func (c *Conversation) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending > 0
}

// WaitIdle blocks until no dispatch is outstanding or ctx is done
func (c *Conversation) WaitIdle(ctx context.Context) error {
	for {
		c.mu.Lock()
		tail := c.tail
		idle := c.pending == 0
		c.mu.Unlock()

		if idle || tail == nil {
			return nil
		}
		select {
		case <-tail:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels outstanding dispatches and waits for them to return.
// Later sends are ignored.
func (c *Conversation) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// Done is closed once the dispatch has finished, with or without a reply
func (d *Dispatch) Done() <-chan struct{} {
	return d.done
}

// Reply returns the assistant message once the dispatch is done
func (d *Dispatch) Reply() (models.ChatMessage, bool) {
	select {
	case <-d.done:
	default:
		return models.ChatMessage{}, false
	}
	if d.reply == nil {
		return models.ChatMessage{}, false
	}
	return d.reply.Clone(), true
}

// Err returns why the dispatch produced no reply, once it is done
func (d *Dispatch) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Wait blocks until the reply is available
func (d *Dispatch) Wait(ctx context.Context) (models.ChatMessage, error) {
	select {
	case <-d.done:
	case <-ctx.Done():
		return models.ChatMessage{}, ctx.Err()
	}
	if d.err != nil {
		return models.ChatMessage{}, d.err
	}
	return d.reply.Clone(), nil
}
