package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionManager(t *testing.T) {
	m := NewSessionManager(NewMockResponder(time.Hour, time.Hour), nil, zap.NewNop())

	a := m.Session("CLM-A")
	require.NotNil(t, a)
	assert.Same(t, a, m.Session("CLM-A"))
	assert.NotSame(t, a, m.Session("CLM-B"))
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, "CLM-A", a.Conversation.ClaimID())

	d := a.Conversation.Send("What caused the foundation damage?", nil, false)
	require.NotNil(t, d)

	m.Close()
	assert.ErrorIs(t, d.Err(), ErrConversationClosed)
	assert.False(t, a.Conversation.IsLoading())

	// Sessions created after Close never dispatch
	late := m.Session("CLM-C")
	assert.Nil(t, late.Conversation.Send("hello", nil, false))
}
