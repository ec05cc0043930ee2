package services

import (
	"context"
	"testing"
	"time"

	"claims-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRequest(t *testing.T) {
	assert.Equal(t, RequestReport, ClassifyRequest("Generate defensible report", false))
	assert.Equal(t, RequestReport, ClassifyRequest("show the REPORT", false))
	assert.Equal(t, RequestQuery, ClassifyRequest("What caused the foundation damage?", false))
	assert.Equal(t, RequestQuery, ClassifyRequest("storm history", true))
}

func TestBuildQueryMessage(t *testing.T) {
	msg := BuildQueryMessage("What caused the foundation damage?")

	assert.Equal(t, models.KindQueryResponse, msg.Kind)
	assert.Equal(t, Answer(CategoryFoundationDamage), msg.Content)
	require.NotNil(t, msg.Query)
	assert.Equal(t, "causation_query", msg.Query.QueryType)
	assert.Equal(t, string(CategoryFoundationDamage), msg.Query.Category)
	assert.Equal(t, 4, msg.Query.GraphNodesUsed)
	assert.Equal(t, 3, msg.Query.ChunksUsed)
	assert.InDelta(t, 0.89, msg.Query.Confidence, 1e-9)
	assert.Nil(t, msg.Report)
}

func TestMockResponder_Delay(t *testing.T) {
	t.Run("within bounds", func(t *testing.T) {
		r := NewMockResponder(DefaultMinResponseDelay, DefaultMaxResponseDelay)
		for i := 0; i < 200; i++ {
			d := r.Delay()
			assert.GreaterOrEqual(t, d, DefaultMinResponseDelay)
			assert.LessOrEqual(t, d, DefaultMaxResponseDelay)
		}
	})

	t.Run("inverted bounds collapse to min", func(t *testing.T) {
		r := NewMockResponder(50*time.Millisecond, 10*time.Millisecond)
		assert.Equal(t, 50*time.Millisecond, r.Delay())
	})

	t.Run("zero", func(t *testing.T) {
		assert.Zero(t, NewMockResponder(0, 0).Delay())
	})
}

func TestMockResponder_Respond(t *testing.T) {
	r := NewMockResponder(0, 0)
	ctx := context.Background()

	msg, err := r.Respond(ctx, ResponseRequest{ClaimID: "CLM-1", Text: "Is it covered?", Kind: RequestQuery})
	require.NoError(t, err)
	assert.Equal(t, models.KindQueryResponse, msg.Kind)
	assert.Equal(t, string(CategoryCoverageA), msg.Query.Category)

	msg, err = r.Respond(ctx, ResponseRequest{ClaimID: "CLM-1", Text: "Generate defensible report", Kind: RequestReport})
	require.NoError(t, err)
	assert.Equal(t, models.KindReport, msg.Kind)
}

func TestMockResponder_RespondCancelled(t *testing.T) {
	r := NewMockResponder(time.Hour, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := r.Respond(ctx, ResponseRequest{Text: "hi", Kind: RequestQuery})
	assert.ErrorIs(t, err, context.Canceled)
}
