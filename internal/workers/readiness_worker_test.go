package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type countingObserver struct {
	ready atomic.Int64
}

func (o *countingObserver) DocumentReady() {
	o.ready.Add(1)
}

// MockDocumentStore is a DocumentStatusStore backed by testify/mock
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Get(ctx context.Context, claimID, documentID string) (*models.StoredDocument, error) {
	args := m.Called(ctx, claimID, documentID)
	if doc := args.Get(0); doc != nil {
		return doc.(*models.StoredDocument), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentStore) UpdateStatus(ctx context.Context, claimID, documentID string, status models.DocumentStatus) error {
	args := m.Called(ctx, claimID, documentID, status)
	return args.Error(0)
}

func newTestReadinessWorker(t *testing.T, store DocumentStatusStore, delay time.Duration) (*ReadinessWorker, *countingObserver) {
	cfg := DefaultWorkerConfig(ReadinessWorkerName)
	cfg.ProcessingDelay = delay
	cfg.ShutdownTimeout = time.Second

	observer := &countingObserver{}
	worker := NewReadinessWorker(ReadinessWorkerConfig{
		WorkerConfig: cfg,
		Documents:    store,
		Observer:     observer,
		Logger:       zaptest.NewLogger(t).Sugar(),
	})
	return worker, observer
}

func registerProcessing(t *testing.T, repo *repositories.MemoryDocumentRepository, claimID, docID string) {
	require.NoError(t, repo.Register(context.Background(), &models.StoredDocument{
		ID:        docID,
		Filename:  docID + ".pdf",
		DocType:   models.DocTypeEstimate,
		Status:    models.DocumentStatusProcessing,
		CreatedAt: time.Now().UTC(),
		ClaimID:   claimID,
	}))
}

func TestReadinessWorker_StartStop(t *testing.T) {
	worker, _ := newTestReadinessWorker(t, repositories.NewMemoryDocumentRepository(), time.Millisecond)
	ctx := context.Background()

	require.NoError(t, worker.Start(ctx))
	assert.True(t, worker.IsRunning())

	err := worker.Start(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	require.NoError(t, worker.Stop(ctx))
	assert.False(t, worker.IsRunning())

	// Stopping twice is a no-op
	assert.NoError(t, worker.Stop(ctx))
}

func TestReadinessWorker_ScheduleRequiresRunning(t *testing.T) {
	worker, _ := newTestReadinessWorker(t, repositories.NewMemoryDocumentRepository(), time.Millisecond)

	err := worker.Schedule("CLM-1", "doc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestReadinessWorker_MarksDocumentReady(t *testing.T) {
	repo := repositories.NewMemoryDocumentRepository()
	worker, observer := newTestReadinessWorker(t, repo, 100*time.Millisecond)
	ctx := context.Background()

	registerProcessing(t, repo, "CLM-1", "doc-1")
	registerProcessing(t, repo, "CLM-1", "doc-2")

	require.NoError(t, worker.Start(ctx))
	defer worker.Stop(ctx)

	require.NoError(t, worker.Schedule("CLM-1", "doc-1"))
	require.NoError(t, worker.Schedule("CLM-1", "doc-2"))

	// Not ready before the delay elapses
	doc, err := repo.Get(ctx, "CLM-1", "doc-1")
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusProcessing, doc.Status)

	assert.Eventually(t, func() bool {
		d1, _ := repo.Get(ctx, "CLM-1", "doc-1")
		d2, _ := repo.Get(ctx, "CLM-1", "doc-2")
		return d1.Status == models.DocumentStatusReady && d2.Status == models.DocumentStatusReady
	}, 2*time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return observer.ready.Load() == 2
	}, time.Second, 5*time.Millisecond)

	stats := worker.Stats()
	assert.Equal(t, int64(2), stats.JobsSucceeded)
}

func TestReadinessWorker_SkipsDeletedDocument(t *testing.T) {
	repo := repositories.NewMemoryDocumentRepository()
	worker, observer := newTestReadinessWorker(t, repo, 20*time.Millisecond)
	ctx := context.Background()

	registerProcessing(t, repo, "CLM-1", "doc-gone")

	require.NoError(t, worker.Start(ctx))
	defer worker.Stop(ctx)

	require.NoError(t, worker.Schedule("CLM-1", "doc-gone"))
	require.NoError(t, repo.Delete(ctx, "CLM-1", "doc-gone"))

	assert.Eventually(t, func() bool {
		return worker.Stats().JobsSkipped == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(0), observer.ready.Load())
}

func TestReadinessWorker_StoreFailure(t *testing.T) {
	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, "CLM-1", "doc-1").Return(&models.StoredDocument{
		ID:      "doc-1",
		ClaimID: "CLM-1",
		Status:  models.DocumentStatusProcessing,
	}, nil)
	store.On("UpdateStatus", mock.Anything, "CLM-1", "doc-1", models.DocumentStatusReady).Return(assert.AnError)

	worker, observer := newTestReadinessWorker(t, store, 0)
	ctx := context.Background()

	require.NoError(t, worker.Start(ctx))
	defer worker.Stop(ctx)
	require.NoError(t, worker.Schedule("CLM-1", "doc-1"))

	assert.Eventually(t, func() bool {
		return worker.Stats().JobsFailed == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(0), observer.ready.Load())
	store.AssertExpectations(t)
}

func TestReadinessWorker_RecoversFromPanic(t *testing.T) {
	store := new(MockDocumentStore)
	store.On("Get", mock.Anything, "CLM-1", "doc-1").Panic("store exploded")

	worker, _ := newTestReadinessWorker(t, store, 0)
	ctx := context.Background()

	require.NoError(t, worker.Start(ctx))
	defer worker.Stop(ctx)
	require.NoError(t, worker.Schedule("CLM-1", "doc-1"))

	assert.Eventually(t, func() bool {
		return worker.Stats().JobsFailed == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, worker.IsRunning())
}

func TestReadinessWorker_QueueFull(t *testing.T) {
	cfg := DefaultWorkerConfig(ReadinessWorkerName)
	cfg.Concurrency = 1
	cfg.QueueSize = 1
	cfg.ProcessingDelay = time.Hour
	cfg.ShutdownTimeout = time.Second

	worker := NewReadinessWorker(ReadinessWorkerConfig{
		WorkerConfig: cfg,
		Documents:    repositories.NewMemoryDocumentRepository(),
		Logger:       zap.NewNop().Sugar(),
	})
	ctx := context.Background()
	require.NoError(t, worker.Start(ctx))
	defer worker.Stop(ctx)

	// The single goroutine picks up the first job and waits on its delay
	require.NoError(t, worker.Schedule("CLM-1", "doc-1"))
	require.Eventually(t, func() bool { return worker.Pending() == 0 }, time.Second, time.Millisecond)

	require.NoError(t, worker.Schedule("CLM-1", "doc-2"))
	err := worker.Schedule("CLM-1", "doc-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueueFull)
}
