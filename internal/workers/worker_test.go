package workers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorkerConfig(t *testing.T) {
	config := DefaultWorkerConfig("test-worker")

	assert.Equal(t, "test-worker", config.WorkerName)
	assert.Equal(t, 3, config.Concurrency)
	assert.Equal(t, 100, config.QueueSize)
	assert.Equal(t, 2*time.Second, config.ProcessingDelay)
	assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
	assert.True(t, config.EnableRecovery)
}

func TestNewBaseWorker(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		worker := NewBaseWorker(DefaultWorkerConfig("base-worker"))

		assert.Equal(t, "base-worker", worker.Name())
		assert.False(t, worker.IsRunning())
	})

	t.Run("non-positive sizes are clamped", func(t *testing.T) {
		worker := NewBaseWorker(WorkerConfig{WorkerName: "w", Concurrency: 0, QueueSize: -1})

		assert.Equal(t, 1, worker.Config().Concurrency)
		assert.Equal(t, 1, worker.Config().QueueSize)
	})
}

func TestBaseWorker_IsRunning(t *testing.T) {
	worker := NewBaseWorker(DefaultWorkerConfig("test-worker"))

	assert.False(t, worker.IsRunning())

	worker.setRunning(true)
	assert.True(t, worker.IsRunning())

	worker.setRunning(false)
	assert.False(t, worker.IsRunning())
}

func TestBaseWorker_Stats(t *testing.T) {
	worker := NewBaseWorker(DefaultWorkerConfig("test-worker"))

	stats := worker.Stats()
	assert.Equal(t, "test-worker", stats.WorkerName)
	assert.Equal(t, int64(0), stats.JobsProcessed)
	assert.False(t, stats.IsRunning)
	assert.Zero(t, stats.Uptime)

	worker.setRunning(true)

	startTime := worker.recordJobStart()
	time.Sleep(10 * time.Millisecond)
	worker.recordJobSuccess(startTime)

	startTime = worker.recordJobStart()
	worker.recordJobFailure(startTime)

	startTime = worker.recordJobStart()
	worker.recordJobSkipped(startTime)

	stats = worker.Stats()
	assert.Equal(t, int64(3), stats.JobsProcessed)
	assert.Equal(t, int64(1), stats.JobsSucceeded)
	assert.Equal(t, int64(1), stats.JobsFailed)
	assert.Equal(t, int64(1), stats.JobsSkipped)
	assert.True(t, stats.IsRunning)
	assert.Greater(t, stats.AverageProcessTime, time.Duration(0))
	assert.False(t, stats.LastJobTime.IsZero())
}

func TestBaseWorker_ResetStats(t *testing.T) {
	worker := NewBaseWorker(DefaultWorkerConfig("test-worker"))

	worker.recordJobSuccess(worker.recordJobStart())
	worker.recordJobFailure(worker.recordJobStart())
	worker.resetStats()

	stats := worker.Stats()
	assert.Equal(t, int64(0), stats.JobsProcessed)
	assert.Equal(t, int64(0), stats.JobsSucceeded)
	assert.Equal(t, int64(0), stats.JobsFailed)
	assert.True(t, stats.LastJobTime.IsZero())
}

func TestBaseWorker_ConcurrentAccess(t *testing.T) {
	worker := NewBaseWorker(DefaultWorkerConfig("concurrent-worker"))

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.recordJobSuccess(worker.recordJobStart())
			_ = worker.Stats()
		}()
	}
	wg.Wait()

	stats := worker.Stats()
	assert.Equal(t, int64(iterations), stats.JobsProcessed)
	assert.Equal(t, int64(iterations), stats.JobsSucceeded)
}

func TestWorkerPool_AddAndGet(t *testing.T) {
	pool := NewWorkerPool()
	assert.Equal(t, 0, pool.Count())

	pool.AddWorker(NewMockWorker("worker-1"))
	pool.AddWorker(NewMockWorker("worker-2"))
	assert.Equal(t, 2, pool.Count())

	found := pool.GetWorker("worker-1")
	require.NotNil(t, found)
	assert.Equal(t, "worker-1", found.Name())
	assert.Nil(t, pool.GetWorker("non-existent"))

	stats := pool.GetAllStats()
	assert.Len(t, stats, 2)
	for _, s := range stats {
		assert.NotEmpty(t, s.WorkerName)
	}
}

func TestRunRecoverable(t *testing.T) {
	t.Run("normal execution", func(t *testing.T) {
		called := false
		err := runRecoverable(func() error {
			called = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("panic recovery", func(t *testing.T) {
		err := runRecoverable(func() error {
			panic("test panic")
		})

		require.Error(t, err)
		assert.IsType(t, &WorkerPanicError{}, err)
		assert.Equal(t, "worker panic: test panic", err.Error())
	})

	t.Run("error propagation", func(t *testing.T) {
		err := runRecoverable(func() error {
			return assert.AnError
		})

		assert.Equal(t, assert.AnError, err)
	})
}

func TestWorkerError(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		err := NewWorkerError("worker-1", "start", nil, "custom message")
		assert.Equal(t, "custom message", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewWorkerError("worker-1", "schedule", ErrQueueFull, "")
		assert.Equal(t, "worker-1:schedule: readiness queue full", err.Error())
		assert.ErrorIs(t, err, ErrQueueFull)
	})

	t.Run("minimal error", func(t *testing.T) {
		err := NewWorkerError("worker-1", "stop", nil, "")
		assert.Equal(t, "worker-1:stop: unknown error", err.Error())
	})
}

func TestWorkerPanicError(t *testing.T) {
	assert.Equal(t, "worker panic: boom", (&WorkerPanicError{Panic: "boom"}).Error())
	assert.Contains(t, (&WorkerPanicError{Panic: assert.AnError}).Error(), assert.AnError.Error())
	assert.Equal(t, "worker panic: 123", (&WorkerPanicError{Panic: 123}).Error())
}

// MockWorker is a Worker for pool tests
type MockWorker struct {
	name     string
	running  bool
	startErr error
	stopErr  error
	mu       sync.RWMutex
}

func NewMockWorker(name string) *MockWorker {
	return &MockWorker{name: name}
}

func (w *MockWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.startErr != nil {
		return w.startErr
	}
	w.running = true
	return nil
}

func (w *MockWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopErr != nil {
		return w.stopErr
	}
	w.running = false
	return nil
}

func (w *MockWorker) Name() string {
	return w.name
}

func (w *MockWorker) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *MockWorker) Stats() WorkerStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerStats{WorkerName: w.name, IsRunning: w.running}
}

func TestWorkerPool_StartStopAll(t *testing.T) {
	pool := NewWorkerPool()
	worker1 := NewMockWorker("worker-1")
	worker2 := NewMockWorker("worker-2")
	pool.AddWorker(worker1)
	pool.AddWorker(worker2)

	ctx := context.Background()
	require.NoError(t, pool.StartAll(ctx))
	assert.True(t, worker1.IsRunning())
	assert.True(t, worker2.IsRunning())

	require.NoError(t, pool.StopAll(ctx))
	assert.False(t, worker1.IsRunning())
	assert.False(t, worker2.IsRunning())
}

func TestWorkerPool_Errors(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		pool := NewWorkerPool()
		worker := NewMockWorker("worker-1")
		worker.startErr = assert.AnError
		pool.AddWorker(worker)

		assert.Error(t, pool.StartAll(context.Background()))
	})

	t.Run("stop", func(t *testing.T) {
		pool := NewWorkerPool()
		worker := NewMockWorker("worker-1")
		worker.stopErr = assert.AnError
		pool.AddWorker(worker)

		assert.Equal(t, assert.AnError, pool.StopAll(context.Background()))
	})
}

func TestWorkerPool_ConcurrentAccess(t *testing.T) {
	pool := NewWorkerPool()

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			pool.AddWorker(NewMockWorker(fmt.Sprintf("worker-%d", id)))
			_ = pool.GetAllStats()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, iterations, pool.Count())
}
