package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
)

// ReadinessWorkerName is the pool name of the document readiness worker
const ReadinessWorkerName = "document-readiness"

// ErrQueueFull is returned by Schedule when the job channel is at capacity
var ErrQueueFull = errors.New("readiness queue full")

// DocumentStatusStore is the part of the document repository the worker needs
type DocumentStatusStore interface {
	Get(ctx context.Context, claimID, documentID string) (*models.StoredDocument, error)
	UpdateStatus(ctx context.Context, claimID, documentID string, status models.DocumentStatus) error
}

// ReadyObserver is told about every document that became ready
type ReadyObserver interface {
	DocumentReady()
}

// ReadinessJob is one scheduled Processing -> Ready transition
type ReadinessJob struct {
	ClaimID     string
	DocumentID  string
	ScheduledAt time.Time
}

// ReadinessWorkerConfig holds configuration for the readiness worker
type ReadinessWorkerConfig struct {
	WorkerConfig WorkerConfig
	Documents    DocumentStatusStore
	Observer     ReadyObserver
	Logger       Logger
}

// ReadinessWorker marks uploaded documents Ready once their processing delay
// has elapsed. Documents deleted in the meantime are skipped.
type ReadinessWorker struct {
	*BaseWorker
	jobs      chan ReadinessJob
	documents DocumentStatusStore
	observer  ReadyObserver
	logger    Logger

	lifecycleMu sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewReadinessWorker creates a new readiness worker
func NewReadinessWorker(config ReadinessWorkerConfig) *ReadinessWorker {
	base := NewBaseWorker(config.WorkerConfig)
	return &ReadinessWorker{
		BaseWorker: base,
		jobs:       make(chan ReadinessJob, base.config.QueueSize),
		documents:  config.Documents,
		observer:   config.Observer,
		logger:     config.Logger,
	}
}

// Start launches Concurrency goroutines consuming the job channel
func (w *ReadinessWorker) Start(ctx context.Context) error {
	w.lifecycleMu.Lock()
	defer w.lifecycleMu.Unlock()

	if w.IsRunning() {
		return NewWorkerError(w.Name(), "start", nil, "worker already running")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.setRunning(true)
	w.logger.Infof("Starting readiness worker: %s (concurrency: %d, delay: %v)",
		w.Name(), w.config.Concurrency, w.config.ProcessingDelay)

	for i := 0; i < w.config.Concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(workerCtx, i)
	}
	return nil
}

// Stop cancels the goroutines and waits for them, bounded by ShutdownTimeout.
// Jobs still queued are dropped.
func (w *ReadinessWorker) Stop(ctx context.Context) error {
	w.lifecycleMu.Lock()
	defer w.lifecycleMu.Unlock()

	if !w.IsRunning() {
		return nil
	}

	w.logger.Infof("Stopping readiness worker: %s", w.Name())
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	shutdownCtx, cancel := context.WithTimeout(ctx, w.config.ShutdownTimeout)
	defer cancel()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		w.setRunning(false)
		return NewWorkerError(w.Name(), "stop", shutdownCtx.Err(), "")
	}

	w.setRunning(false)
	w.logger.Infof("Readiness worker stopped: %s (pending: %d)", w.Name(), len(w.jobs))
	return nil
}

// Schedule queues a document for its Ready transition without blocking
func (w *ReadinessWorker) Schedule(claimID, documentID string) error {
	if !w.IsRunning() {
		return NewWorkerError(w.Name(), "schedule", nil, "worker not running")
	}

	job := ReadinessJob{
		ClaimID:     claimID,
		DocumentID:  documentID,
		ScheduledAt: time.Now(),
	}
	select {
	case w.jobs <- job:
		w.logger.Debugf("Scheduled readiness for document %s (claim %s)", documentID, claimID)
		return nil
	default:
		return NewWorkerError(w.Name(), "schedule", ErrQueueFull, "")
	}
}

// Pending returns the number of queued jobs not yet picked up
func (w *ReadinessWorker) Pending() int {
	return len(w.jobs)
}

func (w *ReadinessWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-goroutine-%d", w.Name(), workerID)
	w.logger.Debugf("Worker goroutine started: %s", workerName)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debugf("Worker goroutine stopping: %s", workerName)
			return
		case job := <-w.jobs:
			if !w.waitUntilDue(ctx, job) {
				return
			}
			w.processJob(ctx, job)
		}
	}
}

// waitUntilDue sleeps until the job's delay has elapsed; false means cancelled
func (w *ReadinessWorker) waitUntilDue(ctx context.Context, job ReadinessJob) bool {
	remaining := time.Until(job.ScheduledAt.Add(w.config.ProcessingDelay))
	if remaining <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *ReadinessWorker) processJob(ctx context.Context, job ReadinessJob) {
	startTime := w.recordJobStart()

	var (
		skipped bool
		err     error
	)
	run := func() error {
		skipped, err = w.markReady(ctx, job)
		return err
	}
	if w.config.EnableRecovery {
		err = runRecoverable(run)
	} else {
		err = run()
	}

	switch {
	case err != nil:
		w.recordJobFailure(startTime)
		w.logger.Errorf("Failed to mark document %s ready: %v", job.DocumentID, err)
	case skipped:
		w.recordJobSkipped(startTime)
	default:
		w.recordJobSuccess(startTime)
		if w.observer != nil {
			w.observer.DocumentReady()
		}
		w.logger.Infof("Document ready: %s (claim %s, waited %v)",
			job.DocumentID, job.ClaimID, time.Since(job.ScheduledAt))
	}
}

// markReady reports skipped when the document is gone or no longer processing
func (w *ReadinessWorker) markReady(ctx context.Context, job ReadinessJob) (bool, error) {
	doc, err := w.documents.Get(ctx, job.ClaimID, job.DocumentID)
	if errors.Is(err, repositories.ErrNotFound) {
		w.logger.Debugf("Document %s deleted before it became ready", job.DocumentID)
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if doc.Status != models.DocumentStatusProcessing {
		return true, nil
	}

	err = w.documents.UpdateStatus(ctx, job.ClaimID, job.DocumentID, models.DocumentStatusReady)
	if errors.Is(err, repositories.ErrNotFound) {
		return true, nil
	}
	return false, err
}
