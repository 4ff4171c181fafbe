package services

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
)

// CleanupWorker retries object deletions recorded in the cleanup log.
type CleanupWorker interface {
	Start(ctx context.Context)
	Stop()
	// RunOnce processes one batch and reports how many objects were removed.
	RunOnce(ctx context.Context) int
}

type cleanupWorker struct {
	cleanupRepo repositories.CleanupRepository
	storage     ObjectStorage
	interval    time.Duration
	batchSize   int
	maxAttempts int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

func NewCleanupWorker(
	cleanupRepo repositories.CleanupRepository,
	storage ObjectStorage,
	interval time.Duration,
	batchSize int,
	maxAttempts int,
) CleanupWorker {
	return &cleanupWorker{
		cleanupRepo: cleanupRepo,
		storage:     storage,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		stopChan:    make(chan struct{}),
	}
}

// Start implements CleanupWorker.
func (w *cleanupWorker) Start(ctx context.Context) {
	log.Infof("🚀 Starting storage cleanup worker (every %s)", w.interval)

	w.wg.Add(1)
	go w.poll(ctx)
}

// Stop implements CleanupWorker.
func (w *cleanupWorker) Stop() {
	w.stopOnce.Do(func() {
		log.Info("🛑 Stopping storage cleanup worker...")
		close(w.stopChan)
		w.wg.Wait()
		log.Info("✅ Storage cleanup worker stopped")
	})
}

func (w *cleanupWorker) poll(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce implements CleanupWorker.
func (w *cleanupWorker) RunOnce(ctx context.Context) int {
	pending, err := w.cleanupRepo.FindPending(ctx, w.batchSize)
	if err != nil {
		log.Warnf("⚠️ Failed to fetch pending cleanups: %v", err)
		return 0
	}

	if len(pending) > 0 {
		log.Infof("📋 Found %d orphaned objects to remove", len(pending))
	}

	removed := 0
	for _, job := range pending {
		if w.process(ctx, job) {
			removed++
		}
	}
	return removed
}

func (w *cleanupWorker) process(ctx context.Context, job models.StorageCleanup) bool {
	if err := w.storage.Delete(ctx, job.ObjectKey); err != nil {
		giveUp := job.Attempts+1 >= w.maxAttempts
		cleanupAttempts.WithLabelValues("failed").Inc()
		if giveUp {
			log.Errorf("❌ Giving up on %s after %d attempts: %v", job.ObjectKey, job.Attempts+1, err)
		} else {
			log.Warnf("⚠️ Cleanup of %s failed (attempt %d): %v", job.ObjectKey, job.Attempts+1, err)
		}
		if err := w.cleanupRepo.RecordFailure(ctx, job.ID, err.Error(), giveUp); err != nil {
			log.Errorf("❌ Failed to record cleanup failure for %s: %v", job.ObjectKey, err)
		}
		return false
	}

	if err := w.cleanupRepo.MarkDone(ctx, job.ID); err != nil {
		log.Errorf("❌ Failed to mark cleanup %s done: %v", job.ID, err)
	}
	cleanupAttempts.WithLabelValues("done").Inc()
	log.Infof("🧹 Removed orphaned object %s", job.ObjectKey)
	return true
}
