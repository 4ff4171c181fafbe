package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/cv-screener/internal/models"
)

//go:generate mockgen -source=./cleanup.go -destination=./mocks/cleanup.mock.go -package=repomocks CleanupRepository
type CleanupRepository interface {
	Enqueue(ctx context.Context, objectKey, reason string) error
	FindPending(ctx context.Context, limit int) ([]models.StorageCleanup, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	RecordFailure(ctx context.Context, id uuid.UUID, errorMsg string, giveUp bool) error
}

type cleanupRepository struct {
	db *gorm.DB
}

func NewCleanupRepository(db *gorm.DB) CleanupRepository {
	return &cleanupRepository{db: db}
}

func (r *cleanupRepository) Enqueue(ctx context.Context, objectKey, reason string) error {
	entry := &models.StorageCleanup{
		ID:        uuid.New(),
		ObjectKey: objectKey,
		Reason:    reason,
		Status:    models.CleanupPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to enqueue cleanup: %w", err)
	}
	return nil
}

func (r *cleanupRepository) FindPending(ctx context.Context, limit int) ([]models.StorageCleanup, error) {
	var entries []models.StorageCleanup
	err := r.db.WithContext(ctx).
		Where("status = ?", models.CleanupPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending cleanups: %w", err)
	}
	return entries, nil
}

func (r *cleanupRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.StorageCleanup{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.CleanupDone,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark cleanup done: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cleanup %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *cleanupRepository) RecordFailure(ctx context.Context, id uuid.UUID, errorMsg string, giveUp bool) error {
	status := models.CleanupPending
	if giveUp {
		status = models.CleanupFailed
	}

	result := r.db.WithContext(ctx).
		Model(&models.StorageCleanup{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": errorMsg,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record cleanup failure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cleanup %s: %w", id, ErrNotFound)
	}
	return nil
}
