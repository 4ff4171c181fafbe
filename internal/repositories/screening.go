package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/cv-screener/internal/models"
)

//go:generate mockgen -source=./screening.go -destination=./mocks/screening.mock.go -package=repomocks ScreeningRepository
type ScreeningRepository interface {
	CreateBatch(ctx context.Context, screenings []models.Screening) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Screening, error)
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.ScreeningStatus]int64, error)
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) CreateBatch(ctx context.Context, screenings []models.Screening) error {
	if len(screenings) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&screenings).Error; err != nil {
		return fmt.Errorf("failed to create screenings: %w", err)
	}
	return nil
}

func (r *screeningRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]models.Screening, error) {
	var screenings []models.Screening
	query := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("screened_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&screenings).Error; err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	return screenings, nil
}

func (r *screeningRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.ScreeningStatus]int64, error) {
	var rows []struct {
		Status models.ScreeningStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Screening{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count screenings: %w", err)
	}

	counts := make(map[models.ScreeningStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
