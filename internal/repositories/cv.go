package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/cv-screener/internal/models"
)

//go:generate mockgen -source=./cv.go -destination=./mocks/cv.mock.go -package=repomocks CVRepository
type CVRepository interface {
	Create(ctx context.Context, cv *models.CV) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.CV, error)
	FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]models.CV, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.CV, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

type cvRepository struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &cvRepository{db: db}
}

// Create implements CVRepository.
func (r *cvRepository) Create(ctx context.Context, cv *models.CV) error {
	if err := r.db.WithContext(ctx).Create(cv).Error; err != nil {
		return fmt.Errorf("failed to create cv: %w", err)
	}
	return nil
}

// FindByID implements CVRepository.
func (r *cvRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.CV, error) {
	var cv models.CV
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&cv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cv %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find cv: %w", err)
	}
	return &cv, nil
}

// FindByIDs implements CVRepository. Rows come back in the order of ids;
// unknown ids are skipped.
func (r *cvRepository) FindByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]models.CV, error) {
	var rows []models.CV
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, ids).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find cvs: %w", err)
	}

	byID := make(map[uuid.UUID]models.CV, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	ordered := make([]models.CV, 0, len(rows))
	for _, id := range ids {
		if cv, ok := byID[id]; ok {
			ordered = append(ordered, cv)
			delete(byID, id)
		}
	}
	return ordered, nil
}

// ListByOwner implements CVRepository.
func (r *cvRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.CV, error) {
	var cvs []models.CV
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("uploaded_at DESC").
		Find(&cvs).Error; err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	return cvs, nil
}

// Delete implements CVRepository.
func (r *cvRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.CV{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cv: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("cv %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountByOwner implements CVRepository.
func (r *cvRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CV{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count cvs: %w", err)
	}
	return count, nil
}
