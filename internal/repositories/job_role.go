package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/cv-screener/internal/models"
)

//go:generate mockgen -source=./job_role.go -destination=./mocks/job_role.mock.go -package=repomocks JobRoleRepository
type JobRoleRepository interface {
	Create(ctx context.Context, role *models.JobRole) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.JobRole, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobRole, error)
	Update(ctx context.Context, role *models.JobRole) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.JobRoleStatus]int64, error)
}

type jobRoleRepository struct {
	db *gorm.DB
}

func NewJobRoleRepository(db *gorm.DB) JobRoleRepository {
	return &jobRoleRepository{db: db}
}

func (r *jobRoleRepository) Create(ctx context.Context, role *models.JobRole) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("failed to create job role: %w", err)
	}
	return nil
}

func (r *jobRoleRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.JobRole, error) {
	var role models.JobRole
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job role %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job role: %w", err)
	}
	return &role, nil
}

func (r *jobRoleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobRole, error) {
	var roles []models.JobRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list job roles: %w", err)
	}
	return roles, nil
}

func (r *jobRoleRepository) Update(ctx context.Context, role *models.JobRole) error {
	result := r.db.WithContext(ctx).
		Model(&models.JobRole{}).
		Where("id = ? AND user_id = ?", role.ID, role.OwnerID).
		Updates(map[string]interface{}{
			"title":        role.Title,
			"description":  role.Description,
			"requirements": role.Requirements,
			"status":       role.Status,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update job role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job role %s: %w", role.ID, ErrNotFound)
	}
	return nil
}

func (r *jobRoleRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.JobRole{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job role %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *jobRoleRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[models.JobRoleStatus]int64, error) {
	var rows []struct {
		Status models.JobRoleStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.JobRole{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", ownerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count job roles: %w", err)
	}

	counts := make(map[models.JobRoleStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
