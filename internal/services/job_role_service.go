package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
)

//go:generate mockgen -source=./job_role_service.go -destination=./mocks/job_role_service.mock.go -package=svcmocks JobRoleService DashboardService
type JobRoleService interface {
	Create(ctx context.Context, session *models.Session, req models.JobRoleRequest) (*models.JobRole, error)
	Get(ctx context.Context, session *models.Session, id uuid.UUID) (*models.JobRole, error)
	List(ctx context.Context, session *models.Session) ([]models.JobRole, error)
	Update(ctx context.Context, session *models.Session, id uuid.UUID, req models.JobRoleRequest) (*models.JobRole, error)
	Delete(ctx context.Context, session *models.Session, id uuid.UUID) error
}

type DashboardService interface {
	Stats(ctx context.Context, session *models.Session) (*models.DashboardStats, error)
}

type jobRoleService struct {
	repo repositories.JobRoleRepository
}

func NewJobRoleService(repo repositories.JobRoleRepository) JobRoleService {
	return &jobRoleService{repo: repo}
}

func (s *jobRoleService) Create(ctx context.Context, session *models.Session, req models.JobRoleRequest) (*models.JobRole, error) {
	role, err := buildJobRole(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	role.ID = uuid.New()
	role.OwnerID = session.UserID
	role.CreatedAt = now
	role.UpdatedAt = now

	if err := s.repo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("failed to create job role: %w", err)
	}
	return role, nil
}

func (s *jobRoleService) Get(ctx context.Context, session *models.Session, id uuid.UUID) (*models.JobRole, error) {
	role, err := s.repo.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, mapJobRoleError(err, id)
	}
	return role, nil
}

func (s *jobRoleService) List(ctx context.Context, session *models.Session) ([]models.JobRole, error) {
	return s.repo.ListByOwner(ctx, session.UserID)
}

func (s *jobRoleService) Update(ctx context.Context, session *models.Session, id uuid.UUID, req models.JobRoleRequest) (*models.JobRole, error) {
	existing, err := s.repo.FindByID(ctx, session.UserID, id)
	if err != nil {
		return nil, mapJobRoleError(err, id)
	}

	role, err := buildJobRole(req)
	if err != nil {
		return nil, err
	}
	role.ID = existing.ID
	role.OwnerID = existing.OwnerID
	role.CreatedAt = existing.CreatedAt
	role.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, mapJobRoleError(err, id)
	}
	return role, nil
}

func (s *jobRoleService) Delete(ctx context.Context, session *models.Session, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, session.UserID, id); err != nil {
		return mapJobRoleError(err, id)
	}
	return nil
}

func buildJobRole(req models.JobRoleRequest) (*models.JobRole, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, newValidationError("Job role title is required")
	}

	status := models.JobRoleStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.JobRoleOpen
	}
	if !status.Valid() {
		return nil, newValidationError("Invalid job role status: %s", req.Status)
	}

	requirements := slice.FilterMap(req.Requirements, func(_ int, src string) (string, bool) {
		src = strings.TrimSpace(src)
		return src, src != ""
	})

	return &models.JobRole{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		Requirements: pq.StringArray(requirements),
		Status:       status,
	}, nil
}

func mapJobRoleError(err error, id uuid.UUID) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%s: %w", id, ErrJobRoleNotFound)
	}
	return err
}

type dashboardService struct {
	cvRepo        repositories.CVRepository
	screeningRepo repositories.ScreeningRepository
	jobRoleRepo   repositories.JobRoleRepository
}

func NewDashboardService(
	cvRepo repositories.CVRepository,
	screeningRepo repositories.ScreeningRepository,
	jobRoleRepo repositories.JobRoleRepository,
) DashboardService {
	return &dashboardService{
		cvRepo:        cvRepo,
		screeningRepo: screeningRepo,
		jobRoleRepo:   jobRoleRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context, session *models.Session) (*models.DashboardStats, error) {
	cvCount, err := s.cvRepo.CountByOwner(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	screenings, err := s.screeningRepo.CountByStatus(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	roles, err := s.jobRoleRepo.CountByStatus(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalCVs:           cvCount,
		SelectedScreenings: screenings[models.StatusSelected],
		RejectedScreenings: screenings[models.StatusRejected],
		OpenJobRoles:       roles[models.JobRoleOpen],
	}
	for _, n := range screenings {
		stats.TotalScreenings += n
	}
	for _, n := range roles {
		stats.TotalJobRoles += n
	}
	return stats, nil
}
