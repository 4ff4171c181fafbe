package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
	repomocks "alfredoptarigan/cv-screener/internal/repositories/mocks"
)

func TestJobRoleService_Create(t *testing.T) {
	session := testSession()

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repositories.JobRoleRepository
		req  models.JobRoleRequest

		wantErr  string
		wantRole func(t *testing.T, role *models.JobRole)
	}{
		{
			name: "defaults to open",
			mock: func(ctrl *gomock.Controller) repositories.JobRoleRepository {
				repo := repomocks.NewMockJobRoleRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			req: models.JobRoleRequest{
				Title:        "  Data Engineer ",
				Requirements: []string{" Spark ", "", "SQL"},
			},
			wantRole: func(t *testing.T, role *models.JobRole) {
				assert.Equal(t, "Data Engineer", role.Title)
				assert.Equal(t, models.JobRoleOpen, role.Status)
				assert.Equal(t, pq.StringArray{"Spark", "SQL"}, role.Requirements)
				assert.Equal(t, session.UserID, role.OwnerID)
				assert.NotEqual(t, uuid.Nil, role.ID)
			},
		},
		{
			name: "missing title",
			mock: func(ctrl *gomock.Controller) repositories.JobRoleRepository {
				return repomocks.NewMockJobRoleRepository(ctrl)
			},
			req:     models.JobRoleRequest{Title: " "},
			wantErr: "Job role title is required",
		},
		{
			name: "unknown status",
			mock: func(ctrl *gomock.Controller) repositories.JobRoleRepository {
				return repomocks.NewMockJobRoleRepository(ctrl)
			},
			req:     models.JobRoleRequest{Title: "SRE", Status: "archived"},
			wantErr: "Invalid job role status: archived",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			role, err := NewJobRoleService(tc.mock(ctrl)).Create(context.Background(), session, tc.req)
			if tc.wantErr != "" {
				assert.ErrorIs(t, err, ErrValidation)
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.wantRole(t, role)
		})
	}
}

func TestJobRoleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := testSession()
	existing := &models.JobRole{ID: uuid.New(), OwnerID: session.UserID, Title: "Old", Status: models.JobRoleOpen}

	repo := repomocks.NewMockJobRoleRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), session.UserID, existing.ID).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, role *models.JobRole) error {
		assert.Equal(t, existing.ID, role.ID)
		assert.Equal(t, "New", role.Title)
		assert.Equal(t, models.JobRoleClosed, role.Status)
		return nil
	})

	role, err := NewJobRoleService(repo).Update(context.Background(), session, existing.ID, models.JobRoleRequest{
		Title:  "New",
		Status: "closed",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", role.Title)
}

func TestJobRoleService_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := testSession()
	id := uuid.New()

	repo := repomocks.NewMockJobRoleRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), session.UserID, id).Return(nil, repositories.ErrNotFound).Times(2)
	repo.EXPECT().Delete(gomock.Any(), session.UserID, id).Return(repositories.ErrNotFound)

	svc := NewJobRoleService(repo)

	_, err := svc.Get(context.Background(), session, id)
	assert.ErrorIs(t, err, ErrJobRoleNotFound)

	_, err = svc.Update(context.Background(), session, id, models.JobRoleRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrJobRoleNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), session, id), ErrJobRoleNotFound)
}

func TestDashboardService_Stats(t *testing.T) {
	session := testSession()

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) DashboardService

		want    *models.DashboardStats
		wantErr bool
	}{
		{
			name: "totals",
			mock: func(ctrl *gomock.Controller) DashboardService {
				cvRepo := repomocks.NewMockCVRepository(ctrl)
				screeningRepo := repomocks.NewMockScreeningRepository(ctrl)
				jobRoleRepo := repomocks.NewMockJobRoleRepository(ctrl)

				cvRepo.EXPECT().CountByOwner(gomock.Any(), session.UserID).Return(int64(12), nil)
				screeningRepo.EXPECT().CountByStatus(gomock.Any(), session.UserID).
					Return(map[models.ScreeningStatus]int64{models.StatusSelected: 4, models.StatusRejected: 6}, nil)
				jobRoleRepo.EXPECT().CountByStatus(gomock.Any(), session.UserID).
					Return(map[models.JobRoleStatus]int64{models.JobRoleOpen: 2, models.JobRoleDraft: 1}, nil)

				return NewDashboardService(cvRepo, screeningRepo, jobRoleRepo)
			},
			want: &models.DashboardStats{
				TotalCVs:           12,
				TotalScreenings:    10,
				SelectedScreenings: 4,
				RejectedScreenings: 6,
				OpenJobRoles:       2,
				TotalJobRoles:      3,
			},
		},
		{
			name: "repository error",
			mock: func(ctrl *gomock.Controller) DashboardService {
				cvRepo := repomocks.NewMockCVRepository(ctrl)
				cvRepo.EXPECT().CountByOwner(gomock.Any(), session.UserID).Return(int64(0), errors.New("db down"))
				return NewDashboardService(cvRepo, repomocks.NewMockScreeningRepository(ctrl), repomocks.NewMockJobRoleRepository(ctrl))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			stats, err := tc.mock(ctrl).Stats(context.Background(), session)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, stats)
		})
	}
}
