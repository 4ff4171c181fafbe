package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
	repomocks "alfredoptarigan/cv-screener/internal/repositories/mocks"
	svcmocks "alfredoptarigan/cv-screener/internal/services/mocks"
)

func TestCleanupWorker_RunOnce(t *testing.T) {
	first := models.StorageCleanup{ID: uuid.New(), ObjectKey: "owner/1-a.pdf", Attempts: 0}
	second := models.StorageCleanup{ID: uuid.New(), ObjectKey: "owner/2-b.pdf", Attempts: 1}
	last := models.StorageCleanup{ID: uuid.New(), ObjectKey: "owner/3-c.pdf", Attempts: 4}

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repositories.CleanupRepository, ObjectStorage)

		wantRemoved int
	}{
		{
			name: "nothing pending",
			mock: func(ctrl *gomock.Controller) (repositories.CleanupRepository, ObjectStorage) {
				repo := repomocks.NewMockCleanupRepository(ctrl)
				repo.EXPECT().FindPending(gomock.Any(), 10).Return(nil, nil)
				return repo, svcmocks.NewMockObjectStorage(ctrl)
			},
		},
		{
			name: "repository unavailable",
			mock: func(ctrl *gomock.Controller) (repositories.CleanupRepository, ObjectStorage) {
				repo := repomocks.NewMockCleanupRepository(ctrl)
				repo.EXPECT().FindPending(gomock.Any(), 10).Return(nil, errors.New("db down"))
				return repo, svcmocks.NewMockObjectStorage(ctrl)
			},
		},
		{
			name: "mixed outcomes",
			mock: func(ctrl *gomock.Controller) (repositories.CleanupRepository, ObjectStorage) {
				repo := repomocks.NewMockCleanupRepository(ctrl)
				storage := svcmocks.NewMockObjectStorage(ctrl)

				repo.EXPECT().FindPending(gomock.Any(), 10).
					Return([]models.StorageCleanup{first, second, last}, nil)

				storage.EXPECT().Delete(gomock.Any(), first.ObjectKey).Return(nil)
				repo.EXPECT().MarkDone(gomock.Any(), first.ID).Return(nil)

				storage.EXPECT().Delete(gomock.Any(), second.ObjectKey).Return(errors.New("timeout"))
				repo.EXPECT().RecordFailure(gomock.Any(), second.ID, "timeout", false).Return(nil)

				storage.EXPECT().Delete(gomock.Any(), last.ObjectKey).Return(errors.New("denied"))
				repo.EXPECT().RecordFailure(gomock.Any(), last.ID, "denied", true).Return(nil)

				return repo, storage
			},
			wantRemoved: 1,
		},
		{
			name: "bookkeeping failure still counts the removal",
			mock: func(ctrl *gomock.Controller) (repositories.CleanupRepository, ObjectStorage) {
				repo := repomocks.NewMockCleanupRepository(ctrl)
				storage := svcmocks.NewMockObjectStorage(ctrl)

				repo.EXPECT().FindPending(gomock.Any(), 10).Return([]models.StorageCleanup{first}, nil)
				storage.EXPECT().Delete(gomock.Any(), first.ObjectKey).Return(nil)
				repo.EXPECT().MarkDone(gomock.Any(), first.ID).Return(errors.New("db down"))

				return repo, storage
			},
			wantRemoved: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo, storage := tc.mock(ctrl)
			worker := NewCleanupWorker(repo, storage, time.Minute, 10, 5)

			assert.Equal(t, tc.wantRemoved, worker.RunOnce(context.Background()))
		})
	}
}

func TestCleanupWorker_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockCleanupRepository(ctrl)
	repo.EXPECT().FindPending(gomock.Any(), 10).Return(nil, nil).AnyTimes()

	worker := NewCleanupWorker(repo, svcmocks.NewMockObjectStorage(ctrl), 5*time.Millisecond, 10, 5)
	worker.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	worker.Stop()
	// a second Stop is a no-op
	worker.Stop()
}
