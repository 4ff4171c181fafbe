//go:build e2e

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"alfredoptarigan/cv-screener/internal/config"
	"alfredoptarigan/cv-screener/internal/models"
)

// RepositorySuite runs against the Postgres described by the DB_* variables.
type RepositorySuite struct {
	suite.Suite
	db    *gorm.DB
	owner uuid.UUID
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	db, err := config.InitDatabase(config.Load())
	require.NoError(s.T(), err)
	s.db = db
}

func (s *RepositorySuite) SetupTest() {
	s.owner = uuid.New()
}

func (s *RepositorySuite) TearDownTest() {
	t := s.T()
	require.NoError(t, s.db.Exec("DELETE FROM cv_screenings WHERE user_id = ?", s.owner).Error)
	require.NoError(t, s.db.Exec("DELETE FROM cvs WHERE user_id = ?", s.owner).Error)
	require.NoError(t, s.db.Exec("DELETE FROM job_roles WHERE user_id = ?", s.owner).Error)
}

func (s *RepositorySuite) newCV(name string) *models.CV {
	return &models.CV{
		ID:            uuid.New(),
		OwnerID:       s.owner,
		FileName:      name,
		FilePath:      testObjectKey(s.owner, name),
		FileSizeBytes: 1024,
		MimeType:      "application/pdf",
		UploadedAt:    time.Now(),
	}
}

func testObjectKey(owner uuid.UUID, name string) string {
	return owner.String() + "/" + uuid.NewString() + "-" + name
}

func (s *RepositorySuite) TestCVRepository() {
	t := s.T()
	ctx := context.Background()
	repo := NewCVRepository(s.db)

	a, b := s.newCV("a.pdf"), s.newCV("b.pdf")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.FindByID(ctx, s.owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.FileName)

	// another owner cannot see the row
	_, err = repo.FindByID(ctx, uuid.New(), a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cvs, err := repo.FindByIDs(ctx, s.owner, []uuid.UUID{b.ID, uuid.New(), a.ID})
	require.NoError(t, err)
	require.Len(t, cvs, 2)
	assert.Equal(t, b.ID, cvs[0].ID)
	assert.Equal(t, a.ID, cvs[1].ID)

	count, err := repo.CountByOwner(ctx, s.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Delete(ctx, s.owner, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, s.owner, a.ID), ErrNotFound)

	list, err := repo.ListByOwner(ctx, s.owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func (s *RepositorySuite) TestScreeningRepository() {
	t := s.T()
	ctx := context.Background()
	repo := NewScreeningRepository(s.db)

	rows := []models.Screening{
		{OwnerID: s.owner, RunID: "run-1", CVName: "a.pdf", ATSScore: 80, Status: models.StatusSelected, MatchedSkills: pq.StringArray{"go"}},
		{OwnerID: s.owner, RunID: "run-1", CVName: "b.pdf", ATSScore: 30, Status: models.StatusRejected},
		{OwnerID: s.owner, RunID: "run-1", CVName: "c.pdf", ATSScore: 10, Status: models.StatusRejected},
	}
	require.NoError(t, repo.CreateBatch(ctx, rows))

	history, err := repo.ListByOwner(ctx, s.owner, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	counts, err := repo.CountByStatus(ctx, s.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.StatusSelected])
	assert.Equal(t, int64(2), counts[models.StatusRejected])
}

func (s *RepositorySuite) TestJobRoleRepository() {
	t := s.T()
	ctx := context.Background()
	repo := NewJobRoleRepository(s.db)

	role := &models.JobRole{
		ID:           uuid.New(),
		OwnerID:      s.owner,
		Title:        "SRE",
		Requirements: pq.StringArray{"Linux", "Terraform"},
		Status:       models.JobRoleOpen,
	}
	require.NoError(t, repo.Create(ctx, role))

	role.Status = models.JobRoleClosed
	require.NoError(t, repo.Update(ctx, role))

	got, err := repo.FindByID(ctx, s.owner, role.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobRoleClosed, got.Status)
	assert.Equal(t, pq.StringArray{"Linux", "Terraform"}, got.Requirements)

	counts, err := repo.CountByStatus(ctx, s.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.JobRoleClosed])

	require.NoError(t, repo.Delete(ctx, s.owner, role.ID))
	_, err = repo.FindByID(ctx, s.owner, role.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func (s *RepositorySuite) TestCleanupRepository() {
	t := s.T()
	ctx := context.Background()
	repo := NewCleanupRepository(s.db)

	key := testObjectKey(s.owner, "orphan.pdf")
	require.NoError(t, repo.Enqueue(ctx, key, "cv deletion: timeout"))
	defer s.db.Exec("DELETE FROM storage_cleanups WHERE object_key = ?", key)

	pending, err := repo.FindPending(ctx, 1000)
	require.NoError(t, err)

	var entry *models.StorageCleanup
	for i := range pending {
		if pending[i].ObjectKey == key {
			entry = &pending[i]
		}
	}
	require.NotNil(t, entry)

	require.NoError(t, repo.RecordFailure(ctx, entry.ID, "still failing", false))
	require.NoError(t, repo.RecordFailure(ctx, entry.ID, "gave up", true))

	var stored models.StorageCleanup
	require.NoError(t, s.db.First(&stored, "id = ?", entry.ID).Error)
	assert.Equal(t, models.CleanupFailed, stored.Status)
	assert.Equal(t, 2, stored.Attempts)
	require.NotNil(t, stored.LastError)
	assert.Equal(t, "gave up", *stored.LastError)
}
