package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
)

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

func IsAllowedMimeType(contentType string) bool {
	return allowedMimeTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

//go:generate mockgen -source=./cv_service.go -destination=./mocks/cv_service.mock.go -package=svcmocks CVService
type CVService interface {
	Upload(ctx context.Context, session *models.Session, files []models.UploadFile) (*models.UploadReport, error)
	List(ctx context.Context, session *models.Session) ([]models.CV, error)
	Download(ctx context.Context, session *models.Session, id uuid.UUID) (*models.CV, []byte, error)
	Delete(ctx context.Context, session *models.Session, id uuid.UUID) error
}

type cvService struct {
	cvRepo      repositories.CVRepository
	cleanupRepo repositories.CleanupRepository
	storage     ObjectStorage
	notifier    Notifier
	maxFileSize int64
	now         func() time.Time
}

func NewCVService(
	cvRepo repositories.CVRepository,
	cleanupRepo repositories.CleanupRepository,
	storage ObjectStorage,
	notifier Notifier,
	maxFileSize int64,
) CVService {
	return &cvService{
		cvRepo:      cvRepo,
		cleanupRepo: cleanupRepo,
		storage:     storage,
		notifier:    notifier,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// Upload stores each file independently. A rejected file never affects the
// others and every file gets an outcome in the report.
func (s *cvService) Upload(ctx context.Context, session *models.Session, files []models.UploadFile) (*models.UploadReport, error) {
	if len(files) == 0 {
		return nil, newValidationError("No files provided")
	}

	report := &models.UploadReport{Files: make([]models.FileOutcome, 0, len(files))}
	for _, f := range files {
		outcome := s.uploadOne(ctx, session, f)
		if outcome.Accepted {
			report.Accepted++
			uploadOutcomes.WithLabelValues("accepted").Inc()
		} else {
			report.Rejected++
			uploadOutcomes.WithLabelValues("rejected").Inc()
		}
		report.Files = append(report.Files, outcome)
	}

	log.Infof("📤 Upload finished for user %s: %d accepted, %d rejected", session.UserID, report.Accepted, report.Rejected)
	return report, nil
}

func (s *cvService) uploadOne(ctx context.Context, session *models.Session, f models.UploadFile) models.FileOutcome {
	name := path.Base(strings.ReplaceAll(f.Name, "\\", "/"))
	outcome := models.FileOutcome{FileName: name}

	if name == "" || name == "." || name == "/" {
		outcome.Reason = "Invalid file name"
		return outcome
	}

	if f.ReadErr != nil {
		log.Warnf("⚠️ Failed to read %s: %v", name, f.ReadErr)
		outcome.Reason = fmt.Sprintf("Failed to read %s", name)
		return outcome
	}

	if !IsAllowedMimeType(f.ContentType) {
		outcome.Reason = fmt.Sprintf("%s is not a PDF or Word document", name)
		return outcome
	}

	size := f.Size
	if int64(len(f.Data)) > size {
		size = int64(len(f.Data))
	}
	if size > s.maxFileSize {
		outcome.Reason = fmt.Sprintf("%s exceeds the %d MB limit", name, s.maxFileSize/(1024*1024))
		return outcome
	}

	uploadedAt := s.now()
	key := BuildObjectKey(session.UserID.String(), uploadedAt.UnixMilli(), name)

	if err := s.storage.Put(ctx, key, f.Data, f.ContentType); err != nil {
		log.Errorf("❌ Failed to store %s: %v", key, err)
		outcome.Reason = fmt.Sprintf("Failed to upload %s", name)
		return outcome
	}

	cv := &models.CV{
		ID:            uuid.New(),
		OwnerID:       session.UserID,
		FileName:      name,
		FilePath:      key,
		FileSizeBytes: size,
		MimeType:      f.ContentType,
		UploadedAt:    uploadedAt,
	}

	if err := s.cvRepo.Create(ctx, cv); err != nil {
		log.Errorf("❌ Failed to save metadata for %s: %v", key, err)
		s.removeObject(ctx, key, "upload compensation")
		outcome.Reason = fmt.Sprintf("Failed to save %s", name)
		return outcome
	}

	s.notifier.Notify(ctx, models.Event{
		Type:       models.EventCVUploaded,
		OccurredAt: uploadedAt,
		Payload: models.CVUploadedPayload{
			FileName:   cv.FileName,
			FilePath:   cv.FilePath,
			FileSize:   cv.FileSizeBytes,
			FileURL:    s.storage.PublicURL(cv.FilePath),
			UserID:     session.UserID.String(),
			UserEmail:  session.Email,
			UploadedAt: uploadedAt,
		},
	})

	outcome.Accepted = true
	outcome.CV = cv
	return outcome
}

// removeObject deletes a blob whose metadata is gone or was never written.
// When the delete fails the key goes to the cleanup log for the worker.
func (s *cvService) removeObject(ctx context.Context, key, reason string) {
	err := s.storage.Delete(ctx, key)
	if err == nil {
		return
	}

	log.Warnf("⚠️ Failed to delete %s (%s): %v", key, reason, err)
	if err := s.cleanupRepo.Enqueue(ctx, key, fmt.Sprintf("%s: %v", reason, err)); err != nil {
		log.Errorf("❌ Orphaned object %s could not be queued for cleanup: %v", key, err)
	}
}

func (s *cvService) List(ctx context.Context, session *models.Session) ([]models.CV, error) {
	cvs, err := s.cvRepo.ListByOwner(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	return cvs, nil
}

func (s *cvService) Download(ctx context.Context, session *models.Session, id uuid.UUID) (*models.CV, []byte, error) {
	cv, err := s.find(ctx, session, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.storage.Get(ctx, cv.FilePath)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", cv.FileName, ErrCVNotFound)
		}
		return nil, nil, fmt.Errorf("failed to download cv: %w", err)
	}
	return cv, data, nil
}

// Delete removes the metadata row first so a CV can never point at a missing
// blob. The blob delete is retried by the cleanup worker when it fails.
func (s *cvService) Delete(ctx context.Context, session *models.Session, id uuid.UUID) error {
	cv, err := s.find(ctx, session, id)
	if err != nil {
		return err
	}

	if err := s.cvRepo.Delete(ctx, session.UserID, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%s: %w", id, ErrCVNotFound)
		}
		return fmt.Errorf("failed to delete cv: %w", err)
	}

	s.removeObject(ctx, cv.FilePath, "cv deletion")
	log.Infof("🗑️ CV %s deleted", id)
	return nil
}

func (s *cvService) find(ctx context.Context, session *models.Session, id uuid.UUID) (*models.CV, error) {
	cv, err := s.cvRepo.FindByID(ctx, session.UserID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", id, ErrCVNotFound)
		}
		return nil, fmt.Errorf("failed to find cv: %w", err)
	}
	return cv, nil
}
