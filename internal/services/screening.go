package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/cv-screener/internal/models"
	"alfredoptarigan/cv-screener/internal/repositories"
)

//go:generate mockgen -source=./screening.go -destination=./mocks/screening.mock.go -package=svcmocks ScreeningService
type ScreeningService interface {
	// FinalizeSelection announces the CVs a user picked for screening.
	FinalizeSelection(ctx context.Context, session *models.Session, cvIDs []string) ([]models.CV, error)
	Screen(ctx context.Context, session *models.Session, req models.ScreenRequest) (*models.ScreeningRun, error)
	History(ctx context.Context, session *models.Session, limit int) ([]models.Screening, error)
}

type screeningService struct {
	cvRepo          repositories.CVRepository
	screeningRepo   repositories.ScreeningRepository
	jobRoleRepo     repositories.JobRoleRepository
	storage         ObjectStorage
	extractor       TextExtractor
	scoring         ScoringClient
	notifier        Notifier
	prompts         *PromptBuilder
	downloadTimeout time.Duration
	now             func() time.Time
}

func NewScreeningService(
	cvRepo repositories.CVRepository,
	screeningRepo repositories.ScreeningRepository,
	jobRoleRepo repositories.JobRoleRepository,
	storage ObjectStorage,
	extractor TextExtractor,
	scoring ScoringClient,
	notifier Notifier,
	prompts *PromptBuilder,
	downloadTimeout time.Duration,
) ScreeningService {
	return &screeningService{
		cvRepo:          cvRepo,
		screeningRepo:   screeningRepo,
		jobRoleRepo:     jobRoleRepo,
		storage:         storage,
		extractor:       extractor,
		scoring:         scoring,
		notifier:        notifier,
		prompts:         prompts,
		downloadTimeout: downloadTimeout,
		now:             time.Now,
	}
}

func (s *screeningService) FinalizeSelection(ctx context.Context, session *models.Session, cvIDs []string) ([]models.CV, error) {
	ids, err := parseCVIDs(cvIDs)
	if err != nil {
		return nil, err
	}

	cvs, err := s.loadCVs(ctx, session, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	s.notifier.Notify(ctx, models.Event{
		Type:       models.EventSelectionFinished,
		OccurredAt: now,
		Payload: models.SelectionPayload{
			Action:        string(models.EventSelectionFinished),
			UserID:        session.UserID.String(),
			UserEmail:     session.Email,
			SelectedCVs:   s.selectedCVs(cvs),
			TotalSelected: len(cvs),
			Timestamp:     now,
		},
	})

	log.Infof("📋 User %s finalized a selection of %d CVs", session.UserID, len(cvs))
	return cvs, nil
}

// Screen scores the selected CVs against a job description in one batch.
// Input is validated before any storage, database or network access.
func (s *screeningService) Screen(ctx context.Context, session *models.Session, req models.ScreenRequest) (*models.ScreeningRun, error) {
	start := s.now()

	jobDescription := strings.TrimSpace(req.JobDescription)
	jobRoleID, err := parseOptionalID(req.JobRoleID)
	if err != nil {
		return nil, err
	}
	if jobDescription == "" && jobRoleID == nil {
		return nil, newValidationError("Please enter a job description to screen CVs against.")
	}
	ids, err := parseCVIDs(req.CVIDs)
	if err != nil {
		return nil, err
	}

	if jobDescription == "" {
		jobDescription, err = s.describeJobRole(ctx, session, *jobRoleID)
		if err != nil {
			return nil, err
		}
	}

	cvs, err := s.loadCVs(ctx, session, ids)
	if err != nil {
		return nil, err
	}

	runID := shortuuid.New()
	log.Infof("🔍 Screening run %s started: %d CVs", runID, len(cvs))

	s.notifier.Notify(ctx, models.Event{
		Type:       models.EventScreeningStarted,
		OccurredAt: start,
		Payload: models.ScreeningStartedPayload{
			Action:         string(models.EventScreeningStarted),
			RunID:          runID,
			UserID:         session.UserID.String(),
			UserEmail:      session.Email,
			JobDescription: jobDescription,
			SelectedCVs:    s.selectedCVs(cvs),
			TotalSelected:  len(cvs),
			Timestamp:      start,
		},
	})

	texts, err := s.collectTexts(ctx, cvs)
	if err != nil {
		screeningRuns.WithLabelValues("failed").Inc()
		return nil, err
	}

	resp, err := s.scoring.Score(ctx, models.ScoringRequest{
		JobDescription: jobDescription,
		CVTexts:        texts,
	})
	if err != nil {
		screeningRuns.WithLabelValues("failed").Inc()
		log.Errorf("❌ Screening run %s failed: %v", runID, err)
		return nil, err
	}

	s.persist(ctx, session, runID, jobRoleID, cvs, resp.Results)

	screeningRuns.WithLabelValues("succeeded").Inc()
	screeningDuration.Observe(s.now().Sub(start).Seconds())

	summary := Summarize(resp.Results)
	log.Infof("✅ Screening run %s complete: %d of %d candidates shortlisted", runID, summary.Selected, summary.Total)

	return &models.ScreeningRun{
		RunID:              runID,
		Results:            resp.Results,
		Grouped:            GroupResults(resp.Results),
		Summary:            summary,
		ContractViolations: resp.ContractViolations,
	}, nil
}

// collectTexts downloads every CV concurrently. A failed or slow download
// becomes a placeholder so the batch always has one entry per CV, in order.
func (s *screeningService) collectTexts(ctx context.Context, cvs []models.CV) ([]models.CVText, error) {
	texts := make([]models.CVText, len(cvs))

	g, gctx := errgroup.WithContext(ctx)
	for i, cv := range cvs {
		g.Go(func() error {
			texts[i] = models.CVText{
				ID:      cv.ID.String(),
				Name:    cv.FileName,
				Content: s.readCV(gctx, cv),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect cv texts: %w", err)
	}

	// the caller gave up while we were downloading
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return texts, nil
}

func (s *screeningService) readCV(ctx context.Context, cv models.CV) string {
	dctx, cancel := context.WithTimeout(ctx, s.downloadTimeout)
	defer cancel()

	data, err := s.storage.Get(dctx, cv.FilePath)
	if err == nil {
		err = dctx.Err()
	}
	if err != nil {
		downloadFailures.Inc()
		log.Warnf("⚠️ Failed to download %s: %v", cv.FileName, err)
		return downloadFailedPlaceholder(cv.FileName)
	}

	return s.extractor.Extract(data, cv.FileName)
}

// persist keeps the run in the history. Losing the history row does not fail
// a run the user has already paid for. A row links to a CV only when the
// model echoed the id of one of the CVs loaded for this run.
func (s *screeningService) persist(ctx context.Context, session *models.Session, runID string, jobRoleID *uuid.UUID, cvs []models.CV, results []models.ScreeningResult) {
	screenedAt := s.now()
	loaded := make(map[string]uuid.UUID, len(cvs))
	for _, cv := range cvs {
		loaded[cv.ID.String()] = cv.ID
	}
	rows := slice.Map(results, func(_ int, r models.ScreeningResult) models.Screening {
		row := models.Screening{
			OwnerID:          session.UserID,
			RunID:            runID,
			JobRoleID:        jobRoleID,
			CVName:           r.CVName,
			ATSScore:         r.Score,
			Status:           r.Status,
			MissingKeywords:  pq.StringArray(r.MissingKeywords),
			MatchedSkills:    pq.StringArray(r.MatchedSkills),
			SelectionReasons: pq.StringArray(r.SelectionReasons),
			RejectionReasons: pq.StringArray(r.RejectionReasons),
			ExperienceMatch:  r.ExperienceMatch,
			ScreenedAt:       screenedAt,
		}
		if id, ok := loaded[strings.ToLower(strings.TrimSpace(r.CVID))]; ok {
			row.CVID = &id
		}
		return row
	})

	if err := s.screeningRepo.CreateBatch(ctx, rows); err != nil {
		log.Errorf("❌ Failed to save screening run %s: %v", runID, err)
	}
}

func (s *screeningService) History(ctx context.Context, session *models.Session, limit int) ([]models.Screening, error) {
	screenings, err := s.screeningRepo.ListByOwner(ctx, session.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load screening history: %w", err)
	}
	return screenings, nil
}

func (s *screeningService) describeJobRole(ctx context.Context, session *models.Session, id uuid.UUID) (string, error) {
	role, err := s.jobRoleRepo.FindByID(ctx, session.UserID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", id, ErrJobRoleNotFound)
		}
		return "", fmt.Errorf("failed to load job role: %w", err)
	}

	description := s.prompts.BuildJobDescription(role)
	if description == "" {
		return "", newValidationError("Please enter a job description to screen CVs against.")
	}
	return description, nil
}

// loadCVs fails when any id is unknown to the owner.
func (s *screeningService) loadCVs(ctx context.Context, session *models.Session, ids []uuid.UUID) ([]models.CV, error) {
	cvs, err := s.cvRepo.FindByIDs(ctx, session.UserID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load cvs: %w", err)
	}

	if len(cvs) != len(ids) {
		found := make(map[uuid.UUID]bool, len(cvs))
		for _, cv := range cvs {
			found[cv.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id.String())
			}
		}
		return nil, fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrCVNotFound)
	}
	return cvs, nil
}

func (s *screeningService) selectedCVs(cvs []models.CV) []models.SelectedCV {
	return slice.Map(cvs, func(_ int, cv models.CV) models.SelectedCV {
		return models.SelectedCV{
			ID:         cv.ID.String(),
			FileName:   cv.FileName,
			FilePath:   cv.FilePath,
			FileSize:   cv.FileSizeBytes,
			FileURL:    s.storage.PublicURL(cv.FilePath),
			UploadedAt: cv.UploadedAt,
		}
	})
}

// parseCVIDs rejects an empty selection and drops duplicate ids.
func parseCVIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, newValidationError("Please select at least one CV to screen.")
	}

	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, newValidationError("Invalid CV id: %s", r)
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, newValidationError("Invalid job role id: %s", raw)
	}
	return &id, nil
}
