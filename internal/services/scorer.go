package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"alfredoptarigan/cv-screener/internal/models"
)

// ScoringClient is the boundary between the orchestrator and the scoring
// function. Failures are returned as *ScoringError.
//
//go:generate mockgen -source=./scorer.go -destination=./mocks/scorer.mock.go -package=svcmocks ScoringClient
type ScoringClient interface {
	Score(ctx context.Context, req models.ScoringRequest) (*models.ScoringResponse, error)
}

// Scorer is the scoring function itself: one model call per batch, with the
// reply validated field by field.
type Scorer struct {
	llm     LLMService
	prompts *PromptBuilder
}

func NewScorer(llm LLMService, prompts *PromptBuilder) *Scorer {
	return &Scorer{
		llm:     llm,
		prompts: prompts,
	}
}

func (s *Scorer) Score(ctx context.Context, req models.ScoringRequest) (*models.ScoringResponse, error) {
	if strings.TrimSpace(req.JobDescription) == "" || len(req.CVTexts) == 0 {
		return nil, &ScoringError{Status: http.StatusBadRequest, Message: msgMissingInput}
	}

	log.Infof("🤖 Scoring %d CVs", len(req.CVTexts))

	content, err := s.llm.Complete(ctx,
		s.prompts.BuildScreeningSystemPrompt(),
		s.prompts.BuildScreeningUserPrompt(req.JobDescription, req.CVTexts),
	)
	if err != nil {
		return nil, toScoringError(err)
	}

	results, err := DecodeResults([]byte(stripCodeFence(content)))
	if err != nil {
		log.Errorf("❌ Failed to parse AI response: %v", err)
		return nil, &ScoringError{Status: http.StatusInternalServerError, Message: msgParseFailed, Err: err}
	}

	violations := CheckContract(results)
	if len(violations) > 0 {
		contractViolations.Add(float64(len(violations)))
		for _, v := range violations {
			log.Warnf("⚠️ Scoring contract violation for CV %s: %s", v.CVID, v.Reason)
		}
	}

	log.Infof("✅ Scored %d CVs", len(results))
	return &models.ScoringResponse{
		Results:            results,
		ContractViolations: violations,
	}, nil
}

// DecodeResults parses a JSON array of screening results. Every field must be
// present with its JSON type and status must be selected or rejected.
func DecodeResults(data []byte) ([]models.ScreeningResult, error) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &DecodeError{Index: -1, Reason: "expected a JSON array of objects: " + err.Error()}
	}

	results := make([]models.ScreeningResult, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, &DecodeError{Index: i, Reason: "is null"}
		}

		d := fieldDecoder{index: i, item: item}
		var r models.ScreeningResult
		d.decode("cvId", "a string", &r.CVID)
		d.decode("cvName", "a string", &r.CVName)
		d.decode("score", "a number", &r.Score)
		d.decode("status", "a string", &r.Status)
		d.decode("missingKeywords", "an array of strings", &r.MissingKeywords)
		d.decode("matchedSkills", "an array of strings", &r.MatchedSkills)
		d.decode("selectionReasons", "an array of strings", &r.SelectionReasons)
		d.decode("rejectionReasons", "an array of strings", &r.RejectionReasons)
		d.decode("experienceMatch", "a string", &r.ExperienceMatch)
		if d.err != nil {
			return nil, d.err
		}

		if !r.Status.Valid() {
			return nil, &DecodeError{Index: i, Field: "status", Reason: `must be "selected" or "rejected"`}
		}
		results = append(results, r)
	}
	return results, nil
}

// fieldDecoder keeps the first error so a result can be decoded in one pass.
type fieldDecoder struct {
	index int
	item  map[string]json.RawMessage
	err   error
}

func (d *fieldDecoder) decode(field, want string, dst any) {
	if d.err != nil {
		return
	}

	raw, ok := d.item[field]
	if !ok {
		d.err = &DecodeError{Index: d.index, Field: field, Reason: "is missing"}
		return
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		d.err = &DecodeError{Index: d.index, Field: field, Reason: "must be " + want + ", got null"}
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.err = &DecodeError{Index: d.index, Field: field, Reason: "must be " + want}
	}
}
