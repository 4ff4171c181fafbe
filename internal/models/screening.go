package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ScreeningStatus string

const (
	StatusSelected ScreeningStatus = "selected"
	StatusRejected ScreeningStatus = "rejected"
)

// SelectionThreshold is the score at or above which the scoring model is
// instructed to select a candidate.
const SelectionThreshold = 60

func (s ScreeningStatus) Valid() bool {
	return s == StatusSelected || s == StatusRejected
}

// ScreeningResult is one candidate's verdict as returned by the scoring function.
type ScreeningResult struct {
	CVID             string          `json:"cvId"`
	CVName           string          `json:"cvName"`
	Score            float64         `json:"score"`
	Status           ScreeningStatus `json:"status"`
	MissingKeywords  []string        `json:"missingKeywords"`
	MatchedSkills    []string        `json:"matchedSkills"`
	SelectionReasons []string        `json:"selectionReasons"`
	RejectionReasons []string        `json:"rejectionReasons"`
	ExperienceMatch  string          `json:"experienceMatch"`
}

// Screening is the persisted form of a ScreeningResult.
type Screening struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID          uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	RunID            string          `gorm:"type:text;index" json:"run_id"`
	CVID             *uuid.UUID      `gorm:"column:cv_id;type:uuid" json:"cv_id,omitempty"`
	JobRoleID        *uuid.UUID      `gorm:"column:job_role_id;type:uuid" json:"job_role_id,omitempty"`
	CVName           string          `gorm:"type:text" json:"cv_name"`
	ATSScore         float64         `gorm:"column:ats_score" json:"ats_score"`
	Status           ScreeningStatus `gorm:"type:text;not null" json:"status"`
	MissingKeywords  pq.StringArray  `gorm:"type:text[]" json:"missing_keywords"`
	MatchedSkills    pq.StringArray  `gorm:"type:text[]" json:"matched_skills"`
	SelectionReasons pq.StringArray  `gorm:"type:text[]" json:"selection_reasons"`
	RejectionReasons pq.StringArray  `gorm:"type:text[]" json:"rejection_reasons"`
	ExperienceMatch  string          `gorm:"type:text" json:"experience_match"`
	ScreenedAt       time.Time       `gorm:"type:timestamptz;default:now()" json:"screened_at"`

	// Relations
	CV      *CV      `gorm:"foreignKey:CVID;constraint:OnDelete:SET NULL" json:"-"`
	JobRole *JobRole `gorm:"foreignKey:JobRoleID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Screening) TableName() string {
	return "cv_screenings"
}
