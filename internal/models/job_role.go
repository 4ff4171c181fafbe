package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobRoleStatus string

const (
	JobRoleOpen   JobRoleStatus = "open"
	JobRoleClosed JobRoleStatus = "closed"
	JobRoleDraft  JobRoleStatus = "draft"
)

func (s JobRoleStatus) Valid() bool {
	switch s {
	case JobRoleOpen, JobRoleClosed, JobRoleDraft:
		return true
	}
	return false
}

type JobRole struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID      uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Title        string         `gorm:"type:text;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Status       JobRoleStatus  `gorm:"type:text;not null;default:'open'" json:"status"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"type:timestamptz;default:now()" json:"updated_at"`
}

func (JobRole) TableName() string {
	return "job_roles"
}
