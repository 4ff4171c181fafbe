package models

import (
	"time"

	"github.com/google/uuid"
)

type CleanupStatus string

const (
	CleanupPending CleanupStatus = "pending"
	CleanupDone    CleanupStatus = "done"
	CleanupFailed  CleanupStatus = "failed"
)

// StorageCleanup records an object whose deletion failed and must be retried.
type StorageCleanup struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ObjectKey string        `gorm:"type:text;not null;index" json:"object_key"`
	Reason    string        `gorm:"type:text" json:"reason"`
	Status    CleanupStatus `gorm:"type:text;not null;default:'pending';index" json:"status"`
	Attempts  int           `gorm:"not null;default:0" json:"attempts"`
	LastError *string       `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt time.Time     `gorm:"type:timestamptz;default:now()" json:"created_at"`
	UpdatedAt time.Time     `gorm:"type:timestamptz;default:now()" json:"updated_at"`
}

func (StorageCleanup) TableName() string {
	return "storage_cleanups"
}
