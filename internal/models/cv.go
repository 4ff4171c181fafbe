package models

import (
	"time"

	"github.com/google/uuid"
)

// CV is the metadata row of an uploaded resume. The binary lives in object
// storage under FilePath.
type CV struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	FileName      string    `gorm:"type:text;not null" json:"file_name"`
	FilePath      string    `gorm:"type:text;not null;uniqueIndex" json:"file_path"`
	FileSizeBytes int64     `gorm:"column:file_size" json:"file_size"`
	MimeType      string    `gorm:"type:text" json:"mime_type"`
	UploadedAt    time.Time `gorm:"type:timestamptz;default:now()" json:"uploaded_at"`
}

func (CV) TableName() string {
	return "cvs"
}
