package models

import "time"

type EventType string

const (
	EventCVUploaded        EventType = "cv_uploaded"
	EventSelectionFinished EventType = "start_screening"
	EventScreeningStarted  EventType = "run_ai_screening"
)

// Event is a one-way notification to workflow automation.
type Event struct {
	Type       EventType
	OccurredAt time.Time
	Payload    any
}

type CVUploadedPayload struct {
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize"`
	FileURL    string    `json:"fileUrl"`
	UserID     string    `json:"userId"`
	UserEmail  string    `json:"userEmail"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type SelectedCV struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FilePath   string    `json:"filePath"`
	FileSize   int64     `json:"fileSize,omitempty"`
	FileURL    string    `json:"fileUrl,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type SelectionPayload struct {
	Action        string       `json:"action"`
	UserID        string       `json:"userId"`
	UserEmail     string       `json:"userEmail"`
	SelectedCVs   []SelectedCV `json:"selectedCVs"`
	TotalSelected int          `json:"totalSelected"`
	Timestamp     time.Time    `json:"timestamp"`
}

type ScreeningStartedPayload struct {
	Action         string       `json:"action"`
	RunID          string       `json:"runId"`
	UserID         string       `json:"userId"`
	UserEmail      string       `json:"userEmail"`
	JobDescription string       `json:"jobDescription"`
	SelectedCVs    []SelectedCV `json:"selectedCVs"`
	TotalSelected  int          `json:"totalSelected"`
	Timestamp      time.Time    `json:"timestamp"`
}
