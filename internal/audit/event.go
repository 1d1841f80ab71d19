package audit

import "time"

// Event is a single audit record. Optional fields are omitted from the
// JSON encoding when empty so the log stays compact.
type Event struct {
	Timestamp      time.Time       `json:"timestamp"`
	RunID          RunID           `json:"run_id"`
	EventType      EventType       `json:"event_type"`
	Status         OperationStatus `json:"status"`
	FolderPath     string          `json:"folder_path,omitempty"`
	NewPath        string          `json:"new_path,omitempty"`
	ReasonCode     ReasonCode      `json:"reason_code,omitempty"`
	FilesProcessed int             `json:"files_processed,omitempty"`
	FilesChanged   int             `json:"files_changed,omitempty"`
	Message        string          `json:"message,omitempty"`
}
