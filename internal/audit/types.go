// Package audit provides an append-only JSONL event log for curation runs:
// every rename, rewrite and rejection is recorded with a run identifier so
// a curation pass can be reconstructed after the fact.
package audit

// RunID uniquely identifies one program execution (UUID v4).
type RunID string

// EventType represents the type of audit event.
type EventType string

const (
	// Run lifecycle events
	EventRunStart EventType = "RUN_START"
	EventRunEnd   EventType = "RUN_END"

	// Folder operation events
	EventRename  EventType = "RENAME"
	EventRewrite EventType = "REWRITE"
	EventReject  EventType = "REJECT"
	EventError   EventType = "ERROR"

	// System events
	EventRotation EventType = "ROTATION"
)

// OperationStatus represents the outcome of an operation.
type OperationStatus string

const (
	StatusSuccess OperationStatus = "SUCCESS"
	StatusFailure OperationStatus = "FAILURE"
	StatusSkipped OperationStatus = "SKIPPED"
)

// ReasonCode gives the detailed reason for a rejection or skip.
type ReasonCode string

const (
	ReasonUnrecognizedFormat ReasonCode = "UNRECOGNIZED_FORMAT"
	ReasonNameNotInDatabase  ReasonCode = "NAME_NOT_IN_DATABASE"
	ReasonTargetExists       ReasonCode = "TARGET_EXISTS"
)

// Config holds audit trail settings.
type Config struct {
	LogDirectory string `json:"log_directory"`
	RotationSize int64  `json:"rotation_size"`
	Disabled     bool   `json:"disabled,omitempty"`
}

// DefaultConfig returns the default audit settings.
func DefaultConfig() Config {
	return Config{
		LogDirectory: ".pokecurator/audit",
		RotationSize: 10 * 1024 * 1024,
	}
}
