package types

import (
	"strings"
	"time"
)

// TaskStatus values reported by the backend.
type TaskStatusValue string

const (
	TaskStatusPending   TaskStatusValue = "pending"
	TaskStatusRunning   TaskStatusValue = "running"
	TaskStatusPaused    TaskStatusValue = "paused"
	TaskStatusCompleted TaskStatusValue = "completed"
	TaskStatusFailed    TaskStatusValue = "failed"
)

// NormalizeTaskStatus lowercases and maps backend status aliases onto the
// canonical set. Unknown values pass through lowercased.
func NormalizeTaskStatus(status string) TaskStatusValue {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending", "queued":
		return TaskStatusPending
	case "running", "in_progress":
		return TaskStatusRunning
	case "paused", "suspended", "awaiting_input":
		return TaskStatusPaused
	case "completed", "succeeded", "success":
		return TaskStatusCompleted
	case "failed", "error":
		return TaskStatusFailed
	default:
		return TaskStatusValue(strings.ToLower(strings.TrimSpace(status)))
	}
}

// IsTerminal reports whether no further backend updates are expected.
func (s TaskStatusValue) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// TaskStatusDocument is the backend's task status wire shape.
type TaskStatusDocument struct {
	TaskID           string     `json:"task_id"`
	Status           string     `json:"status"`
	CurrentAgent     string     `json:"current_agent,omitempty"`
	PausedCheckpoint string     `json:"paused_checkpoint,omitempty"`
	MissingInputs    []string   `json:"missing_inputs,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// ResumeTaskRequest carries the user-supplied inputs that resume a paused
// task. Inputs are keyed by the missing-input names the status document
// reported.
type ResumeTaskRequest struct {
	TaskID string            `json:"task_id"`
	Inputs map[string]string `json:"inputs"`
}
