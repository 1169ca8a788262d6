package types

// StageStatus represents the status of a single assessment stage
// (assess, review/challenge, approve).
type StageStatus string

const (
	StageNotStarted StageStatus = "not-started"
	StageInProgress StageStatus = "in-progress"
	StageCompleted  StageStatus = "completed"
)

// AllStageStatuses returns all valid stage statuses
func AllStageStatuses() []StageStatus {
	return []StageStatus{
		StageNotStarted,
		StageInProgress,
		StageCompleted,
	}
}

// IsValid checks if the stage status is valid
func (s StageStatus) IsValid() bool {
	switch s {
	case StageNotStarted, StageInProgress, StageCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as StageNotStarted for
// backward compatibility with partially populated records.
func (s StageStatus) Normalize() StageStatus {
	if s == "" {
		return StageNotStarted
	}
	return s
}

// String returns the string representation of the stage status
func (s StageStatus) String() string {
	return string(s)
}
