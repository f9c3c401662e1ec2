package model

// TaskStatus represents the current state of a download task.
type TaskStatus string

const (
	StatusPending     TaskStatus = "pending"
	StatusDownloading TaskStatus = "downloading"
	StatusResolving   TaskStatus = "resolving"
	StatusCompleted   TaskStatus = "completed"
	StatusFailed      TaskStatus = "failed"
)

// IsActive reports whether the task still occupies the pipeline.
func (s TaskStatus) IsActive() bool {
	switch s {
	case StatusPending, StatusDownloading, StatusResolving:
		return true
	}
	return false
}

// IsFinished reports whether the task reached a terminal state.
func (s TaskStatus) IsFinished() bool {
	switch s {
	case StatusCompleted, StatusFailed:
		return true
	}
	return false
}
