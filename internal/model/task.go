package model

import "time"

// DownloadTask tracks one request through the pipeline. Tasks live in the
// download service's registry only while in flight.
type DownloadTask struct {
	ID       string
	URL      string
	Platform Platform
	Format   FormatType
	Quality  Quality

	Status TaskStatus

	// WorkDir is the task's private scratch directory. Every file the task
	// produces lives under it.
	WorkDir string

	// Artifact is the resolved file path once the task completes.
	Artifact string

	LastError  error
	StartedAt  time.Time
	FinishedAt time.Time
}
