package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies pipeline failures into the categories the transport
// layer maps onto user-facing replies.
type FailureKind string

const (
	FailUnsupportedURL   FailureKind = "unsupported_url"
	FailSessionExpired   FailureKind = "session_expired"
	FailPlatformBlocked  FailureKind = "platform_blocked"
	FailDownload         FailureKind = "download_failed"
	FailArtifactNotFound FailureKind = "artifact_not_found"
	FailTooLarge         FailureKind = "too_large"
	FailDelivery         FailureKind = "delivery_failed"
)

// DownloadError is the typed failure carried out of the pipeline. Size and
// Limit are populated for FailTooLarge only.
type DownloadError struct {
	Kind     FailureKind
	Platform Platform
	Size     int64
	Limit    int64
	Err      error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Failure wraps err in a DownloadError of the given kind.
func Failure(kind FailureKind, platform Platform, err error) *DownloadError {
	return &DownloadError{Kind: kind, Platform: platform, Err: err}
}

// KindOf extracts the failure kind from err. Errors that carry no
// classification count as plain download failures.
func KindOf(err error) FailureKind {
	var de *DownloadError
	if errors.As(err, &de) {
		return de.Kind
	}
	return FailDownload
}
