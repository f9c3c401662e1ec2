package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestDownloadErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DownloadError
		expected string
	}{
		{
			name:     "with cause",
			err:      &DownloadError{Kind: FailDownload, Err: errors.New("network unreachable")},
			expected: "download_failed: network unreachable",
		},
		{
			name:     "without cause",
			err:      &DownloadError{Kind: FailTooLarge},
			expected: "too_large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDownloadErrorUnwrap(t *testing.T) {
	cause := errors.New("HTTP 403")
	wrapped := Failure(FailPlatformBlocked, PlatformTwitter, cause)

	if !errors.Is(wrapped, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FailureKind
	}{
		{
			name:     "direct download error",
			err:      Failure(FailSessionExpired, "", nil),
			expected: FailSessionExpired,
		},
		{
			name:     "wrapped download error",
			err:      fmt.Errorf("pipeline: %w", Failure(FailArtifactNotFound, PlatformYouTube, nil)),
			expected: FailArtifactNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: FailDownload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.expected {
				t.Errorf("Expected kind %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFailureCarriesPlatform(t *testing.T) {
	err := Failure(FailDownload, PlatformTikTok, errors.New("timeout"))

	var de *DownloadError
	if !errors.As(err, &de) {
		t.Fatal("Expected errors.As to match DownloadError")
	}
	if de.Platform != PlatformTikTok {
		t.Errorf("Expected platform %q, got %q", PlatformTikTok, de.Platform)
	}
}
