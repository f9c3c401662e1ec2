package engine

import (
	"errors"
	"testing"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name     string
		platform model.Platform
		err      error
		expected model.FailureKind
	}{
		{
			name:     "twitter token",
			platform: model.PlatformTwitter,
			err:      errors.New("ERROR: [twitter] 123: No video could be found"),
			expected: model.FailPlatformBlocked,
		},
		{
			name:     "x.com token",
			platform: model.PlatformTwitter,
			err:      errors.New("unable to download webpage from x.com"),
			expected: model.FailPlatformBlocked,
		},
		{
			name:     "token matched case insensitively",
			platform: model.PlatformTwitter,
			err:      errors.New("Twitter API returned 403"),
			expected: model.FailPlatformBlocked,
		},
		{
			name:     "unrelated youtube failure",
			platform: model.PlatformYouTube,
			err:      errors.New("ERROR: Video unavailable"),
			expected: model.FailDownload,
		},
		{
			name:     "network failure",
			platform: model.PlatformTikTok,
			err:      errors.New("connection reset by peer"),
			expected: model.FailDownload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFailure(tt.platform, tt.err)

			if got == nil {
				t.Fatal("Expected a classified failure, got nil")
			}
			if got.Kind != tt.expected {
				t.Errorf("Expected kind %q, got %q", tt.expected, got.Kind)
			}
			if !errors.Is(got, tt.err) {
				t.Error("Expected the original error to stay wrapped")
			}
		})
	}
}

func TestClassifyFailureNil(t *testing.T) {
	if got := ClassifyFailure(model.PlatformYouTube, nil); got != nil {
		t.Errorf("Expected nil for nil error, got %v", got)
	}
}

func TestClassifyFailureKeepsPlatform(t *testing.T) {
	got := ClassifyFailure(model.PlatformTikTok, errors.New("timeout"))

	if got.Platform != model.PlatformTikTok {
		t.Errorf("Expected platform tiktok on generic failure, got %q", got.Platform)
	}
}
