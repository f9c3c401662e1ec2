package plan

import (
	"fmt"
	"path/filepath"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Output naming
const (
	// OutputTemplate truncates the title component so long video titles stay
	// under filesystem path limits. Unsafe characters are stripped by the
	// engine's restricted-filenames mode.
	OutputTemplate = "%(title).100s.%(ext)s"
)

// Audio post-processing targets
const (
	AudioCodec   = "mp3"
	AudioBitrate = "128K"
)

// Video container for merged adaptive streams
const (
	VideoContainer = "mp4"
)

// Transport hardening
const (
	// BrowserUserAgent is sent to platforms that reject non-browser clients.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Resolution ceiling applied to single-stream platforms when the user asks
// for best quality. Keeps artifacts within deliverable size on sources that
// would otherwise serve very large originals.
const (
	SingleStreamHeightCap = 720
)

// Fetch policy
const (
	ItemRetries         = 1
	FragmentRetries     = 1
	FragmentConcurrency = 4
)

// Planner maps a classified request onto a concrete extractor configuration.
// Pure given its inputs and the configured cookie path; it performs no I/O.
type Planner struct {
	// CookiePath points at the session credential file attached to requests
	// for the platform that requires an authenticated session.
	CookiePath string
}

// Build constructs the extractor configuration for one request. workDir is
// the request's private scratch directory; every produced file lands there.
func (p Planner) Build(workDir string, platform model.Platform, format model.FormatType, quality model.Quality) model.DownloadPlan {
	dp := model.DownloadPlan{
		Platform:                 platform,
		Format:                   format,
		Quality:                  quality,
		OutputTemplate:           filepath.Join(workDir, OutputTemplate),
		Retries:                  ItemRetries,
		FragmentRetries:          FragmentRetries,
		SkipUnavailableFragments: true,
		ConcurrentFragments:      FragmentConcurrency,
	}

	switch platform {
	case model.PlatformYouTube:
		dp.NoPlaylist = true
		dp.CookieFile = p.CookiePath
	case model.PlatformTikTok, model.PlatformTwitter:
		dp.UserAgent = BrowserUserAgent
	}

	if format == model.FormatAudio {
		dp.FormatSelector = "bestaudio/best"
		dp.ExtractAudio = true
		dp.AudioFormat = AudioCodec
		dp.AudioQuality = AudioBitrate
		return dp
	}

	dp.HeightCap = quality.HeightCap()
	switch platform {
	case model.PlatformYouTube:
		// YouTube serves separate adaptive streams; pick the best pair and
		// remux into a single container, falling back to the best combined
		// stream.
		dp.MergeFormat = VideoContainer
		if dp.HeightCap == 0 {
			dp.FormatSelector = "bestvideo+bestaudio/best"
		} else {
			dp.FormatSelector = fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", dp.HeightCap, dp.HeightCap)
		}
	default:
		// Single-stream platforms get a capped best selector with an
		// unconstrained fallback when the cap matches nothing.
		if dp.HeightCap == 0 {
			dp.HeightCap = SingleStreamHeightCap
		}
		dp.FormatSelector = fmt.Sprintf("best[height<=%d]/best", dp.HeightCap)
	}
	return dp
}
