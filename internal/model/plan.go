package model

// DownloadPlan is the complete extractor configuration for one request. The
// planner builds it fresh per request; the engine consumes it; nothing mutates
// it after construction.
type DownloadPlan struct {
	Platform Platform
	Format   FormatType
	Quality  Quality

	// HeightCap is the resolution ceiling encoded in the format selector;
	// 0 means unconstrained.
	HeightCap int

	// OutputTemplate is the engine's output path template, rooted in the
	// request's scratch directory with the title component truncated.
	OutputTemplate string

	// FormatSelector is the extractor's stream selection rule, including any
	// fallback alternatives.
	FormatSelector string

	// ExtractAudio enables the audio-extraction post-processing step. The
	// final artifact then carries AudioFormat's extension, not the native
	// download extension.
	ExtractAudio bool
	AudioFormat  string
	AudioQuality string

	// MergeFormat remuxes separate video+audio streams into one container.
	// Empty when the platform serves combined streams only.
	MergeFormat string

	// UserAgent is a browser-like identification header for platforms that
	// reject non-browser clients. CookieFile points at session credentials
	// for the platform that requires an authenticated session.
	UserAgent  string
	CookieFile string

	NoPlaylist bool

	// Fetch policy: bounded retries for whole items and fragments, tolerance
	// for individually unavailable fragments, and a small cap on parallel
	// fragment fetches.
	Retries                  int
	FragmentRetries          int
	SkipUnavailableFragments bool
	ConcurrentFragments      int
}
