package model

// Platform identifies a supported media source site.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
	PlatformTwitter Platform = "twitter"
)

// String returns the lowercase platform tag used in logs and callback data.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the platform name as shown to users.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformTikTok:
		return "TikTok"
	case PlatformTwitter:
		return "Twitter/X"
	default:
		return string(p)
	}
}

// Classification is the outcome of matching a URL against the supported
// platform patterns.
type Classification struct {
	Supported bool
	Platform  Platform
}

// FormatType selects the kind of artifact the user asked for.
type FormatType string

const (
	FormatVideo FormatType = "video"
	FormatAudio FormatType = "audio"
)

// ParseFormatType maps a callback tag to a FormatType.
func ParseFormatType(s string) (FormatType, bool) {
	switch FormatType(s) {
	case FormatVideo:
		return FormatVideo, true
	case FormatAudio:
		return FormatAudio, true
	default:
		return "", false
	}
}

// DisplayName returns the format name as shown to users.
func (f FormatType) DisplayName() string {
	switch f {
	case FormatAudio:
		return "Audio"
	default:
		return "Video"
	}
}

// Quality is a requested quality tier.
type Quality string

const (
	QualityBest Quality = "best"
	Quality720  Quality = "720"
	Quality480  Quality = "480"
	Quality360  Quality = "360"
)

// ParseQuality maps a callback tag to a Quality.
func ParseQuality(s string) (Quality, bool) {
	switch Quality(s) {
	case QualityBest:
		return QualityBest, true
	case Quality720:
		return Quality720, true
	case Quality480:
		return Quality480, true
	case Quality360:
		return Quality360, true
	default:
		return "", false
	}
}

// HeightCap returns the vertical resolution ceiling for the tier, 0 for none.
func (q Quality) HeightCap() int {
	switch q {
	case Quality720:
		return 720
	case Quality480:
		return 480
	case Quality360:
		return 360
	default:
		return 0
	}
}

// DisplayName returns the quality label as shown to users.
func (q Quality) DisplayName() string {
	if q == QualityBest {
		return "Best available"
	}
	return string(q) + "p"
}
