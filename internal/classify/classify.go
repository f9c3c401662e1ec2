package classify

import (
	"regexp"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Pattern groups are tested in declaration order; the first match decides the
// platform, so YouTube wins over TikTok and TikTok over Twitter regardless of
// pattern specificity.
var platformPatterns = []struct {
	platform model.Platform
	patterns []*regexp.Regexp
}{
	{model.PlatformYouTube, compile(
		`(https?://)?(www\.)?(youtube\.com|youtu\.be|m\.youtube\.com)/`,
		`(https?://)?(www\.)?(youtube\.com/shorts/)`,
	)},
	{model.PlatformTikTok, compile(
		`(https?://)?(www\.)?(tiktok\.com|vm\.tiktok\.com)/`,
	)},
	{model.PlatformTwitter, compile(
		`(https?://)?(www\.)?(twitter\.com|x\.com)/`,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}

// URL matches text against the supported platform patterns. Matching is
// case-insensitive and unanchored, so a pattern may hit anywhere in the text.
func URL(url string) model.Classification {
	for _, group := range platformPatterns {
		for _, re := range group.patterns {
			if re.MatchString(url) {
				return model.Classification{Supported: true, Platform: group.platform}
			}
		}
	}
	return model.Classification{}
}
