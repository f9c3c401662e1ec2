package engine

import (
	"strings"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// twitterBlockTokens mark an engine failure as Twitter's anti-automation
// rejection. The set is deliberately narrow; anything unmatched degrades to
// the generic download failure.
var twitterBlockTokens = []string{"twitter", "x.com"}

// ClassifyFailure converts a raw engine error into the typed failure the
// transport layer reports to the user. Raw engine errors never cross this
// boundary.
func ClassifyFailure(platform model.Platform, err error) *model.DownloadError {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, token := range twitterBlockTokens {
		if strings.Contains(msg, token) {
			return model.Failure(model.FailPlatformBlocked, model.PlatformTwitter, err)
		}
	}
	return model.Failure(model.FailDownload, platform, err)
}
