package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Callback payload layout: action, format tag, quality tag and selection
// token joined by the delimiter. Total length must stay under Telegram's
// 64-byte callback data limit.
const (
	callbackAction    = "dl"
	callbackCancel    = "cancel"
	callbackDelimiter = "|"
)

// selection is a parsed option callback.
type selection struct {
	Format  model.FormatType
	Quality model.Quality
	Token   string
}

func callbackData(format model.FormatType, quality model.Quality, token string) string {
	return strings.Join([]string{callbackAction, string(format), string(quality), token}, callbackDelimiter)
}

// parseSelection decodes option callback data. Anything malformed, including
// payloads from older keyboards, reports ok=false and is dropped silently.
func parseSelection(data string) (selection, bool) {
	parts := strings.Split(data, callbackDelimiter)
	if len(parts) != 4 || parts[0] != callbackAction {
		return selection{}, false
	}
	format, ok := model.ParseFormatType(parts[1])
	if !ok {
		return selection{}, false
	}
	quality, ok := model.ParseQuality(parts[2])
	if !ok {
		return selection{}, false
	}
	return selection{Format: format, Quality: quality, Token: parts[3]}, true
}

// optionsKeyboard builds the quality keyboard for a platform. YouTube gets
// explicit quality tiers; single-stream platforms get a plain video/audio
// choice.
func optionsKeyboard(platform model.Platform, token string) tgbotapi.InlineKeyboardMarkup {
	if platform == model.PlatformYouTube {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📹 Best Video", callbackData(model.FormatVideo, model.QualityBest, token)),
				tgbotapi.NewInlineKeyboardButtonData("🎵 Audio Only", callbackData(model.FormatAudio, model.QualityBest, token)),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("720p", callbackData(model.FormatVideo, model.Quality720, token)),
				tgbotapi.NewInlineKeyboardButtonData("480p", callbackData(model.FormatVideo, model.Quality480, token)),
				tgbotapi.NewInlineKeyboardButtonData("360p", callbackData(model.FormatVideo, model.Quality360, token)),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", callbackCancel),
			),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📹 Download Video", callbackData(model.FormatVideo, model.QualityBest, token)),
			tgbotapi.NewInlineKeyboardButtonData("🎵 Audio Only", callbackData(model.FormatAudio, model.QualityBest, token)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", callbackCancel),
		),
	)
}
