package bot

import (
	"context"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vidfetch/vidfetch-bot/internal/classify"
	"github.com/vidfetch/vidfetch-bot/internal/download"
	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Telegram caps audio title and performer fields.
const metaFieldLimit = 100

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.replyMarkdown(msg.Chat.ID, welcomeText)
	case "help":
		b.replyMarkdown(msg.Chat.ID, helpText)
	case "about":
		b.replyMarkdown(msg.Chat.ID, aboutText)
	default:
		b.reply(msg.Chat.ID, unknownCommandText)
	}
}

// handleLink classifies a submitted URL and offers the quality keyboard. The
// URL is parked in the session store; only its short token rides inside the
// keyboard's callback data.
func (b *Bot) handleLink(msg *tgbotapi.Message) {
	url := strings.TrimSpace(msg.Text)
	if url == "" {
		return
	}

	cls := classify.URL(url)
	if !cls.Supported {
		b.replyMarkdown(msg.Chat.ID, invalidLinkText)
		return
	}

	token := b.sessions.Put(url)
	b.logger.Info("link accepted",
		zap.String("platform", cls.Platform.String()),
		zap.String("token", token))

	reply := tgbotapi.NewMessage(msg.Chat.ID, detectedText(cls.Platform))
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = optionsKeyboard(cls.Platform, token)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Warn("failed to send options", zap.Error(err))
	}
}

// handleCallback services an option selection end to end: resolve the
// session, run the pipeline, gate the artifact, deliver it, clean up.
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Ack first so the client stops showing a spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Debug("callback ack failed", zap.Error(err))
	}

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	if query.Data == callbackCancel {
		b.edit(chatID, messageID, cancelledText, false)
		return
	}

	sel, ok := parseSelection(query.Data)
	if !ok {
		return
	}

	url, ok := b.sessions.Get(sel.Token)
	if !ok {
		b.edit(chatID, messageID, sessionExpiredText, true)
		return
	}

	cls := classify.URL(url)
	if !cls.Supported {
		b.edit(chatID, messageID, invalidLinkText, true)
		return
	}

	b.edit(chatID, messageID, downloadingText(sel.Format, sel.Quality), true)

	outcome := <-b.downloads.Start(ctx, download.Request{
		URL:      url,
		Platform: cls.Platform,
		Format:   sel.Format,
		Quality:  sel.Quality,
	})
	defer outcome.Cleanup()

	if outcome.Err != nil {
		b.edit(chatID, messageID, failureText(outcome.Err), true)
		return
	}

	result := outcome.Result
	if err := b.gate.Check(result); err != nil {
		b.edit(chatID, messageID, failureText(err), true)
		return
	}

	if err := b.deliver(chatID, sel.Format, result); err != nil {
		b.logger.Error("upload failed",
			zap.String("artifact", result.ArtifactPath), zap.Error(err))
		b.edit(chatID, messageID, uploadFailedText, true)
		return
	}

	// The status message has served its purpose; a failed delete only
	// leaves a stale line behind.
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.logger.Debug("failed to delete status message", zap.Error(err))
	}
}

// deliver streams the artifact to the chat with its caption.
func (b *Bot) deliver(chatID int64, format model.FormatType, result *model.DownloadResult) error {
	file, err := os.Open(result.ArtifactPath)
	if err != nil {
		return err
	}
	defer file.Close()

	payload := tgbotapi.FileReader{Name: result.DisplayName, Reader: file}
	caption := captionText(result)

	if format == model.FormatAudio {
		audio := tgbotapi.NewAudio(chatID, payload)
		audio.Caption = caption
		audio.ParseMode = tgbotapi.ModeMarkdown
		audio.Title = truncate(result.Meta.Title, metaFieldLimit)
		audio.Performer = truncate(result.Meta.Uploader, metaFieldLimit)
		_, err = b.api.Send(audio)
		return err
	}

	video := tgbotapi.NewVideo(chatID, payload)
	video.Caption = caption
	video.ParseMode = tgbotapi.ModeMarkdown
	video.SupportsStreaming = true
	_, err = b.api.Send(video)
	return err
}
