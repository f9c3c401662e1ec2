package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/vidfetch/vidfetch-bot/internal/delivery"
	"github.com/vidfetch/vidfetch-bot/internal/download"
	"github.com/vidfetch/vidfetch-bot/internal/session"
)

// Bot routes Telegram updates into the download pipeline.
type Bot struct {
	api       TelegramAPI
	sessions  *session.Store
	downloads download.Downloader
	gate      *delivery.Gate
	logger    *zap.Logger
}

// New wires the transport to its collaborators. A nil logger disables
// logging.
func New(api TelegramAPI, sessions *session.Store, downloads download.Downloader, gate *delivery.Gate, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:       api,
		sessions:  sessions,
		downloads: downloads,
		gate:      gate,
		logger:    logger,
	}
}

// Run polls for updates until ctx is cancelled. Each update is handled in
// its own goroutine so a slow download never stalls polling.
func (b *Bot) Run(ctx context.Context) error {
	// Updates that piled up while the bot was down are stale download
	// requests; drop them instead of replaying.
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		b.logger.Warn("failed to drop pending updates", zap.Error(err))
	}

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	b.logger.Info("bot polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(ctx, update)
		}
	}
}

// dispatch routes one update. A panicking handler must not take down the
// whole process, so it is confined here.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panic", zap.Any("panic", r))
			if update.Message != nil {
				b.reply(update.Message.Chat.ID, errorText)
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleLink(update.Message)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, markdown bool) {
	cfg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if markdown {
		cfg.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.api.Send(cfg); err != nil {
		b.logger.Warn("failed to edit status message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
