// Package main runs the Telegram video download bot.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vidfetch/vidfetch-bot/internal/bot"
	"github.com/vidfetch/vidfetch-bot/internal/config"
	"github.com/vidfetch/vidfetch-bot/internal/delivery"
	"github.com/vidfetch/vidfetch-bot/internal/download"
	"github.com/vidfetch/vidfetch-bot/internal/engine"
	"github.com/vidfetch/vidfetch-bot/internal/health"
	"github.com/vidfetch/vidfetch-bot/internal/plan"
	"github.com/vidfetch/vidfetch-bot/internal/platform"
	"github.com/vidfetch/vidfetch-bot/internal/session"
)

// restartDelay spaces out restarts after a crash so a persistent fault
// cannot spin the process.
const restartDelay = 5 * time.Second

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	// Leftovers from a crashed run are unreachable; start from a clean
	// scratch root.
	if err := platform.CreateDirectoryIfNotExists(cfg.Download.ScratchDir); err != nil {
		logger.Fatal("scratch dir", zap.Error(err))
	}
	if err := platform.ClearDirectory(cfg.Download.ScratchDir); err != nil {
		logger.Warn("scratch sweep failed", zap.Error(err))
	}
	stageCookies(cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := engine.Install(ctx); err != nil {
		logger.Warn("yt-dlp install failed, relying on system binary", zap.Error(err))
	}

	eng := engine.NewYTDLP(logger)
	planner := plan.Planner{CookiePath: cfg.Download.CookiePath}
	downloads := download.NewService(eng, planner, cfg.Download.ScratchDir, cfg.Download.Timeout, logger)
	sessions := session.NewStore(cfg.Session.Capacity, cfg.Session.TTL)
	gate := delivery.NewGate(cfg.Download.MaxFileBytes, logger)

	srv := health.NewServer(cfg.Server.Port, downloads, logger)
	go func() {
		logger.Info("health server listening", zap.String("port", cfg.Server.Port))
		if err := srv.Run(); err != nil {
			logger.Fatal("health server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutdown signal received")
		cancel()
	}()

	for ctx.Err() == nil {
		err := runBot(ctx, cfg, sessions, downloads, gate, logger)
		if err == nil || errors.Is(err, context.Canceled) {
			break
		}
		logger.Error("bot stopped, restarting", zap.Error(err))
		select {
		case <-ctx.Done():
		case <-time.After(restartDelay):
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown", zap.Error(err))
	}
	logger.Info("bot stopped")
}

// runBot authorizes a fresh client and polls until ctx is cancelled or the
// transport fails. Panics surface as errors so the supervision loop can
// restart.
func runBot(ctx context.Context, cfg *config.Config, sessions *session.Store, downloads download.Downloader, gate *delivery.Gate, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bot panic: %v", r)
		}
	}()

	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		return fmt.Errorf("telegram auth: %w", err)
	}
	logger.Info("bot authorized", zap.String("username", api.Self.UserName))

	return bot.New(api, sessions, downloads, gate, logger).Run(ctx)
}

// stageCookies copies a host-provided cookie secret into the path the
// extractor reads. Some hosts only expose secrets on a read-only mount.
func stageCookies(cfg *config.Config, logger *zap.Logger) {
	if _, err := os.Stat(cfg.Download.SecretCookiePath); err != nil {
		return
	}
	if err := platform.CopyFile(cfg.Download.SecretCookiePath, cfg.Download.CookiePath); err != nil {
		logger.Warn("cookie staging failed", zap.Error(err))
		return
	}
	logger.Info("cookies staged", zap.String("path", cfg.Download.CookiePath))
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
