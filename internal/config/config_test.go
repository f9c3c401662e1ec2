package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()

	if !errors.Is(err, ErrMissingToken) {
		t.Errorf("Expected ErrMissingToken, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("PORT", "")
	t.Setenv("SCRATCH_DIR", "")
	t.Setenv("MAX_FILE_SIZE_MB", "")
	t.Setenv("YOUTUBE_COOKIE_PATH", "")
	t.Setenv("SECRET_COOKIE_PATH", "")
	t.Setenv("DOWNLOAD_TIMEOUT_MIN", "")
	t.Setenv("SESSION_CAPACITY", "")
	t.Setenv("SESSION_TTL_MIN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Bot.Token != "123456:test-token" {
		t.Errorf("Expected token from environment, got %q", cfg.Bot.Token)
	}
	if cfg.Server.Port != "10000" {
		t.Errorf("Expected default port 10000, got %q", cfg.Server.Port)
	}
	if cfg.Download.ScratchDir != "temp" {
		t.Errorf("Expected default scratch dir temp, got %q", cfg.Download.ScratchDir)
	}
	if cfg.Download.MaxFileBytes != 50*1024*1024 {
		t.Errorf("Expected 50 MB ceiling, got %d", cfg.Download.MaxFileBytes)
	}
	if cfg.Download.CookiePath != "cookies.txt" {
		t.Errorf("Expected default cookie path, got %q", cfg.Download.CookiePath)
	}
	if cfg.Download.SecretCookiePath != "/etc/secrets/cookies.txt" {
		t.Errorf("Expected default secret cookie path, got %q", cfg.Download.SecretCookiePath)
	}
	if cfg.Download.Timeout != 10*time.Minute {
		t.Errorf("Expected 10 minute download timeout, got %v", cfg.Download.Timeout)
	}
	if cfg.Session.Capacity != 1024 {
		t.Errorf("Expected session capacity 1024, got %d", cfg.Session.Capacity)
	}
	if cfg.Session.TTL != 30*time.Minute {
		t.Errorf("Expected 30 minute session TTL, got %v", cfg.Session.TTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("PORT", "8080")
	t.Setenv("SCRATCH_DIR", "/var/scratch")
	t.Setenv("MAX_FILE_SIZE_MB", "10")
	t.Setenv("DOWNLOAD_TIMEOUT_MIN", "3")
	t.Setenv("SESSION_CAPACITY", "64")
	t.Setenv("SESSION_TTL_MIN", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Download.ScratchDir != "/var/scratch" {
		t.Errorf("Expected scratch dir /var/scratch, got %q", cfg.Download.ScratchDir)
	}
	if cfg.Download.MaxFileBytes != 10*1024*1024 {
		t.Errorf("Expected 10 MB ceiling, got %d", cfg.Download.MaxFileBytes)
	}
	if cfg.Download.Timeout != 3*time.Minute {
		t.Errorf("Expected 3 minute timeout, got %v", cfg.Download.Timeout)
	}
	if cfg.Session.Capacity != 64 {
		t.Errorf("Expected session capacity 64, got %d", cfg.Session.Capacity)
	}
	if cfg.Session.TTL != 5*time.Minute {
		t.Errorf("Expected 5 minute TTL, got %v", cfg.Session.TTL)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("MAX_FILE_SIZE_MB", "a-lot")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Download.MaxFileBytes != 50*1024*1024 {
		t.Errorf("Expected fallback to 50 MB, got %d", cfg.Download.MaxFileBytes)
	}
}
