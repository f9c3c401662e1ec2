package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Bot      BotConfig
	Server   ServerConfig
	Download DownloadConfig
	Session  SessionConfig
}

// BotConfig holds delivery transport credentials.
type BotConfig struct {
	Token string
}

// ServerConfig holds liveness HTTP server settings.
type ServerConfig struct {
	Port string
}

// DownloadConfig holds pipeline settings.
type DownloadConfig struct {
	// ScratchDir is the root under which every job gets its own
	// subdirectory.
	ScratchDir string

	// MaxFileBytes is the delivery payload ceiling.
	MaxFileBytes int64

	// CookiePath is where the extractor reads YouTube session credentials.
	// SecretCookiePath is a read-only mount some hosts provide; when present
	// it is copied to CookiePath at startup.
	CookiePath       string
	SecretCookiePath string

	// Timeout bounds one job's engine invocation.
	Timeout time.Duration
}

// SessionConfig holds selection token store settings.
type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// ErrMissingToken is returned when the transport credential is absent.
var ErrMissingToken = errors.New("BOT_TOKEN environment variable is not set")

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}

	cfg := &Config{
		Bot: BotConfig{Token: token},
		Server: ServerConfig{
			Port: getEnv("PORT", "10000"),
		},
		Download: DownloadConfig{
			ScratchDir:       getEnv("SCRATCH_DIR", "temp"),
			MaxFileBytes:     int64(getEnvInt("MAX_FILE_SIZE_MB", 50)) * 1024 * 1024,
			CookiePath:       getEnv("YOUTUBE_COOKIE_PATH", "cookies.txt"),
			SecretCookiePath: getEnv("SECRET_COOKIE_PATH", "/etc/secrets/cookies.txt"),
			Timeout:          time.Duration(getEnvInt("DOWNLOAD_TIMEOUT_MIN", 10)) * time.Minute,
		},
		Session: SessionConfig{
			Capacity: getEnvInt("SESSION_CAPACITY", 1024),
			TTL:      time.Duration(getEnvInt("SESSION_TTL_MIN", 30)) * time.Minute,
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
