package delivery

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Gate enforces the transport's payload ceiling before delivery is attempted.
type Gate struct {
	MaxBytes int64

	logger *zap.Logger
}

// NewGate creates a gate with the given ceiling. A nil logger disables
// logging.
func NewGate(maxBytes int64, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{MaxBytes: maxBytes, logger: logger}
}

// Check admits artifacts at or under the ceiling. Oversized artifacts are
// deleted immediately; the returned failure carries both the actual and
// allowed sizes.
func (g *Gate) Check(result *model.DownloadResult) error {
	if result.Size <= g.MaxBytes {
		return nil
	}

	g.logger.Info("artifact exceeds payload ceiling",
		zap.String("artifact", result.ArtifactPath),
		zap.Int64("size", result.Size),
		zap.Int64("limit", g.MaxBytes))
	g.Remove(result.ArtifactPath)

	return &model.DownloadError{
		Kind:  model.FailTooLarge,
		Size:  result.Size,
		Limit: g.MaxBytes,
	}
}

// Remove deletes an artifact, logging failures instead of surfacing them.
func (g *Gate) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		g.logger.Warn("failed to remove artifact",
			zap.String("path", path), zap.Error(err))
	}
}

// FormatSize renders a byte count in a human scale: 1024-byte steps, one
// decimal place.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", size)
}
