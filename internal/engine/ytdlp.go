package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Fallback for metadata fields the extractor did not report
const unknownField = "Unknown"

// TitleLimit mirrors the truncation width baked into the output template.
const TitleLimit = 100

// YTDLP drives the yt-dlp binary through go-ytdlp.
type YTDLP struct {
	logger *zap.Logger
}

// NewYTDLP creates the production engine. A nil logger disables logging.
func NewYTDLP(logger *zap.Logger) *YTDLP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLP{logger: logger}
}

// Install provisions the yt-dlp binary when the host does not already have
// one. Safe to call on every startup.
func Install(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

// Download implements Engine.
func (e *YTDLP) Download(ctx context.Context, url string, plan model.DownloadPlan) (model.Metadata, error) {
	dl := buildCommand(plan)

	e.logger.Debug("invoking extractor",
		zap.String("platform", plan.Platform.String()),
		zap.String("selector", plan.FormatSelector))

	result, err := dl.Run(ctx, url)
	if err != nil {
		return model.Metadata{}, err
	}
	return extractMetadata(result), nil
}

// buildCommand translates a plan into yt-dlp flags. PrintJSON makes the
// engine emit the extracted info dict, including the computed output
// filename, on stdout where go-ytdlp picks it up.
func buildCommand(plan model.DownloadPlan) *ytdlp.Command {
	dl := ytdlp.New().
		Format(plan.FormatSelector).
		Output(plan.OutputTemplate).
		RestrictFilenames().
		NoCheckCertificates().
		Quiet().
		NoWarnings().
		PrintJSON().
		Retries(strconv.Itoa(plan.Retries)).
		FragmentRetries(strconv.Itoa(plan.FragmentRetries)).
		ConcurrentFragments(plan.ConcurrentFragments)

	if plan.SkipUnavailableFragments {
		dl.SkipUnavailableFragments()
	}
	if plan.NoPlaylist {
		dl.NoPlaylist()
	}
	if plan.ExtractAudio {
		dl.ExtractAudio().AudioFormat(plan.AudioFormat).AudioQuality(plan.AudioQuality)
	}
	if plan.MergeFormat != "" {
		dl.MergeOutputFormat(plan.MergeFormat)
	}
	if plan.UserAgent != "" {
		dl.UserAgent(plan.UserAgent)
	}
	if plan.CookieFile != "" {
		dl.Cookies(plan.CookieFile)
	}
	return dl
}

// PredictPath implements Engine. The extractor reports the path it wrote in
// its metadata; when that is absent the output template is expanded from the
// title the same way the extractor's restricted-filenames mode would name it.
func (e *YTDLP) PredictPath(plan model.DownloadPlan, meta model.Metadata) string {
	if meta.Filename != "" {
		return meta.Filename
	}

	ext := meta.Ext
	if ext == "" {
		ext = "mp4"
	}
	path := strings.ReplaceAll(plan.OutputTemplate, "%(title).100s", restrictTitle(meta.Title))
	return strings.ReplaceAll(path, "%(ext)s", ext)
}

// restrictTitle approximates yt-dlp's restricted-filenames mode: spaces
// become underscores, everything outside [0-9A-Za-z._-] is dropped, and the
// result is truncated to the template's title width.
func restrictTitle(title string) string {
	runes := []rune(title)
	if len(runes) > TitleLimit {
		runes = runes[:TitleLimit]
	}

	var b strings.Builder
	for _, r := range runes {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractMetadata(result *ytdlp.Result) model.Metadata {
	meta := model.Metadata{Title: unknownField, Uploader: unknownField}
	if result == nil {
		return meta
	}

	infos, err := result.GetExtractedInfo()
	if err != nil || len(infos) == 0 {
		return meta
	}
	return metadataFromInfo(infos[0])
}

func metadataFromInfo(info *ytdlp.ExtractedInfo) model.Metadata {
	return model.Metadata{
		Title:           stringField(info.Title, unknownField),
		Uploader:        stringField(info.Uploader, unknownField),
		UploadDate:      stringField(info.UploadDate, ""),
		Ext:             info.Extension,
		Filename:        stringField(info.Filename, ""),
		DurationSeconds: int(floatField(info.Duration)),
		ViewCount:       int64(floatField(info.ViewCount)),
		LikeCount:       int64(floatField(info.LikeCount)),
	}
}

func stringField(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func floatField(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
