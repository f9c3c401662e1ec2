package engine

import (
	"context"

	"github.com/vidfetch/vidfetch-bot/internal/model"
)

// Engine is the boundary to the media extraction capability.
type Engine interface {
	// Download fetches url according to plan. The artifact lands under the
	// plan's output template; the returned metadata describes it.
	Download(ctx context.Context, url string, plan model.DownloadPlan) (model.Metadata, error)

	// PredictPath computes the output path the engine should have written
	// for plan and meta. The prediction can diverge from the real artifact
	// after post-processing renames; callers must verify existence.
	PredictPath(plan model.DownloadPlan, meta model.Metadata) string
}
