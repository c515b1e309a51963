package process

import (
	"context"

	"ewintr.nl/ytsummary/model"
)

type SummaryRequest struct {
	VideoID    model.YoutubeVideoID
	Metadata   model.Metadata
	Transcript string
	APIKey     string
}

// Summarizer always produces a usable summary. Implementations that depend
// on a remote service absorb its failures and mark the result as degraded.
type Summarizer interface {
	Name() string
	Summarize(ctx context.Context, req SummaryRequest) model.Summary
}
