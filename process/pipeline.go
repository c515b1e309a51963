package process

import (
	"context"
	"errors"
	"fmt"

	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/model"
	"ewintr.nl/ytsummary/resolve"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var ErrInvalidURL = errors.New("not a valid youtube url")

type Submission struct {
	URL        string
	Transcript string
	APIKey     string
}

// Pipeline runs one submission from raw URL to summary. Metadata is always
// fetched before the summary is generated. Submissions share no state.
type Pipeline struct {
	metadata   fetch.MetadataFetcher
	summarizer Summarizer
	logger     *slog.Logger
}

func NewPipeline(metadata fetch.MetadataFetcher, summarizer Summarizer, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		metadata:   metadata,
		summarizer: summarizer,
		logger:     logger,
	}
}

func (p *Pipeline) Process(ctx context.Context, sub Submission) (*model.Video, error) {
	ytID, ok := resolve.ExtractVideoID(sub.URL)
	if !ok {
		return nil, ErrInvalidURL
	}

	video := &model.Video{
		ID:           uuid.New(),
		URL:          sub.URL,
		YoutubeID:    ytID,
		ThumbnailURL: resolve.Thumbnail(ytID),
		EmbedURL:     resolve.EmbedURL(ytID),
	}
	logger := p.logger.With(slog.String("id", video.ID.String()), slog.String("video", string(ytID)))

	logger.Info("fetching metadata")
	md, err := p.metadata.FetchMetadata(ctx, ytID)
	if err != nil {
		logger.Error("failed to fetch metadata", slog.String("error", err.Error()))
		return nil, fmt.Errorf("could not fetch details for video %s: %w", ytID, err)
	}
	video.Metadata = md

	logger.Info("generating summary", slog.String("summarizer", p.summarizer.Name()))
	video.Summary = p.summarizer.Summarize(ctx, SummaryRequest{
		VideoID:    ytID,
		Metadata:   md,
		Transcript: sub.Transcript,
		APIKey:     sub.APIKey,
	})
	logger.Info("video is ready", slog.Bool("degraded", video.Summary.Degraded), slog.Int("insights", len(video.Summary.Insights)))

	return video, nil
}

// Run processes the URLs that arrive on in until it is closed, using apiKey
// for every one of them.
func (p *Pipeline) Run(ctx context.Context, in <-chan string, apiKey string) {
	for url := range in {
		video, err := p.Process(ctx, Submission{URL: url, APIKey: apiKey})
		if err != nil {
			p.logger.Error("failed to process video", slog.String("url", url), slog.String("error", err.Error()))
			continue
		}
		p.logger.Info("processed video",
			slog.String("url", url),
			slog.String("title", video.Metadata.Title),
			slog.String("summary", video.Summary.Text),
		)
	}
}
