package fetch

import (
	"context"
	"errors"

	"ewintr.nl/ytsummary/model"
)

var ErrFetchFailed = errors.New("fetch failed")

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (model.Metadata, error)
}
