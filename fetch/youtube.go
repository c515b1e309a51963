package fetch

import (
	"context"
	"fmt"

	"ewintr.nl/ytsummary/model"
	"google.golang.org/api/youtube/v3"
)

// Youtube reads metadata from the YouTube Data API. Unlike oEmbed it also
// returns the full description.
type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (model.Metadata, error) {
	call := y.Client.Videos.
		List([]string{"snippet"}).
		Id(string(ytID)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return model.Metadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	for _, item := range response.Items {
		if item.Id != string(ytID) || item.Snippet == nil {
			continue
		}
		return model.Metadata{
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			AuthorName:  item.Snippet.ChannelTitle,
		}, nil
	}

	return model.Metadata{}, fmt.Errorf("%w: video %s not found", ErrFetchFailed, ytID)
}
