package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"ewintr.nl/ytsummary/model"
	"ewintr.nl/ytsummary/resolve"
)

const DefaultOEmbedEndpoint = "https://noembed.com/embed"

type oEmbedResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name"`
	Error       string `json:"error"`
}

// OEmbed looks up video metadata at an oEmbed provider. Every lookup is a
// single attempt: there is no retry and no timeout other than the one the
// caller puts on the context or the client.
type OEmbed struct {
	endpoint string
	client   *http.Client
}

func NewOEmbed(endpoint string, client *http.Client) *OEmbed {
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &OEmbed{
		endpoint: endpoint,
		client:   client,
	}
}

func (o *OEmbed) FetchMetadata(ctx context.Context, ytID model.YoutubeVideoID) (model.Metadata, error) {
	u, err := url.Parse(o.endpoint)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("%w: invalid endpoint: %v", ErrFetchFailed, err)
	}
	q := u.Query()
	q.Set("url", resolve.WatchURL(ytID))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.Metadata{}, fmt.Errorf("%w: status %s", ErrFetchFailed, resp.Status)
	}

	var body oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Metadata{}, fmt.Errorf("%w: could not decode response: %v", ErrFetchFailed, err)
	}
	// noembed answers 200 with an error field for unknown videos
	if body.Error != "" {
		return model.Metadata{}, fmt.Errorf("%w: %s", ErrFetchFailed, body.Error)
	}

	return model.Metadata{
		Title:       body.Title,
		Description: body.Description,
		AuthorName:  body.AuthorName,
	}, nil
}
