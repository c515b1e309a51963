package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/model"
	"ewintr.nl/ytsummary/process"
	"ewintr.nl/ytsummary/resolve"
	"golang.org/x/exp/slog"
)

type Processor interface {
	Process(ctx context.Context, sub process.Submission) (*model.Video, error)
}

type VideoAPI struct {
	processor Processor
	logger    *slog.Logger
}

func NewVideoAPI(processor Processor, logger *slog.Logger) *VideoAPI {
	return &VideoAPI{
		processor: processor,
		logger:    logger,
	}
}

func (v *VideoAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && subPath == "":
		v.Resolve(w, r)
	case r.Method == http.MethodPost && subPath == "":
		v.Summarize(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the video api", r.Method, subPath))
	}
}

type resolvedVideo struct {
	YoutubeID    string `json:"youtube_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	EmbedURL     string `json:"embed_url"`
}

// Resolve only inspects the url, it does not call out to anything.
func (v *VideoAPI) Resolve(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	ytID, ok := resolve.ExtractVideoID(url)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid url", fmt.Errorf("%w: %q", process.ErrInvalidURL, url))
		return
	}

	JSON(w, http.StatusOK, resolvedVideo{
		YoutubeID:    string(ytID),
		ThumbnailURL: resolve.Thumbnail(ytID),
		EmbedURL:     resolve.EmbedURL(ytID),
	})
}

type summaryRequest struct {
	URL        string `json:"url"`
	Transcript string `json:"transcript"`
	APIKey     string `json:"api_key"`
}

type summaryResponse struct {
	ID           string   `json:"id"`
	YoutubeID    string   `json:"youtube_id"`
	ThumbnailURL string   `json:"thumbnail_url"`
	EmbedURL     string   `json:"embed_url"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	AuthorName   string   `json:"author_name,omitempty"`
	Summary      string   `json:"summary"`
	Insights     []string `json:"insights"`
	Degraded     bool     `json:"degraded"`
}

func (v *VideoAPI) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	video, err := v.processor.Process(r.Context(), process.Submission{
		URL:        req.URL,
		Transcript: req.Transcript,
		APIKey:     req.APIKey,
	})
	switch {
	case errors.Is(err, process.ErrInvalidURL):
		Error(w, http.StatusBadRequest, "invalid url", err)
		return
	case errors.Is(err, fetch.ErrFetchFailed):
		v.returnErr(r.Context(), w, http.StatusBadGateway, "could not fetch video details", err)
		return
	case err != nil:
		v.returnErr(r.Context(), w, http.StatusInternalServerError, "could not summarize video", err)
		return
	}

	JSON(w, http.StatusOK, summaryResponse{
		ID:           video.ID.String(),
		YoutubeID:    string(video.YoutubeID),
		ThumbnailURL: video.ThumbnailURL,
		EmbedURL:     video.EmbedURL,
		Title:        video.Metadata.Title,
		Description:  video.Metadata.Description,
		AuthorName:   video.Metadata.AuthorName,
		Summary:      video.Summary.Text,
		Insights:     video.Summary.Insights,
		Degraded:     video.Summary.Degraded,
	})
}

func (v *VideoAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	v.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
