package model

import "github.com/google/uuid"

type YoutubeVideoID string

type Metadata struct {
	Title       string
	Description string
	AuthorName  string
}

type Summary struct {
	Text     string
	Insights []string
	// Degraded marks the fixed fallback returned when generation failed.
	Degraded bool
}

// Video is the outcome of a single submitted URL. Nothing about it is stored,
// ID only correlates the log lines of one request.
type Video struct {
	ID           uuid.UUID
	URL          string
	YoutubeID    YoutubeVideoID
	ThumbnailURL string
	EmbedURL     string
	Metadata     Metadata
	Summary      Summary
}
