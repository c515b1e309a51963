package fetch

import (
	"context"
	"time"

	"ewintr.nl/ytsummary/resolve"
	"golang.org/x/exp/slog"
)

// Watcher polls a feed reader for unread entries and hands the URLs of the
// ones that point to a YouTube video to the pipeline.
type Watcher struct {
	interval   time.Duration
	feedReader FeedReader
	out        chan string
	logger     *slog.Logger
}

func NewWatcher(feedReader FeedReader, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{
		interval:   interval,
		feedReader: feedReader,
		out:        make(chan string, 10),
		logger:     logger,
	}
}

func (w *Watcher) Out() <-chan string {
	return w.out
}

func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("started feed watcher", slog.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.out)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stopped feed watcher")
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll reads the unread entries once. Entries without a recognizable video
// are left unread.
func (w *Watcher) Poll(ctx context.Context) int {
	entries, err := w.feedReader.Unread()
	if err != nil {
		w.logger.Error("failed to fetch unread entries", slog.Any("error", err))
		return 0
	}
	w.logger.Info("fetched unread entries", slog.Int("count", len(entries)))

	var pushed int
	for _, entry := range entries {
		if !resolve.IsValidURL(entry.URL) {
			w.logger.Info("skipping entry without video", slog.Int64("entry", entry.EntryID), slog.String("url", entry.URL))
			continue
		}
		select {
		case w.out <- entry.URL:
		case <-ctx.Done():
			return pushed
		}
		pushed++
		if err := w.feedReader.MarkRead(entry.EntryID); err != nil {
			w.logger.Error("failed to mark entry as read", slog.Int64("entry", entry.EntryID), slog.Any("error", err))
			continue
		}
	}

	return pushed
}
