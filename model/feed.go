package model

type FeedEntry struct {
	EntryID int64
	FeedID  int64
	URL     string
	Title   string
}
