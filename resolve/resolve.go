package resolve

import (
	"fmt"
	"regexp"

	"ewintr.nl/ytsummary/model"
)

// matchers are tried in order, the first capture wins. The captured token is
// returned as is: playlist or timestamp parameters that end up after it are
// ignored, not stripped.
var matchers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtu\.be/([^?]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/embed/([^?]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/v/([^?]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/user/[^/]+/\?v=([^&]+)`),
}

// ExtractVideoID returns the video id from any of the supported YouTube URL
// shapes. The second return value is false when none of them match, which
// is a normal outcome and not an error.
func ExtractVideoID(url string) (model.YoutubeVideoID, bool) {
	for _, re := range matchers {
		m := re.FindStringSubmatch(url)
		if len(m) > 1 && m[1] != "" {
			return model.YoutubeVideoID(m[1]), true
		}
	}

	return "", false
}

func IsValidURL(url string) bool {
	_, ok := ExtractVideoID(url)
	return ok
}

// Thumbnail does not check whether the image exists.
func Thumbnail(id model.YoutubeVideoID) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", id)
}

func EmbedURL(id model.YoutubeVideoID) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}

func WatchURL(id model.YoutubeVideoID) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}
