package process

import (
	"strings"
)

const (
	maxInsights        = 5
	placeholderInsight = "Key insights will appear here once they are available."
)

var bulletMarkers = []string{"•", "-", "*"}

// ExtractInsights collects the bullet lines of a generated text, without
// their markers. The result is never empty: without bullets it is a single
// placeholder.
func ExtractInsights(text string) []string {
	insights := make([]string, 0, maxInsights)
	for _, line := range strings.Split(text, "\n") {
		item, ok := bulletItem(line)
		if !ok || item == "" {
			continue
		}
		insights = append(insights, item)
		if len(insights) == maxInsights {
			break
		}
	}

	if len(insights) == 0 {
		return []string{placeholderInsight}
	}

	return insights
}

// prose returns the lines of a generated text that are not bullets.
func prose(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if _, ok := bulletItem(line); ok {
			continue
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

func bulletItem(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}

	return "", false
}
