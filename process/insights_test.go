package process

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInsights(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		exp  []string
	}{
		{
			name: "empty",
			text: "",
			exp:  []string{placeholderInsight},
		},
		{
			name: "no bullets",
			text: "Just a paragraph.\nAnd another line.",
			exp:  []string{placeholderInsight},
		},
		{
			name: "all markers",
			text: "Intro\n• first\n- second\n* third",
			exp:  []string{"first", "second", "third"},
		},
		{
			name: "indented bullets",
			text: "   - indented\n\t• tabbed",
			exp:  []string{"indented", "tabbed"},
		},
		{
			name: "empty bullets are dropped",
			text: "-\n•   \n- kept",
			exp:  []string{"kept"},
		},
		{
			name: "only empty bullets",
			text: "-\n*",
			exp:  []string{placeholderInsight},
		},
		{
			name: "windows line endings",
			text: "- one\r\n- two\r\n",
			exp:  []string{"one", "two"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, ExtractInsights(tc.text))
		})
	}
}

func TestExtractInsightsCap(t *testing.T) {
	var lines []string
	for i := 1; i <= 7; i++ {
		lines = append(lines, fmt.Sprintf("• insight %d", i))
	}

	act := ExtractInsights(strings.Join(lines, "\n"))
	assert.Len(t, act, 5)
	assert.Equal(t, "insight 1", act[0])
	assert.Equal(t, "insight 5", act[4])
}

func TestProse(t *testing.T) {
	text := "A summary line.\n\n• one\n- two\nClosing remark."
	assert.Equal(t, "A summary line.\nClosing remark.", prose(text))
	assert.Equal(t, "", prose("- only\n- bullets"))
}
