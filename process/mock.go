package process

import (
	"context"
	"fmt"
	"time"

	"ewintr.nl/ytsummary/model"
)

const DefaultMockDelay = 2500 * time.Millisecond

var mockInsights = []string{
	"The video introduces fundamental concepts with clear examples",
	"Key techniques are demonstrated step-by-step for better understanding",
	"Practical applications are discussed to help implement the knowledge",
	"Common mistakes are highlighted with solutions to avoid them",
}

// MockSummarizer fills a fixed template with the video title. The delay
// only imitates the latency of a real service.
type MockSummarizer struct {
	delay time.Duration
}

func NewMockSummarizer(delay time.Duration) *MockSummarizer {
	return &MockSummarizer{delay: delay}
}

func (m *MockSummarizer) Name() string {
	return "mock summarizer"
}

func (m *MockSummarizer) Summarize(ctx context.Context, req SummaryRequest) model.Summary {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	return MockSummary(req.Metadata)
}

func MockSummary(md model.Metadata) model.Summary {
	title := md.Title
	if title == "" {
		title = "the topic"
	}
	insights := make([]string, len(mockInsights))
	copy(insights, mockInsights)

	return model.Summary{
		Text:     fmt.Sprintf("This video discusses %s in detail, covering key concepts and providing practical examples. The presenter explains the main ideas clearly and offers insights for viewers to apply in their own contexts.", title),
		Insights: insights,
	}
}
