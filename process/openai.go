package process

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ewintr.nl/ytsummary/model"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slog"
)

const summarizePrompt = `You are a helpful assistant that summarizes YouTube videos.
Write a concise summary of the video in one or two short paragraphs. Then list the key insights of the video, each on its own line starting with "• ".
Do not add introductory sentences like "This text is about", or "Summary of...".
`

const fallbackSummaryText = "We could not generate an AI summary for this video right now. The summary service did not return a usable answer."

var fallbackInsights = []string{
	"The API key may be missing or invalid",
	"The request to the summary service failed, possibly because authentication was rejected",
	"Check the server logs for more details",
}

func FallbackSummary() model.Summary {
	insights := make([]string, len(fallbackInsights))
	copy(insights, fallbackInsights)

	return model.Summary{
		Text:     fallbackSummaryText,
		Insights: insights,
		Degraded: true,
	}
}

type OpenAIConfig struct {
	BaseURL   string
	Model     string
	MaxTokens int
}

// OpenAISummarizer asks a chat completion endpoint for a summary. A client
// is built per call, as the API key is supplied with every request.
type OpenAISummarizer struct {
	config OpenAIConfig
	logger *slog.Logger
}

func NewOpenAISummarizer(config OpenAIConfig, logger *slog.Logger) *OpenAISummarizer {
	if config.Model == "" {
		config.Model = openai.GPT3Dot5Turbo
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = 500
	}

	return &OpenAISummarizer{
		config: config,
		logger: logger,
	}
}

func (sum *OpenAISummarizer) Name() string {
	return "openai summarizer"
}

func (sum *OpenAISummarizer) Summarize(ctx context.Context, req SummaryRequest) model.Summary {
	content, err := sum.complete(ctx, req)
	if err != nil {
		sum.logger.Error("failed to generate summary, using fallback",
			slog.String("video", string(req.VideoID)),
			slog.String("error", err.Error()),
		)
		return FallbackSummary()
	}

	text := prose(content)
	if text == "" {
		text = content
	}

	return model.Summary{
		Text:     text,
		Insights: ExtractInsights(content),
	}
}

func (sum *OpenAISummarizer) complete(ctx context.Context, req SummaryRequest) (string, error) {
	config := openai.DefaultConfig(req.APIKey)
	if sum.config.BaseURL != "" {
		config.BaseURL = sum.config.BaseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:     sum.config.Model,
			MaxTokens: sum.config.MaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: summarizePrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt(req),
				},
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to fetch summary: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response contained no choices")
	}

	content := strings.TrimSpace(resp.Choices[len(resp.Choices)-1].Message.Content)
	if content == "" {
		return "", errors.New("response was empty")
	}

	return content, nil
}

func userPrompt(req SummaryRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the YouTube video with id %s.\n", req.VideoID)
	if req.Metadata.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", req.Metadata.Title)
	}
	if req.Metadata.AuthorName != "" {
		fmt.Fprintf(&sb, "Channel: %s\n", req.Metadata.AuthorName)
	}
	if req.Metadata.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", req.Metadata.Description)
	}
	if req.Transcript != "" {
		fmt.Fprintf(&sb, "\nTranscript:\n%s\n", req.Transcript)
	}

	return sb.String()
}
