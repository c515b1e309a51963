package process

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ewintr.nl/ytsummary/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	})
	return string(body)
}

func TestOpenAISummarizer(t *testing.T) {
	var gotAuth string
	var gotReq struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody("The video explains channels.\n\n• Channels connect goroutines\n- Buffered channels decouple\n* Close from the sender"))
	}))
	defer srv.Close()

	sum := NewOpenAISummarizer(OpenAIConfig{BaseURL: srv.URL + "/v1", Model: "test-model", MaxTokens: 123}, testLogger())
	act := sum.Summarize(context.Background(), SummaryRequest{
		VideoID:    "dQw4w9WgXcQ",
		Metadata:   model.Metadata{Title: "Go channels"},
		Transcript: "today we talk about channels",
		APIKey:     "secret",
	})

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 123, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, summarizePrompt, gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Contains(t, gotReq.Messages[1].Content, "Go channels")
	assert.Contains(t, gotReq.Messages[1].Content, "today we talk about channels")

	assert.False(t, act.Degraded)
	assert.Equal(t, "The video explains channels.", act.Text)
	assert.Equal(t, []string{"Channels connect goroutines", "Buffered channels decouple", "Close from the sender"}, act.Insights)
}

func TestOpenAISummarizerOnlyBullets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody("- one\n- two"))
	}))
	defer srv.Close()

	sum := NewOpenAISummarizer(OpenAIConfig{BaseURL: srv.URL}, testLogger())
	act := sum.Summarize(context.Background(), SummaryRequest{VideoID: "id", APIKey: "key"})

	assert.Equal(t, "- one\n- two", act.Text)
	assert.Equal(t, []string{"one", "two"}, act.Insights)
}

func TestOpenAISummarizerFallback(t *testing.T) {
	for _, tc := range []struct {
		name    string
		handler http.HandlerFunc
		closed  bool
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error":{"message":"boom"}}`)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"choices": [`)
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"id":"x","choices":[]}`)
			},
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, completionBody("  "))
			},
		},
		{
			name:    "network error",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			closed:  true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			if tc.closed {
				srv.Close()
			} else {
				defer srv.Close()
			}

			sum := NewOpenAISummarizer(OpenAIConfig{BaseURL: srv.URL}, testLogger())
			act := sum.Summarize(context.Background(), SummaryRequest{VideoID: "id", APIKey: "bad"})

			assert.True(t, act.Degraded)
			assert.Equal(t, fallbackSummaryText, act.Text)
			assert.Len(t, act.Insights, 3)
		})
	}
}

func TestFallbackSummaryIsCopy(t *testing.T) {
	fb := FallbackSummary()
	fb.Insights[0] = "changed"
	assert.NotEqual(t, "changed", FallbackSummary().Insights[0])
}

func TestUserPrompt(t *testing.T) {
	act := userPrompt(SummaryRequest{VideoID: "abc"})
	assert.Equal(t, "Summarize the YouTube video with id abc.\n", act)

	act = userPrompt(SummaryRequest{
		VideoID:  "abc",
		Metadata: model.Metadata{Title: "t", AuthorName: "a", Description: "d"},
	})
	assert.Contains(t, act, "Title: t\n")
	assert.Contains(t, act, "Channel: a\n")
	assert.Contains(t, act, "Description: d\n")
	assert.NotContains(t, act, "Transcript")
}
