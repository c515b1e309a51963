package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/handler"
	"ewintr.nl/ytsummary/process"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded, using environment only")
	}

	var metadataFetcher fetch.MetadataFetcher = fetch.NewOEmbed(getParam("OEMBED_ENDPOINT", fetch.DefaultOEmbedEndpoint), http.DefaultClient)
	if ytKey := getParam("YOUTUBE_API_KEY", ""); ytKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(ytKey))
		if err != nil {
			logger.Error("unable to create youtube service", slog.Any("error", err))
			os.Exit(1)
		}
		metadataFetcher = fetch.NewYoutube(ytClient)
		logger.Info("using youtube data api for metadata")
	}

	summarizer, err := newSummarizer(logger)
	if err != nil {
		logger.Error("unable to create summarizer", slog.Any("error", err))
		os.Exit(1)
	}
	pipeline := process.NewPipeline(metadataFetcher, summarizer, logger)
	logger.Info("pipeline ready", slog.String("summarizer", summarizer.Name()))

	if endpoint := getParam("MINIFLUX_ENDPOINT", ""); endpoint != "" {
		fetchInterval, err := time.ParseDuration(getParam("FETCH_INTERVAL", "1m"))
		if err != nil {
			logger.Error("unable to parse fetch interval", slog.Any("error", err))
			os.Exit(1)
		}
		mflx := fetch.NewMiniflux(fetch.MinifluxInfo{
			Endpoint: endpoint,
			ApiKey:   getParam("MINIFLUX_APIKEY", ""),
		})
		watcher := fetch.NewWatcher(mflx, fetchInterval, logger)
		go watcher.Run(ctx)
		go pipeline.Run(ctx, watcher.Out(), getParam("FEED_OPENAI_API_KEY", ""))
		logger.Info("feed watcher started")
	}

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil {
		logger.Error("invalid port", slog.Any("error", err))
		os.Exit(1)
	}
	rateLimit, err := strconv.Atoi(getParam("RATE_LIMIT", "100"))
	if err != nil {
		logger.Error("invalid rate limit", slog.Any("error", err))
		os.Exit(1)
	}
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: handler.Wrap(handler.NewServer(pipeline, logger), handler.MiddlewareConfig{
			AllowedOrigins:    strings.Split(getParam("CORS_ORIGINS", "*"), ","),
			RequestsPerMinute: rateLimit,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()
	logger.Info("http server started", slog.Int("port", port))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	<-done

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.Any("error", err))
	}
	logger.Info("service stopped")
}

func newSummarizer(logger *slog.Logger) (process.Summarizer, error) {
	switch mode := getParam("SUMMARY_MODE", "mock"); mode {
	case "mock":
		delay, err := time.ParseDuration(getParam("MOCK_DELAY", process.DefaultMockDelay.String()))
		if err != nil {
			return nil, fmt.Errorf("invalid mock delay: %w", err)
		}
		return process.NewMockSummarizer(delay), nil
	case "openai":
		maxTokens, err := strconv.Atoi(getParam("OPENAI_MAX_TOKENS", "500"))
		if err != nil {
			return nil, fmt.Errorf("invalid max tokens: %w", err)
		}
		return process.NewOpenAISummarizer(process.OpenAIConfig{
			BaseURL:   getParam("OPENAI_BASE_URL", ""),
			Model:     getParam("OPENAI_MODEL", "gpt-3.5-turbo"),
			MaxTokens: maxTokens,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown summary mode %q", mode)
	}
}

func getParam(param, def string) string {
	if val, ok := os.LookupEnv(param); ok {
		return val
	}
	return def
}
