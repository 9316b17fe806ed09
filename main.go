// go_dinner — YouTube-to-Notion recipe picker.
//
// One run: read a dish name from stdin, search YouTube for cooking videos,
// fetch their transcripts, let the LLM pick and write up the simplest recipe,
// publish it as a dated Notion page.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/joho/godotenv"

	"github.com/anatolykoptev/go_dinner/internal/dinner"
	"github.com/anatolykoptev/go_dinner/internal/engine"
	"github.com/anatolykoptev/go_dinner/internal/notion"
	"github.com/anatolykoptev/go_dinner/internal/output"
	"github.com/anatolykoptev/go_dinner/internal/recipe"
	"github.com/anatolykoptev/go_dinner/internal/sources"
)

func main() {
	err := godotenv.Load()
	initLogging()
	if err != nil {
		slog.Debug("no .env file loaded", slog.Any("err", err))
	}

	out := output.NewPrinter()

	cfg := loadConfig()
	if err := validate(cfg); err != nil {
		out.Failure("%v", err)
		os.Exit(1)
	}

	dish := promptDish(os.Stdin)
	if dish == "" {
		out.Failure("No dish name given.")
		return
	}

	yt := sources.NewYouTube(cfg)
	pipeline := &dinner.Pipeline{
		Finder:             yt,
		Fetcher:            yt,
		Selector:           recipe.NewSelector(engine.NewLLM(cfg)),
		Publisher:          notion.NewPublisher(cfg),
		MaxVideos:          cfg.MaxVideos,
		MaxTranscriptChars: cfg.MaxTranscriptChars,
		Out:                out,
	}
	pipeline.Run(context.Background(), dish)

	slog.Debug("run metrics\n" + engine.FormatMetrics())
}

// loadConfig reads all configuration from the environment.
func loadConfig() engine.Config {
	return engine.Config{
		GoogleAPIKey:       env.Str("GOOGLE_API_KEY", ""),
		NotionAPIKey:       env.Str("NOTION_API_KEY", ""),
		NotionParentID:     env.Str("NOTION_PAGE_ID", ""),
		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:           env.Str("LLM_MODEL", "gemini-2.0-flash"),
		LLMTemperature:     env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:       env.Int("LLM_MAX_TOKENS", 2048),
		MaxVideos:          env.Int("MAX_VIDEOS", 3),
		SearchLanguage:     env.Str("RELEVANCE_LANGUAGE", "en"),
		TranscriptLangs:    env.List("TRANSCRIPT_LANGS", "en"),
		MaxTranscriptChars: env.Int("MAX_TRANSCRIPT_CHARS", 8000),
		HTTPClient:         engine.NewHTTPClient(),
	}
}

// validate checks the three required configuration values.
func validate(cfg engine.Config) error {
	var missing []string
	if cfg.GoogleAPIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	if cfg.NotionAPIKey == "" {
		missing = append(missing, "NOTION_API_KEY")
	}
	if cfg.NotionParentID == "" {
		missing = append(missing, "NOTION_PAGE_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}
	return nil
}

// promptDish asks for the dish name on stdin.
func promptDish(in io.Reader) string {
	fmt.Print("Enter the dish you want to make: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func initLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(env.Str("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
