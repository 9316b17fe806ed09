package engine

import (
	"net/http"
	"time"
)

// Config holds all pipeline configuration, built in main from the environment.
// There is no package-level config: every collaborator receives what it needs
// at construction time and lives for the duration of one run.
type Config struct {
	GoogleAPIKey       string // YouTube Data API v3 + Gemini completions
	NotionAPIKey       string
	NotionParentID     string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	MaxVideos          int      // search result cap, default 3
	SearchLanguage     string   // relevanceLanguage for the Data API
	TranscriptLangs    []string // caption language preference order
	MaxTranscriptChars int      // per-transcript cap before the LLM prompt
	HTTPClient         *http.Client
}

// NewHTTPClient returns the shared HTTP client used for all YouTube calls.
// Timeouts here are the only timeout layer in the program.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}
}
