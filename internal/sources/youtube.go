// Package sources talks to YouTube. Implementation is split by responsibility:
//
//	youtube.go            — the YouTube collaborator, constructor, URL helpers
//	youtube_search.go     — video search (Data API v3 + ytInitialData scraping fallback)
//	youtube_transcript.go — transcript fetching (watch-page scrape + ANDROID player fallback)
package sources

import (
	"net/http"
	"regexp"

	"github.com/anatolykoptev/go_dinner/internal/engine"
)

const (
	dataAPIBase  = "https://www.googleapis.com/youtube/v3"
	wwwBase      = "https://www.youtube.com"
	watchURLBase = "https://www.youtube.com/watch?v="
)

// YouTube searches for videos and fetches their transcripts.
// The zero value is not usable; construct with NewYouTube.
type YouTube struct {
	apiKey   string   // Data API v3 key; empty switches search to scraping
	language string   // relevanceLanguage for the Data API
	langs    []string // caption language preference order
	http     *http.Client

	// Endpoint bases are fields so tests can point them at a local server.
	dataAPIBase string
	wwwBase     string
}

// NewYouTube builds a YouTube collaborator from pipeline config.
func NewYouTube(cfg engine.Config) *YouTube {
	langs := cfg.TranscriptLangs
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &YouTube{
		apiKey:      cfg.GoogleAPIKey,
		language:    engine.NormLang(cfg.SearchLanguage),
		langs:       langs,
		http:        cfg.HTTPClient,
		dataAPIBase: dataAPIBase,
		wwwBase:     wwwBase,
	}
}

var videoIDRE = regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID pulls the 11-char video ID from any YouTube URL format.
// Returns "" when the URL is not a recognizable watch link.
func ExtractVideoID(rawURL string) string {
	m := videoIDRE.FindStringSubmatch(rawURL)
	if len(m) >= 2 {
		return m[1]
	}
	return ""
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return watchURLBase + videoID
}
