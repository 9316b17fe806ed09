package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across one run.
var metrics struct {
	YouTubeSearchRequests     atomic.Int64
	YouTubeTranscriptRequests atomic.Int64
	TranscriptErrors          atomic.Int64
	LLMCalls                  atomic.Int64
	LLMErrors                 atomic.Int64
	NotionPages               atomic.Int64
	NotionErrors              atomic.Int64
}

// IncrYouTubeSearch increments the YouTube search counter.
func IncrYouTubeSearch() { metrics.YouTubeSearchRequests.Add(1) }

// IncrYouTubeTranscript increments the transcript fetch counter.
func IncrYouTubeTranscript() { metrics.YouTubeTranscriptRequests.Add(1) }

// IncrTranscriptError increments the transcript failure counter.
func IncrTranscriptError() { metrics.TranscriptErrors.Add(1) }

// IncrLLMCall increments the LLM call counter.
func IncrLLMCall() { metrics.LLMCalls.Add(1) }

// IncrLLMError increments the LLM error counter.
func IncrLLMError() { metrics.LLMErrors.Add(1) }

// IncrNotionPage increments the created-pages counter.
func IncrNotionPage() { metrics.NotionPages.Add(1) }

// IncrNotionError increments the Notion failure counter.
func IncrNotionError() { metrics.NotionErrors.Add(1) }

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"youtube_search_requests":     metrics.YouTubeSearchRequests.Load(),
		"youtube_transcript_requests": metrics.YouTubeTranscriptRequests.Load(),
		"transcript_errors":           metrics.TranscriptErrors.Load(),
		"llm_calls":                   metrics.LLMCalls.Load(),
		"llm_errors":                  metrics.LLMErrors.Load(),
		"notion_pages":                metrics.NotionPages.Load(),
		"notion_errors":               metrics.NotionErrors.Load(),
	}
}

// FormatMetrics returns counters as simple "name value" lines for end-of-run logging.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"youtube_search_requests", "youtube_transcript_requests", "transcript_errors",
		"llm_calls", "llm_errors",
		"notion_pages", "notion_errors",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
