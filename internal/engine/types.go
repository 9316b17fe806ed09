package engine

// Video is one YouTube search result.
type Video struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Transcript pairs a watch URL with its full caption text.
// Transcripts travel as an ordered slice, not a map — the selector prompt
// must list sources in search order, and map iteration would scramble it.
type Transcript struct {
	URL  string
	Text string
}
