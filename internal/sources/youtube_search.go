package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_dinner/internal/engine"
)

// Video search. The Data API v3 is used when a key is configured; without one
// the public results page is scraped and ytInitialData walked for videoRenderer
// entries. Both paths return canonical watch URLs.

const (
	ytInitialDataMarker = "var ytInitialData = "
	ytSearchFilter      = "EgIQAQ%3D%3D" // videos-only filter param
)

// --- Data API v3 response types ---

type dataSearchResp struct {
	Items []dataSearchItem `json:"items"`
}

type dataSearchItem struct {
	ID struct {
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelTitle string `json:"channelTitle"`
	} `json:"snippet"`
}

// --- ytInitialData scraping types ---

type videoRenderer struct {
	VideoID string `json:"videoId"`
	Title   struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"title"`
	OwnerText struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"ownerText"`
	DescriptionSnippet *struct {
		Runs []struct {
			Text string `json:"text"`
		} `json:"runs"`
	} `json:"descriptionSnippet"`
}

// Search returns up to limit cooking-video candidates for the query.
func (yt *YouTube) Search(ctx context.Context, query string, limit int) ([]engine.Video, error) {
	engine.IncrYouTubeSearch()
	if limit <= 0 || limit > 10 {
		limit = 3
	}
	if yt.apiKey != "" {
		return yt.searchDataAPI(ctx, query, limit)
	}
	return yt.searchInitialData(ctx, query, limit)
}

// searchDataAPI queries the Data API v3 search.list endpoint.
func (yt *YouTube) searchDataAPI(ctx context.Context, query string, limit int) ([]engine.Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("key", yt.apiKey)
	if yt.language != "" && yt.language != "all" {
		params.Set("relevanceLanguage", yt.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, yt.dataAPIBase+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := yt.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("youtube data API %d: %s", resp.StatusCode, string(body))
	}

	var result dataSearchResp
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode youtube data API: %w", err)
	}

	videos := make([]engine.Video, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, engine.Video{
			ID:      item.ID.VideoID,
			Title:   item.Snippet.Title,
			URL:     WatchURL(item.ID.VideoID),
			Snippet: engine.Truncate(item.Snippet.ChannelTitle+": "+item.Snippet.Description, 200),
		})
	}
	return videos, nil
}

// searchInitialData scrapes the results page and walks ytInitialData.
func (yt *YouTube) searchInitialData(ctx context.Context, query string, limit int) ([]engine.Video, error) {
	searchURL := yt.wwwBase + "/results?search_query=" + url.QueryEscape(query) + "&sp=" + ytSearchFilter

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentChrome)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := yt.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read youtube search response: %w", err)
	}

	idx := strings.Index(string(body), ytInitialDataMarker)
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialData not found in search response")
	}
	jsonData := extractJSON(body[idx+len(ytInitialDataMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("malformed ytInitialData JSON")
	}
	return videosFromInitialData(jsonData, limit), nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by tracking brace depth.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	var prev byte
	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}
	return nil
}

// videosFromInitialData recursively walks ytInitialData for videoRenderer entries.
func videosFromInitialData(data []byte, limit int) []engine.Video {
	var results []engine.Video
	var walk func(v json.RawMessage)
	walk = func(v json.RawMessage) {
		if len(results) >= limit {
			return
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(v, &obj); err == nil {
			if raw, ok := obj["videoRenderer"]; ok {
				var vr videoRenderer
				if err := json.Unmarshal(raw, &vr); err == nil && vr.VideoID != "" {
					title := ""
					if len(vr.Title.Runs) > 0 {
						title = vr.Title.Runs[0].Text
					}
					channel := ""
					if len(vr.OwnerText.Runs) > 0 {
						channel = vr.OwnerText.Runs[0].Text
					}
					var snippet []string
					if vr.DescriptionSnippet != nil {
						for _, r := range vr.DescriptionSnippet.Runs {
							snippet = append(snippet, r.Text)
						}
					}
					results = append(results, engine.Video{
						ID:      vr.VideoID,
						Title:   title,
						URL:     WatchURL(vr.VideoID),
						Snippet: engine.Truncate(channel+": "+strings.Join(snippet, ""), 200),
					})
					return
				}
			}
			for _, child := range obj {
				if len(results) >= limit {
					return
				}
				walk(child)
			}
			return
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(v, &arr); err == nil {
			for _, item := range arr {
				if len(results) >= limit {
					return
				}
				walk(item)
			}
		}
	}
	walk(data)
	return results
}
