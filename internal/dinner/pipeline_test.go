package dinner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_dinner/internal/engine"
	"github.com/anatolykoptev/go_dinner/internal/output"
)

type fakeFinder struct {
	videos []engine.Video
	err    error
	calls  int
}

func (f *fakeFinder) Search(_ context.Context, _ string, _ int) ([]engine.Video, error) {
	f.calls++
	return f.videos, f.err
}

type fakeFetcher struct {
	texts map[string]string // videoID → transcript; missing = error
	calls []string
}

func (f *fakeFetcher) Transcript(_ context.Context, videoID string) (string, error) {
	f.calls = append(f.calls, videoID)
	text, ok := f.texts[videoID]
	if !ok {
		return "", errors.New("no captions")
	}
	return text, nil
}

type fakeSelector struct {
	reply string
	err   error
	got   []engine.Transcript
	calls int
}

func (f *fakeSelector) Select(_ context.Context, ts []engine.Transcript) (string, error) {
	f.calls++
	f.got = ts
	return f.reply, f.err
}

type fakePublisher struct {
	url   string
	err   error
	calls int
	dish  string
	text  string
}

func (f *fakePublisher) Publish(_ context.Context, dish, text string) (string, error) {
	f.calls++
	f.dish = dish
	f.text = text
	return f.url, f.err
}

func video(id string) engine.Video {
	return engine.Video{ID: id, URL: "https://www.youtube.com/watch?v=" + id}
}

func newTestPipeline(finder *fakeFinder, fetcher *fakeFetcher, selector *fakeSelector, publisher *fakePublisher) (*Pipeline, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Pipeline{
		Finder:    finder,
		Fetcher:   fetcher,
		Selector:  selector,
		Publisher: publisher,
		MaxVideos: 3,
		Out:       output.NewPrinterTo(&buf, &buf),
	}, &buf
}

func TestRunNoVideosStopsEarly(t *testing.T) {
	fetcher := &fakeFetcher{}
	selector := &fakeSelector{}
	publisher := &fakePublisher{}
	p, buf := newTestPipeline(&fakeFinder{}, fetcher, selector, publisher)

	p.Run(context.Background(), "unobtainium soup")

	assert.Contains(t, buf.String(), "No videos found.")
	assert.Empty(t, fetcher.calls, "fetcher must not run")
	assert.Zero(t, selector.calls, "selector must not run")
	assert.Zero(t, publisher.calls, "publisher must not run")
}

func TestRunSearchErrorStopsEarly(t *testing.T) {
	finder := &fakeFinder{err: errors.New("quota exceeded")}
	publisher := &fakePublisher{}
	p, buf := newTestPipeline(finder, &fakeFetcher{}, &fakeSelector{}, publisher)

	p.Run(context.Background(), "soup")

	assert.Contains(t, buf.String(), "No videos found.")
	assert.Zero(t, publisher.calls)
}

func TestRunAllTranscriptsFail(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{video("aaaaaaaaaaa"), video("bbbbbbbbbbb")}}
	selector := &fakeSelector{err: errors.New("no transcripts available for analysis")}
	publisher := &fakePublisher{}
	p, buf := newTestPipeline(finder, &fakeFetcher{}, selector, publisher)

	p.Run(context.Background(), "soup")

	require.Equal(t, 1, selector.calls)
	assert.Empty(t, selector.got, "selector receives an empty transcript list")
	assert.Contains(t, buf.String(), "No suitable recipe found.")
	assert.Zero(t, publisher.calls, "publisher must not run")
}

func TestRunHappyPath(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{
		video("aaaaaaaaaaa"), video("bbbbbbbbbbb"), video("ccccccccccc"),
	}}
	fetcher := &fakeFetcher{texts: map[string]string{
		"aaaaaaaaaaa": "first",
		"bbbbbbbbbbb": "second",
		"ccccccccccc": "third",
	}}
	selector := &fakeSelector{reply: "Recipe.\nSource: https://www.youtube.com/watch?v=aaaaaaaaaaa"}
	publisher := &fakePublisher{url: "https://notion.so/p1"}
	p, buf := newTestPipeline(finder, fetcher, selector, publisher)

	p.Run(context.Background(), "garlic butter shrimp")

	// Transcripts arrive in search order.
	require.Len(t, selector.got, 3)
	assert.Equal(t, "first", selector.got[0].Text)
	assert.Equal(t, "second", selector.got[1].Text)
	assert.Equal(t, "third", selector.got[2].Text)
	assert.Equal(t, []string{"aaaaaaaaaaa", "bbbbbbbbbbb", "ccccccccccc"}, fetcher.calls,
		"transcripts are fetched sequentially in search order")

	require.Equal(t, 1, publisher.calls)
	assert.Equal(t, "garlic butter shrimp", publisher.dish)
	assert.Equal(t, selector.reply, publisher.text)
	assert.Contains(t, buf.String(), "saved in Notion")
	assert.Contains(t, buf.String(), "Process completed!")
}

func TestRunPartialTranscriptFailure(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{video("aaaaaaaaaaa"), video("bbbbbbbbbbb")}}
	fetcher := &fakeFetcher{texts: map[string]string{"bbbbbbbbbbb": "only this one"}}
	selector := &fakeSelector{reply: "Recipe"}
	publisher := &fakePublisher{url: "https://notion.so/p2"}
	p, buf := newTestPipeline(finder, fetcher, selector, publisher)

	p.Run(context.Background(), "soup")

	require.Len(t, selector.got, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=bbbbbbbbbbb", selector.got[0].URL)
	assert.Contains(t, buf.String(), "Failed to fetch transcript for https://www.youtube.com/watch?v=aaaaaaaaaaa")
	assert.Equal(t, 1, publisher.calls, "a partial transcript set still publishes")
}

func TestRunPublishCreateFailure(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{video("aaaaaaaaaaa")}}
	fetcher := &fakeFetcher{texts: map[string]string{"aaaaaaaaaaa": "t"}}
	selector := &fakeSelector{reply: "Recipe"}
	publisher := &fakePublisher{err: errors.New("create page: 401")}
	p, buf := newTestPipeline(finder, fetcher, selector, publisher)

	p.Run(context.Background(), "soup")

	assert.Contains(t, buf.String(), "Failed to create Notion page")
	assert.NotContains(t, buf.String(), "Process completed!")
}

func TestRunPublishAppendFailure(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{video("aaaaaaaaaaa")}}
	fetcher := &fakeFetcher{texts: map[string]string{"aaaaaaaaaaa": "t"}}
	selector := &fakeSelector{reply: "Recipe"}
	publisher := &fakePublisher{url: "https://notion.so/p3", err: errors.New("append content: 502")}
	p, buf := newTestPipeline(finder, fetcher, selector, publisher)

	p.Run(context.Background(), "soup")

	out := buf.String()
	assert.Contains(t, out, "appending the recipe failed")
	assert.Contains(t, out, "Process completed!", "append failure does not abort the run")
}

func TestRunTruncatesLongTranscripts(t *testing.T) {
	finder := &fakeFinder{videos: []engine.Video{video("aaaaaaaaaaa")}}
	fetcher := &fakeFetcher{texts: map[string]string{"aaaaaaaaaaa": strings.Repeat("w", 500)}}
	selector := &fakeSelector{reply: "Recipe"}
	p, _ := newTestPipeline(finder, fetcher, selector, &fakePublisher{url: "u"})
	p.MaxTranscriptChars = 100

	p.Run(context.Background(), "soup")

	require.Len(t, selector.got, 1)
	assert.LessOrEqual(t, len(selector.got[0].Text), 103) // 100 runes + "..."
}
