// Package dinner sequences the four pipeline steps for one run.
package dinner

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_dinner/internal/engine"
	"github.com/anatolykoptev/go_dinner/internal/output"
	"github.com/anatolykoptev/go_dinner/internal/recipe"
)

// The pipeline talks to its collaborators through one-method interfaces so a
// run can be exercised end to end without the network.

// VideoFinder searches for candidate cooking videos.
type VideoFinder interface {
	Search(ctx context.Context, query string, limit int) ([]engine.Video, error)
}

// TranscriptFetcher fetches the caption text for one video.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// RecipeSelector picks and writes up one recipe from the transcripts.
type RecipeSelector interface {
	Select(ctx context.Context, transcripts []engine.Transcript) (string, error)
}

// RecipePublisher publishes the recipe and returns the created page URL.
type RecipePublisher interface {
	Publish(ctx context.Context, dish, recipeText string) (string, error)
}

// Pipeline holds the collaborators for one run. All fields are required.
type Pipeline struct {
	Finder    VideoFinder
	Fetcher   TranscriptFetcher
	Selector  RecipeSelector
	Publisher RecipePublisher

	MaxVideos          int
	MaxTranscriptChars int

	Out *output.Printer
}

// Run executes search, transcripts, selection, and publish for one dish.
// Every failure terminates with a printed message only; the process exits zero
// whether or not a recipe made it to Notion.
func (p *Pipeline) Run(ctx context.Context, dish string) {
	p.Out.Step("Searching YouTube for %q...", dish)
	videos, err := p.Finder.Search(ctx, dish, p.MaxVideos)
	if err != nil {
		slog.Error("youtube search failed", slog.Any("err", err))
	}
	if len(videos) == 0 {
		p.Out.Failure("No videos found.")
		return
	}

	p.Out.Step("Extracting transcripts from %d video(s)...", len(videos))
	transcripts := p.fetchTranscripts(ctx, videos)

	p.Out.Step("Selecting the best recipe...")
	best, err := p.Selector.Select(ctx, transcripts)
	if err != nil {
		slog.Error("recipe selection failed", slog.Any("err", err))
		p.Out.Failure("No suitable recipe found.")
		return
	}
	if link, ok := recipe.SourceLink(best); ok {
		slog.Info("recipe selected", slog.String("source", link))
	} else {
		slog.Warn("recipe selected without a recognizable source link")
	}

	p.Out.Step("Saving to Notion...")
	pageURL, err := p.Publisher.Publish(ctx, dish, best)
	switch {
	case err != nil && pageURL == "":
		slog.Error("notion page creation failed", slog.Any("err", err))
		p.Out.Failure("Failed to create Notion page: %v", err)
		return
	case err != nil:
		slog.Error("notion append failed", slog.Any("err", err), slog.String("page", pageURL))
		p.Out.Warning("Page created, but appending the recipe failed: %v", err)
	default:
		p.Out.Success("Recipe %q saved in Notion: %s", dish, pageURL)
	}
	p.Out.Success("Process completed!")
}

// fetchTranscripts fetches transcripts one video at a time, in search order.
// Per-video failures are logged and the video dropped.
func (p *Pipeline) fetchTranscripts(ctx context.Context, videos []engine.Video) []engine.Transcript {
	transcripts := make([]engine.Transcript, 0, len(videos))
	for _, v := range videos {
		text, err := p.Fetcher.Transcript(ctx, v.ID)
		if err != nil {
			slog.Warn("transcript fetch failed",
				slog.String("url", v.URL), slog.Any("err", err))
			p.Out.Warning("Failed to fetch transcript for %s", v.URL)
			continue
		}
		if p.MaxTranscriptChars > 0 {
			text = engine.TruncateRunes(text, p.MaxTranscriptChars, "...")
		}
		transcripts = append(transcripts, engine.Transcript{URL: v.URL, Text: text})
	}
	return transcripts
}
