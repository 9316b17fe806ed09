// Package recipe turns video transcripts into one publishable recipe via the LLM.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_dinner/internal/engine"
)

// ErrNoTranscripts signals that selection was attempted with nothing to select from.
var ErrNoTranscripts = errors.New("no transcripts available for analysis")

// ErrEmptyRecipe signals that the model returned only whitespace.
var ErrEmptyRecipe = errors.New("model returned an empty recipe")

// Completer is the single LLM operation the selector needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Selector picks and writes up the simplest recipe from a set of transcripts.
type Selector struct {
	llm Completer
}

// NewSelector builds a Selector around an LLM client.
func NewSelector(llm Completer) *Selector {
	return &Selector{llm: llm}
}

// Select builds one prompt from all transcripts and performs one blocking
// completion call. Returns ErrNoTranscripts when there is nothing to analyze.
func (s *Selector) Select(ctx context.Context, transcripts []engine.Transcript) (string, error) {
	if len(transcripts) == 0 {
		return "", ErrNoTranscripts
	}

	raw, err := s.llm.Complete(ctx, BuildPrompt(transcripts))
	if err != nil {
		return "", fmt.Errorf("recipe selection: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyRecipe
	}
	return raw, nil
}

// BuildPrompt concatenates the chef instruction with every transcript labeled
// by its source URL, each exactly once, in input order.
func BuildPrompt(transcripts []engine.Transcript) string {
	var sb strings.Builder
	sb.WriteString(chefInstruction)
	for _, t := range transcripts {
		sb.WriteString("\n\nVideo: ")
		sb.WriteString(t.URL)
		sb.WriteByte('\n')
		sb.WriteString(t.Text)
	}
	return sb.String()
}

var watchURLRE = regexp.MustCompile(`https://(?:www\.)?youtube\.com/watch\?v=[a-zA-Z0-9_-]{11}|https://youtu\.be/[a-zA-Z0-9_-]{11}`)

// SourceLink extracts the referenced watch URL from model output.
// Pattern matching over free text is fragile, so "no match" is an explicit
// second return rather than a silent empty string.
func SourceLink(text string) (string, bool) {
	m := watchURLRE.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}
