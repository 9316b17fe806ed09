// Package notion publishes the selected recipe as a page in the Notion workspace.
package notion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/anatolykoptev/go_dinner/internal/engine"
)

// Notion caps a single rich_text item at 2000 characters; longer recipe text
// is split across paragraph blocks.
const maxRichTextLen = 2000

// ErrNoPageID signals a create-page response without a page identifier.
// The external schema is not assumed stable, so this is checked explicitly
// rather than letting the append call fail with something opaque.
var ErrNoPageID = errors.New("notion create page response carries no page ID")

// pageAPI and blockAPI are the two Notion operations this program performs.
type pageAPI interface {
	Create(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error)
}

type blockAPI interface {
	AppendChildren(ctx context.Context, id notionapi.BlockID, req *notionapi.AppendBlockChildrenRequest) (*notionapi.AppendBlockChildrenResponse, error)
}

// Publisher creates one recipe page per run under a fixed parent page.
type Publisher struct {
	pages    pageAPI
	blocks   blockAPI
	parentID notionapi.PageID
	now      func() time.Time
}

// NewPublisher builds a Publisher from an integration token and parent page ID.
func NewPublisher(cfg engine.Config) *Publisher {
	client := notionapi.NewClient(notionapi.Token(cfg.NotionAPIKey))
	return &Publisher{
		pages:    client.Page,
		blocks:   client.Block,
		parentID: notionapi.PageID(cfg.NotionParentID),
		now:      time.Now,
	}
}

// PageTitle builds the page title for a dish on a given day.
func PageTitle(day time.Time, dish string) string {
	return fmt.Sprintf("Dinner on %s: %s", day.Format("2006-01-02"), dish)
}

// Publish creates the titled page and appends the recipe text as paragraph
// blocks. Returns the created page URL. When the create response lacks a page
// ID, the append is never attempted.
func (p *Publisher) Publish(ctx context.Context, dish, recipeText string) (string, error) {
	title := PageTitle(p.now(), dish)

	page, err := p.pages.Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:   notionapi.ParentTypePageID,
			PageID: p.parentID,
		},
		Properties: notionapi.Properties{
			"title": notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{richText(title)},
			},
		},
	})
	if err != nil {
		engine.IncrNotionError()
		return "", fmt.Errorf("create page: %w", err)
	}
	if page == nil || page.ID == "" {
		engine.IncrNotionError()
		return "", ErrNoPageID
	}
	engine.IncrNotionPage()

	children := make([]notionapi.Block, 0, 1)
	for _, chunk := range splitBlocks(recipeText, maxRichTextLen) {
		children = append(children, &notionapi.ParagraphBlock{
			BasicBlock: notionapi.BasicBlock{
				Object: notionapi.ObjectTypeBlock,
				Type:   notionapi.BlockTypeParagraph,
			},
			Paragraph: notionapi.Paragraph{
				RichText: []notionapi.RichText{richText(chunk)},
			},
		})
	}

	if _, err := p.blocks.AppendChildren(ctx, notionapi.BlockID(page.ID), &notionapi.AppendBlockChildrenRequest{
		Children: children,
	}); err != nil {
		engine.IncrNotionError()
		return page.URL, fmt.Errorf("append content: %w", err)
	}
	return page.URL, nil
}

func richText(content string) notionapi.RichText {
	return notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: content},
	}
}

// splitBlocks splits text into chunks of at most limit runes, preferring
// line boundaries. A single overlong line is hard-split.
func splitBlocks(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for len([]rune(line)) > limit {
			flush()
			r := []rune(line)
			chunks = append(chunks, string(r[:limit]))
			line = string(r[limit:])
		}
		add := len([]rune(line))
		if cur.Len() > 0 {
			add++ // the newline separator
		}
		if len([]rune(cur.String()))+add > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	flush()
	return chunks
}
