package notion

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePages struct {
	page  *notionapi.Page
	err   error
	calls int
	req   *notionapi.PageCreateRequest
}

func (f *fakePages) Create(_ context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	f.calls++
	f.req = req
	return f.page, f.err
}

type fakeBlocks struct {
	err   error
	calls int
	id    notionapi.BlockID
	req   *notionapi.AppendBlockChildrenRequest
}

func (f *fakeBlocks) AppendChildren(_ context.Context, id notionapi.BlockID, req *notionapi.AppendBlockChildrenRequest) (*notionapi.AppendBlockChildrenResponse, error) {
	f.calls++
	f.id = id
	f.req = req
	return &notionapi.AppendBlockChildrenResponse{}, f.err
}

func testPublisher(pages *fakePages, blocks *fakeBlocks) *Publisher {
	return &Publisher{
		pages:    pages,
		blocks:   blocks,
		parentID: "parent-123",
		now:      func() time.Time { return time.Date(2024, 6, 1, 19, 30, 0, 0, time.UTC) },
	}
}

func TestPageTitle(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := PageTitle(day, "garlic butter shrimp")
	assert.Equal(t, "Dinner on 2024-06-01: garlic butter shrimp", got)
}

func TestPublishHappyPath(t *testing.T) {
	pages := &fakePages{page: &notionapi.Page{ID: "page-1", URL: "https://notion.so/page-1"}}
	blocks := &fakeBlocks{}
	p := testPublisher(pages, blocks)

	url, err := p.Publish(context.Background(), "garlic butter shrimp", "Melt butter.\nAdd shrimp.")
	require.NoError(t, err)
	assert.Equal(t, "https://notion.so/page-1", url)

	require.Equal(t, 1, pages.calls)
	require.Equal(t, 1, blocks.calls)
	assert.Equal(t, notionapi.BlockID("page-1"), blocks.id)

	// Page is created under the configured parent with the dated title.
	assert.Equal(t, notionapi.PageID("parent-123"), pages.req.Parent.PageID)
	title := pages.req.Properties["title"].(notionapi.TitleProperty)
	require.Len(t, title.Title, 1)
	assert.Equal(t, "Dinner on 2024-06-01: garlic butter shrimp", title.Title[0].Text.Content)

	// Recipe text lands in one paragraph block.
	require.Len(t, blocks.req.Children, 1)
	para := blocks.req.Children[0].(*notionapi.ParagraphBlock)
	assert.Equal(t, "Melt butter.\nAdd shrimp.", para.Paragraph.RichText[0].Text.Content)
}

func TestPublishNoPageID(t *testing.T) {
	pages := &fakePages{page: &notionapi.Page{}}
	blocks := &fakeBlocks{}
	p := testPublisher(pages, blocks)

	_, err := p.Publish(context.Background(), "soup", "text")
	require.ErrorIs(t, err, ErrNoPageID)
	assert.Zero(t, blocks.calls, "append must never run without a page ID")
}

func TestPublishCreateError(t *testing.T) {
	wantErr := errors.New("boom")
	pages := &fakePages{err: wantErr}
	blocks := &fakeBlocks{}
	p := testPublisher(pages, blocks)

	_, err := p.Publish(context.Background(), "soup", "text")
	require.ErrorIs(t, err, wantErr)
	assert.Zero(t, blocks.calls)
}

func TestPublishAppendError(t *testing.T) {
	pages := &fakePages{page: &notionapi.Page{ID: "page-2", URL: "https://notion.so/page-2"}}
	blocks := &fakeBlocks{err: errors.New("append failed")}
	p := testPublisher(pages, blocks)

	url, err := p.Publish(context.Background(), "soup", "text")
	require.Error(t, err)
	// The page exists even when the append fails.
	assert.Equal(t, "https://notion.so/page-2", url)
}

func TestSplitBlocks(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		got := splitBlocks("a\nb\nc", 100)
		assert.Equal(t, []string{"a\nb\nc"}, got)
	})

	t.Run("splits at line boundaries", func(t *testing.T) {
		long := strings.Repeat("x", 60)
		got := splitBlocks(long+"\n"+long, 100)
		assert.Equal(t, []string{long, long}, got)
	})

	t.Run("hard splits an overlong line", func(t *testing.T) {
		got := splitBlocks(strings.Repeat("y", 250), 100)
		require.Len(t, got, 3)
		assert.Len(t, got[0], 100)
		assert.Len(t, got[1], 100)
		assert.Len(t, got[2], 50)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, splitBlocks("  \n ", 100))
	})

	t.Run("chunks never exceed limit", func(t *testing.T) {
		text := strings.Repeat("line of reasonable length\n", 400)
		for _, c := range splitBlocks(text, 2000) {
			assert.LessOrEqual(t, len([]rune(c)), 2000)
		}
	})
}
