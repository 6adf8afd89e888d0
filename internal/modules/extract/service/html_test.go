package service

import (
	"fmt"
	"strings"
	"testing"

	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *HTML {
	t.Helper()
	h, err := NewHTML("https://example.org", "/news", "acme")
	require.NoError(t, err)
	return h
}

func TestNewHTMLRejectsRelativeOrigin(t *testing.T) {
	_, err := NewHTML("/not-absolute", "/news", "acme")
	assert.Error(t, err)
}

func TestExtractArticleWithDateAndSummary(t *testing.T) {
	page := `<html><body><main><article>
		<a href="/news/foo">Foo Title</a>
		<time datetime="2024-01-01">Jan 1</time>
		<p>Foo Title</p>
		<p>A short summary.</p>
	</article></main></body></html>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "Foo Title", items[0].Title)
	assert.Equal(t, "https://example.org/news/foo", items[0].Link)
	assert.Equal(t, "2024-01-01", items[0].PubDate)
	assert.Equal(t, "A short summary.", items[0].Description)
	assert.Equal(t, "acme:https://example.org/news/foo", items[0].GUID)
}

func TestExtractLinkShapes(t *testing.T) {
	tests := []struct {
		name string
		href string
		want bool
	}{
		{"relative article path", "/news/foo", true},
		{"trailing slash", "/news/foo/", true},
		{"absolute same host", "https://example.org/news/bar", true},
		{"listing page itself", "/news", false},
		{"listing page with slash", "/news/", false},
		{"query string", "/news/foo?ref=home", false},
		{"fragment", "/news/foo#section", false},
		{"nested path", "/news/2024/foo", false},
		{"other host", "https://other.example.com/news/foo", false},
		{"outside prefix", "/blog/foo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := fmt.Sprintf(`<main><a href=%q>Some Title</a></main>`, tt.href)
			items := newTestExtractor(t).Extract(page)
			if tt.want {
				assert.Len(t, items, 1)
			} else {
				assert.Empty(t, items)
			}
		})
	}
}

func TestExtractSearchesWholeDocumentWithoutMain(t *testing.T) {
	page := `<html><body><div>
		<a href="/news/foo">Foo</a>
	</div></body></html>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "https://example.org/news/foo", items[0].Link)
}

func TestExtractIgnoresAnchorsOutsideMain(t *testing.T) {
	page := `<html><body>
		<nav><a href="/news/from-nav">Nav Link</a></nav>
		<main><a href="/news/from-main">Main Link</a></main>
		<footer><a href="/news/from-footer">Footer Link</a></footer>
	</body></html>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "Main Link", items[0].Title)
}

func TestExtractSkipsAnchorsWithoutText(t *testing.T) {
	page := `<main>
		<a href="/news/imageonly"><img src="/thumb.jpg"></a>
		<a href="/news/real">Real Title</a>
	</main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "Real Title", items[0].Title)
}

func TestExtractNormalizesTitleWhitespace(t *testing.T) {
	page := "<main><a href=\"/news/foo\">  Foo\n\t  Title </a></main>"

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "Foo Title", items[0].Title)
}

func TestExtractDeduplicatesByLink(t *testing.T) {
	page := `<main>
		<article><a href="/news/foo">First Mention</a></article>
		<article><a href="/news/foo">Second Mention</a></article>
	</main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "First Mention", items[0].Title)
}

func TestExtractCapsItemCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("<main>")
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, `<article><a href="/news/item-%d">Item %d</a></article>`, i, i)
	}
	b.WriteString("</main>")

	items := newTestExtractor(t).Extract(b.String())

	require.Len(t, items, itemDomain.MaxItems)
	assert.Equal(t, "Item 0", items[0].Title)
	assert.Equal(t, "Item 14", items[14].Title)
}

func TestExtractPrefersDatetimeAttribute(t *testing.T) {
	page := `<main><article>
		<a href="/news/foo">Foo</a>
		<time datetime="2024-03-05T10:00:00+08:00">5 March 2024</time>
	</article></main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "2024-03-05T10:00:00+08:00", items[0].PubDate)
}

func TestExtractFallsBackToTimeText(t *testing.T) {
	page := `<main><article>
		<a href="/news/foo">Foo</a>
		<time>  5 March
		2024 </time>
	</article></main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "5 March 2024", items[0].PubDate)
}

func TestExtractWithoutTimeLeavesPubDateEmpty(t *testing.T) {
	page := `<main><article><a href="/news/foo">Foo</a></article></main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Empty(t, items[0].PubDate)
}

func TestExtractSkipsParagraphsEchoingTitle(t *testing.T) {
	page := `<main><article>
		<a href="/news/foo">Foo Title</a>
		<p></p>
		<p>Foo Title</p>
		<p>The actual summary text.</p>
	</article></main>`

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.Equal(t, "The actual summary text.", items[0].Description)
}

func TestExtractTruncatesLongSummaries(t *testing.T) {
	long := strings.Repeat("w ", 600)
	page := fmt.Sprintf(`<main><article>
		<a href="/news/foo">Foo</a>
		<p>%s</p>
	</article></main>`, long)

	items := newTestExtractor(t).Extract(page)

	require.Len(t, items, 1)
	assert.True(t, strings.HasSuffix(items[0].Description, "..."))
	assert.Len(t, []rune(items[0].Description), itemDomain.DescriptionLimit+3)
}

func TestExtractSurvivesGarbageInput(t *testing.T) {
	assert.Empty(t, newTestExtractor(t).Extract(""))
	assert.Empty(t, newTestExtractor(t).Extract("<<<<not html at all %%%%"))
	assert.Empty(t, newTestExtractor(t).Extract("<main><a href=>broken</main>"))
}
