package service

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// HTML pulls news items out of a listing page. The page carries no schema,
// so everything here is heuristic: qualifying anchors select the candidates
// and the container around each anchor supplies date and summary context.
// Malformed markup degrades to fewer items, never to an error.
type HTML struct {
	origin      *url.URL
	listingPath string
	namespace   string
}

// NewHTML creates an extractor bound to one site. origin is the scheme and
// host used to resolve relative links, listingPath the path prefix article
// links must live under (for example "/news").
func NewHTML(origin, listingPath, namespace string) (*HTML, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, oops.With("site_origin", origin).Errorf("site origin must be an absolute URL")
	}
	return &HTML{
		origin:      u,
		listingPath: strings.TrimRight(listingPath, "/"),
		namespace:   namespace,
	}, nil
}

// Extract returns the items discovered in htmlText, deduplicated by link and
// capped. Anchors are searched inside <main> when the page has one, across
// the whole document otherwise.
func (h *HTML) Extract(htmlText string) []itemDomain.Item {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		slog.Warn("Listing page did not parse", "error", err)
		return nil
	}

	region := doc.Find("main")
	if region.Length() == 0 {
		region = doc.Selection
	}

	var items []itemDomain.Item
	region.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		link, ok := h.articleLink(href)
		if !ok {
			return
		}
		title := itemDomain.NormalizeWhitespace(a.Text())
		if title == "" {
			return
		}

		it := itemDomain.Item{
			Title: title,
			Link:  link,
			GUID:  itemDomain.GUIDFor(h.namespace, link),
		}
		if container := containerFor(a.Get(0)); container != nil {
			scope := goquery.NewDocumentFromNode(container)
			it.PubDate = firstTimestamp(scope)
			it.Description = firstSummary(scope, title)
		}
		items = append(items, it)
	})

	return itemDomain.DedupeAndCap(items)
}

// articleLink validates an anchor target and resolves it against the site
// origin. Only single-segment article paths under the listing prefix
// qualify: "/news/<slug>" with an optional trailing slash, no query and no
// fragment. The bare listing path is the page linking to itself, not an
// article.
func (h *HTML) articleLink(href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	abs := h.origin.ResolveReference(ref)
	if abs.Host != h.origin.Host || abs.RawQuery != "" || abs.Fragment != "" {
		return "", false
	}

	slug, ok := strings.CutPrefix(abs.Path, h.listingPath+"/")
	if !ok {
		return "", false
	}
	slug = strings.TrimSuffix(slug, "/")
	if slug == "" || strings.Contains(slug, "/") {
		return "", false
	}
	return abs.String(), true
}

// firstTimestamp reads the first time element in scope, preferring its
// machine-readable datetime attribute over the rendered text. The value is
// carried verbatim, whatever format the site uses.
func firstTimestamp(scope *goquery.Document) string {
	el := scope.Find("time").First()
	if el.Length() == 0 {
		return ""
	}
	if dt, ok := el.Attr("datetime"); ok && strings.TrimSpace(dt) != "" {
		return strings.TrimSpace(dt)
	}
	return itemDomain.NormalizeWhitespace(el.Text())
}

// firstSummary picks the first paragraph in scope that says something beyond
// the title itself.
func firstSummary(scope *goquery.Document, title string) string {
	var texts []string
	scope.Find("p").Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, itemDomain.NormalizeWhitespace(p.Text()))
	})

	summary, found := lo.Find(texts, func(t string) bool { return t != "" && t != title })
	if !found {
		return ""
	}
	return itemDomain.TruncateDescription(summary)
}
