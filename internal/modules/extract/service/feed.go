package service

import (
	"strings"

	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
	"github.com/mmcdole/gofeed"
	"github.com/samber/oops"
)

// Feed parses an already structured feed document into the same item shape
// the HTML extractor produces. Used when the listing page is unusable and a
// fallback feed URL is configured.
type Feed struct {
	parser    *gofeed.Parser
	namespace string
}

func NewFeed(namespace string) *Feed {
	return &Feed{parser: gofeed.NewParser(), namespace: namespace}
}

// Extract parses feedText (RSS, Atom or JSON Feed) and normalizes its
// entries. Entries missing a title or link are dropped; deduplication and
// the item cap match the HTML path.
func (f *Feed) Extract(feedText string) ([]itemDomain.Item, error) {
	parsed, err := f.parser.ParseString(feedText)
	if err != nil {
		return nil, oops.With("context", "parsing fallback feed").Wrap(err)
	}

	var items []itemDomain.Item
	for _, entry := range parsed.Items {
		title := itemDomain.NormalizeWhitespace(entry.Title)
		link := strings.TrimSpace(entry.Link)
		if title == "" || link == "" {
			continue
		}

		it := itemDomain.Item{
			Title:   title,
			Link:    link,
			PubDate: strings.TrimSpace(entry.Published),
			GUID:    strings.TrimSpace(entry.GUID),
		}
		if it.PubDate == "" {
			it.PubDate = strings.TrimSpace(entry.Updated)
		}
		if it.GUID == "" {
			it.GUID = itemDomain.GUIDFor(f.namespace, link)
		}
		if desc := itemDomain.NormalizeWhitespace(entry.Description); desc != "" && desc != title {
			it.Description = itemDomain.TruncateDescription(desc)
		}
		items = append(items, it)
	}
	return itemDomain.DedupeAndCap(items), nil
}
