package domain

import (
	"strings"

	"github.com/samber/lo"
)

// MaxItems caps how many entries a generated feed carries.
const MaxItems = 15

// DescriptionLimit is the longest description an item carries, in runes.
// Longer summaries are cut and marked.
const DescriptionLimit = 500

// Item is one news entry discovered from a source. Link doubles as the item
// identity during deduplication. PubDate is carried verbatim from the source
// and never reformatted here.
type Item struct {
	Title       string
	Link        string
	PubDate     string
	Description string
	GUID        string
}

// NormalizeWhitespace collapses every run of whitespace into a single space
// and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateDescription shortens s to DescriptionLimit runes, appending an
// ellipsis marker when anything was cut.
func TruncateDescription(s string) string {
	r := []rune(s)
	if len(r) <= DescriptionLimit {
		return s
	}
	return string(r[:DescriptionLimit]) + "..."
}

// GUIDFor derives the namespaced identifier for a link.
func GUIDFor(namespace, link string) string {
	return namespace + ":" + link
}

// DedupeAndCap drops items whose link already appeared earlier in the slice
// and cuts the result to MaxItems. Discovery order is preserved.
func DedupeAndCap(items []Item) []Item {
	unique := lo.UniqBy(items, func(it Item) string { return it.Link })
	if len(unique) > MaxItems {
		unique = unique[:MaxItems]
	}
	return unique
}
