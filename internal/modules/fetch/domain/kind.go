package domain

import "strings"

// Accept returns the Accept header sent when requesting this kind of
// document.
func (x ContentKind) Accept() string {
	if x == ContentKindFeed {
		return "application/rss+xml, application/xml, text/xml, */*;q=0.8"
	}
	return "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
}

// MatchesContentType reports whether a response Content-Type satisfies the
// kind. Only HTML retrieval is strict about it: feed endpoints disagree
// wildly on their media type and the feed parser copes with all of them.
func (x ContentKind) MatchesContentType(header string) bool {
	if x != ContentKindHtml {
		return true
	}
	mt := strings.ToLower(header)
	return strings.Contains(mt, "text/html") || strings.Contains(mt, "application/xhtml+xml")
}
