//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// ContentKind tells the fetcher what kind of document a URL is expected to
// serve, which drives the Accept header and response validation.
// ENUM(html,feed)
type ContentKind string
