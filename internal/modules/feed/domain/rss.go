package domain

import (
	"encoding/xml"
	"time"

	"github.com/samber/oops"
)

// The document model below exists because readers treat an empty
// <pubDate></pubDate> or <description></description> as a value, not an
// absence. Optional elements must disappear from the output entirely when an
// item has nothing to put in them, which means omitempty tags on a dedicated
// set of structs.

type rssDocument struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Channel *rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Generator     string     `xml:"generator,omitempty"`
	Items         []*rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Guid        rssGuid `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Description string  `xml:"description,omitempty"`
}

// rssGuid always carries isPermaLink="false": identifiers here are
// namespaced strings, not URLs a reader should dereference.
type rssGuid struct {
	Id          string `xml:",chardata"`
	IsPermaLink string `xml:"isPermaLink,attr"`
}

// RenderRSS serializes the feed as an RSS 2.0 document. The encoder escapes
// every text value, so titles and summaries scraped from arbitrary markup
// cannot break the document.
func (f Feed) RenderRSS() (string, error) {
	channel := &rssChannel{
		Title:         f.Title,
		Link:          f.Link,
		Description:   f.Description,
		LastBuildDate: f.BuiltAt.Format(time.RFC1123Z),
		Generator:     Generator,
	}
	for _, it := range f.Items {
		channel.Items = append(channel.Items, &rssItem{
			Title:       it.Title,
			Link:        it.Link,
			Guid:        rssGuid{Id: it.GUID, IsPermaLink: "false"},
			PubDate:     it.PubDate,
			Description: it.Description,
		})
	}

	data, err := xml.MarshalIndent(&rssDocument{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return "", oops.With("context", "marshalling rss document").Wrap(err)
	}
	return xml.Header + string(data), nil
}
