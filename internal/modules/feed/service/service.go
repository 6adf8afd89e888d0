package service

import (
	"fmt"
	"time"

	feedDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/feed/domain"
	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
	"github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/config"
)

// UnavailableTitle is the fixed title of the placeholder entry published
// when every source failed and no previous artifact exists.
const UnavailableTitle = "Feed temporarily unavailable"

// ErrorDetailLimit bounds the placeholder description, marker included.
const ErrorDetailLimit = 800

// Service composes feed artifacts, applying the configured channel identity
// to items the extractors produced.
type Service struct {
	cfg *config.Config
}

// New creates a new feed service
func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Compose builds the feed artifact for a successful run. An empty item
// slice is a valid result: the channel is published with no entries.
func (s *Service) Compose(now time.Time, items []itemDomain.Item) feedDomain.Feed {
	return feedDomain.Feed{
		Title:       s.cfg.ChannelTitle,
		Link:        s.cfg.ChannelLink,
		Description: s.cfg.ChannelDescription,
		BuiltAt:     now,
		Items:       items,
	}
}

// ComposePlaceholder builds the single-item feed published when no source
// produced usable content and there is nothing older to preserve. detail is
// the accumulated failure text shown to subscribers.
func (s *Service) ComposePlaceholder(now time.Time, detail string) feedDomain.Feed {
	placeholder := itemDomain.Item{
		Title:       UnavailableTitle,
		Link:        s.cfg.ListingURL,
		PubDate:     now.Format(time.RFC1123Z),
		Description: clampDetail(detail),
		GUID:        fmt.Sprintf("%s:unavailable:%d", s.cfg.GUIDNamespace, now.Unix()),
	}
	return s.Compose(now, []itemDomain.Item{placeholder})
}

func clampDetail(s string) string {
	r := []rune(s)
	if len(r) <= ErrorDetailLimit {
		return s
	}
	return string(r[:ErrorDetailLimit-3]) + "..."
}
