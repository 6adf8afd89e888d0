package domain

import (
	"time"

	itemDomain "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/modules/item/domain"
)

// Generator is advertised in the channel so operators can trace a published
// document back to this program.
const Generator = "childsafetyrss"

// Feed is the artifact produced by one run: channel identity plus the
// ordered, deduplicated items discovered from a source.
type Feed struct {
	Title       string
	Link        string
	Description string
	BuiltAt     time.Time
	Items       []itemDomain.Item
}
