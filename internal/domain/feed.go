package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FeedEntry is a public record of a completed swap. Entries are append-only
// and never updated.
type FeedEntry struct {
	ID        uuid.UUID `json:"id"`
	SwapID    uuid.UUID `json:"swap_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedEntry renders the public summary for a completed swap.
func NewFeedEntry(swap *Swap) *FeedEntry {
	return &FeedEntry{
		ID:        uuid.New(),
		SwapID:    swap.ID,
		Text:      fmt.Sprintf("Recently swapped: %s for %s", swap.OfferSkill, swap.WantSkill),
		CreatedAt: time.Now(),
	}
}
