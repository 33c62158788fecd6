package types

import "time"

// Cardinality bounds for an up-love's reference and item lists.
const (
	MaxUpLovePillars = 10
	MaxUpLoveItems   = 50
)

// UpLoveItemType discriminates the two free-text lists stored in the
// up_love_items table.
type UpLoveItemType string

// Item list variants.
const (
	ItemToImprove UpLoveItemType = "to_improve"
	ItemToPraise  UpLoveItemType = "to_praise"
)

// UpLove is a dated check-in snapshot. Pillars holds the resolved pillars
// the snapshot references; ToImprove and ToPraise are ordered free-text
// lists with no duplicates.
type UpLove struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Pillars   []Pillar  `json:"pillars"`
	ToImprove []string  `json:"to_improve"`
	ToPraise  []string  `json:"to_praise"`
}
