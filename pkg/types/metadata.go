package types

import "time"

// RelationshipMetadata is the singleton row describing the tracked
// relationship. CreatedAt is assigned on first initialization and never
// changes afterwards.
type RelationshipMetadata struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
