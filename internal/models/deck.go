package models

import (
	"time"

	"github.com/google/uuid"
)

// DeckDB represents a deck row in the database
type DeckDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                // Unique deck identifier
	Title     string    `json:"title" db:"title"`          // Deck title
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Timestamp when the deck was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Timestamp of the last deck update
	Image     *string   `json:"image" db:"image"`          // Optional cover image
	NumCards  int       `json:"numCards" db:"num_cards"`   // Cached number of cards in the deck
	UserID    int64     `json:"userId" db:"user_id"`       // Identifier of the deck's owner
}
