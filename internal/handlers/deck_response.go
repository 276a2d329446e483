package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

// DeckResponse represents a deck in API responses. The owning user id is
// deliberately absent: callers identify ownership through the username
// filter on the list endpoint, never through the raw foreign key.
// swagger:model DeckResponse
type DeckResponse struct {
	// Deck identifier
	// default: 9f0f43c7-6edc-4f65-8a6f-3a9f6f2b9a11
	ID uuid.UUID `json:"id"`

	// Deck title
	// default: Spanish Verbs
	Title string `json:"title"`

	// Creation timestamp
	CreatedAt time.Time `json:"createdAt"`

	// Last update timestamp
	UpdatedAt time.Time `json:"updatedAt"`

	// Optional cover image
	Image *string `json:"image"`

	// Number of cards in the deck
	// default: 0
	NumCards int `json:"numCards"`
}

// DeckErrorResponse represents an error response for deck endpoints
// swagger:model DeckErrorResponse
type DeckErrorResponse struct {
	// Error message
	// default: Deck not found
	Error string `json:"error"`
}

// NewDeckResponse strips the internal user id from a deck row.
func NewDeckResponse(deck *models.DeckDB) DeckResponse {
	return DeckResponse{
		ID:        deck.ID,
		Title:     deck.Title,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
		Image:     deck.Image,
		NumCards:  deck.NumCards,
	}
}
