package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
	"github.com/Minoo-Kim/Flashcards-API/internal/services"
)

// DeckGetter defines the interface that the service must implement.
type DeckGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.DeckDB, error)
}

// NewGetDeckHandler returns an HTTP handler for fetching a single deck.
// @Summary Get a deck
// @Description Returns a deck by id
// @Tags decks
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} handlers.DeckResponse "Deck"
// @Failure 401 {object} handlers.DeckErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeckErrorResponse "Deck not found"
// @Router /decks/{id} [get]
// @Security BearerAuth
func NewGetDeckHandler(svc DeckGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		rawID := chi.URLParam(r, "id")
		id, err := parseDeckID(rawID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: fmt.Sprintf("Deck with ID %s not found", rawID),
			})
			return
		}

		deck, err := svc.Get(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDeckNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeckErrorResponse{
					Error: fmt.Sprintf("Deck with ID %s not found", rawID),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeckErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NewDeckResponse(deck))
	}
}
