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

// DeckRemover defines the interface that the service must implement.
type DeckRemover interface {
	Remove(ctx context.Context, id uuid.UUID) (*models.DeckDB, error)
}

// NewDeleteDeckHandler returns an HTTP handler for deck deletion.
// The ownership check runs before the delete; the response echoes the
// removed record.
// @Summary Delete a deck
// @Description Permanently deletes a deck. Owner only.
// @Tags decks
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} handlers.DeckResponse "Deleted deck"
// @Failure 401 {object} handlers.DeckErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeckErrorResponse "Caller does not own the deck"
// @Failure 404 {object} handlers.DeckErrorResponse "Deck not found"
// @Router /decks/{id} [delete]
// @Security BearerAuth
func NewDeleteDeckHandler(guard OwnershipChecker, svc DeckRemover, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, err := callerID(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		rawID := chi.URLParam(r, "id")
		id, err := parseDeckID(rawID)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: fmt.Sprintf("Deck with ID %s not found", rawID),
			})
			return
		}

		if err := guard.CheckOwnership(ctx, id, userID); err != nil {
			writeOwnershipError(w, err, rawID)
			return
		}

		deck, err := svc.Remove(ctx, id)
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
