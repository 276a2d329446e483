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

// OwnershipChecker gates deck mutations on the caller owning the deck.
type OwnershipChecker interface {
	CheckOwnership(ctx context.Context, id uuid.UUID, callerID int64) error
}

// DeckUpdater defines the interface that the service must implement.
type DeckUpdater interface {
	Update(ctx context.Context, id uuid.UUID, title, image *string) (*models.DeckDB, error)
}

// UpdateDeckRequest represents the JSON body for a partial deck update
// swagger:model UpdateDeckRequest
type UpdateDeckRequest struct {
	// New title, if set
	// default: Spanish Verbs II
	Title *string `json:"title"`

	// New cover image, if set
	// default: verbs2.png
	Image *string `json:"image"`
}

// NewUpdateDeckHandler returns an HTTP handler for partial deck updates.
// The ownership check runs before the update touches any state.
// @Summary Update a deck
// @Description Partially updates a deck's title and/or image. Owner only.
// @Tags decks
// @Accept json
// @Produce json
// @Param id path string true "Deck ID"
// @Param updateDeckRequest body handlers.UpdateDeckRequest true "Fields to update"
// @Success 200 {object} handlers.DeckResponse "Updated deck"
// @Failure 400 {object} handlers.DeckErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.DeckErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeckErrorResponse "Caller does not own the deck"
// @Failure 404 {object} handlers.DeckErrorResponse "Deck not found"
// @Router /decks/{id} [patch]
// @Security BearerAuth
func NewUpdateDeckHandler(guard OwnershipChecker, svc DeckUpdater, tokener Tokener) http.HandlerFunc {
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

		var req UpdateDeckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := guard.CheckOwnership(ctx, id, userID); err != nil {
			writeOwnershipError(w, err, rawID)
			return
		}

		deck, err := svc.Update(ctx, id, req.Title, req.Image)
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

// writeOwnershipError maps an ownership check failure onto the response.
func writeOwnershipError(w http.ResponseWriter, err error, rawID string) {
	switch {
	case errors.Is(err, services.ErrDeckNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(DeckErrorResponse{
			Error: fmt.Sprintf("Deck with ID %s not found", rawID),
		})
	case errors.Is(err, services.ErrNotDeckOwner):
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(DeckErrorResponse{
			Error: "You do not own this deck",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(DeckErrorResponse{
			Error: "Internal server error",
		})
	}
}
