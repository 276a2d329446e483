package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

// Tokener extracts the authenticated caller's identity from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// DeckCreator defines the interface that the service must implement.
type DeckCreator interface {
	Create(ctx context.Context, title string, image *string, userID int64) (*models.DeckDB, error)
}

// CreateDeckRequest represents the JSON body for deck creation
// swagger:model CreateDeckRequest
type CreateDeckRequest struct {
	// Deck title
	// required: true
	// default: Spanish Verbs
	Title string `json:"title"`

	// Optional cover image
	// default: verbs.png
	Image *string `json:"image"`
}

// NewCreateDeckHandler returns an HTTP handler for deck creation.
// @Summary Create a deck
// @Description Creates a new deck owned by the authenticated caller
// @Tags decks
// @Accept json
// @Produce json
// @Param createDeckRequest body handlers.CreateDeckRequest true "Deck creation request"
// @Success 201 {object} handlers.DeckResponse "Created deck"
// @Failure 400 {object} handlers.DeckErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.DeckErrorResponse "Unauthorized"
// @Router /decks [post]
// @Security BearerAuth
func NewCreateDeckHandler(svc DeckCreator, tokener Tokener) http.HandlerFunc {
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

		var req CreateDeckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Title is required",
			})
			return
		}

		deck, err := svc.Create(ctx, req.Title, req.Image, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(NewDeckResponse(deck))
	}
}

// callerID resolves the authenticated caller's user id from the bearer token.
func callerID(ctx context.Context, tokener Tokener, r *http.Request) (int64, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("missing or malformed bearer token", "err", err)
		return 0, err
	}
	userID, err := tokener.GetUserID(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "err", err)
		return 0, err
	}
	return userID, nil
}

// parseDeckID parses the {id} path parameter. A string that is not a UUID
// cannot name any deck, so the caller treats a parse failure as not-found.
func parseDeckID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
