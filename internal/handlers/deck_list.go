package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
	"github.com/Minoo-Kim/Flashcards-API/internal/services"
)

// Pagination defaults when the caller omits the query parameters.
const (
	defaultLimit  = 10
	defaultOffset = 0
)

// DeckLister defines the interface that the service must implement.
type DeckLister interface {
	List(ctx context.Context, limit, offset int, search *string, userID *int64) ([]models.DeckDB, error)
}

// UserLookup resolves a username filter to a user record.
type UserLookup interface {
	Lookup(ctx context.Context, username string) (*models.UserDB, error)
}

// Pagination echoes the pagination parameters applied to a listing
// swagger:model Pagination
type Pagination struct {
	// Page size
	// default: 10
	Limit int `json:"limit"`

	// Page start
	// default: 0
	Offset int `json:"offset"`
}

// ListDecksResponse represents a paginated deck listing
// swagger:model ListDecksResponse
type ListDecksResponse struct {
	// Username filter that was applied, if any
	Filter string `json:"filter,omitempty"`

	// Title search term that was applied, if any
	Search string `json:"search,omitempty"`

	// Pagination parameters used
	Pagination Pagination `json:"pagination"`

	// Page of decks
	Data []DeckResponse `json:"data"`
}

// NewListDecksHandler returns an HTTP handler for listing decks.
// @Summary List decks
// @Description Returns a page of decks, optionally filtered by title substring and/or owner username
// @Tags decks
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page start" default(0)
// @Param search query string false "Title substring filter"
// @Param username query string false "Owner username filter"
// @Success 200 {object} handlers.ListDecksResponse "Page of decks"
// @Failure 400 {object} handlers.DeckErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} handlers.DeckErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeckErrorResponse "Unknown username filter"
// @Router /decks [get]
// @Security BearerAuth
func NewListDecksHandler(svc DeckLister, users UserLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		limit, err := queryInt(r, "limit", defaultLimit)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Invalid limit parameter",
			})
			return
		}
		offset, err := queryInt(r, "offset", defaultOffset)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Invalid offset parameter",
			})
			return
		}

		var search *string
		if s := r.URL.Query().Get("search"); s != "" {
			search = &s
		}

		// An explicit username filter must resolve; an unknown username is
		// a not-found failure, not an empty page.
		var userID *int64
		username := r.URL.Query().Get("username")
		if username != "" {
			user, err := users.Lookup(ctx, username)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrUserDoesNotExist):
					w.WriteHeader(http.StatusNotFound)
					json.NewEncoder(w).Encode(DeckErrorResponse{
						Error: fmt.Sprintf("User with username %s not found", username),
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
			userID = &user.ID
		}

		decks, err := svc.List(ctx, limit, offset, search, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeckErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := ListDecksResponse{
			Filter: username,
			Pagination: Pagination{
				Limit:  limit,
				Offset: offset,
			},
			Data: make([]DeckResponse, 0, len(decks)),
		}
		if search != nil {
			resp.Search = *search
		}
		for i := range decks {
			resp.Data = append(resp.Data, NewDeckResponse(&decks[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// queryInt parses a non-negative integer query parameter with a default.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return v, nil
}
