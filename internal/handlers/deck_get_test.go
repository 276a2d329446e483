package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Minoo-Kim/Flashcards-API/internal/models"
	"github.com/Minoo-Kim/Flashcards-API/internal/services"
)

func TestGetDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckGetter(ctrl)

	deckID := uuid.New()
	deck := &models.DeckDB{ID: deckID, Title: "Spanish Verbs", UserID: 1}

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "deck found",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), deckID).Return(deck, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "deck not found",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), deckID).Return(nil, services.ErrDeckNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			path:           "/decks/not-a-uuid",
			setupMocks:     func() {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				mockSvc.EXPECT().Get(gomock.Any(), deckID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			r := chi.NewRouter()
			r.Get("/decks/{id}", NewGetDeckHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]interface{}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				_, hasUserID := body["userId"]
				assert.False(t, hasUserID, "response must not expose userId")
				assert.Equal(t, deck.Title, body["title"])
			}
		})
	}
}
