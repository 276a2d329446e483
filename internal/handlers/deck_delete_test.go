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

func TestDeleteDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGuard := NewMockOwnershipChecker(ctrl)
	mockSvc := NewMockDeckRemover(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := int64(1)
	token := "valid-token"
	deckID := uuid.New()
	deck := &models.DeckDB{ID: deckID, Title: "Spanish Verbs", UserID: userID}

	authOK := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), token).Return(userID, nil)
	}

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful delete echoes removed deck",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				authOK()
				mockGuard.EXPECT().CheckOwnership(gomock.Any(), deckID, userID).Return(nil)
				mockSvc.EXPECT().Remove(gomock.Any(), deckID).Return(deck, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "caller does not own the deck",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				authOK()
				mockGuard.EXPECT().CheckOwnership(gomock.Any(), deckID, userID).
					Return(services.ErrNotDeckOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "already deleted",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				authOK()
				mockGuard.EXPECT().CheckOwnership(gomock.Any(), deckID, userID).
					Return(services.ErrDeckNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "malformed id",
			path: "/decks/not-a-uuid",
			setupMocks: func() {
				authOK()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unauthorized",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			path: "/decks/" + deckID.String(),
			setupMocks: func() {
				authOK()
				mockGuard.EXPECT().CheckOwnership(gomock.Any(), deckID, userID).Return(nil)
				mockSvc.EXPECT().Remove(gomock.Any(), deckID).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			r := chi.NewRouter()
			r.Delete("/decks/{id}", NewDeleteDeckHandler(mockGuard, mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var body map[string]interface{}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, deck.ID.String(), body["id"])
				_, hasUserID := body["userId"]
				assert.False(t, hasUserID, "response must not expose userId")
			}
		})
	}
}
