package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

func TestCreateDeckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckCreator(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := int64(1)
	token := "valid-token"
	now := time.Now()
	image := "verbs.png"
	deck := &models.DeckDB{
		ID:        uuid.New(),
		Title:     "Spanish Verbs",
		CreatedAt: now,
		UpdatedAt: now,
		Image:     &image,
		NumCards:  0,
		UserID:    userID,
	}

	authOK := func() {
		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(token, nil)
		mockTokener.EXPECT().GetUserID(gomock.Any(), token).Return(userID, nil)
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "successful creation",
			body: `{"title":"Spanish Verbs","image":"verbs.png"}`,
			setupMocks: func() {
				authOK()
				mockSvc.EXPECT().Create(gomock.Any(), "Spanish Verbs", gomock.Any(), userID).
					Return(deck, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			body: `{"image":"verbs.png"}`,
			setupMocks: func() {
				authOK()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid body",
			body: `{not json`,
			setupMocks: func() {
				authOK()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unauthorized",
			body: `{"title":"Spanish Verbs"}`,
			setupMocks: func() {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			body: `{"title":"Spanish Verbs"}`,
			setupMocks: func() {
				authOK()
				mockSvc.EXPECT().Create(gomock.Any(), "Spanish Verbs", gomock.Any(), userID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewCreateDeckHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/decks", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCreateDeckHandler_StripsUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDeckCreator(ctrl)
	mockTokener := NewMockTokener(ctrl)

	userID := int64(7)
	deck := &models.DeckDB{
		ID:       uuid.New(),
		Title:    "Spanish Verbs",
		NumCards: 0,
		UserID:   userID,
	}

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("t", nil)
	mockTokener.EXPECT().GetUserID(gomock.Any(), "t").Return(userID, nil)
	mockSvc.EXPECT().Create(gomock.Any(), "Spanish Verbs", gomock.Any(), userID).Return(deck, nil)

	handler := NewCreateDeckHandler(mockSvc, mockTokener)

	req := httptest.NewRequest(http.MethodPost, "/decks", bytes.NewBufferString(`{"title":"Spanish Verbs"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

	// The internal foreign key never leaves the API
	_, hasUserID := body["userId"]
	assert.False(t, hasUserID, "response must not expose userId")
	assert.Equal(t, float64(0), body["numCards"])
	assert.Equal(t, deck.ID.String(), body["id"])
}
