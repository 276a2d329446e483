package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTokener struct {
	token       string
	extractErr  error
	validateErr error
}

func (f *fakeTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return f.token, f.extractErr
}

func (f *fakeTokener) Validate(ctx context.Context, tokenString string) error {
	return f.validateErr
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		tokener        *fakeTokener
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid token passes through",
			tokener:        &fakeTokener{token: "ok"},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing token is unauthorized",
			tokener:        &fakeTokener{extractErr: errors.New("authorization header missing")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token is unauthorized",
			tokener:        &fakeTokener{token: "bad", validateErr: errors.New("invalid token")},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.tokener)(next)

			req := httptest.NewRequest(http.MethodGet, "/decks", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
