package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Minoo-Kim/Flashcards-API/internal/models"
	"github.com/Minoo-Kim/Flashcards-API/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:         "successful registration",
			username:     "alice",
			password:     "pass123",
			existingUser: nil,
			wantErr:      nil,
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 1, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					Return(int64(1), tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := int64(42)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtToken  string
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			jwtToken:  "token123",
			wantToken: "token123",
		},
		{
			name:      "user does not exist",
			username:  "ghost",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: userID, Username: "alice", Password: string(hashed)},
			jwtErr:    errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return(tt.jwtToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
