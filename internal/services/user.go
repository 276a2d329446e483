package services

import (
	"context"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

// UserService resolves usernames to user records.
type UserService struct {
	reader UserReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader) *UserService {
	return &UserService{reader: reader}
}

// Lookup resolves a username to its user record.
// Returns ErrUserDoesNotExist when the username is unknown.
func (svc *UserService) Lookup(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}
