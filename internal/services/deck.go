package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

// Error variables
var (
	// ErrDeckNotFound is returned when a deck id does not resolve to a record.
	ErrDeckNotFound = errors.New("deck not found")
	// ErrNotDeckOwner is returned when the caller does not own the target deck.
	ErrNotDeckOwner = errors.New("caller is not the deck owner")
)

// DeckReader defines read operations for decks.
type DeckReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.DeckDB, error)
	List(ctx context.Context, limit, offset int, search *string, userID *int64) ([]models.DeckDB, error)
}

// DeckWriter defines write operations for decks.
type DeckWriter interface {
	Save(ctx context.Context, title string, image *string, userID int64) (*models.DeckDB, error)
	Update(ctx context.Context, id uuid.UUID, title, image *string) (*models.DeckDB, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.DeckDB, error)
}

// DeckService handles deck CRUD and ownership checks.
type DeckService struct {
	reader DeckReader
	writer DeckWriter
}

// NewDeckService creates a new DeckService instance.
func NewDeckService(reader DeckReader, writer DeckWriter) *DeckService {
	return &DeckService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new deck owned by userID.
func (svc *DeckService) Create(ctx context.Context, title string, image *string, userID int64) (*models.DeckDB, error) {
	deck, err := svc.writer.Save(ctx, title, image, userID)
	if err != nil {
		logger.Log.Errorw("failed to create deck", "err", err)
		return nil, err
	}
	return deck, nil
}

// Get returns a deck by id or ErrDeckNotFound.
func (svc *DeckService) Get(ctx context.Context, id uuid.UUID) (*models.DeckDB, error) {
	deck, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get deck", "id", id, "err", err)
		return nil, err
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

// List returns a page of decks, optionally narrowed by a title substring
// and/or an owning user id.
func (svc *DeckService) List(ctx context.Context, limit, offset int, search *string, userID *int64) ([]models.DeckDB, error) {
	decks, err := svc.reader.List(ctx, limit, offset, search, userID)
	if err != nil {
		logger.Log.Errorw("failed to list decks", "err", err)
		return nil, err
	}
	return decks, nil
}

// Update applies a partial update to a deck's title and/or image.
func (svc *DeckService) Update(ctx context.Context, id uuid.UUID, title, image *string) (*models.DeckDB, error) {
	deck, err := svc.writer.Update(ctx, id, title, image)
	if err != nil {
		logger.Log.Errorw("failed to update deck", "id", id, "err", err)
		return nil, err
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

// Remove deletes a deck by id and returns the removed record.
func (svc *DeckService) Remove(ctx context.Context, id uuid.UUID) (*models.DeckDB, error) {
	deck, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete deck", "id", id, "err", err)
		return nil, err
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

// CheckOwnership fetches the deck and verifies that callerID owns it.
// Returns ErrDeckNotFound when the deck does not exist and ErrNotDeckOwner
// when it is owned by someone else. Mutating handlers run this before
// touching any state.
func (svc *DeckService) CheckOwnership(ctx context.Context, id uuid.UUID, callerID int64) error {
	deck, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check deck ownership", "id", id, "err", err)
		return err
	}
	if deck == nil {
		return ErrDeckNotFound
	}
	if deck.UserID != callerID {
		logger.Log.Errorw("ownership check failed", "id", id, "owner", deck.UserID, "caller", callerID)
		return ErrNotDeckOwner
	}
	return nil
}
