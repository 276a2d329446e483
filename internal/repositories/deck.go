package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Minoo-Kim/Flashcards-API/internal/logger"
	"github.com/Minoo-Kim/Flashcards-API/internal/models"
)

// DeckReadRepository handles deck read operations
type DeckReadRepository struct {
	db *sqlx.DB
}

func NewDeckReadRepository(db *sqlx.DB) *DeckReadRepository {
	return &DeckReadRepository{db: db}
}

// GetByID retrieves a deck by primary key.
// Returns (nil, nil) when no such deck exists.
func (r *DeckReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DeckDB, error) {
	const query = `
		SELECT id, title, created_at, updated_at, image, num_cards, user_id
		FROM decks
		WHERE id = $1
	`

	var deck models.DeckDB
	err := r.db.GetContext(ctx, &deck, query, id)

	// Log with query in single line
	logger.Log.Infow("deck select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &deck, nil
}

// List retrieves decks page by page. search narrows to titles containing the
// given substring (case-insensitive); userID narrows to decks owned by that
// user. Rows are ordered by creation time with the id as tiebreak so that
// repeated calls over unchanged data return identical pages.
func (r *DeckReadRepository) List(ctx context.Context, limit, offset int, search *string, userID *int64) ([]models.DeckDB, error) {
	const query = `
		SELECT id, title, created_at, updated_at, image, num_cards, user_id
		FROM decks
		WHERE ($1::VARCHAR IS NULL OR title ILIKE '%' || $1 || '%')
		  AND ($2::BIGINT IS NULL OR user_id = $2)
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`

	decks := []models.DeckDB{}
	err := r.db.SelectContext(ctx, &decks, query, search, userID, limit, offset)

	// Log with query in single line
	logger.Log.Infow("deck list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search, userID, limit, offset},
		"result", len(decks),
		"error", err,
	)

	return decks, err
}

// DeckWriteRepository handles deck write operations
type DeckWriteRepository struct {
	db *sqlx.DB
}

func NewDeckWriteRepository(db *sqlx.DB) *DeckWriteRepository {
	return &DeckWriteRepository{db: db}
}

// Save inserts a new deck owned by userID and returns the stored row.
// Timestamps are set server-side and num_cards starts at zero.
func (r *DeckWriteRepository) Save(ctx context.Context, title string, image *string, userID int64) (*models.DeckDB, error) {
	const query = `
		INSERT INTO decks (id, title, created_at, updated_at, image, num_cards, user_id)
		VALUES ($1, $2, NOW(), NOW(), $3, 0, $4)
		RETURNING id, title, created_at, updated_at, image, num_cards, user_id
	`

	var deck models.DeckDB
	err := r.db.GetContext(ctx, &deck, query, uuid.New(), title, image, userID)

	// Log with query in single line
	logger.Log.Infow("deck insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title, image, userID},
		"result", deck.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// Update applies a partial update to a deck's mutable fields (title, image)
// and bumps updated_at. Ownership, num_cards and created_at are never touched.
// Returns (nil, nil) when no such deck exists.
func (r *DeckWriteRepository) Update(ctx context.Context, id uuid.UUID, title, image *string) (*models.DeckDB, error) {
	const query = `
		UPDATE decks
		SET title = COALESCE($2, title),
		    image = COALESCE($3, image),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, created_at, updated_at, image, num_cards, user_id
	`

	var deck models.DeckDB
	err := r.db.GetContext(ctx, &deck, query, id, title, image)

	// Log with query in single line
	logger.Log.Infow("deck update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, title, image},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &deck, nil
}

// Delete removes a deck by primary key and returns the removed row.
// Returns (nil, nil) when no such deck exists.
func (r *DeckWriteRepository) Delete(ctx context.Context, id uuid.UUID) (*models.DeckDB, error) {
	const query = `
		DELETE FROM decks
		WHERE id = $1
		RETURNING id, title, created_at, updated_at, image, num_cards, user_id
	`

	var deck models.DeckDB
	err := r.db.GetContext(ctx, &deck, query, id)

	// Log with query in single line
	logger.Log.Infow("deck delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &deck, nil
}
