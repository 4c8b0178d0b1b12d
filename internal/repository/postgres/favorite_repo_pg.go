package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/triply-app/triply-backend/internal/domain"
	"github.com/triply-app/triply-backend/internal/repository/ports"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepo(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID string, itineraryID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorite
			WHERE user_id = $1 AND itinerary_id = $2
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, itineraryID); err != nil {
		return false, err
	}
	return exists, nil
}

// Add relies on the unique (user_id, itinerary_id) index to close the gap
// between the caller's existence check and the insert. A conflicting insert
// returns no row and surfaces as sql.ErrNoRows.
func (r *FavoriteRepository) Add(ctx context.Context, userID string, itineraryID uuid.UUID) (*domain.Favorite, error) {
	const query = `
		INSERT INTO favorite (user_id, itinerary_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, itinerary_id) DO NOTHING
		RETURNING id, user_id, itinerary_id, created_at
	`

	var favorite domain.Favorite
	if err := r.db.GetContext(ctx, &favorite, query, userID, itineraryID); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID string, itineraryID uuid.UUID) error {
	const query = `
		DELETE FROM favorite
		WHERE id IN (
			SELECT id FROM favorite
			WHERE user_id = $1 AND itinerary_id = $2
			LIMIT 1
		)
	`
	result, err := r.db.ExecContext(ctx, query, userID, itineraryID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FavoriteRepository) ListIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	const query = `
		SELECT itinerary_id FROM favorite
		WHERE user_id = $1
	`
	ids := make([]uuid.UUID, 0)
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
