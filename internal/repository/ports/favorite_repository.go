package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, userID string, itineraryID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID string, itineraryID uuid.UUID) (*domain.Favorite, error)
	// Remove deletes exactly one matching row per call.
	Remove(ctx context.Context, userID string, itineraryID uuid.UUID) error
	ListIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
}
