package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
)

type ItineraryRepository interface {
	Create(ctx context.Context, userID, title, destination, tripType string, activity domain.Activity, imageURL string) (*domain.Itinerary, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error)
	// FindByIDs resolves ids by membership in a single fetch. Ids without a
	// matching row are absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Itinerary, error)
	List(ctx context.Context, userID string, filter domain.ItineraryFilter) ([]domain.Itinerary, error)
}
