package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
	"github.com/triply-app/triply-backend/internal/repository/ports"
)

var (
	ErrFavoriteAlreadyExists = errors.New("itinerary is already in favorites")
	ErrFavoriteNotFound      = errors.New("favorite not found")
)

// FavoriteService maintains the favorite index and resolves it against the
// itinerary store. It never checks that a favorited itinerary exists: the
// reference is weak and staleness is tolerated at read time.
type FavoriteService struct {
	favorites   ports.FavoriteRepository
	itineraries ports.ItineraryRepository
}

func NewFavoriteService(favoriteRepo ports.FavoriteRepository, itineraryRepo ports.ItineraryRepository) *FavoriteService {
	return &FavoriteService{
		favorites:   favoriteRepo,
		itineraries: itineraryRepo,
	}
}

func (s *FavoriteService) Save(ctx context.Context, userID string, itineraryID uuid.UUID) (*domain.Favorite, error) {
	exists, err := s.favorites.Exists(ctx, userID, itineraryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrFavoriteAlreadyExists
	}

	favorite, err := s.favorites.Add(ctx, userID, itineraryID)
	if err != nil {
		// A concurrent save can slip between the existence check and the
		// insert; the store's unique index turns that into the same outcome.
		switch {
		case isNotFound(err), isUniqueViolation(err):
			return nil, ErrFavoriteAlreadyExists
		default:
			return nil, err
		}
	}
	return favorite, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID string, itineraryID uuid.UUID) error {
	if err := s.favorites.Remove(ctx, userID, itineraryID); err != nil {
		if isNotFound(err) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// ListItineraries resolves the user's favorite references into full itinerary
// records with one membership fetch. References that no longer resolve are
// dropped silently; the index is not repaired as a side effect.
func (s *FavoriteService) ListItineraries(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	ids, err := s.favorites.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		// An empty id set must not reach the store; a zero-member fetch is
		// an error there, not an empty result.
		return []domain.Itinerary{}, nil
	}
	return s.itineraries.FindByIDs(ctx, ids)
}
