package http

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
)

type stubItineraryRepo struct {
	items []domain.Itinerary
}

func (r *stubItineraryRepo) Create(_ context.Context, userID, title, destination, tripType string, activity domain.Activity, imageURL string) (*domain.Itinerary, error) {
	itinerary := domain.Itinerary{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Destination: destination,
		TripType:    tripType,
		Activity:    activity,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}
	r.items = append(r.items, itinerary)
	return &itinerary, nil
}

func (r *stubItineraryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *stubItineraryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Itinerary, error) {
	if len(ids) == 0 {
		return nil, errors.New("membership fetch requires at least one id")
	}
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	result := make([]domain.Itinerary, 0, len(ids))
	for _, item := range r.items {
		if _, ok := wanted[item.ID]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *stubItineraryRepo) List(_ context.Context, userID string, filter domain.ItineraryFilter) ([]domain.Itinerary, error) {
	tripType, tripTypeActive := filter.TripTypeValue()
	low, high, prefixActive := filter.DestinationBounds()

	result := make([]domain.Itinerary, 0)
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		if tripTypeActive && item.TripType != tripType {
			continue
		}
		if prefixActive {
			lowered := strings.ToLower(item.Destination)
			if lowered < low || lowered >= high {
				continue
			}
		}
		result = append(result, item)
	}
	return result, nil
}

type stubFavoriteRepo struct {
	items []domain.Favorite
}

func (r *stubFavoriteRepo) Exists(_ context.Context, userID string, itineraryID uuid.UUID) (bool, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ItineraryID == itineraryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFavoriteRepo) Add(_ context.Context, userID string, itineraryID uuid.UUID) (*domain.Favorite, error) {
	favorite := domain.Favorite{
		ID:          uuid.New(),
		UserID:      userID,
		ItineraryID: itineraryID,
		CreatedAt:   time.Now().UTC(),
	}
	r.items = append(r.items, favorite)
	return &favorite, nil
}

func (r *stubFavoriteRepo) Remove(_ context.Context, userID string, itineraryID uuid.UUID) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ItineraryID == itineraryID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *stubFavoriteRepo) ListIDs(_ context.Context, userID string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			ids = append(ids, item.ItineraryID)
		}
	}
	return ids, nil
}
