package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
	"github.com/triply-app/triply-backend/internal/repository/ports"
)

var (
	ErrItineraryValidation = errors.New("itinerary validation failed")
	ErrItineraryNotFound   = errors.New("itinerary not found")
)

type ItineraryService struct {
	itineraries ports.ItineraryRepository
}

func NewItineraryService(itineraryRepo ports.ItineraryRepository) *ItineraryService {
	return &ItineraryService{itineraries: itineraryRepo}
}

// ItineraryCreateInput carries the raw creation fields. Activity arrives
// either as a JSON object or as a JSON-encoded string of one; the web client
// historically sent the latter.
type ItineraryCreateInput struct {
	UserID      string
	Title       string
	Destination string
	TripType    string
	Activity    json.RawMessage
	ImageURL    string
}

func (s *ItineraryService) Create(ctx context.Context, input ItineraryCreateInput) (*domain.Itinerary, error) {
	userID := strings.TrimSpace(input.UserID)
	title := strings.TrimSpace(input.Title)
	destination := strings.TrimSpace(input.Destination)
	tripType := strings.TrimSpace(input.TripType)
	imageURL := strings.TrimSpace(input.ImageURL)

	switch {
	case userID == "":
		return nil, fmt.Errorf("%w: user_id is required", ErrItineraryValidation)
	case title == "":
		return nil, fmt.Errorf("%w: title is required", ErrItineraryValidation)
	case destination == "":
		return nil, fmt.Errorf("%w: destination is required", ErrItineraryValidation)
	case tripType == "":
		return nil, fmt.Errorf("%w: trip_type is required", ErrItineraryValidation)
	case imageURL == "":
		return nil, fmt.Errorf("%w: image_url is required", ErrItineraryValidation)
	}

	activity, err := parseActivity(input.Activity)
	if err != nil {
		return nil, err
	}

	return s.itineraries.Create(ctx, userID, title, destination, tripType, activity, imageURL)
}

func (s *ItineraryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	itinerary, err := s.itineraries.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItineraryNotFound
		}
		return nil, err
	}
	return itinerary, nil
}

func (s *ItineraryService) List(ctx context.Context, userID string, filter domain.ItineraryFilter) ([]domain.Itinerary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrItineraryValidation)
	}
	return s.itineraries.List(ctx, strings.TrimSpace(userID), filter)
}

func parseActivity(raw json.RawMessage) (domain.Activity, error) {
	var activity domain.Activity

	if len(raw) == 0 {
		return activity, fmt.Errorf("%w: activity is required", ErrItineraryValidation)
	}

	if err := json.Unmarshal(raw, &activity); err != nil {
		// Double-encoded form: a JSON string holding the activity object.
		var serialized string
		if strErr := json.Unmarshal(raw, &serialized); strErr != nil {
			return activity, fmt.Errorf("%w: activity is malformed", ErrItineraryValidation)
		}
		if err := json.Unmarshal([]byte(serialized), &activity); err != nil {
			return activity, fmt.Errorf("%w: activity is malformed", ErrItineraryValidation)
		}
	}

	switch {
	case strings.TrimSpace(activity.Destination) == "":
		return activity, fmt.Errorf("%w: activity.destination is required", ErrItineraryValidation)
	case strings.TrimSpace(activity.Description) == "":
		return activity, fmt.Errorf("%w: activity.description is required", ErrItineraryValidation)
	case strings.TrimSpace(activity.Date) == "":
		return activity, fmt.Errorf("%w: activity.date is required", ErrItineraryValidation)
	}

	return activity, nil
}
