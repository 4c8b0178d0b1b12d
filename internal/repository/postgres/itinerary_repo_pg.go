package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/triply-app/triply-backend/internal/domain"
	"github.com/triply-app/triply-backend/internal/repository/ports"
)

const itineraryColumns = "id, user_id, title, destination, trip_type, activity, image_url, created_at"

type ItineraryRepository struct {
	db *sqlx.DB
}

func NewItineraryRepo(db *sqlx.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Create(ctx context.Context, userID, title, destination, tripType string, activity domain.Activity, imageURL string) (*domain.Itinerary, error) {
	const query = `
		INSERT INTO itinerary (user_id, title, destination, trip_type, activity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + itineraryColumns

	var itinerary domain.Itinerary
	if err := r.db.GetContext(ctx, &itinerary, query, userID, title, destination, tripType, activity, imageURL); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *ItineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	const query = `
		SELECT ` + itineraryColumns + `
		FROM itinerary
		WHERE id = $1
	`
	var itinerary domain.Itinerary
	if err := r.db.GetContext(ctx, &itinerary, query, id); err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *ItineraryRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Itinerary, error) {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	const query = `
		SELECT ` + itineraryColumns + `
		FROM itinerary
		WHERE id = ANY($1::uuid[])
	`
	itineraries := make([]domain.Itinerary, 0, len(ids))
	if err := r.db.SelectContext(ctx, &itineraries, query, pq.StringArray(values)); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// List applies the mandatory user predicate plus whichever optional filter
// predicates are active, reduced into one WHERE clause. Predicate order does
// not affect the result set; the set is purely conjunctive.
func (r *ItineraryRepository) List(ctx context.Context, userID string, filter domain.ItineraryFilter) ([]domain.Itinerary, error) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if tripType, ok := filter.TripTypeValue(); ok {
		conditions = append(conditions, fmt.Sprintf("trip_type = $%d", len(args)+1))
		args = append(args, tripType)
	}

	if low, high, ok := filter.DestinationBounds(); ok {
		conditions = append(conditions, fmt.Sprintf("lower(destination) >= $%d", len(args)+1))
		args = append(args, low)
		conditions = append(conditions, fmt.Sprintf("lower(destination) < $%d", len(args)+1))
		args = append(args, high)
	}

	query := `
		SELECT ` + itineraryColumns + `
		FROM itinerary
		WHERE ` + strings.Join(conditions, " AND ")

	itineraries := make([]domain.Itinerary, 0)
	if err := r.db.SelectContext(ctx, &itineraries, query, args...); err != nil {
		return nil, err
	}
	return itineraries, nil
}

var _ ports.ItineraryRepository = (*ItineraryRepository)(nil)
