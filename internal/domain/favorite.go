package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks an itinerary as saved by a user. ItineraryID is a weak
// reference: the row is never validated against, nor cascaded from, the
// itinerary it points at. The row id stays internal to the store.
type Favorite struct {
	ID          uuid.UUID `db:"id" json:"-"`
	UserID      string    `db:"user_id" json:"user_id"`
	ItineraryID uuid.UUID `db:"itinerary_id" json:"itinerary_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
