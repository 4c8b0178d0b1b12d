package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TripTypeAll is the sentinel the client sends to disable trip type
// filtering. The comparison against it is case-insensitive; every other
// value is matched exactly.
const TripTypeAll = "all"

// destinationHighSentinel terminates the destination prefix range. It is a
// private-use codepoint that sorts after any realistic destination text, so
// [lower(prefix), lower(prefix)+sentinel) covers exactly the values starting
// with the prefix under plain byte ordering.
const destinationHighSentinel = ""

// Activity is the single activity embedded in an itinerary. It has no
// lifecycle of its own and is stored inline with the owning record.
type Activity struct {
	Destination string `json:"destination"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (a Activity) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Activity) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Activity{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("activity: cannot scan %T", src)
	}
}

type Itinerary struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Destination string    `db:"destination" json:"destination"`
	TripType    string    `db:"trip_type" json:"trip_type"`
	Activity    Activity  `db:"activity" json:"activity"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ItineraryFilter carries the optional list predicates. The mandatory user
// filter is passed alongside it, never inside it, so a caller cannot build a
// cross-user query by omission.
type ItineraryFilter struct {
	TripType          *string
	DestinationPrefix *string
}

// TripTypeValue reports the exact-match trip type predicate, if active.
// An absent, blank or "all" value deactivates it.
func (f ItineraryFilter) TripTypeValue() (string, bool) {
	if f.TripType == nil {
		return "", false
	}
	v := strings.TrimSpace(*f.TripType)
	if v == "" || strings.EqualFold(v, TripTypeAll) {
		return "", false
	}
	return v, true
}

// DestinationBounds reports the half-open [low, high) range predicate over
// lower(destination), if active.
func (f ItineraryFilter) DestinationBounds() (low, high string, ok bool) {
	if f.DestinationPrefix == nil {
		return "", "", false
	}
	p := strings.TrimSpace(*f.DestinationPrefix)
	if p == "" {
		return "", "", false
	}
	low = strings.ToLower(p)
	return low, low + destinationHighSentinel, true
}
