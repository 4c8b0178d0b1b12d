package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply-backend/internal/domain"
)

// memoryItineraryRepo mimics the store semantics the postgres repository
// relies on, including the zero-member batch fetch being an error.
type memoryItineraryRepo struct {
	items      []domain.Itinerary
	batchCalls int
}

func newMemoryItineraryRepo() *memoryItineraryRepo {
	return &memoryItineraryRepo{}
}

func (r *memoryItineraryRepo) Create(_ context.Context, userID, title, destination, tripType string, activity domain.Activity, imageURL string) (*domain.Itinerary, error) {
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

func (r *memoryItineraryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Itinerary, error) {
	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memoryItineraryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Itinerary, error) {
	r.batchCalls++
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

func (r *memoryItineraryRepo) List(_ context.Context, userID string, filter domain.ItineraryFilter) ([]domain.Itinerary, error) {
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

func (r *memoryItineraryRepo) delete(id uuid.UUID) {
	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
}

func rawActivity(t *testing.T) json.RawMessage {
	t.Helper()
	return json.RawMessage(`{"destination":"Kyoto","description":"Temple walk","date":"2024-05-01"}`)
}

func validCreateInput(t *testing.T, userID string) ItineraryCreateInput {
	t.Helper()
	return ItineraryCreateInput{
		UserID:      userID,
		Title:       "Kyoto Trip",
		Destination: "Kyoto",
		TripType:    "leisure",
		Activity:    rawActivity(t),
		ImageURL:    "img://1",
	}
}

func TestItineraryService_Create_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	seen := make(map[uuid.UUID]struct{})
	for _, userID := range []string{"u1", "u1", "u2"} {
		created, err := svc.Create(ctx, validCreateInput(t, userID))
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if _, dup := seen[created.ID]; dup {
			t.Fatalf("id %s assigned twice", created.ID)
		}
		seen[created.ID] = struct{}{}
	}
	if len(repo.items) != 3 {
		t.Fatalf("expected 3 stored itineraries, got %d", len(repo.items))
	}
}

func TestItineraryService_Create_RejectsMissingFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	blank := func(mutate func(*ItineraryCreateInput)) ItineraryCreateInput {
		input := validCreateInput(t, "u1")
		mutate(&input)
		return input
	}

	cases := []ItineraryCreateInput{
		blank(func(i *ItineraryCreateInput) { i.UserID = "  " }),
		blank(func(i *ItineraryCreateInput) { i.Title = "" }),
		blank(func(i *ItineraryCreateInput) { i.Destination = "" }),
		blank(func(i *ItineraryCreateInput) { i.TripType = "" }),
		blank(func(i *ItineraryCreateInput) { i.ImageURL = "" }),
		blank(func(i *ItineraryCreateInput) { i.Activity = nil }),
	}

	for i, input := range cases {
		if _, err := svc.Create(ctx, input); !errors.Is(err, ErrItineraryValidation) {
			t.Fatalf("case %d: expected ErrItineraryValidation, got %v", i, err)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected no writes on invalid input, found %d", len(repo.items))
	}
}

func TestItineraryService_Create_ParsesSerializedActivity(t *testing.T) {
	ctx := context.Background()
	svc := NewItineraryService(newMemoryItineraryRepo())

	// The web client sends the activity JSON-encoded as a string.
	input := validCreateInput(t, "u1")
	input.Activity = json.RawMessage(`"{\"destination\":\"Kyoto\",\"description\":\"Temple walk\",\"date\":\"2024-05-01\"}"`)

	created, err := svc.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Activity.Destination != "Kyoto" || created.Activity.Date != "2024-05-01" {
		t.Fatalf("unexpected parsed activity: %+v", created.Activity)
	}
}

func TestItineraryService_Create_RejectsMalformedActivity(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	for _, raw := range []string{`"not json at all"`, `42`, `{"destination":"Kyoto"}`} {
		input := validCreateInput(t, "u1")
		input.Activity = json.RawMessage(raw)
		if _, err := svc.Create(ctx, input); !errors.Is(err, ErrItineraryValidation) {
			t.Fatalf("activity %s: expected ErrItineraryValidation, got %v", raw, err)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected no writes for malformed activity, found %d", len(repo.items))
	}
}

func TestItineraryService_List_DestinationPrefixIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	tokyo := validCreateInput(t, "u1")
	tokyo.Destination = "Tokyo"
	osaka := validCreateInput(t, "u1")
	osaka.Destination = "Osaka"
	for _, input := range []ItineraryCreateInput{tokyo, osaka} {
		if _, err := svc.Create(ctx, input); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	prefix := "tok"
	items, err := svc.List(ctx, "u1", domain.ItineraryFilter{DestinationPrefix: &prefix})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 || items[0].Destination != "Tokyo" {
		t.Fatalf("expected only Tokyo for prefix 'tok', got %+v", items)
	}
}

func TestItineraryService_List_TripTypeAllEqualsOmitted(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryItineraryRepo()
	svc := NewItineraryService(repo)

	leisure := validCreateInput(t, "u1")
	work := validCreateInput(t, "u1")
	work.TripType = "work"
	for _, input := range []ItineraryCreateInput{leisure, work} {
		if _, err := svc.Create(ctx, input); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	all := "all"
	withSentinel, err := svc.List(ctx, "u1", domain.ItineraryFilter{TripType: &all})
	if err != nil {
		t.Fatalf("List with sentinel returned error: %v", err)
	}
	omitted, err := svc.List(ctx, "u1", domain.ItineraryFilter{})
	if err != nil {
		t.Fatalf("List without filter returned error: %v", err)
	}
	if len(withSentinel) != len(omitted) || len(withSentinel) != 2 {
		t.Fatalf("expected identical sets of 2, got %d and %d", len(withSentinel), len(omitted))
	}

	work2 := "work"
	filtered, err := svc.List(ctx, "u1", domain.ItineraryFilter{TripType: &work2})
	if err != nil {
		t.Fatalf("List with trip type returned error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].TripType != "work" {
		t.Fatalf("expected only the work itinerary, got %+v", filtered)
	}
}

func TestItineraryService_List_RequiresUserID(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())
	if _, err := svc.List(context.Background(), "  ", domain.ItineraryFilter{}); !errors.Is(err, ErrItineraryValidation) {
		t.Fatalf("expected ErrItineraryValidation for blank user id, got %v", err)
	}
}

func TestItineraryService_GetByID_NotFound(t *testing.T) {
	svc := NewItineraryService(newMemoryItineraryRepo())
	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}
}
