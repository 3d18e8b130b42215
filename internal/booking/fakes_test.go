// AngelaMos | 2026
// fakes_test.go

package booking

import (
	"context"
	"sync"
	"time"

	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/events"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

// memRepo holds one lock across check and insert, the in-memory analogue of
// the occurrence row lock.
type memRepo struct {
	mu       sync.Mutex
	bookings map[string]*Booking
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: map[string]*Booking{}}
}

func (m *memRepo) bookedLocked(occurrenceID string) int {
	total := 0
	for _, b := range m.bookings {
		if b.OccurrenceID == occurrenceID && b.DeletedAt == nil {
			total += b.NbPlaces
		}
	}
	return total
}

func (m *memRepo) Reserve(_ context.Context, b *Booking, check CapacityCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := check(m.bookedLocked(b.OccurrenceID)); err != nil {
		return err
	}

	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok || b.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) filter(keep func(*Booking) bool) []Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Booking
	for _, b := range m.bookings {
		if b.DeletedAt == nil && keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (m *memRepo) List(_ context.Context) ([]Booking, error) {
	return m.filter(func(*Booking) bool { return true }), nil
}

func (m *memRepo) ListByUser(_ context.Context, userID string) ([]Booking, error) {
	return m.filter(func(b *Booking) bool { return b.UserID == userID }), nil
}

func (m *memRepo) ListByTrip(_ context.Context, tripID string) ([]Booking, error) {
	return m.filter(func(b *Booking) bool { return b.TripID == tripID }), nil
}

func (m *memRepo) ListByOccurrence(_ context.Context, occurrenceID string) ([]Booking, error) {
	return m.filter(func(b *Booking) bool { return b.OccurrenceID == occurrenceID }), nil
}

func (m *memRepo) TotalBookedPlaces(_ context.Context, occurrenceID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookedLocked(occurrenceID), nil
}

func (m *memRepo) SoftDelete(_ context.Context, id, deletedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.bookings[id]
	if !ok || b.DeletedAt != nil {
		return core.ErrNotFound
	}
	now := time.Now()
	b.DeletedAt = &now
	b.DeletedBy = &deletedBy
	return nil
}

type users map[string]bool

func (u users) MustFind(_ context.Context, id string) (*user.User, error) {
	if !u[id] {
		return nil, user.NotFoundError()
	}
	return &user.User{ID: id}, nil
}

type trips map[string]*trip.Trip

func (ts trips) GetTripWithBoat(_ context.Context, id string) (*trip.WithBoat, error) {
	t, ok := ts[id]
	if !ok {
		return nil, trip.NotFoundError()
	}
	return &trip.WithBoat{Trip: *t}, nil
}

type occurrences map[string]string

func (o occurrences) FindByID(_ context.Context, id string) (*occurrence.Occurrence, error) {
	tripID, ok := o[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &occurrence.Occurrence{ID: id, TripID: tripID}, nil
}

func (o occurrences) ValidateOccurrenceBelongsToTrip(_ context.Context, occurrenceID, tripID string) error {
	if o[occurrenceID] != tripID {
		return core.NewBusinessError(
			core.ErrOccurrenceTripMismatch,
			core.CodeOccurrenceTripMismatch,
			"Occurrence not found for this trip",
		)
	}
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}
