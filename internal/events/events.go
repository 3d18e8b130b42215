// AngelaMos | 2026
// events.go

package events

import (
	"context"
	"time"
)

const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
)

type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type BookingPayload struct {
	BookingID    string  `json:"booking_id"`
	TripID       string  `json:"trip_id"`
	OccurrenceID string  `json:"occurrence_id"`
	UserID       string  `json:"user_id"`
	NbPlaces     int     `json:"nb_places"`
	PrixTotalEur float64 `json:"prix_total_eur"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop drops every event. Used when the broker is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

func (Noop) Close() error { return nil }
