// AngelaMos | 2026
// entity.go

package booking

import (
	"time"
)

type Booking struct {
	ID           string     `db:"id"`
	TripID       string     `db:"trip_id"`
	UserID       string     `db:"user_id"`
	OccurrenceID string     `db:"occurrence_id"`
	DateRetenue  time.Time  `db:"date_retenue"`
	NbPlaces     int        `db:"nb_places"`
	PrixTotalEur float64    `db:"prix_total_eur"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
	DeletedBy    *string    `db:"deleted_by"`
}

type CreateBookingInput struct {
	TripID       string
	OccurrenceID string
	NbPlaces     int
}

// CapacityCheck inspects the places already held on an occurrence and
// aborts the reservation by returning an error.
type CapacityCheck func(booked int) error
