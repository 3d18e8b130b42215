// AngelaMos | 2026
// repository.go

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Reserve(ctx context.Context, b *Booking, check CapacityCheck) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context) ([]Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	ListByTrip(ctx context.Context, tripID string) ([]Booking, error)
	ListByOccurrence(ctx context.Context, occurrenceID string) ([]Booking, error)
	TotalBookedPlaces(ctx context.Context, occurrenceID string) (int, error)
	SoftDelete(ctx context.Context, id, deletedBy string) error
}

const bookingColumns = `id, trip_id, user_id, occurrence_id, date_retenue,
		       nb_places, prix_total_eur, created_at, updated_at,
		       deleted_at, deleted_by`

const totalBookedQuery = `
		SELECT COALESCE(SUM(nb_places), 0)
		FROM bookings
		WHERE occurrence_id = $1 AND deleted_at IS NULL`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Reserve locks the occurrence row, sums the live places already held, runs
// check and inserts b, all in one transaction. Concurrent reservations on
// the same occurrence queue on the row lock, so check always sees every
// committed booking.
func (r *repository) Reserve(
	ctx context.Context,
	b *Booking,
	check CapacityCheck,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var locked string
		err := tx.GetContext(ctx, &locked, `
			SELECT id
			FROM occurrences
			WHERE id = $1 AND deleted_at IS NULL
			FOR UPDATE`,
			b.OccurrenceID,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock occurrence: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock occurrence: %w", err)
		}

		var booked int
		if err := tx.GetContext(ctx, &booked, totalBookedQuery, b.OccurrenceID); err != nil {
			return fmt.Errorf("sum booked places: %w", err)
		}

		if err := check(booked); err != nil {
			return err
		}

		err = tx.GetContext(ctx, b, `
			INSERT INTO bookings (id, trip_id, user_id, occurrence_id,
			                      date_retenue, nb_places, prix_total_eur)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`,
			b.ID,
			b.TripID,
			b.UserID,
			b.OccurrenceID,
			b.DateRetenue,
			b.NbPlaces,
			b.PrixTotalEur,
		)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND deleted_at IS NULL`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get booking: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}

func (r *repository) List(ctx context.Context) ([]Booking, error) {
	return r.selectBookings(ctx, "list bookings", `deleted_at IS NULL`)
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	return r.selectBookings(ctx, "list bookings by user",
		`user_id = $1 AND deleted_at IS NULL`, userID)
}

func (r *repository) ListByTrip(ctx context.Context, tripID string) ([]Booking, error) {
	return r.selectBookings(ctx, "list bookings by trip",
		`trip_id = $1 AND deleted_at IS NULL`, tripID)
}

func (r *repository) ListByOccurrence(
	ctx context.Context,
	occurrenceID string,
) ([]Booking, error) {
	return r.selectBookings(ctx, "list bookings by occurrence",
		`occurrence_id = $1 AND deleted_at IS NULL`, occurrenceID)
}

func (r *repository) selectBookings(
	ctx context.Context,
	op, where string,
	args ...any,
) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ` + where + `
		ORDER BY date_retenue DESC`

	var bookings []Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (r *repository) TotalBookedPlaces(
	ctx context.Context,
	occurrenceID string,
) (int, error) {
	var booked int
	if err := r.db.GetContext(ctx, &booked, totalBookedQuery, occurrenceID); err != nil {
		return 0, fmt.Errorf("sum booked places: %w", err)
	}
	return booked, nil
}

func (r *repository) SoftDelete(ctx context.Context, id, deletedBy string) error {
	query := `
		UPDATE bookings
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return core.ExpectAffected(result, "delete booking")
}
