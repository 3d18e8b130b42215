// AngelaMos | 2026
// resolver.go

package graph

import (
	"context"
	"errors"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

type UserService interface {
	FindAll(ctx context.Context) ([]user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindIncludingDeleted(ctx context.Context, id string) (*user.User, error)
	Create(ctx context.Context, in user.CreateUserInput) (*user.User, error)
	Update(ctx context.Context, identity *auth.Identity, id string, in user.UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id, deletedBy string) error
}

type BoatService interface {
	FindAll(ctx context.Context) ([]boat.Boat, error)
	FindByID(ctx context.Context, id string) (*boat.Boat, error)
	FindByOwner(ctx context.Context, userID string) ([]boat.Boat, error)
	FindByLocation(ctx context.Context, box boat.BoundingBox) ([]boat.Boat, error)
	Create(ctx context.Context, identity *auth.Identity, userID string, in boat.CreateBoatInput) (*boat.Boat, error)
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

type TripService interface {
	FindAll(ctx context.Context) ([]trip.Trip, error)
	FindByID(ctx context.Context, id string) (*trip.Trip, error)
	FindByOwner(ctx context.Context, ownerID string) ([]trip.Trip, error)
	FindByBoat(ctx context.Context, boatID string) ([]trip.Trip, error)
	Create(ctx context.Context, identity *auth.Identity, userID string, in trip.CreateTripInput) (*trip.Trip, error)
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

type OccurrenceService interface {
	FindByID(ctx context.Context, id string) (*occurrence.Occurrence, error)
	ListByTrip(ctx context.Context, tripID string) ([]occurrence.Occurrence, error)
	Create(ctx context.Context, in occurrence.CreateOccurrenceInput) (*occurrence.Occurrence, error)
}

type BookingService interface {
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	FindByUser(ctx context.Context, userID string) ([]booking.Booking, error)
	FindByTrip(ctx context.Context, tripID string) ([]booking.Booking, error)
	FindByOccurrence(ctx context.Context, occurrenceID string) ([]booking.Booking, error)
	RemainingPlaces(ctx context.Context, occurrenceID string) (int, error)
	Create(ctx context.Context, identity *auth.Identity, userID string, in booking.CreateBookingInput) (*booking.Booking, error)
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

type LogEntryService interface {
	FindAll(ctx context.Context) ([]logentry.LogEntry, error)
	FindByID(ctx context.Context, id string) (*logentry.LogEntry, error)
	FindByOwner(ctx context.Context, ownerID string) ([]logentry.LogEntry, error)
	Create(ctx context.Context, identity *auth.Identity, userID string, in logentry.CreateLogEntryInput) (*logentry.LogEntry, error)
	Delete(ctx context.Context, identity *auth.Identity, id string) error
}

type SessionService interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	IssueSession(userID, email string) (*auth.Session, error)
}

type Services struct {
	Users       UserService
	Boats       BoatService
	Trips       TripService
	Occurrences OccurrenceService
	Bookings    BookingService
	LogEntries  LogEntryService
	Sessions    SessionService
}

// Resolver is the root of both the query and the mutation type.
type Resolver struct {
	svc Services
}

func NewResolver(svc Services) *Resolver {
	return &Resolver{svc: svc}
}

// optional turns a not found lookup into a null result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

// notFound swaps a bare core.ErrNotFound for the entity's business error.
func notFound(err error, businessErr func() error) error {
	if errors.Is(err, core.ErrNotFound) && !core.IsBusinessError(err) {
		return businessErr()
	}
	return err
}

func wrapAll[E any, R any](items []E, err error, wrap func(*E) R) ([]R, error) {
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, wrap(&items[i]))
	}
	return out, nil
}
