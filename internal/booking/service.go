// AngelaMos | 2026
// service.go

package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/events"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

type Users interface {
	MustFind(ctx context.Context, id string) (*user.User, error)
}

type Trips interface {
	GetTripWithBoat(ctx context.Context, tripID string) (*trip.WithBoat, error)
}

type Occurrences interface {
	FindByID(ctx context.Context, id string) (*occurrence.Occurrence, error)
	ValidateOccurrenceBelongsToTrip(ctx context.Context, occurrenceID, tripID string) error
}

type Service struct {
	repo        Repository
	users       Users
	trips       Trips
	occurrences Occurrences
	publisher   events.Publisher
	metrics     *core.Metrics
	tracer      trace.Tracer
	now         func() time.Time
}

// NewService wires the booking service. publisher and metrics may be nil.
func NewService(
	repo Repository,
	users Users,
	trips Trips,
	occurrences Occurrences,
	publisher events.Publisher,
	metrics *core.Metrics,
) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}

	return &Service{
		repo:        repo,
		users:       users,
		trips:       trips,
		occurrences: occurrences,
		publisher:   publisher,
		metrics:     metrics,
		tracer:      otel.Tracer("github.com/fisherfans/backend/internal/booking"),
		now:         time.Now,
	}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeBookingNotFound, "Booking not found")
}

func (s *Service) FindAll(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}

// FindByID returns core.ErrNotFound for unknown or cancelled bookings.
func (s *Service) FindByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) FindByTrip(ctx context.Context, tripID string) ([]Booking, error) {
	return s.repo.ListByTrip(ctx, tripID)
}

func (s *Service) FindByOccurrence(ctx context.Context, occurrenceID string) ([]Booking, error) {
	return s.repo.ListByOccurrence(ctx, occurrenceID)
}

func (s *Service) GetTotalBookedPlaces(ctx context.Context, occurrenceID string) (int, error) {
	return s.repo.TotalBookedPlaces(ctx, occurrenceID)
}

// RemainingPlaces is the trip's passenger count minus the places held by
// live bookings on the occurrence, floored at zero.
func (s *Service) RemainingPlaces(ctx context.Context, occurrenceID string) (int, error) {
	occ, err := s.occurrences.FindByID(ctx, occurrenceID)
	if errors.Is(err, core.ErrNotFound) {
		return 0, occurrence.NotFoundError()
	}
	if err != nil {
		return 0, err
	}

	t, err := s.trips.GetTripWithBoat(ctx, occ.TripID)
	if err != nil {
		return 0, err
	}

	booked, err := s.repo.TotalBookedPlaces(ctx, occurrenceID)
	if err != nil {
		return 0, err
	}

	return max(t.NbPassagers-booked, 0), nil
}

// Create validates the request in a fixed order and reports the first
// failing rule. The capacity check and the insert run atomically per
// occurrence.
func (s *Service) Create(
	ctx context.Context,
	identity *auth.Identity,
	userID string,
	in CreateBookingInput,
) (*Booking, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Create", trace.WithAttributes(
		attribute.String("booking.trip_id", in.TripID),
		attribute.String("booking.occurrence_id", in.OccurrenceID),
		attribute.Int("booking.nb_places", in.NbPlaces),
	))
	defer span.End()

	b, err := s.create(ctx, identity, userID, in)
	if err != nil {
		s.recordOutcome(err)
		core.RecordSpanError(ctx, err)
		return nil, err
	}

	s.recordOutcome(nil)
	if s.metrics != nil {
		s.metrics.BookedPlaces.Add(float64(b.NbPlaces))
	}
	span.SetAttributes(attribute.String("booking.id", b.ID))

	slog.InfoContext(ctx, "booking accepted",
		"booking_id", b.ID,
		"occurrence_id", b.OccurrenceID,
		"nb_places", b.NbPlaces,
		"prix_total_eur", b.PrixTotalEur,
	)
	s.publish(ctx, events.BookingCreated, b)

	return b, nil
}

func (s *Service) create(
	ctx context.Context,
	identity *auth.Identity,
	userID string,
	in CreateBookingInput,
) (*Booking, error) {
	if _, err := auth.RequireAuth(identity, userID); err != nil {
		return nil, err
	}

	if _, err := s.users.MustFind(ctx, userID); err != nil {
		return nil, err
	}

	t, err := s.trips.GetTripWithBoat(ctx, in.TripID)
	if err != nil {
		return nil, err
	}

	if err := s.occurrences.ValidateOccurrenceBelongsToTrip(ctx, in.OccurrenceID, t.ID); err != nil {
		return nil, err
	}

	if in.NbPlaces <= 0 {
		return nil, core.NewBusinessError(
			core.ErrInvalidPlaceCount,
			core.CodeInvalidPlaceCount,
			"Number of places must be greater than 0",
		)
	}

	b := &Booking{
		ID:           uuid.New().String(),
		TripID:       t.ID,
		UserID:       userID,
		OccurrenceID: in.OccurrenceID,
		DateRetenue:  s.now().UTC(),
		NbPlaces:     in.NbPlaces,
		PrixTotalEur: t.PriceFor(in.NbPlaces),
	}

	err = s.repo.Reserve(ctx, b, func(booked int) error {
		remaining := max(t.NbPassagers-booked, 0)
		if in.NbPlaces > remaining {
			return core.Businessf(
				core.ErrCapacityExceeded,
				core.CodeCapacityExceeded,
				"Booking denied: boat capacity exceeded. Only %d places remaining",
				remaining,
			)
		}
		if !core.Money.Fits(b.PrixTotalEur) {
			return core.InvalidInput("Booking total exceeds the maximum amount")
		}
		return nil
	})
	if errors.Is(err, core.ErrNotFound) && !core.IsBusinessError(err) {
		return nil, core.NewBusinessError(
			core.ErrOccurrenceTripMismatch,
			core.CodeOccurrenceTripMismatch,
			"Occurrence not found for this trip",
		)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	actor, err := auth.RequireAuth(identity)
	if err != nil {
		return err
	}

	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return NotFoundError()
	}
	if err != nil {
		return err
	}

	if b.UserID != actor.UserID {
		return core.NewBusinessError(
			core.ErrUnauthorized,
			core.CodeBookingDeleteDenied,
			"Booking deletion denied: unauthorized",
		)
	}

	if err := s.repo.SoftDelete(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return NotFoundError()
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.Bookings.WithLabelValues("cancelled").Inc()
	}
	slog.InfoContext(ctx, "booking cancelled", "booking_id", id, "occurrence_id", b.OccurrenceID)
	s.publish(ctx, events.BookingCancelled, b)

	return nil
}

func (s *Service) publish(ctx context.Context, kind string, b *Booking) {
	ev := events.NewBookingEvent(kind, events.BookingPayload{
		BookingID:    b.ID,
		TripID:       b.TripID,
		OccurrenceID: b.OccurrenceID,
		UserID:       b.UserID,
		NbPlaces:     b.NbPlaces,
		PrixTotalEur: b.PrixTotalEur,
	})

	if err := s.publisher.Publish(ctx, ev); err != nil {
		slog.WarnContext(ctx, "publish booking event failed",
			"event", kind,
			"booking_id", b.ID,
			"error", err,
		)
	}
}

func (s *Service) recordOutcome(err error) {
	if s.metrics == nil {
		return
	}

	outcome := "accepted"
	switch {
	case err == nil:
	case errors.Is(err, core.ErrCapacityExceeded):
		outcome = "capacity_exceeded"
	case core.IsBusinessError(err):
		outcome = "rejected"
	default:
		outcome = "error"
	}

	s.metrics.Bookings.WithLabelValues(outcome).Inc()
}
