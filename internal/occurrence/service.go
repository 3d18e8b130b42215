// AngelaMos | 2026
// service.go

package occurrence

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/trip"
)

type Trips interface {
	FindByID(ctx context.Context, id string) (*trip.Trip, error)
}

type Service struct {
	repo  Repository
	trips Trips
}

func NewService(repo Repository, trips Trips) *Service {
	return &Service{repo: repo, trips: trips}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeOccurrenceNotFound, "Occurrence not found")
}

// FindByID returns core.ErrNotFound for unknown occurrences.
func (s *Service) FindByID(ctx context.Context, id string) (*Occurrence, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByTrip(ctx context.Context, tripID string) ([]Occurrence, error) {
	return s.repo.ListByTrip(ctx, tripID)
}

func (s *Service) Create(ctx context.Context, in CreateOccurrenceInput) (*Occurrence, error) {
	if _, err := s.trips.FindByID(ctx, in.TripID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, trip.NotFoundError()
		}
		return nil, err
	}

	if !in.DateDebut.Before(in.DateFin) {
		return nil, core.NewBusinessError(
			core.ErrInvalidDateRange,
			core.CodeInvalidDateRange,
			"Start date must be before end date",
		)
	}

	if !in.HeureDepart.Before(in.HeureFin) {
		return nil, core.NewBusinessError(
			core.ErrInvalidTimeRange,
			core.CodeInvalidTimeRange,
			"Departure time must be before end time",
		)
	}

	occ := &Occurrence{
		ID:          uuid.New().String(),
		TripID:      in.TripID,
		DateDebut:   in.DateDebut,
		DateFin:     in.DateFin,
		HeureDepart: in.HeureDepart,
		HeureFin:    in.HeureFin,
	}

	if err := s.repo.Create(ctx, occ); err != nil {
		return nil, err
	}

	return occ, nil
}

// ValidateOccurrenceBelongsToTrip fails with OccurrenceTripMismatch when the
// occurrence is unknown or scheduled under another trip.
func (s *Service) ValidateOccurrenceBelongsToTrip(
	ctx context.Context,
	occurrenceID, tripID string,
) error {
	occ, err := s.repo.GetByID(ctx, occurrenceID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}

	if occ == nil || occ.TripID != tripID {
		return core.NewBusinessError(
			core.ErrOccurrenceTripMismatch,
			core.CodeOccurrenceTripMismatch,
			"Occurrence not found for this trip",
		)
	}

	return nil
}
