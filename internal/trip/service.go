// AngelaMos | 2026
// service.go

package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/core"
)

type BoatOwners interface {
	OwnsBoats(ctx context.Context, userID string) (bool, error)
}

type Boats interface {
	FindByID(ctx context.Context, id string) (*boat.Boat, error)
}

type Service struct {
	repo   Repository
	owners BoatOwners
	boats  Boats
}

func NewService(repo Repository, owners BoatOwners, boats Boats) *Service {
	return &Service{repo: repo, owners: owners, boats: boats}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeTripNotFound, "Trip not found")
}

func (s *Service) FindAll(ctx context.Context) ([]Trip, error) {
	return s.repo.List(ctx)
}

// FindByID returns core.ErrNotFound for unknown or deleted trips.
func (s *Service) FindByID(ctx context.Context, id string) (*Trip, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByOwner(ctx context.Context, ownerID string) ([]Trip, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) FindByBoat(ctx context.Context, boatID string) ([]Trip, error) {
	return s.repo.ListByBoat(ctx, boatID)
}

// GetTripWithBoat fails with a Trip not found business error when the trip
// is unknown or deleted.
func (s *Service) GetTripWithBoat(ctx context.Context, tripID string) (*WithBoat, error) {
	t, err := s.repo.GetByID(ctx, tripID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, NotFoundError()
	}
	if err != nil {
		return nil, err
	}

	b, err := s.boats.FindByID(ctx, t.BoatID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	return &WithBoat{Trip: *t, Boat: b}, nil
}

func (s *Service) Create(
	ctx context.Context,
	identity *auth.Identity,
	userID string,
	in CreateTripInput,
) (*Trip, error) {
	if _, err := auth.RequireAuth(identity, userID); err != nil {
		return nil, err
	}

	owns, err := s.owners.OwnsBoats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check owned boats: %w", err)
	}
	if !owns {
		return nil, core.NewBusinessError(
			core.ErrNoOwnedBoat,
			core.CodeNoOwnedBoat,
			"Trip creation denied: user does not own a boat",
		)
	}

	b, err := s.boats.FindByID(ctx, in.BoatID)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}
	if b == nil || b.UserID != userID {
		return nil, core.NewBusinessError(
			core.ErrInvalidBoatReference,
			core.CodeInvalidBoatReference,
			"Trip creation denied: boat does not belong to user or is deleted",
		)
	}

	if in.PrixEur < 0 {
		return nil, core.NewBusinessError(
			core.ErrNegativePrice,
			core.CodeNegativePrice,
			"Trip price cannot be negative",
		)
	}

	if !core.Money.Fits(in.PrixEur) {
		return nil, core.InvalidInput("Trip price exceeds the maximum amount")
	}

	if in.NbPassagers <= 0 {
		return nil, core.NewBusinessError(
			core.ErrInvalidPassengerCount,
			core.CodeInvalidPassengerCount,
			"Number of passengers must be greater than 0",
		)
	}

	if in.NbPassagers > b.CapaciteMax {
		return nil, core.Businessf(
			core.ErrPassengerCountExceedsCapacity,
			core.CodePassengerCountExceedsCapacity,
			"Number of passengers cannot exceed boat capacity (%d)",
			b.CapaciteMax,
		)
	}

	t := &Trip{
		ID:             uuid.New().String(),
		OwnerID:        userID,
		BoatID:         b.ID,
		Titre:          in.Titre,
		InfosPratiques: in.InfosPratiques,
		TypeSortie:     in.TypeSortie,
		TypeTarif:      in.TypeTarif,
		NbPassagers:    in.NbPassagers,
		PrixEur:        core.Money.Round(in.PrixEur),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "trip created", "trip_id", t.ID, "boat_id", t.BoatID)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	actor, err := auth.RequireAuth(identity)
	if err != nil {
		return err
	}

	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return NotFoundError()
	}
	if err != nil {
		return err
	}

	if t.OwnerID != actor.UserID {
		return core.NewBusinessError(
			core.ErrUnauthorized,
			core.CodeTripDeleteDenied,
			"Trip deletion denied: unauthorized",
		)
	}

	if err := s.repo.SoftDelete(ctx, id, actor.UserID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return NotFoundError()
		}
		return err
	}

	return nil
}
