// AngelaMos | 2026
// service.go

package logentry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/user"
)

type Users interface {
	MustFind(ctx context.Context, id string) (*user.User, error)
}

type Service struct {
	repo  Repository
	users Users
	now   func() time.Time
}

func NewService(repo Repository, users Users) *Service {
	return &Service{repo: repo, users: users, now: time.Now}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeLogEntryNotFound, "Log entry not found")
}

func (s *Service) FindAll(ctx context.Context) ([]LogEntry, error) {
	return s.repo.List(ctx)
}

// FindByID returns core.ErrNotFound for unknown or deleted entries.
func (s *Service) FindByID(ctx context.Context, id string) (*LogEntry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByOwner(ctx context.Context, ownerID string) ([]LogEntry, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Create(
	ctx context.Context,
	identity *auth.Identity,
	userID string,
	in CreateLogEntryInput,
) (*LogEntry, error) {
	if _, err := auth.RequireAuth(identity, userID); err != nil {
		return nil, err
	}

	if _, err := s.users.MustFind(ctx, userID); err != nil {
		return nil, err
	}

	in.TailleCm = core.SizeCm.Round(in.TailleCm)
	in.PoidsKg = core.WeightKg.Round(in.PoidsKg)

	if in.TailleCm <= 0 {
		return nil, core.NewBusinessError(
			core.ErrInvalidSize,
			core.CodeInvalidSize,
			"Fish size must be greater than 0",
		)
	}

	if in.PoidsKg <= 0 {
		return nil, core.NewBusinessError(
			core.ErrInvalidWeight,
			core.CodeInvalidWeight,
			"Fish weight must be greater than 0",
		)
	}

	if !core.SizeCm.Fits(in.TailleCm) || !core.WeightKg.Fits(in.PoidsKg) {
		return nil, core.InvalidInput("Fish size or weight exceeds the recordable range")
	}

	if in.DatePeche.After(s.now()) {
		return nil, core.NewBusinessError(
			core.ErrFutureDate,
			core.CodeFutureDate,
			"Fishing date cannot be in the future",
		)
	}

	entry := &LogEntry{
		ID:          uuid.New().String(),
		OwnerID:     userID,
		PoissonNom:  in.PoissonNom,
		PhotoURL:    in.PhotoURL,
		Commentaire: in.Commentaire,
		TailleCm:    in.TailleCm,
		PoidsKg:     in.PoidsKg,
		Lieu:        in.Lieu,
		DatePeche:   in.DatePeche,
		Relache:     in.Relache,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) Delete(ctx context.Context, identity *auth.Identity, id string) error {
	actor, err := auth.RequireAuth(identity)
	if err != nil {
		return err
	}

	entry, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return NotFoundError()
	}
	if err != nil {
		return err
	}

	if entry.OwnerID != actor.UserID {
		return core.NewBusinessError(
			core.ErrUnauthorized,
			core.CodeLogEntryDeleteDenied,
			"Log entry deletion denied: unauthorized",
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
