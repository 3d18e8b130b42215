// AngelaMos | 2026
// service.go

package boat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/core"
)

type LicenseChecker interface {
	HasValidBoatLicense(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	repo     Repository
	licenses LicenseChecker
}

func NewService(repo Repository, licenses LicenseChecker) *Service {
	return &Service{repo: repo, licenses: licenses}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeBoatNotFound, "Boat not found")
}

func (s *Service) FindAll(ctx context.Context) ([]Boat, error) {
	return s.repo.List(ctx)
}

// FindByID returns core.ErrNotFound for unknown or deleted boats.
func (s *Service) FindByID(ctx context.Context, id string) (*Boat, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByOwner(ctx context.Context, userID string) ([]Boat, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) FindByLocation(ctx context.Context, box BoundingBox) ([]Boat, error) {
	if !box.Valid() {
		return nil, core.NewBusinessError(
			core.ErrInvalidBoundingBox,
			core.CodeInvalidBoundingBox,
			"Invalid bounding box coordinates",
		)
	}

	return s.repo.ListInBox(ctx, box)
}

// Create checks the license before capacity, and capacity before berths.
// Only the first failing rule is reported.
func (s *Service) Create(
	ctx context.Context,
	identity *auth.Identity,
	userID string,
	in CreateBoatInput,
) (*Boat, error) {
	if _, err := auth.RequireAuth(identity, userID); err != nil {
		return nil, err
	}

	licensed, err := s.licenses.HasValidBoatLicense(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check license: %w", err)
	}
	if !licensed {
		return nil, core.NewBusinessError(
			core.ErrMissingBoatLicense,
			core.CodeMissingBoatLicense,
			"Boat creation denied: missing boat license",
		)
	}

	if in.CapaciteMax <= 0 {
		return nil, core.NewBusinessError(
			core.ErrInvalidCapacity,
			core.CodeInvalidCapacity,
			"Boat capacity must be greater than 0",
		)
	}

	if in.Couchages > in.CapaciteMax {
		return nil, core.NewBusinessError(
			core.ErrBerthsExceedCapacity,
			core.CodeBerthsExceedCapacity,
			"Number of berths cannot exceed maximum capacity",
		)
	}

	if !core.Money.Fits(in.CautionEur) {
		return nil, core.InvalidInput("Boat deposit exceeds the maximum amount")
	}

	equipements := in.Equipements
	if equipements == nil {
		equipements = []string{}
	}

	b := &Boat{
		ID:               uuid.New().String(),
		UserID:           userID,
		Nom:              in.Nom,
		Description:      in.Description,
		Marque:           in.Marque,
		Annee:            in.Annee,
		PhotoURL:         in.PhotoURL,
		PermisRequis:     in.PermisRequis,
		Type:             in.Type,
		Equipements:      pq.StringArray(equipements),
		CautionEur:       core.Money.Round(in.CautionEur),
		CapaciteMax:      in.CapaciteMax,
		Couchages:        in.Couchages,
		PortAttacheVille: in.PortAttacheVille,
		Lat:              in.Lat,
		Lon:              in.Lon,
		Motorisation:     in.Motorisation,
		PuissanceCV:      in.PuissanceCV,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "boat created", "boat_id", b.ID, "owner_id", userID)
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
			core.CodeBoatDeleteDenied,
			"Boat deletion denied: unauthorized",
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

// BelongsToUser reports whether boatID is live and owned by userID.
func (s *Service) BelongsToUser(ctx context.Context, boatID, userID string) (bool, error) {
	b, err := s.repo.GetByID(ctx, boatID)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return b.UserID == userID, nil
}
