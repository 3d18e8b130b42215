// AngelaMos | 2026
// repository.go

package trip

import (
	"context"
	"fmt"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByID(ctx context.Context, id string) (*Trip, error)
	List(ctx context.Context) ([]Trip, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Trip, error)
	ListByBoat(ctx context.Context, boatID string) ([]Trip, error)
	SoftDelete(ctx context.Context, id, deletedBy string) error
}

const tripColumns = `id, owner_id, boat_id, titre, infos_pratiques, type_sortie,
		       type_tarif, nb_passagers, prix_eur, created_at, updated_at,
		       deleted_at, deleted_by`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, trip *Trip) error {
	query := `
		INSERT INTO trips (id, owner_id, boat_id, titre, infos_pratiques,
		                   type_sortie, type_tarif, nb_passagers, prix_eur)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, trip, query,
		trip.ID,
		trip.OwnerID,
		trip.BoatID,
		trip.Titre,
		trip.InfosPratiques,
		trip.TypeSortie,
		trip.TypeTarif,
		trip.NbPassagers,
		trip.PrixEur,
	)
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1 AND deleted_at IS NULL`

	var trip Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get trip: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	return &trip, nil
}

func (r *repository) List(ctx context.Context) ([]Trip, error) {
	return r.selectTrips(ctx, "list trips", `deleted_at IS NULL`)
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]Trip, error) {
	return r.selectTrips(ctx, "list trips by owner",
		`owner_id = $1 AND deleted_at IS NULL`, ownerID)
}

func (r *repository) ListByBoat(ctx context.Context, boatID string) ([]Trip, error) {
	return r.selectTrips(ctx, "list trips by boat",
		`boat_id = $1 AND deleted_at IS NULL`, boatID)
}

func (r *repository) selectTrips(
	ctx context.Context,
	op, where string,
	args ...any,
) ([]Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE ` + where + `
		ORDER BY created_at DESC`

	var trips []Trip
	if err := r.db.SelectContext(ctx, &trips, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return trips, nil
}

func (r *repository) SoftDelete(ctx context.Context, id, deletedBy string) error {
	query := `
		UPDATE trips
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}

	return core.ExpectAffected(result, "delete trip")
}
