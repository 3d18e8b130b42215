// AngelaMos | 2026
// repository.go

package boat

import (
	"context"
	"fmt"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, boat *Boat) error
	GetByID(ctx context.Context, id string) (*Boat, error)
	List(ctx context.Context) ([]Boat, error)
	ListByOwner(ctx context.Context, userID string) ([]Boat, error)
	ListInBox(ctx context.Context, box BoundingBox) ([]Boat, error)
	SoftDelete(ctx context.Context, id, deletedBy string) error
}

const boatColumns = `id, user_id, nom, description, marque, annee, photo_url,
		       permis_requis, type, equipements, caution_eur, capacite_max,
		       couchages, port_attache_ville, lat, lon, motorisation,
		       puissance_cv, created_at, updated_at, deleted_at, deleted_by`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, boat *Boat) error {
	query := `
		INSERT INTO boats (id, user_id, nom, description, marque, annee,
		                   photo_url, permis_requis, type, equipements,
		                   caution_eur, capacite_max, couchages,
		                   port_attache_ville, lat, lon, motorisation,
		                   puissance_cv)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, boat, query,
		boat.ID,
		boat.UserID,
		boat.Nom,
		boat.Description,
		boat.Marque,
		boat.Annee,
		boat.PhotoURL,
		boat.PermisRequis,
		boat.Type,
		boat.Equipements,
		boat.CautionEur,
		boat.CapaciteMax,
		boat.Couchages,
		boat.PortAttacheVille,
		boat.Lat,
		boat.Lon,
		boat.Motorisation,
		boat.PuissanceCV,
	)
	if err != nil {
		return fmt.Errorf("create boat: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Boat, error) {
	query := `
		SELECT ` + boatColumns + `
		FROM boats
		WHERE id = $1 AND deleted_at IS NULL`

	var boat Boat
	err := r.db.GetContext(ctx, &boat, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get boat: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get boat: %w", err)
	}

	return &boat, nil
}

func (r *repository) List(ctx context.Context) ([]Boat, error) {
	query := `
		SELECT ` + boatColumns + `
		FROM boats
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	var boats []Boat
	if err := r.db.SelectContext(ctx, &boats, query); err != nil {
		return nil, fmt.Errorf("list boats: %w", err)
	}

	return boats, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]Boat, error) {
	query := `
		SELECT ` + boatColumns + `
		FROM boats
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	var boats []Boat
	if err := r.db.SelectContext(ctx, &boats, query, userID); err != nil {
		return nil, fmt.Errorf("list boats by owner: %w", err)
	}

	return boats, nil
}

func (r *repository) ListInBox(
	ctx context.Context,
	box BoundingBox,
) ([]Boat, error) {
	query := `
		SELECT ` + boatColumns + `
		FROM boats
		WHERE deleted_at IS NULL
		  AND lat BETWEEN $1 AND $2
		  AND lon BETWEEN $3 AND $4
		ORDER BY created_at DESC`

	var boats []Boat
	err := r.db.SelectContext(ctx, &boats, query,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon)
	if err != nil {
		return nil, fmt.Errorf("list boats in box: %w", err)
	}

	return boats, nil
}

func (r *repository) SoftDelete(
	ctx context.Context,
	id, deletedBy string,
) error {
	query := `
		UPDATE boats
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete boat: %w", err)
	}

	return core.ExpectAffected(result, "delete boat")
}
