// AngelaMos | 2026
// repository.go

package occurrence

import (
	"context"
	"fmt"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, occ *Occurrence) error
	GetByID(ctx context.Context, id string) (*Occurrence, error)
	ListByTrip(ctx context.Context, tripID string) ([]Occurrence, error)
}

const occurrenceColumns = `id, trip_id, date_debut, date_fin, heure_depart,
		       heure_fin, created_at, updated_at, deleted_at, deleted_by`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, occ *Occurrence) error {
	query := `
		INSERT INTO occurrences (id, trip_id, date_debut, date_fin,
		                         heure_depart, heure_fin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, occ, query,
		occ.ID,
		occ.TripID,
		occ.DateDebut,
		occ.DateFin,
		occ.HeureDepart,
		occ.HeureFin,
	)
	if err != nil {
		return fmt.Errorf("create occurrence: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Occurrence, error) {
	query := `
		SELECT ` + occurrenceColumns + `
		FROM occurrences
		WHERE id = $1 AND deleted_at IS NULL`

	var occ Occurrence
	err := r.db.GetContext(ctx, &occ, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get occurrence: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get occurrence: %w", err)
	}

	return &occ, nil
}

func (r *repository) ListByTrip(ctx context.Context, tripID string) ([]Occurrence, error) {
	query := `
		SELECT ` + occurrenceColumns + `
		FROM occurrences
		WHERE trip_id = $1 AND deleted_at IS NULL
		ORDER BY date_debut, heure_depart`

	var occs []Occurrence
	if err := r.db.SelectContext(ctx, &occs, query, tripID); err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}

	return occs, nil
}
