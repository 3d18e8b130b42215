// AngelaMos | 2026
// repository.go

package logentry

import (
	"context"
	"fmt"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, entry *LogEntry) error
	GetByID(ctx context.Context, id string) (*LogEntry, error)
	List(ctx context.Context) ([]LogEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]LogEntry, error)
	SoftDelete(ctx context.Context, id, deletedBy string) error
}

const logEntryColumns = `id, owner_id, poisson_nom, photo_url, commentaire,
		       taille_cm, poids_kg, lieu, date_peche, relache, created_at,
		       updated_at, deleted_at, deleted_by`

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *LogEntry) error {
	query := `
		INSERT INTO log_entries (id, owner_id, poisson_nom, photo_url,
		                         commentaire, taille_cm, poids_kg, lieu,
		                         date_peche, relache)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, entry, query,
		entry.ID,
		entry.OwnerID,
		entry.PoissonNom,
		entry.PhotoURL,
		entry.Commentaire,
		entry.TailleCm,
		entry.PoidsKg,
		entry.Lieu,
		entry.DatePeche,
		entry.Relache,
	)
	if err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*LogEntry, error) {
	query := `
		SELECT ` + logEntryColumns + `
		FROM log_entries
		WHERE id = $1 AND deleted_at IS NULL`

	var entry LogEntry
	err := r.db.GetContext(ctx, &entry, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get log entry: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get log entry: %w", err)
	}

	return &entry, nil
}

func (r *repository) List(ctx context.Context) ([]LogEntry, error) {
	query := `
		SELECT ` + logEntryColumns + `
		FROM log_entries
		WHERE deleted_at IS NULL
		ORDER BY date_peche DESC`

	var entries []LogEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list log entries: %w", err)
	}

	return entries, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]LogEntry, error) {
	query := `
		SELECT ` + logEntryColumns + `
		FROM log_entries
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY date_peche DESC`

	var entries []LogEntry
	if err := r.db.SelectContext(ctx, &entries, query, ownerID); err != nil {
		return nil, fmt.Errorf("list log entries by owner: %w", err)
	}

	return entries, nil
}

func (r *repository) SoftDelete(ctx context.Context, id, deletedBy string) error {
	query := `
		UPDATE log_entries
		SET deleted_at = NOW(), deleted_by = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, deletedBy)
	if err != nil {
		return fmt.Errorf("delete log entry: %w", err)
	}

	return core.ExpectAffected(result, "delete log entry")
}
