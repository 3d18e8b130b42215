// AngelaMos | 2026
// entity.go

package logentry

import (
	"time"
)

type LogEntry struct {
	ID          string     `db:"id"`
	OwnerID     string     `db:"owner_id"`
	PoissonNom  string     `db:"poisson_nom"`
	PhotoURL    *string    `db:"photo_url"`
	Commentaire *string    `db:"commentaire"`
	TailleCm    float64    `db:"taille_cm"`
	PoidsKg     float64    `db:"poids_kg"`
	Lieu        string     `db:"lieu"`
	DatePeche   time.Time  `db:"date_peche"`
	Relache     bool       `db:"relache"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	DeletedBy   *string    `db:"deleted_by"`
}

type CreateLogEntryInput struct {
	PoissonNom  string
	PhotoURL    *string
	Commentaire *string
	TailleCm    float64
	PoidsKg     float64
	Lieu        string
	DatePeche   time.Time
	Relache     bool
}
