// AngelaMos | 2026
// entity.go

package occurrence

import (
	"time"
)

type Occurrence struct {
	ID          string     `db:"id"`
	TripID      string     `db:"trip_id"`
	DateDebut   time.Time  `db:"date_debut"`
	DateFin     time.Time  `db:"date_fin"`
	HeureDepart time.Time  `db:"heure_depart"`
	HeureFin    time.Time  `db:"heure_fin"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	DeletedBy   *string    `db:"deleted_by"`
}

type CreateOccurrenceInput struct {
	TripID      string
	DateDebut   time.Time
	DateFin     time.Time
	HeureDepart time.Time
	HeureFin    time.Time
}
