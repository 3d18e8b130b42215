// AngelaMos | 2026
// entity.go

package trip

import (
	"time"

	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/core"
)

type Trip struct {
	ID             string     `db:"id"`
	OwnerID        string     `db:"owner_id"`
	BoatID         string     `db:"boat_id"`
	Titre          string     `db:"titre"`
	InfosPratiques *string    `db:"infos_pratiques"`
	TypeSortie     string     `db:"type_sortie"`
	TypeTarif      string     `db:"type_tarif"`
	NbPassagers    int        `db:"nb_passagers"`
	PrixEur        float64    `db:"prix_eur"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
	DeletedBy      *string    `db:"deleted_by"`
}

func (t *Trip) IsDeleted() bool {
	return t.DeletedAt != nil
}

// PriceFor is the total owed for places seats: the flat price under
// global pricing, otherwise price times places, rounded to cents.
func (t *Trip) PriceFor(places int) float64 {
	if t.TypeTarif == PricingGlobal {
		return core.Money.Round(t.PrixEur)
	}
	return core.Money.Times(t.PrixEur, places)
}

const (
	OutingDaily     = "journaliere"
	OutingRecurring = "recurrente"
)

const (
	PricingGlobal    = "global"
	PricingPerPerson = "par_personne"
)

// WithBoat is a trip with its boat attached. Boat is nil when the boat has
// since been deleted.
type WithBoat struct {
	Trip
	Boat *boat.Boat
}
