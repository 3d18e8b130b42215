// AngelaMos | 2026
// entity.go

package boat

import (
	"time"

	"github.com/lib/pq"
)

type Boat struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	Nom              string         `db:"nom"`
	Description      *string        `db:"description"`
	Marque           string         `db:"marque"`
	Annee            int            `db:"annee"`
	PhotoURL         *string        `db:"photo_url"`
	PermisRequis     string         `db:"permis_requis"`
	Type             string         `db:"type"`
	Equipements      pq.StringArray `db:"equipements"`
	CautionEur       float64        `db:"caution_eur"`
	CapaciteMax      int            `db:"capacite_max"`
	Couchages        int            `db:"couchages"`
	PortAttacheVille string         `db:"port_attache_ville"`
	Lat              float64        `db:"lat"`
	Lon              float64        `db:"lon"`
	Motorisation     string         `db:"motorisation"`
	PuissanceCV      int            `db:"puissance_cv"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
	DeletedAt        *time.Time     `db:"deleted_at"`
	DeletedBy        *string        `db:"deleted_by"`
}

func (b *Boat) IsDeleted() bool {
	return b.DeletedAt != nil
}

const (
	PermitCoastal = "cotier"
	PermitRiver   = "fluvial"
)

const (
	TypeOpen      = "open"
	TypeCabin     = "cabine"
	TypeCatamaran = "catamaran"
	TypeSailboat  = "voilier"
	TypeJetski    = "jetski"
	TypeCanoe     = "canoe"
)

// BoundingBox bounds are inclusive.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b BoundingBox) Valid() bool {
	return b.MinLat < b.MaxLat && b.MinLon < b.MaxLon
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}
