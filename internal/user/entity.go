// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            string         `db:"id"`
	Nom           string         `db:"nom"`
	Prenom        string         `db:"prenom"`
	DateNaissance time.Time      `db:"date_naissance"`
	Email         string         `db:"email"`
	Telephone     string         `db:"telephone"`
	Adresse       string         `db:"adresse"`
	CodePostal    string         `db:"code_postal"`
	Ville         string         `db:"ville"`
	Langues       pq.StringArray `db:"langues"`
	PhotoURL      *string        `db:"photo_url"`
	Statut        string         `db:"statut"`
	Societe       *string        `db:"societe"`
	TypeActivite  *string        `db:"type_activite"`
	Siret         *string        `db:"siret"`
	RC            *string        `db:"rc"`
	PermisBateau  *string        `db:"permis_bateau"`
	Assurance     *string        `db:"assurance"`
	PasswordHash  string         `db:"password_hash"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
	DeletedBy     *string        `db:"deleted_by"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsProfessional() bool {
	return u.Statut == StatusProfessional
}

// HasValidBoatLicense reports whether the license number has the fixed
// eight character format.
func (u *User) HasValidBoatLicense() bool {
	return u.PermisBateau != nil && len(*u.PermisBateau) == licenseLength
}

const licenseLength = 8

const (
	StatusIndividual   = "particulier"
	StatusProfessional = "professionnel"
)

const (
	ActivityRental = "location"
	ActivityGuide  = "guide"
)

// Placeholders written over personal data when an account is deleted.
const (
	AnonymizedNom       = "DELETED"
	AnonymizedPrenom    = "USER"
	AnonymizedTelephone = "0000000000"
	AnonymizedAdresse   = "ANONYMIZED"
)

func AnonymizedEmail(id string) string {
	return "deleted_" + id + "@anonymized.local"
}
