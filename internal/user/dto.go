// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/fisherfans/backend/internal/core"
)

type CreateUserInput struct {
	Nom           string
	Prenom        string
	DateNaissance time.Time
	Email         string
	Password      string
	Telephone     string
	Adresse       string
	CodePostal    string
	Ville         string
	Langues       []string
	PhotoURL      *string
	Statut        string
	Societe       *string
	TypeActivite  *string
	Siret         *string
	RC            *string
	PermisBateau  *string
	Assurance     *string
}

// UpdateUserInput only touches fields whose Optional is Set. Nullable
// profile fields are cleared by setting a nil value.
type UpdateUserInput struct {
	Nom           core.Optional[string]
	Prenom        core.Optional[string]
	DateNaissance core.Optional[time.Time]
	Email         core.Optional[string]
	Password      core.Optional[string]
	Telephone     core.Optional[string]
	Adresse       core.Optional[string]
	CodePostal    core.Optional[string]
	Ville         core.Optional[string]
	Langues       core.Optional[[]string]
	PhotoURL      core.Optional[*string]
	Statut        core.Optional[string]
	Societe       core.Optional[*string]
	TypeActivite  core.Optional[*string]
	Siret         core.Optional[*string]
	RC            core.Optional[*string]
	PermisBateau  core.Optional[*string]
	Assurance     core.Optional[*string]
}

// Assignment is one column write in a partial update.
type Assignment struct {
	Column string
	Value  any
}
