// AngelaMos | 2026
// inputs.go

package graph

import (
	"reflect"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/graph-gophers/graphql-go"

	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

// Only structural checks live here. Business rules (capacity, pricing,
// dates) stay in the services so their codes are reported.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return lowerFirst(f.Name)
	})
	return v
}

func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return core.InvalidInput(core.FormatValidationError(err))
	}
	return nil
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

type createUserInput struct {
	Nom           string `validate:"required,max=100"`
	Prenom        string `validate:"required,max=100"`
	DateNaissance DateTime
	Email         string   `validate:"required,email,max=255"`
	Telephone     string   `validate:"required,max=20"`
	Adresse       string   `validate:"required,max=255"`
	CodePostal    string   `validate:"required,max=10"`
	Ville         string   `validate:"required,max=100"`
	Langues       []string `validate:"dive,required"`
	PhotoURL      *string
	Statut        string
	Societe       *string
	TypeActivite  *string
	Siret         *string
	RC            *string
	PermisBateau  *string
	Assurance     *string
	Password      string `validate:"required,min=8,max=128"`
}

func (in createUserInput) toDomain() user.CreateUserInput {
	return user.CreateUserInput{
		Nom:           in.Nom,
		Prenom:        in.Prenom,
		DateNaissance: in.DateNaissance.Time,
		Email:         in.Email,
		Password:      in.Password,
		Telephone:     in.Telephone,
		Adresse:       in.Adresse,
		CodePostal:    in.CodePostal,
		Ville:         in.Ville,
		Langues:       in.Langues,
		PhotoURL:      in.PhotoURL,
		Statut:        in.Statut,
		Societe:       in.Societe,
		TypeActivite:  in.TypeActivite,
		Siret:         in.Siret,
		RC:            in.RC,
		PermisBateau:  in.PermisBateau,
		Assurance:     in.Assurance,
	}
}

// updateUserInput uses plain pointers for fields that cannot be cleared
// and Null* wrappers where an explicit null clears the column.
type updateUserInput struct {
	Nom           *string `validate:"omitnil,min=1,max=100"`
	Prenom        *string `validate:"omitnil,min=1,max=100"`
	DateNaissance *DateTime
	Email         *string   `validate:"omitnil,email,max=255"`
	Telephone     *string   `validate:"omitnil,min=1,max=20"`
	Adresse       *string   `validate:"omitnil,min=1,max=255"`
	CodePostal    *string   `validate:"omitnil,min=1,max=10"`
	Ville         *string   `validate:"omitnil,min=1,max=100"`
	Langues       *[]string `validate:"omitnil,dive,required"`
	PhotoURL      graphql.NullString
	Statut        *string
	Societe       graphql.NullString
	TypeActivite  NullActivityType
	Siret         graphql.NullString
	RC            graphql.NullString
	PermisBateau  graphql.NullString
	Assurance     graphql.NullString
	Password      *string `validate:"omitnil,min=8,max=128"`
}

func (in updateUserInput) toDomain() user.UpdateUserInput {
	out := user.UpdateUserInput{
		Nom:          optionalOf(in.Nom),
		Prenom:       optionalOf(in.Prenom),
		Email:        optionalOf(in.Email),
		Password:     optionalOf(in.Password),
		Telephone:    optionalOf(in.Telephone),
		Adresse:      optionalOf(in.Adresse),
		CodePostal:   optionalOf(in.CodePostal),
		Ville:        optionalOf(in.Ville),
		Langues:      optionalOf(in.Langues),
		PhotoURL:     clearable(in.PhotoURL),
		Statut:       optionalOf(in.Statut),
		Societe:      clearable(in.Societe),
		TypeActivite: core.Optional[*string]{Set: in.TypeActivite.Set, Value: in.TypeActivite.Value},
		Siret:        clearable(in.Siret),
		RC:           clearable(in.RC),
		PermisBateau: clearable(in.PermisBateau),
		Assurance:    clearable(in.Assurance),
	}

	if in.DateNaissance != nil {
		out.DateNaissance = core.Some(in.DateNaissance.Time)
	}

	return out
}

func optionalOf[T any](p *T) core.Optional[T] {
	if p == nil {
		return core.Optional[T]{}
	}
	return core.Some(*p)
}

func clearable(n graphql.NullString) core.Optional[*string] {
	return core.Optional[*string]{Set: n.Set, Value: n.Value}
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type createBoatInput struct {
	Nom              string `validate:"required,max=100"`
	Description      *string
	Marque           string `validate:"required,max=100"`
	Annee            int32
	PhotoURL         *string
	PermisRequis     string
	Type             string
	Equipements      []string `validate:"dive,required"`
	CautionEur       float64  `validate:"gte=0"`
	CapaciteMax      int32
	Couchages        int32
	PortAttacheVille string  `validate:"required,max=100"`
	Lat              float64 `validate:"gte=-90,lte=90"`
	Lon              float64 `validate:"gte=-180,lte=180"`
	Motorisation     string  `validate:"required,max=100"`
	PuissanceCV      int32   `validate:"gte=0"`
}

func (in createBoatInput) toDomain() boat.CreateBoatInput {
	return boat.CreateBoatInput{
		Nom:              in.Nom,
		Description:      in.Description,
		Marque:           in.Marque,
		Annee:            int(in.Annee),
		PhotoURL:         in.PhotoURL,
		PermisRequis:     in.PermisRequis,
		Type:             in.Type,
		Equipements:      in.Equipements,
		CautionEur:       in.CautionEur,
		CapaciteMax:      int(in.CapaciteMax),
		Couchages:        int(in.Couchages),
		PortAttacheVille: in.PortAttacheVille,
		Lat:              in.Lat,
		Lon:              in.Lon,
		Motorisation:     in.Motorisation,
		PuissanceCV:      int(in.PuissanceCV),
	}
}

type createTripInput struct {
	BoatID         graphql.ID `validate:"required"`
	Titre          string     `validate:"required,max=200"`
	InfosPratiques *string
	TypeSortie     string
	TypeTarif      string
	NbPassagers    int32
	PrixEur        float64
}

func (in createTripInput) toDomain() trip.CreateTripInput {
	return trip.CreateTripInput{
		BoatID:         canonicalID(in.BoatID),
		Titre:          in.Titre,
		InfosPratiques: in.InfosPratiques,
		TypeSortie:     in.TypeSortie,
		TypeTarif:      in.TypeTarif,
		NbPassagers:    int(in.NbPassagers),
		PrixEur:        in.PrixEur,
	}
}

type createOccurrenceInput struct {
	TripID      graphql.ID `validate:"required"`
	DateDebut   DateTime
	DateFin     DateTime
	HeureDepart DateTime
	HeureFin    DateTime
}

func (in createOccurrenceInput) toDomain() occurrence.CreateOccurrenceInput {
	return occurrence.CreateOccurrenceInput{
		TripID:      canonicalID(in.TripID),
		DateDebut:   in.DateDebut.Time,
		DateFin:     in.DateFin.Time,
		HeureDepart: in.HeureDepart.Time,
		HeureFin:    in.HeureFin.Time,
	}
}

type createBookingInput struct {
	TripID       graphql.ID `validate:"required"`
	OccurrenceID graphql.ID `validate:"required"`
	NbPlaces     int32
}

func (in createBookingInput) toDomain() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		TripID:       canonicalID(in.TripID),
		OccurrenceID: canonicalID(in.OccurrenceID),
		NbPlaces:     int(in.NbPlaces),
	}
}

type createLogEntryInput struct {
	PoissonNom  string `validate:"required,max=100"`
	PhotoURL    *string
	Commentaire *string
	TailleCm    float64
	PoidsKg     float64
	Lieu        string `validate:"required,max=200"`
	DatePeche   DateTime
	Relache     bool
}

func (in createLogEntryInput) toDomain() logentry.CreateLogEntryInput {
	return logentry.CreateLogEntryInput{
		PoissonNom:  in.PoissonNom,
		PhotoURL:    in.PhotoURL,
		Commentaire: in.Commentaire,
		TailleCm:    in.TailleCm,
		PoidsKg:     in.PoidsKg,
		Lieu:        in.Lieu,
		DatePeche:   in.DatePeche.Time,
		Relache:     in.Relache,
	}
}

type boundingBoxInput struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (in boundingBoxInput) toDomain() boat.BoundingBox {
	return boat.BoundingBox{
		MinLat: in.MinLat,
		MaxLat: in.MaxLat,
		MinLon: in.MinLon,
		MaxLon: in.MaxLon,
	}
}
