// AngelaMos | 2026
// types.go

package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

type userResolver struct {
	u    *user.User
	root *Resolver
}

func (r *Resolver) wrapUser(u *user.User) *userResolver {
	return &userResolver{u: u, root: r}
}

func (r *userResolver) ID() graphql.ID          { return graphql.ID(r.u.ID) }
func (r *userResolver) Nom() string             { return r.u.Nom }
func (r *userResolver) Prenom() string          { return r.u.Prenom }
func (r *userResolver) DateNaissance() DateTime { return DateTime{r.u.DateNaissance} }
func (r *userResolver) Email() string           { return r.u.Email }
func (r *userResolver) Telephone() string       { return r.u.Telephone }
func (r *userResolver) Adresse() string         { return r.u.Adresse }
func (r *userResolver) CodePostal() string      { return r.u.CodePostal }
func (r *userResolver) Ville() string           { return r.u.Ville }
func (r *userResolver) PhotoURL() *string       { return r.u.PhotoURL }
func (r *userResolver) Statut() string          { return r.u.Statut }
func (r *userResolver) Societe() *string        { return r.u.Societe }
func (r *userResolver) TypeActivite() *string   { return r.u.TypeActivite }
func (r *userResolver) Siret() *string          { return r.u.Siret }
func (r *userResolver) RC() *string             { return r.u.RC }
func (r *userResolver) PermisBateau() *string   { return r.u.PermisBateau }
func (r *userResolver) Assurance() *string      { return r.u.Assurance }

func (r *userResolver) Langues() []string {
	if r.u.Langues == nil {
		return []string{}
	}
	return r.u.Langues
}

func (r *userResolver) Boats(ctx context.Context) ([]*boatResolver, error) {
	boats, err := r.root.svc.Boats.FindByOwner(ctx, r.u.ID)
	return wrapAll(boats, err, r.root.wrapBoat)
}

func (r *userResolver) Trips(ctx context.Context) ([]*tripResolver, error) {
	trips, err := r.root.svc.Trips.FindByOwner(ctx, r.u.ID)
	return wrapAll(trips, err, r.root.wrapTrip)
}

func (r *userResolver) Bookings(ctx context.Context) ([]*bookingResolver, error) {
	bookings, err := r.root.svc.Bookings.FindByUser(ctx, r.u.ID)
	return wrapAll(bookings, err, r.root.wrapBooking)
}

func (r *userResolver) LogEntries(ctx context.Context) ([]*logEntryResolver, error) {
	entries, err := r.root.svc.LogEntries.FindByOwner(ctx, r.u.ID)
	return wrapAll(entries, err, r.root.wrapLogEntry)
}

type boatResolver struct {
	b    *boat.Boat
	root *Resolver
}

func (r *Resolver) wrapBoat(b *boat.Boat) *boatResolver {
	return &boatResolver{b: b, root: r}
}

func (r *boatResolver) ID() graphql.ID           { return graphql.ID(r.b.ID) }
func (r *boatResolver) Nom() string              { return r.b.Nom }
func (r *boatResolver) Description() *string     { return r.b.Description }
func (r *boatResolver) Marque() string           { return r.b.Marque }
func (r *boatResolver) Annee() int32             { return int32(r.b.Annee) }
func (r *boatResolver) PhotoURL() *string        { return r.b.PhotoURL }
func (r *boatResolver) PermisRequis() string     { return r.b.PermisRequis }
func (r *boatResolver) Type() string             { return r.b.Type }
func (r *boatResolver) CautionEur() float64      { return r.b.CautionEur }
func (r *boatResolver) CapaciteMax() int32       { return int32(r.b.CapaciteMax) }
func (r *boatResolver) Couchages() int32         { return int32(r.b.Couchages) }
func (r *boatResolver) PortAttacheVille() string { return r.b.PortAttacheVille }
func (r *boatResolver) Lat() float64             { return r.b.Lat }
func (r *boatResolver) Lon() float64             { return r.b.Lon }
func (r *boatResolver) Motorisation() string     { return r.b.Motorisation }
func (r *boatResolver) PuissanceCV() int32       { return int32(r.b.PuissanceCV) }

func (r *boatResolver) Equipements() []string {
	if r.b.Equipements == nil {
		return []string{}
	}
	return r.b.Equipements
}

func (r *boatResolver) Owner(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.FindIncludingDeleted(ctx, r.b.UserID)
	if err != nil {
		return nil, err
	}
	return r.root.wrapUser(u), nil
}

func (r *boatResolver) Trips(ctx context.Context) ([]*tripResolver, error) {
	trips, err := r.root.svc.Trips.FindByBoat(ctx, r.b.ID)
	return wrapAll(trips, err, r.root.wrapTrip)
}

type tripResolver struct {
	t    *trip.Trip
	root *Resolver
}

func (r *Resolver) wrapTrip(t *trip.Trip) *tripResolver {
	return &tripResolver{t: t, root: r}
}

func (r *tripResolver) ID() graphql.ID          { return graphql.ID(r.t.ID) }
func (r *tripResolver) Titre() string           { return r.t.Titre }
func (r *tripResolver) InfosPratiques() *string { return r.t.InfosPratiques }
func (r *tripResolver) TypeSortie() string      { return r.t.TypeSortie }
func (r *tripResolver) TypeTarif() string       { return r.t.TypeTarif }
func (r *tripResolver) NbPassagers() int32      { return int32(r.t.NbPassagers) }
func (r *tripResolver) PrixEur() float64        { return r.t.PrixEur }

func (r *tripResolver) Owner(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.FindIncludingDeleted(ctx, r.t.OwnerID)
	if err != nil {
		return nil, err
	}
	return r.root.wrapUser(u), nil
}

func (r *tripResolver) Boat(ctx context.Context) (*boatResolver, error) {
	b, err := r.root.svc.Boats.FindByID(ctx, r.t.BoatID)
	if err != nil {
		return nil, notFound(err, boat.NotFoundError)
	}
	return r.root.wrapBoat(b), nil
}

func (r *tripResolver) Occurrences(ctx context.Context) ([]*occurrenceResolver, error) {
	occs, err := r.root.svc.Occurrences.ListByTrip(ctx, r.t.ID)
	return wrapAll(occs, err, r.root.wrapOccurrence)
}

func (r *tripResolver) Bookings(ctx context.Context) ([]*bookingResolver, error) {
	bookings, err := r.root.svc.Bookings.FindByTrip(ctx, r.t.ID)
	return wrapAll(bookings, err, r.root.wrapBooking)
}

type occurrenceResolver struct {
	o    *occurrence.Occurrence
	root *Resolver
}

func (r *Resolver) wrapOccurrence(o *occurrence.Occurrence) *occurrenceResolver {
	return &occurrenceResolver{o: o, root: r}
}

func (r *occurrenceResolver) ID() graphql.ID        { return graphql.ID(r.o.ID) }
func (r *occurrenceResolver) DateDebut() DateTime   { return DateTime{r.o.DateDebut} }
func (r *occurrenceResolver) DateFin() DateTime     { return DateTime{r.o.DateFin} }
func (r *occurrenceResolver) HeureDepart() DateTime { return DateTime{r.o.HeureDepart} }
func (r *occurrenceResolver) HeureFin() DateTime    { return DateTime{r.o.HeureFin} }

func (r *occurrenceResolver) Trip(ctx context.Context) (*tripResolver, error) {
	t, err := r.root.svc.Trips.FindByID(ctx, r.o.TripID)
	if err != nil {
		return nil, notFound(err, trip.NotFoundError)
	}
	return r.root.wrapTrip(t), nil
}

func (r *occurrenceResolver) Bookings(ctx context.Context) ([]*bookingResolver, error) {
	bookings, err := r.root.svc.Bookings.FindByOccurrence(ctx, r.o.ID)
	return wrapAll(bookings, err, r.root.wrapBooking)
}

type bookingResolver struct {
	b    *booking.Booking
	root *Resolver
}

func (r *Resolver) wrapBooking(b *booking.Booking) *bookingResolver {
	return &bookingResolver{b: b, root: r}
}

func (r *bookingResolver) ID() graphql.ID        { return graphql.ID(r.b.ID) }
func (r *bookingResolver) DateRetenue() DateTime { return DateTime{r.b.DateRetenue} }
func (r *bookingResolver) NbPlaces() int32       { return int32(r.b.NbPlaces) }
func (r *bookingResolver) PrixTotalEur() float64 { return r.b.PrixTotalEur }

func (r *bookingResolver) Trip(ctx context.Context) (*tripResolver, error) {
	t, err := r.root.svc.Trips.FindByID(ctx, r.b.TripID)
	if err != nil {
		return nil, notFound(err, trip.NotFoundError)
	}
	return r.root.wrapTrip(t), nil
}

func (r *bookingResolver) User(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.FindIncludingDeleted(ctx, r.b.UserID)
	if err != nil {
		return nil, err
	}
	return r.root.wrapUser(u), nil
}

func (r *bookingResolver) Occurrence(ctx context.Context) (*occurrenceResolver, error) {
	o, err := r.root.svc.Occurrences.FindByID(ctx, r.b.OccurrenceID)
	if err != nil {
		return nil, notFound(err, occurrence.NotFoundError)
	}
	return r.root.wrapOccurrence(o), nil
}

type logEntryResolver struct {
	e    *logentry.LogEntry
	root *Resolver
}

func (r *Resolver) wrapLogEntry(e *logentry.LogEntry) *logEntryResolver {
	return &logEntryResolver{e: e, root: r}
}

func (r *logEntryResolver) ID() graphql.ID       { return graphql.ID(r.e.ID) }
func (r *logEntryResolver) PoissonNom() string   { return r.e.PoissonNom }
func (r *logEntryResolver) PhotoURL() *string    { return r.e.PhotoURL }
func (r *logEntryResolver) Commentaire() *string { return r.e.Commentaire }
func (r *logEntryResolver) TailleCm() float64    { return r.e.TailleCm }
func (r *logEntryResolver) PoidsKg() float64     { return r.e.PoidsKg }
func (r *logEntryResolver) Lieu() string         { return r.e.Lieu }
func (r *logEntryResolver) DatePeche() DateTime  { return DateTime{r.e.DatePeche} }
func (r *logEntryResolver) Relache() bool        { return r.e.Relache }

func (r *logEntryResolver) Owner(ctx context.Context) (*userResolver, error) {
	u, err := r.root.svc.Users.FindIncludingDeleted(ctx, r.e.OwnerID)
	if err != nil {
		return nil, err
	}
	return r.root.wrapUser(u), nil
}

type authPayloadResolver struct {
	token string
	user  *userResolver
}

func (r *authPayloadResolver) Token() string       { return r.token }
func (r *authPayloadResolver) User() *userResolver { return r.user }
