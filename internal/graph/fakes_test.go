// AngelaMos | 2026
// fakes_test.go

package graph

import (
	"context"
	"errors"
	"sync"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/booking"
	"github.com/fisherfans/backend/internal/core"
	"github.com/fisherfans/backend/internal/logentry"
	"github.com/fisherfans/backend/internal/occurrence"
	"github.com/fisherfans/backend/internal/trip"
	"github.com/fisherfans/backend/internal/user"
)

type fakeUsers struct {
	mu         sync.Mutex
	byID       map[string]*user.User
	tombstones map[string]*user.User
	lastUpdate user.UpdateUserInput
	failWith   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*user.User{}, tombstones: map[string]*user.User{}}
}

func (f *fakeUsers) add(u *user.User) { f.byID[u.ID] = u }

func (f *fakeUsers) FindAll(context.Context) ([]user.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []user.User{}
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) FindIncludingDeleted(ctx context.Context, id string) (*user.User, error) {
	if u, ok := f.tombstones[id]; ok {
		return u, nil
	}
	u, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, user.NotFoundError()
	}
	return u, nil
}

func (f *fakeUsers) Create(_ context.Context, in user.CreateUserInput) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u := &user.User{
		ID:            "u-" + in.Prenom,
		Nom:           in.Nom,
		Prenom:        in.Prenom,
		DateNaissance: in.DateNaissance,
		Email:         in.Email,
		Telephone:     in.Telephone,
		Adresse:       in.Adresse,
		CodePostal:    in.CodePostal,
		Ville:         in.Ville,
		Langues:       in.Langues,
		Statut:        in.Statut,
		Societe:       in.Societe,
		TypeActivite:  in.TypeActivite,
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) Update(
	_ context.Context,
	identity *auth.Identity,
	id string,
	in user.UpdateUserInput,
) (*user.User, error) {
	if _, err := auth.RequireAuth(identity, id); err != nil {
		return nil, err
	}
	f.lastUpdate = in
	u := f.byID[id]
	u.Societe = in.Societe.Or(u.Societe)
	u.Ville = in.Ville.Or(u.Ville)
	return u, nil
}

func (f *fakeUsers) Delete(_ context.Context, id, _ string) error {
	if _, ok := f.byID[id]; !ok {
		return user.NotFoundError()
	}
	delete(f.byID, id)
	f.tombstones[id] = &user.User{ID: id, Nom: user.AnonymizedNom, Email: user.AnonymizedEmail(id)}
	return nil
}

type fakeBoats struct {
	byID     map[string]*boat.Boat
	createFn func(identity *auth.Identity, userID string, in boat.CreateBoatInput) (*boat.Boat, error)
}

func (f *fakeBoats) FindAll(context.Context) ([]boat.Boat, error) {
	out := []boat.Boat{}
	for _, b := range f.byID {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBoats) FindByID(_ context.Context, id string) (*boat.Boat, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return b, nil
}

func (f *fakeBoats) FindByOwner(_ context.Context, userID string) ([]boat.Boat, error) {
	out := []boat.Boat{}
	for _, b := range f.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBoats) FindByLocation(_ context.Context, box boat.BoundingBox) ([]boat.Boat, error) {
	if !box.Valid() {
		return nil, core.NewBusinessError(
			core.ErrInvalidBoundingBox,
			core.CodeInvalidBoundingBox,
			"Invalid bounding box coordinates",
		)
	}
	out := []boat.Boat{}
	for _, b := range f.byID {
		if box.Contains(b.Lat, b.Lon) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBoats) Create(
	_ context.Context,
	identity *auth.Identity,
	userID string,
	in boat.CreateBoatInput,
) (*boat.Boat, error) {
	return f.createFn(identity, userID, in)
}

func (f *fakeBoats) Delete(context.Context, *auth.Identity, string) error {
	return errors.New("not used")
}

type fakeTrips struct {
	byID map[string]*trip.Trip
}

func (f *fakeTrips) FindAll(context.Context) ([]trip.Trip, error) { return nil, nil }

func (f *fakeTrips) FindByID(_ context.Context, id string) (*trip.Trip, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return t, nil
}

func (f *fakeTrips) FindByOwner(context.Context, string) ([]trip.Trip, error) { return nil, nil }

func (f *fakeTrips) FindByBoat(_ context.Context, boatID string) ([]trip.Trip, error) {
	out := []trip.Trip{}
	for _, t := range f.byID {
		if t.BoatID == boatID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTrips) Create(context.Context, *auth.Identity, string, trip.CreateTripInput) (*trip.Trip, error) {
	return nil, errors.New("not used")
}

func (f *fakeTrips) Delete(context.Context, *auth.Identity, string) error { return nil }

type fakeOccurrences struct {
	byID map[string]*occurrence.Occurrence
}

func (f *fakeOccurrences) FindByID(_ context.Context, id string) (*occurrence.Occurrence, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return o, nil
}

func (f *fakeOccurrences) ListByTrip(context.Context, string) ([]occurrence.Occurrence, error) {
	return nil, nil
}

func (f *fakeOccurrences) Create(context.Context, occurrence.CreateOccurrenceInput) (*occurrence.Occurrence, error) {
	return nil, errors.New("not used")
}

type fakeBookings struct {
	byID      map[string]*booking.Booking
	remaining map[string]int
	createFn  func(identity *auth.Identity, userID string, in booking.CreateBookingInput) (*booking.Booking, error)
}

func (f *fakeBookings) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookings) FindByUser(_ context.Context, userID string) ([]booking.Booking, error) {
	out := []booking.Booking{}
	for _, b := range f.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookings) FindByTrip(context.Context, string) ([]booking.Booking, error) {
	return nil, nil
}

func (f *fakeBookings) FindByOccurrence(context.Context, string) ([]booking.Booking, error) {
	return nil, nil
}

func (f *fakeBookings) RemainingPlaces(_ context.Context, occurrenceID string) (int, error) {
	n, ok := f.remaining[occurrenceID]
	if !ok {
		return 0, occurrence.NotFoundError()
	}
	return n, nil
}

func (f *fakeBookings) Create(
	_ context.Context,
	identity *auth.Identity,
	userID string,
	in booking.CreateBookingInput,
) (*booking.Booking, error) {
	return f.createFn(identity, userID, in)
}

func (f *fakeBookings) Delete(context.Context, *auth.Identity, string) error { return nil }

type fakeLogEntries struct{}

func (fakeLogEntries) FindAll(context.Context) ([]logentry.LogEntry, error) { return nil, nil }

func (fakeLogEntries) FindByID(context.Context, string) (*logentry.LogEntry, error) {
	return nil, core.ErrNotFound
}

func (fakeLogEntries) FindByOwner(context.Context, string) ([]logentry.LogEntry, error) {
	return nil, nil
}

func (fakeLogEntries) Create(
	context.Context,
	*auth.Identity,
	string,
	logentry.CreateLogEntryInput,
) (*logentry.LogEntry, error) {
	return nil, errors.New("not used")
}

func (fakeLogEntries) Delete(context.Context, *auth.Identity, string) error { return nil }

type fakeSessions struct {
	passwords map[string]string
	ids       map[string]string
}

func (f *fakeSessions) Login(_ context.Context, email, password string) (*auth.Session, error) {
	if pw, ok := f.passwords[email]; !ok || pw != password {
		return nil, core.NewBusinessError(
			core.ErrInvalidCredentials,
			core.CodeInvalidCredentials,
			"Invalid credentials",
		)
	}
	return &auth.Session{Token: "token-" + f.ids[email], UserID: f.ids[email]}, nil
}

func (f *fakeSessions) IssueSession(userID, _ string) (*auth.Session, error) {
	return &auth.Session{Token: "token-" + userID, UserID: userID}, nil
}
