// AngelaMos | 2026
// query.go

package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/user"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.svc.Users.FindAll(ctx)
	return wrapAll(users, err, r.wrapUser)
}

func (r *Resolver) User(ctx context.Context, args idArgs) (*userResolver, error) {
	u, err := optional(r.svc.Users.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || u == nil {
		return nil, err
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	identity, err := auth.RequireAuth(auth.FromContext(ctx))
	if err != nil {
		return nil, err
	}

	u, err := r.svc.Users.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, notFound(err, user.NotFoundError)
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) Boats(ctx context.Context) ([]*boatResolver, error) {
	boats, err := r.svc.Boats.FindAll(ctx)
	return wrapAll(boats, err, r.wrapBoat)
}

func (r *Resolver) Boat(ctx context.Context, args idArgs) (*boatResolver, error) {
	b, err := optional(r.svc.Boats.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || b == nil {
		return nil, err
	}
	return r.wrapBoat(b), nil
}

func (r *Resolver) BoatsByLocation(
	ctx context.Context,
	args struct{ Bbox boundingBoxInput },
) ([]*boatResolver, error) {
	boats, err := r.svc.Boats.FindByLocation(ctx, args.Bbox.toDomain())
	return wrapAll(boats, err, r.wrapBoat)
}

func (r *Resolver) Trips(ctx context.Context) ([]*tripResolver, error) {
	trips, err := r.svc.Trips.FindAll(ctx)
	return wrapAll(trips, err, r.wrapTrip)
}

func (r *Resolver) Trip(ctx context.Context, args idArgs) (*tripResolver, error) {
	t, err := optional(r.svc.Trips.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || t == nil {
		return nil, err
	}
	return r.wrapTrip(t), nil
}

func (r *Resolver) Occurrence(ctx context.Context, args idArgs) (*occurrenceResolver, error) {
	o, err := optional(r.svc.Occurrences.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || o == nil {
		return nil, err
	}
	return r.wrapOccurrence(o), nil
}

func (r *Resolver) Booking(ctx context.Context, args idArgs) (*bookingResolver, error) {
	b, err := optional(r.svc.Bookings.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || b == nil {
		return nil, err
	}
	return r.wrapBooking(b), nil
}

// MyBookings lists the live bookings held by the caller.
func (r *Resolver) MyBookings(ctx context.Context) ([]*bookingResolver, error) {
	identity, err := auth.RequireAuth(auth.FromContext(ctx))
	if err != nil {
		return nil, err
	}

	bookings, err := r.svc.Bookings.FindByUser(ctx, identity.UserID)
	return wrapAll(bookings, err, r.wrapBooking)
}

func (r *Resolver) RemainingPlaces(
	ctx context.Context,
	args struct{ OccurrenceID graphql.ID },
) (int32, error) {
	remaining, err := r.svc.Bookings.RemainingPlaces(ctx, canonicalID(args.OccurrenceID))
	if err != nil {
		return 0, err
	}
	return int32(remaining), nil
}

func (r *Resolver) LogEntries(ctx context.Context) ([]*logEntryResolver, error) {
	entries, err := r.svc.LogEntries.FindAll(ctx)
	return wrapAll(entries, err, r.wrapLogEntry)
}

func (r *Resolver) LogEntry(ctx context.Context, args idArgs) (*logEntryResolver, error) {
	e, err := optional(r.svc.LogEntries.FindByID(ctx, canonicalID(args.ID)))
	if err != nil || e == nil {
		return nil, err
	}
	return r.wrapLogEntry(e), nil
}
