// AngelaMos | 2026
// mutation.go

package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/user"
)

func (r *Resolver) Signup(
	ctx context.Context,
	args struct{ Input createUserInput },
) (*authPayloadResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	u, err := r.svc.Users.Create(ctx, args.Input.toDomain())
	if err != nil {
		return nil, err
	}

	session, err := r.svc.Sessions.IssueSession(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	return &authPayloadResolver{token: session.Token, user: r.wrapUser(u)}, nil
}

func (r *Resolver) Login(
	ctx context.Context,
	args struct{ Input loginInput },
) (*authPayloadResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	session, err := r.svc.Sessions.Login(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		return nil, err
	}

	u, err := r.svc.Users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, notFound(err, user.NotFoundError)
	}

	return &authPayloadResolver{token: session.Token, user: r.wrapUser(u)}, nil
}

func (r *Resolver) CreateUser(
	ctx context.Context,
	args struct{ Input createUserInput },
) (*userResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	u, err := r.svc.Users.Create(ctx, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapUser(u), nil
}

func (r *Resolver) UpdateUser(
	ctx context.Context,
	args struct {
		ID    graphql.ID
		Input updateUserInput
	},
) (*userResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	u, err := r.svc.Users.Update(ctx, auth.FromContext(ctx), canonicalID(args.ID), args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapUser(u), nil
}

// DeleteUser only lets a user delete their own account.
func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (bool, error) {
	actor, err := auth.RequireAuth(auth.FromContext(ctx), canonicalID(args.ID))
	if err != nil {
		return false, err
	}

	if err := r.svc.Users.Delete(ctx, canonicalID(args.ID), actor.UserID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateBoat(
	ctx context.Context,
	args struct {
		UserID graphql.ID
		Input  createBoatInput
	},
) (*boatResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	b, err := r.svc.Boats.Create(ctx, auth.FromContext(ctx), canonicalID(args.UserID), args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapBoat(b), nil
}

func (r *Resolver) DeleteBoat(ctx context.Context, args idArgs) (bool, error) {
	if err := r.svc.Boats.Delete(ctx, auth.FromContext(ctx), canonicalID(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateTrip(
	ctx context.Context,
	args struct {
		UserID graphql.ID
		Input  createTripInput
	},
) (*tripResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	t, err := r.svc.Trips.Create(ctx, auth.FromContext(ctx), canonicalID(args.UserID), args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapTrip(t), nil
}

func (r *Resolver) DeleteTrip(ctx context.Context, args idArgs) (bool, error) {
	if err := r.svc.Trips.Delete(ctx, auth.FromContext(ctx), canonicalID(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateOccurrence(
	ctx context.Context,
	args struct{ Input createOccurrenceInput },
) (*occurrenceResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	o, err := r.svc.Occurrences.Create(ctx, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapOccurrence(o), nil
}

func (r *Resolver) CreateBooking(
	ctx context.Context,
	args struct {
		UserID graphql.ID
		Input  createBookingInput
	},
) (*bookingResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	b, err := r.svc.Bookings.Create(ctx, auth.FromContext(ctx), canonicalID(args.UserID), args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapBooking(b), nil
}

func (r *Resolver) DeleteBooking(ctx context.Context, args idArgs) (bool, error) {
	if err := r.svc.Bookings.Delete(ctx, auth.FromContext(ctx), canonicalID(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) CreateLogEntry(
	ctx context.Context,
	args struct {
		UserID graphql.ID
		Input  createLogEntryInput
	},
) (*logEntryResolver, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	e, err := r.svc.LogEntries.Create(ctx, auth.FromContext(ctx), canonicalID(args.UserID), args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return r.wrapLogEntry(e), nil
}

func (r *Resolver) DeleteLogEntry(ctx context.Context, args idArgs) (bool, error) {
	if err := r.svc.LogEntries.Delete(ctx, auth.FromContext(ctx), canonicalID(args.ID)); err != nil {
		return false, err
	}
	return true, nil
}
