// AngelaMos | 2026
// fakes_test.go

package trip

import (
	"context"
	"sync"
	"time"

	"github.com/fisherfans/backend/internal/boat"
	"github.com/fisherfans/backend/internal/core"
)

type memRepo struct {
	mu    sync.Mutex
	trips map[string]*Trip
}

func newMemRepo() *memRepo {
	return &memRepo{trips: map[string]*Trip{}}
}

func (m *memRepo) Create(_ context.Context, t *Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	t.CreatedAt, t.UpdatedAt = now, now
	cp := *t
	m.trips[t.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[id]
	if !ok || t.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memRepo) filter(keep func(*Trip) bool) []Trip {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Trip
	for _, t := range m.trips {
		if t.DeletedAt == nil && keep(t) {
			out = append(out, *t)
		}
	}
	return out
}

func (m *memRepo) List(_ context.Context) ([]Trip, error) {
	return m.filter(func(*Trip) bool { return true }), nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID string) ([]Trip, error) {
	return m.filter(func(t *Trip) bool { return t.OwnerID == ownerID }), nil
}

func (m *memRepo) ListByBoat(_ context.Context, boatID string) ([]Trip, error) {
	return m.filter(func(t *Trip) bool { return t.BoatID == boatID }), nil
}

func (m *memRepo) SoftDelete(_ context.Context, id, deletedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trips[id]
	if !ok || t.DeletedAt != nil {
		return core.ErrNotFound
	}
	now := time.Now()
	t.DeletedAt = &now
	t.DeletedBy = &deletedBy
	return nil
}

type fleet map[string]*boat.Boat

func (f fleet) FindByID(_ context.Context, id string) (*boat.Boat, error) {
	b, ok := f[id]
	if !ok || b.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	return b, nil
}

func (f fleet) OwnsBoats(_ context.Context, userID string) (bool, error) {
	for _, b := range f {
		if b.UserID == userID && b.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}
