// AngelaMos | 2026
// fakes_test.go

package boat

import (
	"context"
	"sync"
	"time"

	"github.com/fisherfans/backend/internal/core"
)

type memRepo struct {
	mu    sync.Mutex
	boats map[string]*Boat
	order []string
}

func newMemRepo() *memRepo {
	return &memRepo{boats: map[string]*Boat{}}
}

func (m *memRepo) Create(_ context.Context, b *Boat) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	cp := *b
	m.boats[b.ID] = &cp
	m.order = append(m.order, b.ID)
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Boat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boats[id]
	if !ok || b.DeletedAt != nil {
		return nil, core.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) filter(keep func(*Boat) bool) []Boat {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Boat
	for _, id := range m.order {
		b := m.boats[id]
		if b.DeletedAt == nil && keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

func (m *memRepo) List(_ context.Context) ([]Boat, error) {
	return m.filter(func(*Boat) bool { return true }), nil
}

func (m *memRepo) ListByOwner(_ context.Context, userID string) ([]Boat, error) {
	return m.filter(func(b *Boat) bool { return b.UserID == userID }), nil
}

func (m *memRepo) ListInBox(_ context.Context, box BoundingBox) ([]Boat, error) {
	return m.filter(func(b *Boat) bool { return box.Contains(b.Lat, b.Lon) }), nil
}

func (m *memRepo) SoftDelete(_ context.Context, id, deletedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boats[id]
	if !ok || b.DeletedAt != nil {
		return core.ErrNotFound
	}
	now := time.Now()
	b.DeletedAt = &now
	b.DeletedBy = &deletedBy
	return nil
}

type licenses map[string]bool

func (l licenses) HasValidBoatLicense(_ context.Context, userID string) (bool, error) {
	return l[userID], nil
}
