// AngelaMos | 2026
// fakes_test.go

package user

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/fisherfans/backend/internal/core"
)

type memRepo struct {
	mu        sync.Mutex
	users     map[string]*User
	boatOwner map[string]bool
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]*User{}, boatOwner: map[string]bool{}}
}

func (m *memRepo) Create(_ context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, other := range m.users {
		if other.DeletedAt == nil && other.Email == u.Email {
			return core.ErrDuplicateKey
		}
	}

	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memRepo) live(id string) (*User, bool) {
	u, ok := m.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, false
	}
	return u, true
}

func (m *memRepo) GetByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.live(id)
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetByIDIncludingDeleted(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.DeletedAt == nil && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) List(_ context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []User
	for _, u := range m.users {
		if u.DeletedAt == nil {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, id string, changes []Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.live(id)
	if !ok {
		return core.ErrNotFound
	}

	for _, c := range changes {
		switch c.Column {
		case "nom":
			u.Nom = c.Value.(string)
		case "prenom":
			u.Prenom = c.Value.(string)
		case "date_naissance":
			u.DateNaissance = c.Value.(time.Time)
		case "email":
			u.Email = c.Value.(string)
		case "telephone":
			u.Telephone = c.Value.(string)
		case "adresse":
			u.Adresse = c.Value.(string)
		case "code_postal":
			u.CodePostal = c.Value.(string)
		case "ville":
			u.Ville = c.Value.(string)
		case "langues":
			u.Langues = c.Value.(pq.StringArray)
		case "photo_url":
			u.PhotoURL = c.Value.(*string)
		case "statut":
			u.Statut = c.Value.(string)
		case "societe":
			u.Societe = c.Value.(*string)
		case "type_activite":
			u.TypeActivite = c.Value.(*string)
		case "siret":
			u.Siret = c.Value.(*string)
		case "rc":
			u.RC = c.Value.(*string)
		case "permis_bateau":
			u.PermisBateau = c.Value.(*string)
		case "assurance":
			u.Assurance = c.Value.(*string)
		case "password_hash":
			u.PasswordHash = c.Value.(string)
		}
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (m *memRepo) UpdatePassword(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.live(id)
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *memRepo) Anonymize(_ context.Context, id, deletedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.live(id)
	if !ok {
		return core.ErrNotFound
	}

	now := time.Now()
	u.Nom = AnonymizedNom
	u.Prenom = AnonymizedPrenom
	u.Email = AnonymizedEmail(id)
	u.Telephone = AnonymizedTelephone
	u.Adresse = AnonymizedAdresse
	u.DeletedAt = &now
	u.DeletedBy = &deletedBy
	return nil
}

func (m *memRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.DeletedAt == nil && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) OwnsBoats(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boatOwner[id], nil
}

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) {
	return "hashed:" + pw, nil
}
