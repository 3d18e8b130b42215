// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fisherfans/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByIDIncludingDeleted(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id string, changes []Assignment) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Anonymize(ctx context.Context, id, deletedBy string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	OwnsBoats(ctx context.Context, id string) (bool, error)
}

const userColumns = `id, nom, prenom, date_naissance, email, telephone, adresse,
		       code_postal, ville, langues, photo_url, statut, societe,
		       type_activite, siret, rc, permis_bateau, assurance, password_hash,
		       created_at, updated_at, deleted_at, deleted_by`

// updatableColumns guards the dynamic SET clause in Update.
var updatableColumns = map[string]struct{}{
	"nom": {}, "prenom": {}, "date_naissance": {}, "email": {},
	"telephone": {}, "adresse": {}, "code_postal": {}, "ville": {},
	"langues": {}, "photo_url": {}, "statut": {}, "societe": {},
	"type_activite": {}, "siret": {}, "rc": {}, "permis_bateau": {},
	"assurance": {}, "password_hash": {},
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, nom, prenom, date_naissance, email, telephone,
		                   adresse, code_postal, ville, langues, photo_url, statut,
		                   societe, type_activite, siret, rc, permis_bateau,
		                   assurance, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Nom,
		user.Prenom,
		user.DateNaissance,
		user.Email,
		user.Telephone,
		user.Adresse,
		user.CodePostal,
		user.Ville,
		user.Langues,
		user.PhotoURL,
		user.Statut,
		user.Societe,
		user.TypeActivite,
		user.Siret,
		user.RC,
		user.PermisBateau,
		user.Assurance,
		user.PasswordHash,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByIDIncludingDeleted(
	ctx context.Context,
	id string,
) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if core.IsNoRows(err) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// Update writes only the given columns.
func (r *repository) Update(
	ctx context.Context,
	id string,
	changes []Assignment,
) error {
	if len(changes) == 0 {
		return nil
	}

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+1)
	args = append(args, id)

	for i, c := range changes {
		if _, ok := updatableColumns[c.Column]; !ok {
			return fmt.Errorf("update user: column %q: %w", c.Column, core.ErrInvalidInput)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, i+2))
		args = append(args, c.Value)
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1 AND deleted_at IS NULL`,
		strings.Join(sets, ", "))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update user: %w", err)
	}

	return core.ExpectAffected(result, "update user")
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return core.ExpectAffected(result, "update password")
}

// Anonymize overwrites personal data and tombstones the row in one
// statement. The row itself is kept for historical relations.
func (r *repository) Anonymize(
	ctx context.Context,
	id, deletedBy string,
) error {
	query := `
		UPDATE users
		SET nom = $2, prenom = $3, email = $4, telephone = $5, adresse = $6,
		    deleted_at = NOW(), deleted_by = $7, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query,
		id,
		AnonymizedNom,
		AnonymizedPrenom,
		AnonymizedEmail(id),
		AnonymizedTelephone,
		AnonymizedAdresse,
		deletedBy,
	)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return core.ExpectAffected(result, "delete user")
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) OwnsBoats(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM boats WHERE user_id = $1 AND deleted_at IS NULL)`

	var owns bool
	if err := r.db.GetContext(ctx, &owns, query, id); err != nil {
		return false, fmt.Errorf("check owned boats: %w", err)
	}

	return owns, nil
}
