// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fisherfans/backend/internal/auth"
	"github.com/fisherfans/backend/internal/core"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func NotFoundError() error {
	return core.NewBusinessError(core.ErrNotFound, core.CodeUserNotFound, "User not found")
}

func (s *Service) FindAll(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// FindByID returns core.ErrNotFound for unknown or deleted users.
func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

// MustFind is FindByID with a missing user reported as a business error.
func (s *Service) MustFind(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, NotFoundError()
	}
	return u, err
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*User, error) {
	if err := validateProfessional(in.Statut, in.Societe, in.TypeActivite, in.Siret, in.RC); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	if err := s.ensureEmailAvailable(ctx, email); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	langues := in.Langues
	if langues == nil {
		langues = []string{}
	}

	u := &User{
		ID:            uuid.New().String(),
		Nom:           in.Nom,
		Prenom:        in.Prenom,
		DateNaissance: in.DateNaissance,
		Email:         email,
		Telephone:     in.Telephone,
		Adresse:       in.Adresse,
		CodePostal:    in.CodePostal,
		Ville:         in.Ville,
		Langues:       pq.StringArray(langues),
		PhotoURL:      in.PhotoURL,
		Statut:        in.Statut,
		Societe:       in.Societe,
		TypeActivite:  in.TypeActivite,
		Siret:         in.Siret,
		RC:            in.RC,
		PermisBateau:  in.PermisBateau,
		Assurance:     in.Assurance,
		PasswordHash:  hash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, duplicateEmailError()
		}
		return nil, err
	}

	slog.InfoContext(ctx, "user created", "user_id", u.ID, "statut", u.Statut)
	return u, nil
}

// Update applies the supplied fields of in to the acting user's own record.
// Professional completeness is checked against the merged view.
func (s *Service) Update(
	ctx context.Context,
	identity *auth.Identity,
	id string,
	in UpdateUserInput,
) (*User, error) {
	if _, err := auth.RequireAuth(identity, id); err != nil {
		return nil, err
	}

	existing, err := s.MustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	var changes []Assignment
	set := func(column string, value any) {
		changes = append(changes, Assignment{Column: column, Value: value})
	}

	if in.Email.Set {
		email := normalizeEmail(in.Email.Value)
		if email != existing.Email {
			if err := s.ensureEmailAvailable(ctx, email); err != nil {
				return nil, err
			}
			set("email", email)
		}
	}

	err = validateProfessional(
		in.Statut.Or(existing.Statut),
		in.Societe.Or(existing.Societe),
		in.TypeActivite.Or(existing.TypeActivite),
		in.Siret.Or(existing.Siret),
		in.RC.Or(existing.RC),
	)
	if err != nil {
		return nil, err
	}

	if in.Password.Set {
		hash, err := s.hasher.Hash(in.Password.Value)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		set("password_hash", hash)
	}

	if in.Nom.Set {
		set("nom", in.Nom.Value)
	}
	if in.Prenom.Set {
		set("prenom", in.Prenom.Value)
	}
	if in.DateNaissance.Set {
		set("date_naissance", in.DateNaissance.Value)
	}
	if in.Telephone.Set {
		set("telephone", in.Telephone.Value)
	}
	if in.Adresse.Set {
		set("adresse", in.Adresse.Value)
	}
	if in.CodePostal.Set {
		set("code_postal", in.CodePostal.Value)
	}
	if in.Ville.Set {
		set("ville", in.Ville.Value)
	}
	if in.Langues.Set {
		langues := in.Langues.Value
		if langues == nil {
			langues = []string{}
		}
		set("langues", pq.StringArray(langues))
	}
	if in.PhotoURL.Set {
		set("photo_url", in.PhotoURL.Value)
	}
	if in.Statut.Set {
		set("statut", in.Statut.Value)
	}
	if in.Societe.Set {
		set("societe", in.Societe.Value)
	}
	if in.TypeActivite.Set {
		set("type_activite", in.TypeActivite.Value)
	}
	if in.Siret.Set {
		set("siret", in.Siret.Value)
	}
	if in.RC.Set {
		set("rc", in.RC.Value)
	}
	if in.PermisBateau.Set {
		set("permis_bateau", in.PermisBateau.Value)
	}
	if in.Assurance.Set {
		set("assurance", in.Assurance.Value)
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicateKey):
			return nil, duplicateEmailError()
		case errors.Is(err, core.ErrNotFound):
			return nil, NotFoundError()
		}
		return nil, err
	}

	return s.MustFind(ctx, id)
}

// FindIncludingDeleted also returns anonymized accounts, so historical
// relations such as past bookings keep resolving their user.
func (s *Service) FindIncludingDeleted(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByIDIncludingDeleted(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, NotFoundError()
	}
	return u, err
}

// Delete anonymizes the user and tombstones the row. It cannot be undone.
func (s *Service) Delete(ctx context.Context, id, deletedBy string) error {
	if _, err := s.MustFind(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Anonymize(ctx, id, deletedBy); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return NotFoundError()
		}
		return err
	}

	slog.InfoContext(ctx, "user anonymized", "user_id", id, "deleted_by", deletedBy)
	return nil
}

func (s *Service) HasValidBoatLicense(ctx context.Context, id string) (bool, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.HasValidBoatLicense(), nil
}

func (s *Service) OwnsBoats(ctx context.Context, id string) (bool, error) {
	return s.repo.OwnsBoats(ctx, id)
}

func (s *Service) CredentialsByEmail(
	ctx context.Context,
	email string,
) (*auth.Credentials, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return &auth.Credentials{
		UserID:       u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}, nil
}

func (s *Service) UpdatePasswordHash(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) ensureEmailAvailable(ctx context.Context, email string) error {
	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return duplicateEmailError()
	}
	return nil
}

func validateProfessional(statut string, societe, typeActivite, siret, rc *string) error {
	if statut != StatusProfessional {
		return nil
	}

	if blank(societe) || blank(typeActivite) || blank(siret) || blank(rc) {
		return core.NewBusinessError(
			core.ErrIncompleteProfessionalProfile,
			core.CodeIncompleteProfessionalProfile,
			"Professional users must provide: societe, typeActivite, siret, rc",
		)
	}

	return nil
}

func duplicateEmailError() error {
	return core.NewBusinessError(
		core.ErrDuplicateEmail,
		core.CodeDuplicateEmail,
		"A user with this email already exists",
	)
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
