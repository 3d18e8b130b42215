// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fisherfans/backend/internal/core"
)

// Credentials is the slice of a user record needed to authenticate.
type Credentials struct {
	UserID       string
	Email        string
	PasswordHash string
}

type UserProvider interface {
	CredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
}

type Session struct {
	Token  string
	UserID string
}

type Service struct {
	jwt          *JWTManager
	hasher       *core.PasswordHasher
	userProvider UserProvider
}

func NewService(
	jwt *JWTManager,
	hasher *core.PasswordHasher,
	userProvider UserProvider,
) *Service {
	return &Service{
		jwt:          jwt,
		hasher:       hasher,
		userProvider: userProvider,
	}
}

// Login reports InvalidCredentials for an unknown email and for a wrong
// password alike.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*Session, error) {
	creds, err := s.userProvider.CredentialsByEmail(ctx, email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	var stored *string
	if creds != nil {
		stored = &creds.PasswordHash
	}

	valid, err := s.hasher.VerifyTimingSafe(password, stored)
	if err != nil {
		slog.WarnContext(ctx, "stored password hash unreadable", "error", err)
		valid = false
	}

	if creds == nil || !valid {
		return nil, core.NewBusinessError(
			core.ErrInvalidCredentials,
			core.CodeInvalidCredentials,
			"Invalid credentials",
		)
	}

	if s.hasher.NeedsRehash(creds.PasswordHash) {
		if newHash, hashErr := s.hasher.Hash(password); hashErr == nil {
			//nolint:errcheck // best-effort rehash upgrade
			_ = s.userProvider.UpdatePasswordHash(ctx, creds.UserID, newHash)
		}
	}

	return s.IssueSession(creds.UserID, creds.Email)
}

func (s *Service) IssueSession(userID, email string) (*Session, error) {
	token, err := s.jwt.IssueToken(userID, email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{Token: token, UserID: userID}, nil
}

func (s *Service) VerifyToken(token string) (*Identity, error) {
	return s.jwt.VerifyToken(token)
}
