package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
)

// AdminStore is the credential-store contract the auth flow depends on.
type AdminStore interface {
	GetByEmailWithPassword(ctx context.Context, email string) (*model.Admin, error)
	GetByID(ctx context.Context, id string) (*model.Admin, error)
}

type AuthService struct {
	Admins   AdminStore
	Secret   string
	TokenTTL time.Duration
}

func NewAuthService(admins AdminStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Admins: admins, Secret: secret, TokenTTL: ttl}
}

// Login authenticates an email/password pair and returns a session token plus
// the admin without the password hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}
	a, err := s.Admins.GetByEmailWithPassword(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !a.IsActive {
		return "", nil, ErrAccountDeactivated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := token.Issue(a.ID, s.Secret, s.TokenTTL)
	if err != nil {
		return "", nil, err
	}
	// zero out the hash before returning
	a.Password = ""
	return tok, a, nil
}
