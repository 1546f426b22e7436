package services

import (
	"context"
	"testing"
	"time"

	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/repository"
	"NeoNestAdminAPI/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "svc-test-secret"

type fakeAdminStore struct {
	byEmail map[string]*model.Admin
}

func (f *fakeAdminStore) GetByEmailWithPassword(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := f.byEmail[email]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminStore) GetByID(_ context.Context, id string) (*model.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			cp := *a
			cp.Password = ""
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newAuthFixture(t *testing.T, active bool) (*AuthService, *model.Admin) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &model.Admin{
		ID:       "a1",
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     model.RoleSuperAdmin,
		IsActive: active,
	}
	store := &fakeAdminStore{byEmail: map[string]*model.Admin{admin.Email: admin}}
	return NewAuthService(store, testSecret, time.Hour), admin
}

func TestLoginSuccess(t *testing.T) {
	svc, admin := newAuthFixture(t, true)

	tok, got, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.Empty(t, got.Password, "hash must not leak")

	adminID, err := token.Verify(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, adminID)
}

func TestLoginUppercaseEmail(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	_, _, err := svc.Login(context.Background(), "Admin@Example.COM", "correct-horse")
	assert.NoError(t, err)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newAuthFixture(t, true)

	_, _, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, _, err = svc.Login(context.Background(), "admin@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	_, _, wrongErr := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, _ := newAuthFixture(t, false)
	_, _, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestLoginNoSecret(t *testing.T) {
	svc, _ := newAuthFixture(t, true)
	svc.Secret = ""
	_, _, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	assert.ErrorIs(t, err, token.ErrNoSecret)
}
