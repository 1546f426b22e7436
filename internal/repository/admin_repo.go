package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"NeoNestAdminAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// Create inserts a new admin and returns the generated id. Emails are stored
// lowercased.
func (r *AdminRepository) Create(ctx context.Context, name, email, passwordHash, role string) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO admins (id, name, email, password, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)`
	if _, err := r.DB.Exec(ctx, query, id, name, strings.ToLower(email), passwordHash, role, time.Now()); err != nil {
		return "", err
	}
	return id, nil
}

// GetByEmailWithPassword loads an admin including the password hash. Login is
// the only caller; every other read goes through GetByID.
func (r *AdminRepository) GetByEmailWithPassword(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT id, name, email, password, role, is_active, created_at
		FROM admins WHERE email=$1`
	err := r.DB.QueryRow(ctx, query, strings.ToLower(email)).
		Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.Role, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetByID loads an admin without the password hash.
func (r *AdminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT id, name, email, role, is_active, created_at
		FROM admins WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.Role, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// SetActive flips the active flag. A deactivated admin keeps their row; their
// outstanding tokens fail on next verification.
func (r *AdminRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE admins SET is_active=$1 WHERE id=$2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPassword rotates the stored bcrypt hash.
func (r *AdminRepository) SetPassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE admins SET password=$1 WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
