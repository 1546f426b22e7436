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

type CaregiverRepository struct {
	DB *pgxpool.Pool
}

func NewCaregiverRepository(db *pgxpool.Pool) *CaregiverRepository {
	return &CaregiverRepository{DB: db}
}

const caregiverColumns = `id, name, email, city, phone, status, created_at, updated_at`

func scanCaregiver(row pgx.Row) (*model.Caregiver, error) {
	var cg model.Caregiver
	err := row.Scan(&cg.ID, &cg.Name, &cg.Email, &cg.City, &cg.Phone, &cg.Status, &cg.CreatedAt, &cg.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cg, nil
}

func (r *CaregiverRepository) Create(ctx context.Context, cg *model.Caregiver) (string, error) {
	if cg.ID == "" {
		cg.ID = uuid.NewString()
	}
	now := time.Now()
	query := `INSERT INTO caregivers (id, name, email, city, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	_, err := r.DB.Exec(ctx, query, cg.ID, cg.Name, strings.ToLower(cg.Email), cg.City, cg.Phone, cg.Status, now)
	if err != nil {
		return "", err
	}
	return cg.ID, nil
}

// List returns all caregiver applications, newest first.
func (r *CaregiverRepository) List(ctx context.Context) ([]model.Caregiver, error) {
	query := `SELECT ` + caregiverColumns + ` FROM caregivers ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Caregiver{}
	for rows.Next() {
		cg, err := scanCaregiver(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *cg)
	}
	return list, rows.Err()
}

// UpdateStatus sets an application's status and returns the updated row.
func (r *CaregiverRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Caregiver, error) {
	query := `UPDATE caregivers SET status=$1, updated_at=$2 WHERE id=$3 RETURNING ` + caregiverColumns
	return scanCaregiver(r.DB.QueryRow(ctx, query, status, time.Now(), id))
}

// Count returns the total number of caregiver applications.
func (r *CaregiverRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM caregivers`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountPending returns the number of applications still awaiting review.
func (r *CaregiverRepository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM caregivers WHERE status=$1`, model.CaregiverStatusPending).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
