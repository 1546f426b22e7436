package repository

import (
	"context"
	"errors"
	"time"

	"NeoNestAdminAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	DB *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{DB: db}
}

const bookingColumns = `id, mother_id, mother_name, organization_id, organization_name,
	caregiver_id, caregiver_name, status, date, service_type, created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.MotherID, &b.MotherName, &b.OrganizationID, &b.OrganizationName,
		&b.CaregiverID, &b.CaregiverName, &b.Status, &b.Date, &b.ServiceType, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a booking. The caller may pass an empty id to get a generated one.
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	query := `INSERT INTO bookings (id, mother_id, mother_name, organization_id, organization_name,
		caregiver_id, caregiver_name, status, date, service_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`
	_, err := r.DB.Exec(ctx, query, b.ID, b.MotherID, b.MotherName, b.OrganizationID, b.OrganizationName,
		b.CaregiverID, b.CaregiverName, b.Status, b.Date, b.ServiceType, now)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// List returns all bookings, newest first.
func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *b)
	}
	return list, rows.Err()
}

// UpdateStatus sets a booking's status and returns the updated row.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Booking, error) {
	query := `UPDATE bookings SET status=$1, updated_at=$2 WHERE id=$3 RETURNING ` + bookingColumns
	return scanBooking(r.DB.QueryRow(ctx, query, status, time.Now(), id))
}

// Count returns the total number of bookings.
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountByStatus returns booking counts keyed by status.
func (r *BookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.DB.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// MonthlyCounts returns booking counts per creation month for the last
// `months` months, oldest first.
func (r *BookingRepository) MonthlyCounts(ctx context.Context, months int) ([]model.MonthlyBookings, error) {
	query := `SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*)
		FROM bookings
		WHERE created_at >= date_trunc('month', NOW()) - ($1 * INTERVAL '1 month')
		GROUP BY 1 ORDER BY 1`
	rows, err := r.DB.Query(ctx, query, months-1)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []model.MonthlyBookings{}
	for rows.Next() {
		var m model.MonthlyBookings
		if err := rows.Scan(&m.Month, &m.Bookings); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
