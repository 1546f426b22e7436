package services

import (
	"context"
	"errors"

	"NeoNestAdminAPI/internal/model"
)

var (
	ErrStatusRequired = errors.New("status is required")
	ErrInvalidStatus  = errors.New("invalid status value")
)

// BookingStore is the document-store contract for bookings.
type BookingStore interface {
	List(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Booking, error)
}

type BookingService struct {
	Repo BookingStore
}

func NewBookingService(r BookingStore) *BookingService {
	return &BookingService{Repo: r}
}

// List returns all bookings, newest first.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.Repo.List(ctx)
}

// UpdateStatus validates the new status against the allowed set before
// touching the store. Any member may follow any other; there is no ordering.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*model.Booking, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}
	if !model.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
