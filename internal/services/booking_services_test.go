package services

import (
	"context"
	"testing"
	"time"

	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	bookings    map[string]*model.Booking
	updateCalls int
}

func (f *fakeBookingStore) List(_ context.Context) ([]model.Booking, error) {
	list := []model.Booking{}
	for _, b := range f.bookings {
		list = append(list, *b)
	}
	return list, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id, status string) (*model.Booking, error) {
	f.updateCalls++
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func newBookingFixture() (*BookingService, *fakeBookingStore) {
	store := &fakeBookingStore{bookings: map[string]*model.Booking{
		"BK001": {ID: "BK001", MotherName: "Meera Patel", Status: model.BookingStatusPending},
	}}
	return NewBookingService(store), store
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, store := newBookingFixture()

	updated, err := svc.UpdateStatus(context.Background(), "BK001", "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, 1, store.updateCalls)
}

func TestUpdateBookingStatusMissing(t *testing.T) {
	svc, store := newBookingFixture()

	_, err := svc.UpdateStatus(context.Background(), "BK001", "")
	assert.ErrorIs(t, err, ErrStatusRequired)
	assert.Zero(t, store.updateCalls, "store must not be touched")
}

// A value outside the enumeration is rejected before the store is touched, so
// the persisted status stays unchanged.
func TestUpdateBookingStatusOutsideEnum(t *testing.T) {
	svc, store := newBookingFixture()

	_, err := svc.UpdateStatus(context.Background(), "BK001", "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, store.updateCalls)
	assert.Equal(t, model.BookingStatusPending, store.bookings["BK001"].Status)
}

func TestUpdateBookingStatusUnknownID(t *testing.T) {
	svc, _ := newBookingFixture()

	_, err := svc.UpdateStatus(context.Background(), "BK999", "confirmed")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// Any member of the set may follow any other; no ordering is enforced.
func TestUpdateBookingStatusNoOrdering(t *testing.T) {
	svc, _ := newBookingFixture()

	for _, status := range []string{"completed", "pending", "cancelled", "in-progress", "confirmed"} {
		updated, err := svc.UpdateStatus(context.Background(), "BK001", status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}
