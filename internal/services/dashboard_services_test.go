package services

import (
	"context"
	"testing"

	"NeoNestAdminAPI/internal/kv"
	"NeoNestAdminAPI/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBookingCounter struct {
	calls int
}

func (c *countingBookingCounter) Count(context.Context) (int64, error) {
	c.calls++
	return 42, nil
}

func (c *countingBookingCounter) CountByStatus(context.Context) (map[string]int64, error) {
	return map[string]int64{"pending": 10, "completed": 32}, nil
}

func (c *countingBookingCounter) MonthlyCounts(_ context.Context, months int) ([]model.MonthlyBookings, error) {
	c.calls++
	return []model.MonthlyBookings{{Month: "2026-07", Bookings: 12}, {Month: "2026-08", Bookings: 30}}, nil
}

type staticCaregiverCounter struct{}

func (staticCaregiverCounter) Count(context.Context) (int64, error)        { return 7, nil }
func (staticCaregiverCounter) CountPending(context.Context) (int64, error) { return 3, nil }

func newCache(t *testing.T) *kv.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return kv.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestDashboardStats(t *testing.T) {
	bookings := &countingBookingCounter{}
	svc := NewDashboardService(bookings, staticCaregiverCounter{}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalBookings)
	assert.Equal(t, int64(7), stats.TotalCaregivers)
	assert.Equal(t, int64(3), stats.PendingVerifications)
	assert.Equal(t, int64(10), stats.BookingsByStatus["pending"])
}

func TestDashboardStatsCacheAside(t *testing.T) {
	bookings := &countingBookingCounter{}
	svc := NewDashboardService(bookings, staticCaregiverCounter{}, newCache(t))

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	second, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, bookings.calls, "second call must be served from cache")
}

func TestDashboardMonthlyBookingsCached(t *testing.T) {
	bookings := &countingBookingCounter{}
	svc := NewDashboardService(bookings, staticCaregiverCounter{}, newCache(t))

	first, err := svc.MonthlyBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "2026-07", first[0].Month)

	_, err = svc.MonthlyBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, bookings.calls)
}
