package services

import (
	"context"
	"encoding/json"
	"time"

	"NeoNestAdminAPI/internal/model"

	"github.com/sirupsen/logrus"
)

// BookingCounter and CaregiverCounter expose the aggregate queries the
// dashboard needs.
type BookingCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	MonthlyCounts(ctx context.Context, months int) ([]model.MonthlyBookings, error)
}

type CaregiverCounter interface {
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

// StatsCache is satisfied by kv.Cache. A nil cache disables caching.
type StatsCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}

type DashboardStats struct {
	TotalBookings        int64            `json:"totalBookings"`
	TotalCaregivers      int64            `json:"totalCaregivers"`
	PendingVerifications int64            `json:"pendingVerifications"`
	BookingsByStatus     map[string]int64 `json:"bookingsByStatus"`
}

const (
	statsCacheKey   = "dashboard:stats"
	monthlyCacheKey = "dashboard:bookings:monthly"
	cacheTTL        = 60 * time.Second
	monthlyWindow   = 12
)

type DashboardService struct {
	Bookings   BookingCounter
	Caregivers CaregiverCounter
	Cache      StatsCache
}

func NewDashboardService(b BookingCounter, c CaregiverCounter, cache StatsCache) *DashboardService {
	return &DashboardService{Bookings: b, Caregivers: c, Cache: cache}
}

// Stats aggregates the dashboard counters, cache-aside with a short TTL.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, statsCacheKey); err == nil && ok {
			var cached DashboardStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalBookings, err := s.Bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalCaregivers, err := s.Caregivers.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.Caregivers.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalBookings:        totalBookings,
		TotalCaregivers:      totalCaregivers,
		PendingVerifications: pending,
		BookingsByStatus:     byStatus,
	}
	s.cachePut(ctx, statsCacheKey, stats)
	return stats, nil
}

// MonthlyBookings returns the last twelve months of booking counts.
func (s *DashboardService) MonthlyBookings(ctx context.Context) ([]model.MonthlyBookings, error) {
	if s.Cache != nil {
		if raw, ok, err := s.Cache.Get(ctx, monthlyCacheKey); err == nil && ok {
			var cached []model.MonthlyBookings
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	counts, err := s.Bookings.MonthlyCounts(ctx, monthlyWindow)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, monthlyCacheKey, counts)
	return counts, nil
}

func (s *DashboardService) cachePut(ctx context.Context, key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(raw), cacheTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("dashboard cache write failed")
	}
}
