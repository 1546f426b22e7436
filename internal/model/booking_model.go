package model

import "time"

const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in-progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// BookingStatuses is the closed set of allowed booking statuses. Membership is
// the only transition rule; no ordering is enforced between statuses.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func ValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Booking struct {
	ID               string    `json:"id"`
	MotherID         string    `json:"motherId"`
	MotherName       string    `json:"motherName"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	CaregiverID      string    `json:"caregiverId"`
	CaregiverName    string    `json:"caregiverName"`
	Status           string    `json:"status"`
	Date             time.Time `json:"date"`
	ServiceType      string    `json:"serviceType"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// MonthlyBookings is one bucket of the dashboard booking histogram.
type MonthlyBookings struct {
	Month    string `json:"month"` // YYYY-MM
	Bookings int64  `json:"bookings"`
}
