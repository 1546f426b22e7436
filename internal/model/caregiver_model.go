package model

import "time"

const (
	CaregiverStatusPending  = "pending"
	CaregiverStatusApproved = "approved"
	CaregiverStatusRejected = "rejected"
)

var CaregiverStatuses = []string{
	CaregiverStatusPending,
	CaregiverStatusApproved,
	CaregiverStatusRejected,
}

func ValidCaregiverStatus(s string) bool {
	for _, v := range CaregiverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Caregiver is a caregiver verification application.
type Caregiver struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
