package services

import (
	"context"

	"NeoNestAdminAPI/internal/model"
)

// CaregiverStore is the document-store contract for caregiver applications.
type CaregiverStore interface {
	List(ctx context.Context) ([]model.Caregiver, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Caregiver, error)
}

type VerificationService struct {
	Repo CaregiverStore
}

func NewVerificationService(r CaregiverStore) *VerificationService {
	return &VerificationService{Repo: r}
}

// ListCaregivers returns all caregiver applications, newest first.
func (s *VerificationService) ListCaregivers(ctx context.Context) ([]model.Caregiver, error) {
	return s.Repo.List(ctx)
}

// SetCaregiverStatus approves, rejects or resets an application.
func (s *VerificationService) SetCaregiverStatus(ctx context.Context, id, status string) (*model.Caregiver, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}
	if !model.ValidCaregiverStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}
