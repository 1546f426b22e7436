package main

import (
	"net/http"
	"testing"

	"NeoNestAdminAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCaregiverVerifications(t *testing.T) {
	f := newFixture(t)

	code, payload := f.request(t, http.MethodGet, "/api/verifications/caregivers", f.token(t), nil)
	require.Equal(t, http.StatusOK, code)
	caregivers := field[[]model.Caregiver](t, payload, "caregivers")
	require.Len(t, caregivers, 1)
	assert.Equal(t, "C001", caregivers[0].ID)
}

func TestListCaregiverVerificationsNoToken(t *testing.T) {
	f := newFixture(t)

	code, _ := f.request(t, http.MethodGet, "/api/verifications/caregivers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestApproveCaregiver(t *testing.T) {
	f := newFixture(t)

	code, payload := f.request(t, http.MethodPatch, "/api/verifications/caregivers/C001/status", f.token(t),
		map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, code)
	caregiver := field[model.Caregiver](t, payload, "caregiver")
	assert.Equal(t, model.CaregiverStatusApproved, caregiver.Status)
}

func TestRejectCaregiverUnknownID(t *testing.T) {
	f := newFixture(t)

	code, payload := f.request(t, http.MethodPatch, "/api/verifications/caregivers/C404/status", f.token(t),
		map[string]string{"status": "rejected"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Caregiver application not found", field[string](t, payload, "message"))
}

func TestCaregiverStatusOutsideEnum(t *testing.T) {
	f := newFixture(t)

	code, payload := f.request(t, http.MethodPatch, "/api/verifications/caregivers/C001/status", f.token(t),
		map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid status value", field[string](t, payload, "message"))
	assert.Equal(t, model.CaregiverStatusPending, f.caregivers.byID["C001"].Status)
}
