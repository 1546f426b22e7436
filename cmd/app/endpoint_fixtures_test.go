package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"NeoNestAdminAPI/internal/middleware"
	"NeoNestAdminAPI/internal/model"
	"NeoNestAdminAPI/internal/repository"
	"NeoNestAdminAPI/internal/services"
	"NeoNestAdminAPI/internal/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "endpoint-test-secret"

type memAdmins struct {
	byEmail map[string]*model.Admin
}

func (m *memAdmins) GetByEmailWithPassword(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.byEmail[strings.ToLower(email)]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memAdmins) GetByID(_ context.Context, id string) (*model.Admin, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			cp := *a
			cp.Password = ""
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memBookings struct {
	byID map[string]*model.Booking
}

func (m *memBookings) List(context.Context) ([]model.Booking, error) {
	list := []model.Booking{}
	for _, b := range m.byID {
		list = append(list, *b)
	}
	return list, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id, status string) (*model.Booking, error) {
	b, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

type memCaregivers struct {
	byID map[string]*model.Caregiver
}

func (m *memCaregivers) List(context.Context) ([]model.Caregiver, error) {
	list := []model.Caregiver{}
	for _, cg := range m.byID {
		list = append(list, *cg)
	}
	return list, nil
}

func (m *memCaregivers) UpdateStatus(_ context.Context, id, status string) (*model.Caregiver, error) {
	cg, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cg.Status = status
	cp := *cg
	return &cp, nil
}

type fixture struct {
	e          *echo.Echo
	admins     *memAdmins
	bookings   *memBookings
	caregivers *memCaregivers
}

// newFixture assembles the API exactly as main does, over in-memory stores.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	admins := &memAdmins{byEmail: map[string]*model.Admin{
		"admin@example.com": {
			ID:       "a1",
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: string(hash),
			Role:     model.RoleSuperAdmin,
			IsActive: true,
		},
	}}
	bookings := &memBookings{byID: map[string]*model.Booking{
		"BK001": {ID: "BK001", MotherName: "Meera Patel", Status: model.BookingStatusPending, CreatedAt: time.Now()},
	}}
	caregivers := &memCaregivers{byID: map[string]*model.Caregiver{
		"C001": {ID: "C001", Name: "Lakshmi Nair", Status: model.CaregiverStatusPending, CreatedAt: time.Now()},
	}}

	authSvc := services.NewAuthService(admins, testSecret, time.Hour)
	bookingSvc := services.NewBookingService(bookings)
	verSvc := services.NewVerificationService(caregivers)

	e := echo.New()
	api := e.Group("/api")
	authmw := middleware.Authenticate(testSecret, admins)
	registerAuthRoutes(api, authSvc, authmw)
	registerBookingRoutes(api, bookingSvc, authmw)
	registerVerificationRoutes(api, verSvc, authmw)

	return &fixture{e: e, admins: admins, bookings: bookings, caregivers: caregivers}
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	tok, err := token.Issue("a1", testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func (f *fixture) request(t *testing.T, method, path, bearer string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return rec.Code, payload
}

func field[T any](t *testing.T, payload map[string]json.RawMessage, key string) T {
	t.Helper()
	var v T
	raw, ok := payload[key]
	require.True(t, ok, "missing field %q", key)
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
