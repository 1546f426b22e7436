// Package adminclient is the session-aware Go client for the NeoNest admin
// API. It persists the bearer token between runs and re-verifies it against
// the server on load instead of trusting the stored projection.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"NeoNestAdminAPI/internal/model"
)

// Admin is the sanitized projection returned by the API.
type Admin = model.AdminPublic

// APIError carries the server's error envelope. Callers get it untouched;
// the client never retries.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// DashboardStats mirrors the /dashboard/stats payload.
type DashboardStats struct {
	TotalBookings        int64            `json:"totalBookings"`
	TotalCaregivers      int64            `json:"totalCaregivers"`
	PendingVerifications int64            `json:"pendingVerifications"`
	BookingsByStatus     map[string]int64 `json:"bookingsByStatus"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
	store   SessionStore

	mu      sync.RWMutex
	token   string
	admin   *Admin
	loading bool
}

// New creates a client against baseURL (e.g. "http://localhost:5000/api").
// The client reports Loading() == true until Load has resolved the persisted
// session.
func New(baseURL string, store SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		store:   store,
		loading: true,
	}
}

// Load restores a persisted session. A stored token is verified against the
// server rather than trusted; any auth failure clears local state so a
// revoked, expired or deactivated session is detected up front. Network
// failures are returned to the caller and leave the stored token in place.
func (c *Client) Load(ctx context.Context) error {
	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	tok, ok := c.store.Get(tokenKey)
	if !ok || tok == "" {
		return nil
	}
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()

	var resp struct {
		Admin Admin `json:"admin"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		if _, ok := err.(*APIError); ok {
			c.Logout()
			return nil
		}
		return err
	}

	raw, err := json.Marshal(resp.Admin)
	if err == nil {
		_ = c.store.Set(adminKey, string(raw))
	}
	c.mu.Lock()
	c.admin = &resp.Admin
	c.mu.Unlock()
	return nil
}

// Login authenticates and persists the returned token and admin projection.
// Failures propagate untouched as *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*Admin, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		Admin Admin  `json:"admin"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}

	if err := c.store.Set(tokenKey, resp.Token); err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(resp.Admin); err == nil {
		_ = c.store.Set(adminKey, string(raw))
	}

	c.mu.Lock()
	c.token = resp.Token
	c.admin = &resp.Admin
	c.mu.Unlock()
	return &resp.Admin, nil
}

// Logout clears all persisted session state. Purely local; tokens are
// stateless and self-expire server-side.
func (c *Client) Logout() {
	_ = c.store.Delete(tokenKey)
	_ = c.store.Delete(adminKey)
	c.mu.Lock()
	c.token = ""
	c.admin = nil
	c.mu.Unlock()
}

func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

func (c *Client) Admin() *Admin {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.admin
}

// Loading is true only during the initial Load check.
func (c *Client) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Bookings lists all bookings, newest first.
func (c *Client) Bookings(ctx context.Context) ([]model.Booking, error) {
	var resp struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// UpdateBookingStatus patches one booking's status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*model.Booking, error) {
	var resp struct {
		Booking model.Booking `json:"booking"`
	}
	path := "/bookings/" + id + "/status"
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// CaregiverVerifications lists caregiver applications, newest first.
func (c *Client) CaregiverVerifications(ctx context.Context) ([]model.Caregiver, error) {
	var resp struct {
		Caregivers []model.Caregiver `json:"caregivers"`
	}
	if err := c.do(ctx, http.MethodGet, "/verifications/caregivers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Caregivers, nil
}

// SetCaregiverVerificationStatus approves, rejects or resets an application.
func (c *Client) SetCaregiverVerificationStatus(ctx context.Context, id, status string) (*model.Caregiver, error) {
	var resp struct {
		Caregiver model.Caregiver `json:"caregiver"`
	}
	path := "/verifications/caregivers/" + id + "/status"
	if err := c.do(ctx, http.MethodPatch, path, map[string]string{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Caregiver, nil
}

// Stats fetches the dashboard aggregates.
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var resp struct {
		Stats DashboardStats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

// do issues one request, attaching the bearer token when present, and decodes
// the standard envelope. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.RLock()
	tok := c.token
	c.mu.RUnlock()
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	raw := new(bytes.Buffer)
	if _, err := raw.ReadFrom(res.Body); err != nil {
		return err
	}
	if err := json.Unmarshal(raw.Bytes(), &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 || !envelope.Success {
		return &APIError{StatusCode: res.StatusCode, Message: envelope.Message}
	}
	if out != nil {
		if err := json.Unmarshal(raw.Bytes(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
