package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/titaska/bitukai-client/internal/models"
)

// ListStaff fetches the staff roster, optionally scoped to a tenant.
func (c *Client) ListStaff(ctx context.Context, registrationNumber string) ([]models.Staff, error) {
	query := url.Values{}
	if registrationNumber != "" {
		query.Set("registrationNumber", registrationNumber)
	}

	var staff []models.Staff
	if err := c.do(ctx, http.MethodGet, "/staff", query, nil, &staff); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	for i := range staff {
		staff[i].Normalize()
	}
	return staff, nil
}

// GetStaff fetches a single staff member by id.
func (c *Client) GetStaff(ctx context.Context, staffID string) (*models.Staff, error) {
	var staff models.Staff
	if err := c.do(ctx, http.MethodGet, "/staff/"+url.PathEscape(staffID), nil, nil, &staff); err != nil {
		return nil, fmt.Errorf("failed to get staff member %s: %w", staffID, err)
	}
	staff.Normalize()
	return &staff, nil
}

// CreateStaff registers a new staff member.
func (c *Client) CreateStaff(ctx context.Context, payload models.StaffCreate) (*models.Staff, error) {
	var staff models.Staff
	if err := c.do(ctx, http.MethodPost, "/staff", nil, payload, &staff); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	staff.Normalize()
	return &staff, nil
}

// UpdateStaff replaces a staff member's mutable fields.
func (c *Client) UpdateStaff(ctx context.Context, staffID string, payload models.StaffUpdate) error {
	if err := c.do(ctx, http.MethodPut, "/staff/"+url.PathEscape(staffID), nil, payload, nil); err != nil {
		return fmt.Errorf("failed to update staff member %s: %w", staffID, err)
	}
	return nil
}

// DeleteStaff removes a staff member.
func (c *Client) DeleteStaff(ctx context.Context, staffID string) error {
	if err := c.do(ctx, http.MethodDelete, "/staff/"+url.PathEscape(staffID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete staff member %s: %w", staffID, err)
	}
	return nil
}

// Login authenticates a staff member and returns their profile. When the
// backend issues a session token it is installed on the client for
// subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	payload := models.LoginRequest{Email: email, Password: password}

	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/staff/login", nil, payload, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	resp.Normalize()
	if resp.AccessToken != "" {
		c.SetToken(resp.AccessToken)
	}
	return &resp, nil
}
