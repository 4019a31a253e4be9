package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/titaska/bitukai-client/internal/models"
)

// TakenSlots fetches the occupied intervals of existing reservations for one
// staff member on one date ("YYYY-MM-DD"). Start timestamps are normalized to
// second precision ("2006-01-02T15:04:05") so they compare cleanly against
// locally composed slot starts regardless of the fractional-second noise the
// backend appends.
func (c *Client) TakenSlots(ctx context.Context, employeeID, date string) ([]models.BusyInterval, error) {
	query := url.Values{}
	query.Set("employeeId", employeeID)
	query.Set("date", date)

	var raw []models.BusyInterval
	if err := c.do(ctx, http.MethodGet, "/reservations/availability", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for employee %s on %s: %w", employeeID, date, err)
	}

	taken := make([]models.BusyInterval, 0, len(raw))
	for _, interval := range raw {
		if len(interval.Start) > 19 {
			interval.Start = interval.Start[:19]
		}
		taken = append(taken, interval)
	}
	return taken, nil
}

// CreateReservation books a new appointment.
func (c *Client) CreateReservation(ctx context.Context, payload models.ReservationCreate) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, payload, &reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}
	return &reservation, nil
}

// UpdateReservation replaces an existing appointment.
func (c *Client) UpdateReservation(ctx context.Context, appointmentID string, payload models.ReservationCreate) error {
	path := "/reservations/" + url.PathEscape(appointmentID)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, nil); err != nil {
		return fmt.Errorf("failed to update reservation %s: %w", appointmentID, err)
	}
	return nil
}

// UpdateReservationStatus transitions an appointment to a new status,
// e.g. cancellation.
func (c *Client) UpdateReservationStatus(ctx context.Context, appointmentID, status string) error {
	query := url.Values{}
	query.Set("status", status)

	path := "/reservations/" + url.PathEscape(appointmentID) + "/status"
	if err := c.do(ctx, http.MethodPut, path, query, nil, nil); err != nil {
		return fmt.Errorf("failed to update status of reservation %s: %w", appointmentID, err)
	}
	return nil
}

// ReservationDetails fetches reservations joined with service and employee
// display names.
func (c *Client) ReservationDetails(ctx context.Context) ([]models.ReservationInfo, error) {
	var details []models.ReservationInfo
	if err := c.do(ctx, http.MethodGet, "/reservations/details", nil, nil, &details); err != nil {
		return nil, fmt.Errorf("failed to fetch reservation details: %w", err)
	}
	return details, nil
}
