package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/titaska/bitukai-client/internal/booking"
	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// Errors surfaced by the reservation flow.
var (
	ErrMissingSelection   = errors.New("business, staff, service, date and slot must all be selected")
	ErrServiceNotBookable = errors.New("selected service has no duration and cannot be booked")
	ErrBadDate            = errors.New("date must be in YYYY-MM-DD form")
	ErrSlotTaken          = errors.New("selected slot is already taken")
)

// ReservationAPI is the slice of the backend client the flow depends on.
type ReservationAPI interface {
	CreateReservation(ctx context.Context, payload models.ReservationCreate) (*models.Reservation, error)
	UpdateReservation(ctx context.Context, appointmentID string, payload models.ReservationCreate) error
	UpdateReservationStatus(ctx context.Context, appointmentID, status string) error
	TakenSlots(ctx context.Context, employeeID, date string) ([]models.BusyInterval, error)
}

// ReservationRequest is everything a user selects and types before submitting
// a new appointment.
type ReservationRequest struct {
	RegistrationNumber string
	EmployeeID         string
	Service            models.Product
	Date               string // "2006-01-02"
	SlotLabel          string // "09:00 - 09:30"
	ClientName         string
	ClientSurname      string
	ClientPhone        string
	Notes              string
}

// ReservationFlow orchestrates appointment creation: validation before any
// network call, local-time timestamp composition, submission, and the
// occupancy refresh that makes the newly taken slot visible.
type ReservationFlow struct {
	api ReservationAPI
}

// NewReservationFlow creates a ReservationFlow.
func NewReservationFlow(api ReservationAPI) *ReservationFlow {
	return &ReservationFlow{api: api}
}

// validate checks every required selection. It must not touch the network:
// a validation failure means zero requests were issued.
func (f *ReservationFlow) validate(req ReservationRequest) error {
	if utils.IsEmpty(req.RegistrationNumber) ||
		utils.IsEmpty(req.EmployeeID) ||
		utils.IsEmpty(req.Service.ProductID) ||
		utils.IsEmpty(req.Date) ||
		utils.IsEmpty(req.SlotLabel) {
		return ErrMissingSelection
	}
	if !req.Service.IsBookable() {
		return fmt.Errorf("%w: %s", ErrServiceNotBookable, req.Service.ProductID)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, req.Date)
	}
	return nil
}

// buildPayload composes the transport payload. The start timestamp combines
// the selected date with the slot's start time in local wall-clock form,
// e.g. date "2025-06-01" and slot "09:00 - 09:30" become
// "2025-06-01T09:00:00".
func (f *ReservationFlow) buildPayload(req ReservationRequest) (models.ReservationCreate, error) {
	slot, err := booking.ParseSlotLabel(req.SlotLabel)
	if err != nil {
		return models.ReservationCreate{}, err
	}

	return models.ReservationCreate{
		RegistrationNumber: req.RegistrationNumber,
		EmployeeID:         req.EmployeeID,
		ServiceProductID:   req.Service.ProductID,
		StartTime:          req.Date + "T" + slot.StartClock() + ":00",
		DurationMinutes:    *req.Service.DurationMinutes,
		ClientName:         strings.TrimSpace(req.ClientName),
		ClientSurname:      strings.TrimSpace(req.ClientSurname),
		ClientPhone:        strings.TrimSpace(req.ClientPhone),
		Notes:              utils.NewNullString(strings.TrimSpace(req.Notes)),
	}, nil
}

// Submit books the appointment. On success it refreshes the occupancy for the
// affected staff member and date and returns the updated busy intervals so
// the caller can re-render without a full reload. On rejection nothing is
// mutated locally and the backend's error is returned as-is. A refresh
// failure after a successful booking is reported alongside the created
// reservation.
func (f *ReservationFlow) Submit(ctx context.Context, req ReservationRequest) (*models.Reservation, []models.BusyInterval, error) {
	if err := f.validate(req); err != nil {
		return nil, nil, err
	}

	payload, err := f.buildPayload(req)
	if err != nil {
		return nil, nil, err
	}

	created, err := f.api.CreateReservation(ctx, payload)
	if err != nil {
		return nil, nil, err
	}

	taken, err := f.api.TakenSlots(ctx, req.EmployeeID, req.Date)
	if err != nil {
		return created, nil, fmt.Errorf("reservation created but occupancy refresh failed: %w", err)
	}
	return created, taken, nil
}

// Reschedule replaces an existing appointment using the same validation and
// timestamp composition as Submit.
func (f *ReservationFlow) Reschedule(ctx context.Context, appointmentID string, req ReservationRequest) error {
	if utils.IsEmpty(appointmentID) {
		return ErrMissingSelection
	}
	if err := f.validate(req); err != nil {
		return err
	}
	payload, err := f.buildPayload(req)
	if err != nil {
		return err
	}
	return f.api.UpdateReservation(ctx, appointmentID, payload)
}

// Cancel transitions an appointment to the cancelled status.
func (f *ReservationFlow) Cancel(ctx context.Context, appointmentID string) error {
	if utils.IsEmpty(appointmentID) {
		return ErrMissingSelection
	}
	return f.api.UpdateReservationStatus(ctx, appointmentID, models.ReservationStatusCancelled)
}
