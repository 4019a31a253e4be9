package models

import (
	"encoding/json"
	"fmt"
)

// Reservation status values.
const (
	ReservationStatusBooked    = "Booked"
	ReservationStatusCancelled = "Cancelled"
	ReservationStatusCompleted = "Completed"
)

// ReservationCreate is the payload for creating or replacing an appointment.
// StartTime is a timezone-naive local wall-clock timestamp in the form
// "2006-01-02T15:04:05"; duration is inherited from the service at booking
// time so the occupied interval is [StartTime, StartTime+DurationMinutes).
type ReservationCreate struct {
	RegistrationNumber string  `json:"registrationNumber"`
	EmployeeID         string  `json:"employeeId"`
	ServiceProductID   string  `json:"serviceProductId"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	ClientName         string  `json:"clientName"`
	ClientSurname      string  `json:"clientSurname"`
	ClientPhone        string  `json:"clientPhone"`
	Notes              *string `json:"notes"`
}

// Reservation is the persisted appointment as the backend returns it.
type Reservation struct {
	AppointmentID      string  `json:"appointmentId"`
	RegistrationNumber string  `json:"registrationNumber"`
	EmployeeID         string  `json:"employeeId"`
	ServiceProductID   string  `json:"serviceProductId"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	ClientName         string  `json:"clientName"`
	ClientSurname      string  `json:"clientSurname"`
	ClientPhone        string  `json:"clientPhone"`
	Notes              *string `json:"notes"`
}

// ReservationInfo is the joined details row used by the reservations overview:
// the appointment plus the display names of the service and the employee.
type ReservationInfo struct {
	AppointmentID      string  `json:"appointmentId"`
	RegistrationNumber string  `json:"registrationNumber"`
	ServiceProductID   string  `json:"serviceProductId"`
	ServiceName        string  `json:"serviceName"`
	EmployeeID         string  `json:"employeeId"`
	EmployeeName       string  `json:"employeeName"`
	EmployeeSurname    string  `json:"employeeSurname"`
	StartTime          string  `json:"startTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes"`
	ClientName         string  `json:"clientName"`
	ClientSurname      string  `json:"clientSurname"`
	ClientPhone        string  `json:"clientPhone"`
}

// BusyInterval is one occupied interval reported by the availability
// endpoint. The backend has two shapes for it: a bare start timestamp string
// or an object carrying the start and the reservation's duration. Both fold
// into this canonical form at the boundary; DurationMinutes is 0 when the
// backend reported only the start.
type BusyInterval struct {
	Start           string
	DurationMinutes int
}

// UnmarshalJSON accepts both transport shapes.
func (b *BusyInterval) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		b.Start = asString
		b.DurationMinutes = 0
		return nil
	}

	var asObject struct {
		StartTime       string `json:"startTime"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := json.Unmarshal(data, &asObject); err == nil && asObject.StartTime != "" {
		b.Start = asObject.StartTime
		b.DurationMinutes = asObject.DurationMinutes
		return nil
	}

	return fmt.Errorf("busy interval is neither timestamp nor object: %s", string(data))
}

// IsValidReservationStatus reports whether status is a known appointment status.
func IsValidReservationStatus(status string) bool {
	switch status {
	case ReservationStatusBooked, ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}
