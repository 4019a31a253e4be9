package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/titaska/bitukai-client/internal/models"
)

type fakeReservationAPI struct {
	calls []string

	createPayload models.ReservationCreate
	createErr     error
	statusID      string
	status        string
	takenErr      error
}

func (f *fakeReservationAPI) CreateReservation(ctx context.Context, payload models.ReservationCreate) (*models.Reservation, error) {
	f.calls = append(f.calls, "create")
	f.createPayload = payload
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Reservation{AppointmentID: "appt-1", StartTime: payload.StartTime, Status: models.ReservationStatusBooked}, nil
}

func (f *fakeReservationAPI) UpdateReservation(ctx context.Context, appointmentID string, payload models.ReservationCreate) error {
	f.calls = append(f.calls, "update")
	f.createPayload = payload
	return nil
}

func (f *fakeReservationAPI) UpdateReservationStatus(ctx context.Context, appointmentID, status string) error {
	f.calls = append(f.calls, "status")
	f.statusID = appointmentID
	f.status = status
	return nil
}

func (f *fakeReservationAPI) TakenSlots(ctx context.Context, employeeID, date string) ([]models.BusyInterval, error) {
	f.calls = append(f.calls, "taken")
	if f.takenErr != nil {
		return nil, f.takenErr
	}
	return []models.BusyInterval{{Start: date + "T09:00:00"}}, nil
}

func bookableService() models.Product {
	d := 30
	return models.Product{
		ProductID:       "svc-haircut",
		ProductType:     models.ProductTypeService,
		Name:            "Haircut",
		DurationMinutes: &d,
	}
}

func validRequest() ReservationRequest {
	return ReservationRequest{
		RegistrationNumber: "305111222",
		EmployeeID:         "staff-a",
		Service:            bookableService(),
		Date:               "2025-06-01",
		SlotLabel:          "09:00 - 09:30",
		ClientName:         "  Greta ",
		ClientSurname:      "Jonaityte",
		ClientPhone:        "+37060000000",
		Notes:              "first visit",
	}
}

func TestSubmitComposesPayload(t *testing.T) {
	api := &fakeReservationAPI{}
	flow := NewReservationFlow(api)

	created, taken, err := flow.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.AppointmentID != "appt-1" {
		t.Fatalf("created.AppointmentID = %q", created.AppointmentID)
	}
	if len(taken) != 1 {
		t.Fatalf("refresh returned %d intervals, want 1", len(taken))
	}

	p := api.createPayload
	if p.StartTime != "2025-06-01T09:00:00" {
		t.Fatalf("StartTime = %q, want %q", p.StartTime, "2025-06-01T09:00:00")
	}
	if p.DurationMinutes != 30 {
		t.Fatalf("DurationMinutes = %d, want 30", p.DurationMinutes)
	}
	if p.ClientName != "Greta" {
		t.Fatalf("ClientName = %q, want trimmed %q", p.ClientName, "Greta")
	}
	if p.Notes == nil || *p.Notes != "first visit" {
		t.Fatalf("Notes = %v, want %q", p.Notes, "first visit")
	}

	want := []string{"create", "taken"}
	if len(api.calls) != len(want) || api.calls[0] != want[0] || api.calls[1] != want[1] {
		t.Fatalf("calls = %v, want %v", api.calls, want)
	}
}

func TestSubmitValidationNeverTouchesNetwork(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ReservationRequest)
		wantErr error
	}{
		{"missing staff", func(r *ReservationRequest) { r.EmployeeID = "" }, ErrMissingSelection},
		{"missing service", func(r *ReservationRequest) { r.Service = models.Product{} }, ErrMissingSelection},
		{"missing date", func(r *ReservationRequest) { r.Date = "" }, ErrMissingSelection},
		{"missing slot", func(r *ReservationRequest) { r.SlotLabel = "" }, ErrMissingSelection},
		{"blank registration", func(r *ReservationRequest) { r.RegistrationNumber = "   " }, ErrMissingSelection},
		{"service without duration", func(r *ReservationRequest) { r.Service.DurationMinutes = nil }, ErrServiceNotBookable},
		{"malformed date", func(r *ReservationRequest) { r.Date = "01/06/2025" }, ErrBadDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeReservationAPI{}
			flow := NewReservationFlow(api)

			req := validRequest()
			tc.mutate(&req)

			_, _, err := flow.Submit(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if len(api.calls) != 0 {
				t.Fatalf("validation failure issued %d network calls: %v", len(api.calls), api.calls)
			}
		})
	}
}

func TestSubmitBackendRejection(t *testing.T) {
	rejected := errors.New("slot no longer available")
	api := &fakeReservationAPI{createErr: rejected}
	flow := NewReservationFlow(api)

	_, _, err := flow.Submit(context.Background(), validRequest())
	if !errors.Is(err, rejected) {
		t.Fatalf("err = %v, want backend rejection", err)
	}
	for _, call := range api.calls {
		if call == "taken" {
			t.Fatal("occupancy refresh should not run after a rejected booking")
		}
	}
}

func TestSubmitRefreshFailureStillReturnsReservation(t *testing.T) {
	api := &fakeReservationAPI{takenErr: errors.New("timeout")}
	flow := NewReservationFlow(api)

	created, taken, err := flow.Submit(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected a refresh error")
	}
	if created == nil || created.AppointmentID != "appt-1" {
		t.Fatalf("created = %+v, want the booked reservation despite the refresh failure", created)
	}
	if taken != nil {
		t.Fatalf("taken = %v, want nil after a failed refresh", taken)
	}
}

func TestCancelSetsCancelledStatus(t *testing.T) {
	api := &fakeReservationAPI{}
	flow := NewReservationFlow(api)

	if err := flow.Cancel(context.Background(), "appt-9"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if api.statusID != "appt-9" || api.status != models.ReservationStatusCancelled {
		t.Fatalf("status call = (%q, %q), want (appt-9, %s)", api.statusID, api.status, models.ReservationStatusCancelled)
	}

	if err := flow.Cancel(context.Background(), ""); !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("empty id err = %v, want ErrMissingSelection", err)
	}
}

func TestRescheduleRequiresAppointmentID(t *testing.T) {
	api := &fakeReservationAPI{}
	flow := NewReservationFlow(api)

	if err := flow.Reschedule(context.Background(), "", validRequest()); !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("err = %v, want ErrMissingSelection", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("missing id issued %d network calls", len(api.calls))
	}

	if err := flow.Reschedule(context.Background(), "appt-1", validRequest()); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if api.createPayload.StartTime != "2025-06-01T09:00:00" {
		t.Fatalf("StartTime = %q", api.createPayload.StartTime)
	}
}
