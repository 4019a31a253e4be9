package devserver

import (
	"context"
	"errors"
	"math"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/api"
	"github.com/titaska/bitukai-client/internal/booking"
	"github.com/titaska/bitukai-client/internal/config"
	"github.com/titaska/bitukai-client/internal/flows"
	"github.com/titaska/bitukai-client/internal/models"
)

const (
	beautyReg   = "305111222"
	cateringReg = "305333444"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestClient(t *testing.T) *api.Client {
	t.Helper()
	store := NewStore()
	if err := Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	server := httptest.NewServer(NewEngine(store, nil))
	t.Cleanup(server.Close)
	return api.NewClient(config.Config{APIBase: server.URL + "/api", HTTPTimeout: 5 * time.Second})
}

func findService(t *testing.T, client *api.Client, name string) models.Product {
	t.Helper()
	page, err := client.ListProducts(context.Background(), models.ProductListParams{RegistrationNumber: beautyReg})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	for _, p := range page.Data {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("seeded service %q not found", name)
	return models.Product{}
}

func findItems(t *testing.T, client *api.Client) []models.Product {
	t.Helper()
	page, err := client.ListProducts(context.Background(), models.ProductListParams{
		RegistrationNumber: cateringReg,
		Type:               models.ProductTypeItem,
	})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(page.Data) == 0 {
		t.Fatal("no seeded catering items")
	}
	return page.Data
}

func TestBookingRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	haircut := findService(t, client, "Haircut")
	staff, err := client.ListStaff(ctx, beautyReg)
	if err != nil {
		t.Fatalf("ListStaff: %v", err)
	}
	if len(staff) != 2 {
		t.Fatalf("seeded beauty staff = %d, want 2", len(staff))
	}
	booked := staff[0]

	flow := flows.NewReservationFlow(client)
	created, taken, err := flow.Submit(ctx, flows.ReservationRequest{
		RegistrationNumber: beautyReg,
		EmployeeID:         booked.StaffID,
		Service:            haircut,
		Date:               "2025-06-02",
		SlotLabel:          "09:00 - 09:30",
		ClientName:         "Greta",
		ClientSurname:      "Jonaityte",
		ClientPhone:        "+37060000000",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.StartTime != "2025-06-02T09:00:00" {
		t.Fatalf("StartTime = %q", created.StartTime)
	}
	if created.Status != models.ReservationStatusBooked {
		t.Fatalf("Status = %q", created.Status)
	}
	if len(taken) != 1 || taken[0].Start != "2025-06-02T09:00:00" {
		t.Fatalf("refreshed occupancy = %+v", taken)
	}

	engine := booking.NewEngine(client)
	schedule, err := engine.DaySchedule(ctx, staff, haircut, "2025-06-02")
	if err != nil {
		t.Fatalf("DaySchedule: %v", err)
	}
	for _, member := range schedule {
		for _, status := range member.Slots {
			wantTaken := member.StaffID == booked.StaffID && status.Slot.StartMinutes == 9*60
			if status.Taken != wantTaken {
				t.Fatalf("%s slot %s taken = %v, want %v",
					member.StaffID, status.Slot.Label(), status.Taken, wantTaken)
			}
		}
	}

	details, err := client.ReservationDetails(ctx)
	if err != nil {
		t.Fatalf("ReservationDetails: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("details rows = %d, want 1", len(details))
	}
	if details[0].ServiceName != "Haircut" {
		t.Fatalf("ServiceName = %q", details[0].ServiceName)
	}
	if details[0].EmployeeName != booked.FirstName {
		t.Fatalf("EmployeeName = %q, want %q", details[0].EmployeeName, booked.FirstName)
	}
}

func TestOverlappingBookingRejected(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	haircut := findService(t, client, "Haircut")
	staff, err := client.ListStaff(ctx, beautyReg)
	if err != nil {
		t.Fatalf("ListStaff: %v", err)
	}

	request := flows.ReservationRequest{
		RegistrationNumber: beautyReg,
		EmployeeID:         staff[0].StaffID,
		Service:            haircut,
		Date:               "2025-06-02",
		SlotLabel:          "10:00 - 10:30",
		ClientName:         "First",
		ClientSurname:      "Client",
		ClientPhone:        "+37060000001",
	}
	flow := flows.NewReservationFlow(client)
	if _, _, err := flow.Submit(ctx, request); err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	request.ClientName = "Second"
	_, _, err = flow.Submit(ctx, request)
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.StatusCode != 409 {
		t.Fatalf("double booking err = %v, want HTTP 409", err)
	}

	// A different staff member is still free at the same time.
	request.EmployeeID = staff[1].StaffID
	if _, _, err := flow.Submit(ctx, request); err != nil {
		t.Fatalf("other staff Submit: %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	haircut := findService(t, client, "Haircut")
	staff, err := client.ListStaff(ctx, beautyReg)
	if err != nil {
		t.Fatalf("ListStaff: %v", err)
	}

	request := flows.ReservationRequest{
		RegistrationNumber: beautyReg,
		EmployeeID:         staff[0].StaffID,
		Service:            haircut,
		Date:               "2025-06-03",
		SlotLabel:          "11:00 - 11:30",
		ClientName:         "Greta",
		ClientSurname:      "Jonaityte",
		ClientPhone:        "+37060000000",
	}
	flow := flows.NewReservationFlow(client)
	created, _, err := flow.Submit(ctx, request)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := flow.Cancel(ctx, created.AppointmentID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	taken, err := client.TakenSlots(ctx, staff[0].StaffID, "2025-06-03")
	if err != nil {
		t.Fatalf("TakenSlots: %v", err)
	}
	if len(taken) != 0 {
		t.Fatalf("cancelled reservation still occupies: %+v", taken)
	}

	// The freed slot can be rebooked.
	if _, _, err := flow.Submit(ctx, request); err != nil {
		t.Fatalf("rebook Submit: %v", err)
	}
}

func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	items := findItems(t, client)
	var platter, basket models.Product
	for _, p := range items {
		switch p.Name {
		case "Cold sandwich platter":
			platter = p
		case "Fruit basket":
			basket = p
		}
	}
	if platter.ProductID == "" || basket.ProductID == "" {
		t.Fatalf("seeded catalog missing expected items: %+v", items)
	}

	flow := flows.NewOrderFlow(client)
	orderID, err := flow.Create(ctx, cateringReg, []models.OrderItem{
		{ProductID: platter.ProductID, Quantity: 2, BasePrice: platter.BasePrice},
		{ProductID: basket.ProductID, Quantity: 1, BasePrice: basket.BasePrice},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("order has %d lines, want 2", len(order.Lines))
	}
	if order.Lines[0].SubTotal != 2*platter.BasePrice {
		t.Fatalf("line subtotal = %v, want %v", order.Lines[0].SubTotal, 2*platter.BasePrice)
	}

	// Drop the basket, bump the platter to 3 and add it back fresh.
	cart := []models.OrderItem{
		{OrderLineID: order.Lines[0].OrderLineID, ProductID: platter.ProductID, Quantity: 3},
		{ProductID: basket.ProductID, Quantity: 2, BasePrice: basket.BasePrice},
	}
	if err := flow.Reconcile(ctx, orderID, order.Lines, cart); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	if err := flow.Checkout(ctx, orderID); err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	closed, err := client.GetOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("GetOrder after close: %v", err)
	}
	if closed.Status != models.OrderStatusClosedPaid {
		t.Fatalf("Status = %q, want %q", closed.Status, models.OrderStatusClosedPaid)
	}
	if closed.ClosedAt == nil {
		t.Fatal("ClosedAt not set")
	}

	wantSubtotal := 3*platter.BasePrice + 2*basket.BasePrice
	wantTax := wantSubtotal * 9 / 100 // seeded items carry the reduced rate
	if closed.SubtotalAmount == nil || math.Abs(*closed.SubtotalAmount-wantSubtotal) > 1e-9 {
		t.Fatalf("SubtotalAmount = %v, want %v", closed.SubtotalAmount, wantSubtotal)
	}
	if closed.TaxAmount == nil || math.Abs(*closed.TaxAmount-wantTax) > 1e-9 {
		t.Fatalf("TaxAmount = %v, want %v", closed.TaxAmount, wantTax)
	}
	if closed.TotalDue == nil || math.Abs(*closed.TotalDue-(wantSubtotal+wantTax)) > 1e-9 {
		t.Fatalf("TotalDue = %v, want %v", closed.TotalDue, wantSubtotal+wantTax)
	}

	// Closed orders reject further mutation.
	_, err = client.AddOrderLine(ctx, orderID, models.OrderLineCreate{ProductID: platter.ProductID, Quantity: 1})
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.StatusCode != 400 {
		t.Fatalf("mutating a closed order err = %v, want HTTP 400", err)
	}

	closedOrders, err := client.ListOrders(ctx, cateringReg, models.OrderStatusClosedPaid)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(closedOrders) != 1 || closedOrders[0].OrderID != orderID {
		t.Fatalf("closed-status listing = %+v", closedOrders)
	}
	openOrders, err := client.ListOrders(ctx, cateringReg, models.OrderStatusOpen)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(openOrders) != 0 {
		t.Fatalf("open-status listing = %+v, want none", openOrders)
	}

	// An unknown status filter is rejected before it reaches the store.
	_, err = client.ListOrders(ctx, cateringReg, "Pending")
	if !errors.As(err, &reqErr) || reqErr.StatusCode != 400 {
		t.Fatalf("bogus status filter err = %v, want HTTP 400", err)
	}
}

func TestLoginAndAuthenticatedRequest(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	resp, err := client.Login(ctx, "ruta@bitukai.lt", "changeme")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("login did not issue a token")
	}
	if resp.RegistrationNumber != beautyReg {
		t.Fatalf("RegistrationNumber = %q", resp.RegistrationNumber)
	}

	// The installed token passes the auth middleware.
	if _, err := client.ListStaff(ctx, beautyReg); err != nil {
		t.Fatalf("authenticated ListStaff: %v", err)
	}

	if _, err := client.Login(ctx, "ruta@bitukai.lt", "wrong"); err == nil {
		t.Fatal("expected bad credentials to fail")
	}
}
