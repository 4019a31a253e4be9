package flows

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/titaska/bitukai-client/internal/models"
)

// fakeOrderAPI records every mutation in order as compact strings, e.g.
// "delete line-b" or "update line-a qty=3".
type fakeOrderAPI struct {
	calls []string

	createErr error
	addErrFor string
	deleteErr error
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, payload models.OrderCreate) (*models.Order, error) {
	f.calls = append(f.calls, "create order "+payload.RegistrationNumber)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Order{OrderID: "order-1", Status: models.OrderStatusOpen}, nil
}

func (f *fakeOrderAPI) AddOrderLine(ctx context.Context, orderID string, payload models.OrderLineCreate) (*models.OrderLine, error) {
	f.calls = append(f.calls, fmt.Sprintf("add %s qty=%d", payload.ProductID, payload.Quantity))
	if f.addErrFor == payload.ProductID {
		return nil, errors.New("line rejected")
	}
	return &models.OrderLine{OrderLineID: "line-" + payload.ProductID, OrderID: orderID}, nil
}

func (f *fakeOrderAPI) UpdateOrderLine(ctx context.Context, orderID, lineID string, payload models.OrderLineUpdate) error {
	f.calls = append(f.calls, fmt.Sprintf("update %s qty=%d", lineID, payload.Quantity))
	return nil
}

func (f *fakeOrderAPI) DeleteOrderLine(ctx context.Context, orderID, lineID string) error {
	f.calls = append(f.calls, "delete "+lineID)
	return f.deleteErr
}

func (f *fakeOrderAPI) CalculateOrder(ctx context.Context, orderID string) error {
	f.calls = append(f.calls, "calculate "+orderID)
	return nil
}

func (f *fakeOrderAPI) CloseOrder(ctx context.Context, orderID string) error {
	f.calls = append(f.calls, "close "+orderID)
	return nil
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCreateAppendsLinesInCartOrder(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	orderID, err := flow.Create(context.Background(), "305333444", []models.OrderItem{
		{ProductID: "p1", Quantity: 2, BasePrice: 12.5},
		{ProductID: "p2", Quantity: 1, BasePrice: 30},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if orderID != "order-1" {
		t.Fatalf("orderID = %q", orderID)
	}
	assertCalls(t, api.calls, []string{
		"create order 305333444",
		"add p1 qty=2",
		"add p2 qty=1",
	})
}

func TestCreateRejectsEmptyCart(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	if _, err := flow.Create(context.Background(), "305333444", nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
	if _, err := flow.Create(context.Background(), "", []models.OrderItem{{ProductID: "p1", Quantity: 1}}); !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("err = %v, want ErrMissingSelection", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("rejected carts issued %d network calls", len(api.calls))
	}
}

func TestCreateAbortsOnFirstLineFailure(t *testing.T) {
	api := &fakeOrderAPI{addErrFor: "p2"}
	flow := NewOrderFlow(api)

	orderID, err := flow.Create(context.Background(), "305333444", []models.OrderItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	})
	if err == nil {
		t.Fatal("expected the p2 failure to surface")
	}
	if orderID != "order-1" {
		t.Fatalf("orderID = %q, want the created order id even on partial failure", orderID)
	}
	assertCalls(t, api.calls, []string{
		"create order 305333444",
		"add p1 qty=1",
		"add p2 qty=1",
	})
}

func TestReconcileDeletesUpdatesCreates(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	original := []models.OrderLine{
		{OrderLineID: "line-a", ProductID: "p1", Quantity: 1},
		{OrderLineID: "line-b", ProductID: "p2", Quantity: 2},
	}
	cart := []models.OrderItem{
		{OrderLineID: "line-a", ProductID: "p1", Quantity: 3},
		{ProductID: "p3", Quantity: 1, BasePrice: 7},
	}

	if err := flow.Reconcile(context.Background(), "order-1", original, cart); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	assertCalls(t, api.calls, []string{
		"delete line-b",
		"update line-a qty=3",
		"add p3 qty=1",
	})
}

func TestReconcileNoChangesOnlyUpdates(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	original := []models.OrderLine{{OrderLineID: "line-a", ProductID: "p1", Quantity: 2}}
	cart := []models.OrderItem{{OrderLineID: "line-a", ProductID: "p1", Quantity: 2}}

	if err := flow.Reconcile(context.Background(), "order-1", original, cart); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	assertCalls(t, api.calls, []string{"update line-a qty=2"})
}

func TestReconcileAbortsAfterDeleteFailure(t *testing.T) {
	api := &fakeOrderAPI{deleteErr: errors.New("gone")}
	flow := NewOrderFlow(api)

	original := []models.OrderLine{{OrderLineID: "line-a", ProductID: "p1", Quantity: 1}}
	cart := []models.OrderItem{{ProductID: "p2", Quantity: 1}}

	err := flow.Reconcile(context.Background(), "order-1", original, cart)
	if err == nil {
		t.Fatal("expected the delete failure to surface")
	}
	assertCalls(t, api.calls, []string{"delete line-a"})
}

func TestReconcileRequiresOrderID(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	if err := flow.Reconcile(context.Background(), "", nil, nil); !errors.Is(err, ErrMissingOrderID) {
		t.Fatalf("err = %v, want ErrMissingOrderID", err)
	}
}

func TestCheckoutCalculatesThenCloses(t *testing.T) {
	api := &fakeOrderAPI{}
	flow := NewOrderFlow(api)

	if err := flow.Checkout(context.Background(), "order-1"); err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	assertCalls(t, api.calls, []string{"calculate order-1", "close order-1"})

	if err := flow.Checkout(context.Background(), ""); !errors.Is(err, ErrMissingOrderID) {
		t.Fatalf("err = %v, want ErrMissingOrderID", err)
	}
}
