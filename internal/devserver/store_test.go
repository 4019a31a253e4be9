package devserver

import (
	"testing"

	"github.com/titaska/bitukai-client/internal/models"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	if err := Seed(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestAddBusinessRejectsUnknownType(t *testing.T) {
	store := NewStore()
	err := store.AddBusiness(models.Business{
		RegistrationNumber: "305999000",
		Name:               "Bitukai Mystery",
		Type:               "LAUNDRY",
	})
	if err == nil {
		t.Fatal("unknown business type should be rejected")
	}
	if len(store.ListBusinesses()) != 0 {
		t.Fatal("rejected business was stored anyway")
	}

	if err := store.AddBusiness(models.Business{
		RegistrationNumber: "305999000",
		Name:               "Bitukai Beauty 2",
		Type:               models.BusinessTypeBeauty,
	}); err != nil {
		t.Fatalf("valid business rejected: %v", err)
	}
}

func TestGetOrderReturnsDetachedLines(t *testing.T) {
	store := seededStore(t)
	catalog, _ := store.ListProducts(models.ProductListParams{RegistrationNumber: "305333444"})
	if len(catalog) == 0 {
		t.Fatal("no seeded catering products")
	}

	order := store.CreateOrder(models.OrderCreate{RegistrationNumber: "305333444"})
	line, err := store.AddOrderLine(order.OrderID, models.OrderLineCreate{
		ProductID: catalog[0].ProductID,
		Quantity:  1,
		UnitPrice: catalog[0].BasePrice,
	})
	if err != nil {
		t.Fatalf("AddOrderLine: %v", err)
	}

	before, err := store.GetOrder(order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}

	if _, err := store.UpdateOrderLine(order.OrderID, line.OrderLineID, models.OrderLineUpdate{Quantity: 5}); err != nil {
		t.Fatalf("UpdateOrderLine: %v", err)
	}

	if before.Lines[0].Quantity != 1 {
		t.Fatalf("earlier snapshot mutated: quantity = %d, want 1", before.Lines[0].Quantity)
	}

	after, err := store.GetOrder(order.OrderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if after.Lines[0].Quantity != 5 {
		t.Fatalf("update not visible in fresh fetch: quantity = %d, want 5", after.Lines[0].Quantity)
	}
}

func TestListOrdersStatusFilter(t *testing.T) {
	store := seededStore(t)
	open := store.CreateOrder(models.OrderCreate{RegistrationNumber: "305333444"})
	toClose := store.CreateOrder(models.OrderCreate{RegistrationNumber: "305333444"})
	if _, err := store.CloseOrder(toClose.OrderID); err != nil {
		t.Fatalf("CloseOrder: %v", err)
	}

	openOnly := store.ListOrders("305333444", models.OrderStatusOpen)
	if len(openOnly) != 1 || openOnly[0].OrderID != open.OrderID {
		t.Fatalf("open filter returned %+v", openOnly)
	}

	closedOnly := store.ListOrders("305333444", models.OrderStatusClosedPaid)
	if len(closedOnly) != 1 || closedOnly[0].OrderID != toClose.OrderID {
		t.Fatalf("closed filter returned %+v", closedOnly)
	}

	all := store.ListOrders("305333444", "")
	if len(all) != 2 {
		t.Fatalf("unfiltered listing returned %d orders, want 2", len(all))
	}
}
