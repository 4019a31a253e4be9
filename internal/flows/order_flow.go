package flows

import (
	"context"
	"errors"
	"fmt"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// Errors surfaced by the order flow.
var (
	ErrEmptyCart      = errors.New("order cart is empty")
	ErrMissingOrderID = errors.New("order id must be provided")
)

// OrderAPI is the slice of the backend client the flow depends on.
type OrderAPI interface {
	CreateOrder(ctx context.Context, payload models.OrderCreate) (*models.Order, error)
	AddOrderLine(ctx context.Context, orderID string, payload models.OrderLineCreate) (*models.OrderLine, error)
	UpdateOrderLine(ctx context.Context, orderID, lineID string, payload models.OrderLineUpdate) error
	DeleteOrderLine(ctx context.Context, orderID, lineID string) error
	CalculateOrder(ctx context.Context, orderID string) error
	CloseOrder(ctx context.Context, orderID string) error
}

// OrderFlow orchestrates catering order creation, line reconciliation and
// checkout. Every multi-line operation runs strictly sequentially so server
// state transitions stay well-defined per line; the first failure aborts the
// remainder. Nothing is rolled back: already-applied changes stand, and the
// returned error names the line that failed.
type OrderFlow struct {
	api OrderAPI
}

// NewOrderFlow creates an OrderFlow.
func NewOrderFlow(api OrderAPI) *OrderFlow {
	return &OrderFlow{api: api}
}

// Create opens an order and appends one line per cart entry, in cart order.
func (f *OrderFlow) Create(ctx context.Context, registrationNumber string, cart []models.OrderItem) (string, error) {
	if utils.IsEmpty(registrationNumber) {
		return "", ErrMissingSelection
	}
	if len(cart) == 0 {
		return "", ErrEmptyCart
	}

	order, err := f.api.CreateOrder(ctx, models.OrderCreate{RegistrationNumber: registrationNumber})
	if err != nil {
		return "", err
	}

	for _, item := range cart {
		_, err := f.api.AddOrderLine(ctx, order.OrderID, models.OrderLineCreate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			UnitPrice: item.BasePrice,
		})
		if err != nil {
			return order.OrderID, fmt.Errorf("failed to add line for product %s: %w", item.ProductID, err)
		}
	}
	return order.OrderID, nil
}

// Reconcile diffs the in-memory cart against the order's original lines and
// issues the minimal set of remote mutations to converge them:
//   - delete every original line whose id is absent from the cart,
//   - update (quantity only) every cart entry that carries a line id,
//   - create every cart entry without a line id.
func (f *OrderFlow) Reconcile(ctx context.Context, orderID string, original []models.OrderLine, cart []models.OrderItem) error {
	if utils.IsEmpty(orderID) {
		return ErrMissingOrderID
	}

	cartLineIDs := make(map[string]struct{}, len(cart))
	for _, item := range cart {
		if item.OrderLineID != "" {
			cartLineIDs[item.OrderLineID] = struct{}{}
		}
	}

	for _, line := range original {
		if _, kept := cartLineIDs[line.OrderLineID]; !kept {
			if err := f.api.DeleteOrderLine(ctx, orderID, line.OrderLineID); err != nil {
				return fmt.Errorf("failed to delete line %s: %w", line.OrderLineID, err)
			}
		}
	}

	for _, item := range cart {
		if item.OrderLineID != "" {
			err := f.api.UpdateOrderLine(ctx, orderID, item.OrderLineID, models.OrderLineUpdate{Quantity: item.Quantity})
			if err != nil {
				return fmt.Errorf("failed to update line %s: %w", item.OrderLineID, err)
			}
			continue
		}

		_, err := f.api.AddOrderLine(ctx, orderID, models.OrderLineCreate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.BasePrice,
		})
		if err != nil {
			return fmt.Errorf("failed to create line for product %s: %w", item.ProductID, err)
		}
	}
	return nil
}

// Checkout recomputes the order's totals and closes it as paid.
func (f *OrderFlow) Checkout(ctx context.Context, orderID string) error {
	if utils.IsEmpty(orderID) {
		return ErrMissingOrderID
	}
	if err := f.api.CalculateOrder(ctx, orderID); err != nil {
		return err
	}
	return f.api.CloseOrder(ctx, orderID)
}
