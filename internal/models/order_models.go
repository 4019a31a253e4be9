package models

// Order status values.
const (
	OrderStatusOpen       = "Open"
	OrderStatusClosedPaid = "Closed"
	OrderStatusRefunded   = "Refunded"
	OrderStatusCancelled  = "Cancelled"
)

// Order is a catering order with its monetary totals and lines. Totals are
// computed server-side by the calculate endpoint; the client only mirrors
// them for display.
type Order struct {
	OrderID             string      `json:"orderId"`
	RegistrationNumber  string      `json:"registrationNumber"`
	CustomerID          *string     `json:"customerId"`
	Status              string      `json:"status"`
	CreatedAt           string      `json:"createdAt"`
	ClosedAt            *string     `json:"closedAt"`
	SubtotalAmount      *float64    `json:"subtotalAmount"`
	TaxAmount           *float64    `json:"taxAmount"`
	ServiceChargeAmount *float64    `json:"serviceChargeAmount"`
	TotalDue            *float64    `json:"totalDue"`
	Notes               *string     `json:"notes"`
	Lines               []OrderLine `json:"lines"`
}

// OrderLine is one persisted product/quantity entry within an order.
type OrderLine struct {
	OrderLineID     string  `json:"orderLineId"`
	OrderID         string  `json:"orderId"`
	ProductID       string  `json:"productId"`
	Quantity        int     `json:"quantity"`
	AssignedStaffID *string `json:"assignedStaffId"`
	AppointmentID   *string `json:"appointmentId"`
	Notes           *string `json:"notes"`
	UnitPrice       float64 `json:"unitPrice"`
	SubTotal        float64 `json:"subTotal"`
}

// OrderCreate is the payload for opening a new order.
type OrderCreate struct {
	RegistrationNumber string  `json:"registrationNumber"`
	CustomerID         *string `json:"customerId"`
}

// OrderLineCreate is the payload for adding a line to an order.
type OrderLineCreate struct {
	ProductID       string  `json:"productId"`
	Quantity        int     `json:"quantity"`
	AssignedStaffID *string `json:"assignedStaffId"`
	AppointmentID   *string `json:"appointmentId"`
	Notes           *string `json:"notes"`
	UnitPrice       float64 `json:"unitPrice"`
}

// OrderLineUpdate is the payload for changing an existing line. Only the
// quantity is mutable through this path.
type OrderLineUpdate struct {
	Quantity int `json:"quantity"`
}

// OrderItem is an in-memory cart entry during order editing. Entries carried
// over from the persisted order keep their OrderLineID; newly added entries
// have none until reconciliation creates them.
type OrderItem struct {
	ProductID   string
	Quantity    int
	OrderLineID string
	BasePrice   float64
	Notes       *string
}

// IsValidOrderStatus reports whether status is a known order status.
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusOpen, OrderStatusClosedPaid, OrderStatusRefunded, OrderStatusCancelled:
		return true
	}
	return false
}
