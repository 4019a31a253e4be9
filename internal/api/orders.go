package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/titaska/bitukai-client/internal/models"
)

// CreateOrder opens a new order for a tenant.
func (c *Client) CreateOrder(ctx context.Context, payload models.OrderCreate) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, payload, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// GetOrder fetches an order with its lines.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil, &order); err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrders fetches every order, optionally scoped to a tenant and a
// status, e.g. only open orders.
func (c *Client) ListOrders(ctx context.Context, registrationNumber, status string) ([]models.Order, error) {
	query := url.Values{}
	if registrationNumber != "" {
		query.Set("registrationNumber", registrationNumber)
	}
	if status != "" {
		query.Set("status", status)
	}

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// AddOrderLine appends a line to an order.
func (c *Client) AddOrderLine(ctx context.Context, orderID string, payload models.OrderLineCreate) (*models.OrderLine, error) {
	var line models.OrderLine
	path := "/orders/" + url.PathEscape(orderID) + "/lines"
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &line); err != nil {
		return nil, fmt.Errorf("failed to add line to order %s: %w", orderID, err)
	}
	return &line, nil
}

// UpdateOrderLine changes the quantity of an existing line.
func (c *Client) UpdateOrderLine(ctx context.Context, orderID, lineID string, payload models.OrderLineUpdate) error {
	path := "/orders/" + url.PathEscape(orderID) + "/lines/" + url.PathEscape(lineID)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, nil); err != nil {
		return fmt.Errorf("failed to update line %s of order %s: %w", lineID, orderID, err)
	}
	return nil
}

// DeleteOrderLine removes a line from an order.
func (c *Client) DeleteOrderLine(ctx context.Context, orderID, lineID string) error {
	path := "/orders/" + url.PathEscape(orderID) + "/lines/" + url.PathEscape(lineID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete line %s of order %s: %w", lineID, orderID, err)
	}
	return nil
}

// CalculateOrder asks the backend to recompute the order's monetary totals.
func (c *Client) CalculateOrder(ctx context.Context, orderID string) error {
	path := "/orders/" + url.PathEscape(orderID) + "/calculate"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to calculate order %s: %w", orderID, err)
	}
	return nil
}

// CloseOrder finalizes an order as paid.
func (c *Client) CloseOrder(ctx context.Context, orderID string) error {
	path := "/orders/" + url.PathEscape(orderID) + "/close"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to close order %s: %w", orderID, err)
	}
	return nil
}
