package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/titaska/bitukai-client/internal/models"
)

// ListTaxes fetches every configured tax rate.
func (c *Client) ListTaxes(ctx context.Context) ([]models.Tax, error) {
	var taxes []models.Tax
	if err := c.do(ctx, http.MethodGet, "/tax", nil, nil, &taxes); err != nil {
		return nil, fmt.Errorf("failed to list taxes: %w", err)
	}
	return taxes, nil
}

// GetTax fetches a single tax rate.
func (c *Client) GetTax(ctx context.Context, taxID string) (*models.Tax, error) {
	var tax models.Tax
	if err := c.do(ctx, http.MethodGet, "/tax/"+url.PathEscape(taxID), nil, nil, &tax); err != nil {
		return nil, fmt.Errorf("failed to get tax %s: %w", taxID, err)
	}
	return &tax, nil
}

// CreateTax adds a tax rate. The payload is validated before any request is
// issued.
func (c *Client) CreateTax(ctx context.Context, payload models.TaxCreateUpdate) (*models.Tax, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	var tax models.Tax
	if err := c.do(ctx, http.MethodPost, "/tax", nil, payload, &tax); err != nil {
		return nil, fmt.Errorf("failed to create tax: %w", err)
	}
	return &tax, nil
}

// UpdateTax replaces a tax rate's fields.
func (c *Client) UpdateTax(ctx context.Context, taxID string, payload models.TaxCreateUpdate) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	if err := c.do(ctx, http.MethodPut, "/tax/"+url.PathEscape(taxID), nil, payload, nil); err != nil {
		return fmt.Errorf("failed to update tax %s: %w", taxID, err)
	}
	return nil
}

// DeleteTax removes a tax rate.
func (c *Client) DeleteTax(ctx context.Context, taxID string) error {
	if err := c.do(ctx, http.MethodDelete, "/tax/"+url.PathEscape(taxID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tax %s: %w", taxID, err)
	}
	return nil
}
