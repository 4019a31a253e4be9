package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/titaska/bitukai-client/internal/models"
)

// ListBusinesses fetches every registered business.
func (c *Client) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	var businesses []models.Business
	if err := c.do(ctx, http.MethodGet, "/business", nil, nil, &businesses); err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// GetBusiness resolves a tenant by its registration number.
func (c *Client) GetBusiness(ctx context.Context, registrationNumber string) (*models.Business, error) {
	var business models.Business
	path := "/business/" + url.PathEscape(registrationNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &business); err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", registrationNumber, err)
	}
	return &business, nil
}
