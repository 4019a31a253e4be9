package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/titaska/bitukai-client/internal/models"
)

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Data       []models.Product   `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

// ListProducts fetches a page of the product/service catalog.
func (c *Client) ListProducts(ctx context.Context, params models.ProductListParams) (*ProductPage, error) {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	query := url.Values{}
	if params.RegistrationNumber != "" {
		query.Set("registrationNumber", params.RegistrationNumber)
	}
	if params.Type != "" {
		query.Set("type", string(params.Type))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("limit", strconv.Itoa(params.Limit))

	var page ProductPage
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if page.Data == nil {
		page.Data = []models.Product{}
	}
	return &page, nil
}

// GetProduct fetches a single catalog entry.
func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil, nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return &product, nil
}

// CreateProduct adds a catalog entry.
func (c *Client) CreateProduct(ctx context.Context, payload models.ProductCreate) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/products", nil, payload, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces a catalog entry's mutable fields.
func (c *Client) UpdateProduct(ctx context.Context, productID string, payload models.ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(productID), nil, payload, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return &product, nil
}

// DeleteProduct removes a catalog entry.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(productID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	return nil
}

// ListProductStaff fetches the staff eligibility links for a service.
func (c *Client) ListProductStaff(ctx context.Context, productID string) ([]models.ProductStaff, error) {
	var links []models.ProductStaff
	path := "/products/" + url.PathEscape(productID) + "/staff"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &links); err != nil {
		return nil, fmt.Errorf("failed to list staff links for product %s: %w", productID, err)
	}
	return links, nil
}

// LinkProductStaff makes a staff member eligible to perform a service.
func (c *Client) LinkProductStaff(ctx context.Context, productID string, payload models.ProductStaffLink) (*models.ProductStaff, error) {
	var link models.ProductStaff
	path := "/products/" + url.PathEscape(productID) + "/staff"
	if err := c.do(ctx, http.MethodPost, path, nil, payload, &link); err != nil {
		return nil, fmt.Errorf("failed to link staff to product %s: %w", productID, err)
	}
	return &link, nil
}

// UpdateProductStaff changes an existing eligibility link.
func (c *Client) UpdateProductStaff(ctx context.Context, productID, staffID string, payload models.ProductStaffLink) (*models.ProductStaff, error) {
	var link models.ProductStaff
	path := "/products/" + url.PathEscape(productID) + "/staff/" + url.PathEscape(staffID)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, &link); err != nil {
		return nil, fmt.Errorf("failed to update staff link for product %s: %w", productID, err)
	}
	return &link, nil
}

// UnlinkProductStaff removes a staff member's eligibility for a service.
func (c *Client) UnlinkProductStaff(ctx context.Context, productID, staffID string) error {
	path := "/products/" + url.PathEscape(productID) + "/staff/" + url.PathEscape(staffID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to unlink staff from product %s: %w", productID, err)
	}
	return nil
}
