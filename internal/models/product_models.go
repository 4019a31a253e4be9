package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProductType is the canonical tagged representation of a catalog entry kind.
// The backend is not consistent about how it encodes this field: depending on
// the endpoint it arrives as a numeric code (0/1) or as one of several string
// spellings ("ITEM", "Goods", "SERVICE", "Service"). Normalization happens
// once, in UnmarshalJSON, so nothing downstream branches on transport shape.
type ProductType string

const (
	ProductTypeItem    ProductType = "ITEM"
	ProductTypeService ProductType = "SERVICE"
)

// UnmarshalJSON accepts every transport shape the backend has been seen to
// produce and folds it into the canonical value.
func (t *ProductType) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		switch strings.ToUpper(strings.TrimSpace(asString)) {
		case "ITEM", "GOODS":
			*t = ProductTypeItem
			return nil
		case "SERVICE":
			*t = ProductTypeService
			return nil
		case "":
			*t = ""
			return nil
		default:
			return fmt.Errorf("unknown product type %q", asString)
		}
	}

	var asNumber int
	if err := json.Unmarshal(data, &asNumber); err == nil {
		switch asNumber {
		case 0:
			*t = ProductTypeItem
			return nil
		case 1:
			*t = ProductTypeService
			return nil
		default:
			return fmt.Errorf("unknown product type code %d", asNumber)
		}
	}

	return fmt.Errorf("product type is neither string nor number: %s", string(data))
}

// Product is a catalog entry: a sellable item for catering businesses or a
// bookable service for beauty businesses. DurationMinutes is set only for
// services and drives the appointment slot granularity.
type Product struct {
	ProductID          string      `json:"productId"`
	RegistrationNumber string      `json:"registrationNumber"`
	ProductType        ProductType `json:"productType"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	BasePrice          float64     `json:"basePrice"`
	DurationMinutes    *int        `json:"durationMinutes"`
	TaxCode            string      `json:"taxCode"`
	Status             bool        `json:"status"`
}

// productWire mirrors Product but tolerates the type arriving under either
// the "productType" or the "type" key.
type productWire struct {
	ProductID          string       `json:"productId"`
	RegistrationNumber string       `json:"registrationNumber"`
	ProductType        *ProductType `json:"productType"`
	Type               *ProductType `json:"type"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	BasePrice          float64      `json:"basePrice"`
	DurationMinutes    *int         `json:"durationMinutes"`
	TaxCode            string       `json:"taxCode"`
	Status             bool         `json:"status"`
}

// UnmarshalJSON normalizes the two key spellings the backend uses for the
// product type field.
func (p *Product) UnmarshalJSON(data []byte) error {
	var wire productWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.ProductID = wire.ProductID
	p.RegistrationNumber = wire.RegistrationNumber
	p.Name = wire.Name
	p.Description = wire.Description
	p.BasePrice = wire.BasePrice
	p.DurationMinutes = wire.DurationMinutes
	p.TaxCode = wire.TaxCode
	p.Status = wire.Status

	switch {
	case wire.ProductType != nil:
		p.ProductType = *wire.ProductType
	case wire.Type != nil:
		p.ProductType = *wire.Type
	}
	return nil
}

// IsBookable reports whether the product can back an appointment.
func (p *Product) IsBookable() bool {
	return p.ProductType == ProductTypeService && p.DurationMinutes != nil && *p.DurationMinutes > 0
}

// ProductCreate is the payload for creating a catalog entry.
type ProductCreate struct {
	RegistrationNumber string      `json:"registrationNumber"`
	Type               ProductType `json:"type"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	BasePrice          float64     `json:"basePrice"`
	DurationMinutes    *int        `json:"durationMinutes"`
	TaxCode            string      `json:"taxCode"`
	Status             bool        `json:"status"`
}

// ProductUpdate is the payload for updating a catalog entry.
type ProductUpdate struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"basePrice"`
	DurationMinutes *int    `json:"durationMinutes"`
	TaxCode         string  `json:"taxCode"`
	Status          bool    `json:"status"`
}

// ProductListParams are the query parameters for the paged catalog listing.
type ProductListParams struct {
	RegistrationNumber string
	Type               ProductType
	Search             string
	Page               int
	Limit              int
}

// Pagination is the paging metadata returned with catalog listings.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductStaff links a staff member to a service they are eligible to perform.
type ProductStaff struct {
	ProductStaffID string  `json:"productStaffId"`
	ProductID      string  `json:"productId"`
	StaffID        string  `json:"staffId"`
	Status         bool    `json:"status"`
	ValidFrom      *string `json:"validFrom"`
	ValidTo        *string `json:"validTo"`
}

// ProductStaffLink is the payload for creating or updating an eligibility link.
type ProductStaffLink struct {
	StaffID   string  `json:"staffId,omitempty"`
	Status    bool    `json:"status"`
	ValidFrom *string `json:"validFrom"`
	ValidTo   *string `json:"validTo"`
}
