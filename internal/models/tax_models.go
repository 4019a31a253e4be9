package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaxValidation is returned when a tax payload fails validation.
var ErrTaxValidation = errors.New("tax data validation error")

// Tax is a named tax rate applied to catalog entries.
type Tax struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Percentage  float64 `json:"percentage"`
}

// TaxCreateUpdate is the payload for creating or updating a tax rate.
type TaxCreateUpdate struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Percentage  float64 `json:"percentage"`
}

// Validate checks the payload against the 0-100 percentage bound.
func (t TaxCreateUpdate) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrTaxValidation)
	}
	if t.Percentage < 0 || t.Percentage > 100 {
		return fmt.Errorf("%w: percentage must be between 0 and 100", ErrTaxValidation)
	}
	return nil
}
