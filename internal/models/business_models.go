package models

// BusinessType distinguishes the two supported business profiles.
type BusinessType string

const (
	BusinessTypeCatering BusinessType = "CATERING"
	BusinessTypeBeauty   BusinessType = "BEAUTY"
)

// Business is the owning tenant entity. The registration number is the
// identifier that scopes staff, products, reservations and orders.
type Business struct {
	RegistrationNumber string       `json:"registrationNumber"`
	VatCode            string       `json:"vatCode"`
	Name               string       `json:"name"`
	Location           string       `json:"location"`
	Phone              string       `json:"phone"`
	Email              string       `json:"email"`
	CurrencyCode       string       `json:"currencyCode"`
	Type               BusinessType `json:"type"`
}

// IsValidBusinessType reports whether t is a known business type.
func IsValidBusinessType(t BusinessType) bool {
	return t == BusinessTypeCatering || t == BusinessTypeBeauty
}
