package models

import "strings"

// Staff status values as the backend encodes them.
const (
	StaffStatusActive   = 1
	StaffStatusInactive = 2
)

// Staff role tiers.
const (
	StaffRoleBase       = 1
	StaffRoleOwner      = 2
	StaffRoleSuperadmin = 3
)

// Staff represents an employee of a business.
type Staff struct {
	StaffID            string `json:"staffId"`
	RegistrationNumber string `json:"registrationNumber"`
	Status             int    `json:"status"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
	Role               int    `json:"role"`
	HireDate           string `json:"hireDate"` // "YYYY-MM-DD"
}

// StaffCreate is the payload for creating a staff member.
type StaffCreate struct {
	RegistrationNumber string `json:"registrationNumber"`
	Status             int    `json:"status"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
	Role               int    `json:"role"`
	HireDate           string `json:"hireDate"`
	Password           string `json:"passwordHash,omitempty"`
}

// StaffUpdate is the payload for updating a staff member.
type StaffUpdate struct {
	Status      int    `json:"status"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	HireDate    string `json:"hireDate"`
}

// Normalize trims any time component the backend appends to the hire date,
// so internal logic always sees plain "YYYY-MM-DD".
func (s *Staff) Normalize() {
	if i := strings.IndexByte(s.HireDate, 'T'); i >= 0 {
		s.HireDate = s.HireDate[:i]
	}
}

// FullName joins first and last name for display.
func (s *Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// IsActive reports whether the staff member is currently employed.
func (s *Staff) IsActive() bool {
	return s.Status == StaffStatusActive
}

// IsValidStaffRole reports whether role is a known role tier.
func IsValidStaffRole(role int) bool {
	return role == StaffRoleBase || role == StaffRoleOwner || role == StaffRoleSuperadmin
}

// IsValidStaffStatus reports whether status is a known employment status.
func IsValidStaffStatus(status int) bool {
	return status == StaffStatusActive || status == StaffStatusInactive
}
