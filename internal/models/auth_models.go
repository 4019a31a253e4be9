package models

// LoginRequest is the staff login payload. The password travels under the
// backend's historical "PasswordHash" key even though it is the plain
// password; hashing happens server-side.
type LoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"PasswordHash"`
}

// LoginResponse is the authenticated staff profile plus the session token.
type LoginResponse struct {
	Staff
	AccessToken string `json:"accessToken,omitempty"`
}
