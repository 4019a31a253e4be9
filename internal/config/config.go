package config

import (
	"time"

	"github.com/titaska/bitukai-client/pkg/utils"
)

// Config carries the client-side settings. It is loaded once at startup and
// passed explicitly to every component that needs it; nothing reads the
// environment after Load returns.
type Config struct {
	// APIBase is the backend base URL, e.g. "http://localhost:5089/api".
	APIBase string
	// HTTPTimeout bounds every single request issued by the API client.
	HTTPTimeout time.Duration
	// RegistrationNumber scopes all tenant-bound calls. Set at login time,
	// read-only afterwards.
	RegistrationNumber string
}

// Load reads client configuration from environment variables with fallbacks.
func Load() Config {
	timeout := 15 * time.Second
	if raw := utils.Getenv("BITUKAI_HTTP_TIMEOUT", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Config{
		APIBase:            utils.Getenv("BITUKAI_API_BASE", "http://localhost:5089/api"),
		HTTPTimeout:        timeout,
		RegistrationNumber: utils.Getenv("BITUKAI_REGISTRATION_NUMBER", ""),
	}
}

// WithTenant returns a copy of the config scoped to the given business
// registration number.
func (c Config) WithTenant(registrationNumber string) Config {
	c.RegistrationNumber = registrationNumber
	return c
}
