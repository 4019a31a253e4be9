package utils

import "os"

// Getenv reads an environment variable, substituting fallback when the
// variable is unset or empty.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
