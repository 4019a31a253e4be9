package utils

import "testing"

func TestExtractErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"errors field wins", `{"errors":{"Date":["required"]},"title":"also present"}`, `{"Date":["required"]}`},
		{"problem title", `{"title":"One or more validation errors occurred."}`, "One or more validation errors occurred."},
		{"nested error envelope", `{"error":{"code":"NOT_FOUND","message":"no such staff"}}`, "no such staff"},
		{"plain text", "upstream timeout", "upstream timeout"},
		{"empty body", "   ", ""},
		{"json without known keys", `{"status":500}`, `{"status":500}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractErrorMessage([]byte(tc.body)); got != tc.want {
				t.Fatalf("ExtractErrorMessage(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("  \t ") {
		t.Fatal("whitespace should be empty")
	}
	if IsEmpty(" x ") {
		t.Fatal("non-blank string should not be empty")
	}
}

func TestIsValidEmail(t *testing.T) {
	for _, email := range []string{"ruta@bitukai.lt", "Greta.P@example.com"} {
		if !IsValidEmail(email) {
			t.Fatalf("%q should be valid", email)
		}
	}
	for _, email := range []string{"", "no-at-sign", "a@b", "a b@c.lt"} {
		if IsValidEmail(email) {
			t.Fatalf("%q should be invalid", email)
		}
	}
}
