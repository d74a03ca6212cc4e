package validator

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	// schemeRegex matches an explicit URI scheme prefix
	schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

	// emailRegex is a pragmatic email format check
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// hexColorRegex matches 3- or 6-digit hex colors with leading #
	hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

	// allowedSchemes lists permitted URL schemes after normalization
	allowedSchemes = map[string]bool{
		"http":  true,
		"https": true,
	}
)

// ValidationError represents a validation failure on a specific field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NormalizeURL prepends https:// when the raw value has no scheme and
// lowercases the scheme and host. The result of a successful ValidateURL
// round-trips through this unchanged.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return rawURL
	}

	if !schemeRegex.MatchString(rawURL) {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL // Return original if parsing fails
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	return parsed.String()
}

// ValidateURL checks that a raw value normalizes to a well-formed absolute
// http(s) URL.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	normalized := NormalizeURL(rawURL)

	parsed, err := url.Parse(normalized)
	if err != nil {
		return &ValidationError{Field: "url", Message: "Invalid URL structure"}
	}

	if !allowedSchemes[parsed.Scheme] {
		return &ValidationError{Field: "url", Message: "Unsupported URL scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must contain a host"}
	}

	if len(normalized) > 2048 {
		return &ValidationError{Field: "url", Message: "URL too long (max 2048 characters)"}
	}

	return nil
}

// ValidateTitle checks that a title or name is non-empty after trimming
func ValidateTitle(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: field + " cannot be empty"}
	}
	if len(value) > 200 {
		return &ValidationError{Field: field, Message: field + " too long (max 200 characters)"}
	}
	return nil
}

// ValidateDateWindow checks that when both bounds of an active-date window
// are present, the start does not fall after the end.
func ValidateDateWindow(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if start.After(*end) {
		return &ValidationError{Field: "end_date", Message: "end_date must not precede start_date"}
	}
	return nil
}

// ValidateEmail checks email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Invalid email address"}
	}
	return nil
}

// ValidateHexColor checks a profile accent color like #6366f1
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return &ValidationError{Field: "accent_color", Message: "Invalid hex color"}
	}
	return nil
}
