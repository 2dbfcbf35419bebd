// Package forms maps persisted entities to and from the string-based
// representations edited by the UI. Conversion is pure: blank fields take
// their documented defaults, while malformed non-blank input is rejected
// with a field-scoped ValidationError instead of being silently defaulted.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError reports one invalid form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const dateLayout = "2006-01-02"

// today returns the current date in ISO format (YYYY-MM-DD).
func today() string {
	return time.Now().Format(dateLayout)
}

// parseIntField parses an integer form field. Blank input yields fallback.
func parseIntField(field, raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a whole number"}
	}
	return n, nil
}

// parseFloatField parses a decimal form field. Blank input yields fallback.
func parseFloatField(field, raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "must be a number"}
	}
	return f, nil
}

// parseDateField parses an ISO date form field. Blank input yields today.
func parseDateField(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return today(), nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", &ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return raw, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
