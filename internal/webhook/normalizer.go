package webhook

import (
	"strings"
)

// Placeholder values substituted for absent display fields so downstream
// message templates never render an empty slot.
const (
	placeholderName  = "Unknown"
	placeholderField = "—"
)

// Record is the canonical shape extracted from a relayed row-insert payload.
// Phone is left empty when absent (the SMS channel gates on it); every other
// field carries a placeholder instead.
type Record struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
	Package string
	Date    string
	Time    string
}

// Normalize extracts a canonical Record from a loosely-shaped webhook payload.
// The upstream event producer does not guarantee a fixed shape: the row data
// may be nested under a "record" key, a "new" key, or be the payload itself.
// Returns false when the located record lacks a usable contact email, since
// every notification channel depends on it.
func Normalize(payload map[string]any) (Record, bool) {
	row := locateRow(payload)

	email := stringField(row, "email")
	if email == "" {
		return Record{}, false
	}

	return Record{
		Name:    fieldOr(row, "name", placeholderName),
		Email:   email,
		Phone:   stringField(row, "phone"),
		Vehicle: fieldOr(row, "vehicle", placeholderField),
		Package: fieldOr(row, "package", placeholderField),
		Date:    fieldOr(row, "date", placeholderField),
		Time:    fieldOr(row, "time", placeholderField),
	}, true
}

// locateRow resolves the wrapper shape: "record" first, then "new", then the
// payload itself.
func locateRow(payload map[string]any) map[string]any {
	for _, key := range []string{"record", "new"} {
		if nested, ok := payload[key].(map[string]any); ok {
			return nested
		}
	}
	return payload
}

func stringField(row map[string]any, key string) string {
	value, ok := row[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func fieldOr(row map[string]any, key, fallback string) string {
	if value := stringField(row, key); value != "" {
		return value
	}
	return fallback
}
