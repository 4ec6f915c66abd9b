// Package uid provides ID generators used across the service.
//
// StringID produces opaque string identifiers (UUIDs, object IDs) for tokens
// and correlation. NumberID produces sortable int64 identifiers for database
// rows.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}
