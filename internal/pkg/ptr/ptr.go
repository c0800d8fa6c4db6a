package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for a blank string so optional text is stored as NULL.
func NonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to value or the zero value.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
