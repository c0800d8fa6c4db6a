// Package patch merges partial update payloads onto stored values.
package patch

// Coalesce returns *ptr when the field was sent, otherwise the stored value.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for fields that are optional in storage. A sent empty
// value is kept as is so the domain can clear the field.
func CoalescePtr[T any](ptr, fallback *T) *T {
	if ptr != nil {
		return ptr
	}
	return fallback
}
