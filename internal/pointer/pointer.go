// Package pointer helps with optional configuration values.
package pointer

// Ref returns a pointer to a copy of t
func Ref[T any](t T) *T {
	return &t
}

// Deref returns the pointed value or zero value for nil
func Deref[T any](t *T) T {
	if t == nil {
		var zero T
		return zero
	}
	return *t
}

// DerefOr returns the pointed value or fallback for nil
func DerefOr[T any](t *T, fallback T) T {
	if t == nil {
		return fallback
	}
	return *t
}
