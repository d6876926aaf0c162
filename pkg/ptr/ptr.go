// Package ptr has a helper for taking the address of a value in place.
package ptr

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
