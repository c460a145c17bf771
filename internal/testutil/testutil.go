// Package testutil provides test utilities shared across package tests.
package testutil

// Ptr returns a pointer to v. Useful for populating optional pointer-typed
// fields in table-driven tests.
func Ptr[T any](v T) *T {
	return &v
}
