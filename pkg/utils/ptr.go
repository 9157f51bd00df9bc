package utils

// Ptr returns a pointer to v. Handy where an optional value is modeled as a
// pointer, such as the database part of a qualified table name.
func Ptr[T any](v T) *T {
	return &v
}
