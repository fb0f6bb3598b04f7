package ptr

func Of[T any](v T) *T {
	return &v
}

// NonZero returns nil for the zero value so optional columns stay NULL.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
