package recovery

// Apply runs value through a chain of transformations in order. Useful for
// composing recovery steps, e.g. Sanitize followed by field defaults.
func Apply[T any](value T, transforms ...func(T) T) T {
	out := value
	for _, transform := range transforms {
		out = transform(out)
	}
	return out
}

// Compose builds a reusable pipeline from a chain of transformations.
// Prefer this over repeated Apply calls when the same chain runs on every
// payload of a kind.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
