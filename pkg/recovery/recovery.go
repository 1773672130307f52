package recovery

// UseDefault runs validate against value and returns its result, falling
// back to def on any failure. It never returns an error: the combinator's
// contract is "always produce a usable value", so error classes are not
// distinguished here — callers that care whether a failure was retryable
// should reach for the retrier instead.
func UseDefault[T any](value any, def T, validate func(any) (T, error)) T {
	out, err := validate(value)
	if err != nil {
		return def
	}
	return out
}

// Sanitize returns a new map containing only the allow-listed keys present
// on the input. Used to strip unexpected fields from a payload before
// further processing; the input map is never mutated.
func Sanitize(obj map[string]any, validKeys []string) map[string]any {
	out := make(map[string]any, len(validKeys))
	for _, key := range validKeys {
		if v, ok := obj[key]; ok {
			out[key] = v
		}
	}
	return out
}
