package validate

import "encoding/json"

// asObject asserts that a raw decoded payload is a JSON object.
func asObject(entity string, v any) (map[string]any, *Error) {
	if v == nil {
		return nil, newShapeError(entity, v)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, newShapeError(entity, v)
	}
	return obj, nil
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// requireID checks an identifier field: present and either a non-empty
// string or a non-zero number.
func requireID(entity, field string, obj map[string]any) *Error {
	v, ok := obj[field]
	if !ok || v == nil {
		return newMissingFieldError(entity+"."+field, "string or number", v)
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return newMissingFieldError(entity+"."+field, "non-empty string", v)
		}
		return nil
	}
	if n, ok := asNumber(v); ok {
		if n == 0 {
			return newMissingFieldError(entity+"."+field, "non-zero number", v)
		}
		return nil
	}
	return newMissingFieldError(entity+"."+field, "string or number", v)
}

// requireRef checks a reference field that legally may be zero, e.g.
// subscription.user_id. Presence and type only, never truthiness.
func requireRef(entity, field string, obj map[string]any) *Error {
	v, ok := obj[field]
	if !ok || v == nil {
		return newMissingFieldError(entity+"."+field, "string or number", v)
	}
	if _, ok := v.(string); ok {
		return nil
	}
	if _, ok := asNumber(v); ok {
		return nil
	}
	return newMissingFieldError(entity+"."+field, "string or number", v)
}

// requireText checks a required non-empty string field.
func requireText(entity, field string, obj map[string]any) *Error {
	v, ok := obj[field]
	if !ok || v == nil {
		return newMissingFieldError(entity+"."+field, "non-empty string", v)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return newMissingFieldError(entity+"."+field, "non-empty string", v)
	}
	return nil
}

// requireString checks a required string field where the empty string is a
// legal value, e.g. post.content.
func requireString(entity, field string, obj map[string]any) *Error {
	v, ok := obj[field]
	if !ok || v == nil {
		return newMissingFieldError(entity+"."+field, "string", v)
	}
	if _, ok := v.(string); !ok {
		return newMissingFieldError(entity+"."+field, "string", v)
	}
	return nil
}

// requireNumber checks a required numeric field. Zero is a legal value.
func requireNumber(entity, field string, obj map[string]any) *Error {
	v, ok := obj[field]
	if !ok || v == nil {
		return newMissingFieldError(entity+"."+field, "number", v)
	}
	if _, ok := asNumber(v); !ok {
		return newMissingFieldError(entity+"."+field, "number", v)
	}
	return nil
}
