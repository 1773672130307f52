package validate

import "maps"

// User validates a raw user payload: an id and an email are required.
// Account status and plan tier go through the default-substituting
// validators, so a user with a missing or unknown status still validates and
// comes out inactive/free with a logged warning.
func (v *Validator) User(data any) (map[string]any, error) {
	obj, shapeErr := asObject("user", data)
	if shapeErr != nil {
		return nil, shapeErr
	}
	if err := requireID("user", "id", obj); err != nil {
		return nil, err
	}
	if err := requireText("user", "email", obj); err != nil {
		return nil, err
	}
	out := maps.Clone(obj)
	out["status"] = string(v.UserStatusOrDefault(obj["status"]))
	out["tier"] = string(v.UserTierOrDefault(obj["tier"]))
	return out, nil
}

// SafeUser never fails: invalid payloads are logged and dropped as nil.
func (v *Validator) SafeUser(data any) map[string]any {
	user, err := v.User(data)
	if err != nil {
		v.logInvalid("user", err)
		return nil
	}
	return user
}

// Users validates a batch of users all-or-nothing.
func (v *Validator) Users(data any) ([]map[string]any, error) {
	return v.strictBatch("users", data, v.User)
}

// SafeUsers keeps the valid subset of a batch, in order, and never fails.
func (v *Validator) SafeUsers(data any) []map[string]any {
	return v.safeBatch("users", data, v.SafeUser)
}
