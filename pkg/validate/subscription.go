package validate

import "maps"

// Subscription validates a raw subscription payload: an id, a user_id (zero
// is a legal value and must not be treated as absent), a plan_id, and a
// status within the subscription vocabulary. Returns a shallow copy with
// the canonical status; the input is never mutated.
func (v *Validator) Subscription(data any) (map[string]any, error) {
	obj, shapeErr := asObject("subscription", data)
	if shapeErr != nil {
		return nil, shapeErr
	}
	if err := requireID("subscription", "id", obj); err != nil {
		return nil, err
	}
	if err := requireRef("subscription", "user_id", obj); err != nil {
		return nil, err
	}
	if err := requireID("subscription", "plan_id", obj); err != nil {
		return nil, err
	}
	status, err := SubscriptionStatusValue(obj["status"])
	if err != nil {
		verr, _ := AsValidationError(err)
		return nil, verr.WithField("subscription.status")
	}
	out := maps.Clone(obj)
	out["status"] = string(status)
	return out, nil
}

// SafeSubscription never fails: invalid payloads are logged and dropped as nil.
func (v *Validator) SafeSubscription(data any) map[string]any {
	sub, err := v.Subscription(data)
	if err != nil {
		v.logInvalid("subscription", err)
		return nil
	}
	return sub
}

// Subscriptions validates a batch of subscriptions all-or-nothing.
func (v *Validator) Subscriptions(data any) ([]map[string]any, error) {
	return v.strictBatch("subscriptions", data, v.Subscription)
}

// SafeSubscriptions keeps the valid subset of a batch, in order, and never fails.
func (v *Validator) SafeSubscriptions(data any) []map[string]any {
	return v.safeBatch("subscriptions", data, v.SafeSubscription)
}
