package validate

import "maps"

// Payment validates a raw payment payload: an id, a numeric amount, and a
// status within the payment vocabulary. Returns a shallow copy of the
// payload with the status replaced by its canonical spelling; the input is
// never mutated, and re-validating the result yields an identical entity.
func (v *Validator) Payment(data any) (map[string]any, error) {
	obj, shapeErr := asObject("payment", data)
	if shapeErr != nil {
		return nil, shapeErr
	}
	if err := requireID("payment", "id", obj); err != nil {
		return nil, err
	}
	if err := requireNumber("payment", "amount", obj); err != nil {
		return nil, err
	}
	status, err := PaymentStatusValue(obj["status"])
	if err != nil {
		verr, _ := AsValidationError(err)
		return nil, verr.WithField("payment.status")
	}
	out := maps.Clone(obj)
	out["status"] = string(status)
	return out, nil
}

// SafePayment never fails: invalid payloads are logged and dropped as nil.
func (v *Validator) SafePayment(data any) map[string]any {
	payment, err := v.Payment(data)
	if err != nil {
		v.logInvalid("payment", err)
		return nil
	}
	return payment
}

// Payments validates a batch of payments all-or-nothing: one bad element
// invalidates the whole batch.
func (v *Validator) Payments(data any) ([]map[string]any, error) {
	return v.strictBatch("payments", data, v.Payment)
}

// SafePayments keeps the valid subset of a batch, in order, and never fails.
func (v *Validator) SafePayments(data any) []map[string]any {
	return v.safeBatch("payments", data, v.SafePayment)
}
