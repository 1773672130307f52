// Package validate checks untyped API payloads against the known entity
// shapes (payment, subscription, user, post) and normalizes vendor status
// spellings into closed canonical vocabularies.
//
// Every failure is reported through a single tagged Error type carrying a
// Kind discriminant, the dotted field path, and the raw value received, so
// callers can branch on the failure class with errors.As instead of matching
// message text.
//
// # Strict vs. safe
//
// Each entity has two parallel surfaces on the Validator:
//
//   - Strict (Payment, Payments, ...): return the normalized entity or an
//     *Error; batch validation is all-or-nothing.
//   - Safe (SafePayment, SafePayments, ...): never fail. Invalid payloads
//     degrade to nil (single) or are skipped (batch) with a log line, so a
//     render path over safe results sees only valid entities.
//
// Validated entities are map[string]any value objects: the original payload
// shallow-copied with the status field replaced by its canonical spelling.
// Re-validating a validated entity yields a structurally identical result.
//
// # Usage
//
//	v := validate.New(validate.WithLogger(log))
//	payment, err := v.Payment(decoded)
//	if err != nil {
//	    var verr *validate.Error
//	    if errors.As(err, &verr) {
//	        // verr.Kind, verr.Field, verr.Received
//	    }
//	}
//
// All validators are pure, synchronous, and safe for concurrent use; the
// only side effect is logging on the safe and default-substituting paths.
package validate
