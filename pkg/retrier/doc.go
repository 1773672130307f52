// Package retrier retries an operation with backoff, scoped specifically to
// validation failures from pkg/validate.
//
// The scoping is deliberate: a validation failure may mean the upstream
// served a transient, incomplete response worth re-fetching, while any other
// error class propagates immediately, unretried.
//
//	payment, err := retrier.Do(ctx, func(ctx context.Context) (map[string]any, error) {
//	    raw, err := fetchPayment(ctx, id)
//	    if err != nil {
//	        return nil, err // not retried
//	    }
//	    return v.Payment(raw)
//	}, retrier.WithMaxAttempts(5))
//
// Concurrent Do calls are fully independent; there is no shared retry
// budget. Cancellation is observed between attempts via the context.
package retrier
