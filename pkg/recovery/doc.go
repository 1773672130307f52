// Package recovery provides combinators that convert validation failures
// into usable fallback values instead of halting the caller.
//
// Three independent strategies are offered, composable with the validators
// in pkg/validate:
//
//   - UseDefault: run a validator, substitute a default on failure.
//   - CoerceString/CoerceNumber/CoerceBool: best-effort primitive
//     conversion with an ok-bool, never panicking.
//   - Sanitize: strip a payload down to an allow-list of keys.
//
// Apply and Compose chain transformations into reusable pipelines.
package recovery
