// Package errmsg turns validation failures into user-safe messages.
//
// Format selects one of a small set of canned, non-technical phrasings by
// the error's kind; the original diagnostic is preserved as technical
// detail for logs only. Handler layers logging, telemetry (Tracker port)
// and user notification (Notifier port) on top, keeping the three concerns
// independently replaceable.
package errmsg
