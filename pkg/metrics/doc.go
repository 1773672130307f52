// Package metrics provides a Prometheus-backed telemetry sink for
// validation failures, pluggable into errmsg.Handler as its Tracker.
package metrics
