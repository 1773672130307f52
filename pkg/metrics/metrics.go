package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/avreline/boundary/pkg/validate"
)

// Recorder counts validation failures by kind and field. It implements
// errmsg.Tracker; counter increments are lock-free and never block the
// validation path.
type Recorder struct {
	failures *prometheus.CounterVec
}

// NewRecorder registers the validation failure counter on reg and returns
// the recorder. Pass prometheus.DefaultRegisterer for the global registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	return &Recorder{
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "boundary_validation_errors_total",
				Help: "Total number of validation failures by kind and field",
			},
			[]string{"kind", "field"},
		),
	}
}

// Track records one validation failure.
func (r *Recorder) Track(_ context.Context, verr *validate.Error) {
	r.failures.WithLabelValues(string(verr.Kind), verr.Field).Inc()
}
