package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/avreline/boundary/pkg/metrics"
	"github.com/avreline/boundary/pkg/validate"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.Track(context.Background(), &validate.Error{Kind: validate.KindMissingField, Field: "payment.id"})
	rec.Track(context.Background(), &validate.Error{Kind: validate.KindMissingField, Field: "payment.id"})
	rec.Track(context.Background(), &validate.Error{Kind: validate.KindInvalidEnum, Field: "payment.status"})

	count, err := testutil.GatherAndCount(reg, "boundary_validation_errors_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count, "two distinct label combinations")
}
