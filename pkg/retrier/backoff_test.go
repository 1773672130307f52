package retrier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avreline/boundary/pkg/retrier"
)

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	t.Run("doubles without jitter", func(t *testing.T) {
		t.Parallel()

		b := retrier.ExponentialBackoff{Initial: time.Second, Max: time.Minute, Multiplier: 2}
		assert.Equal(t, time.Second, b.NextDelay(1))
		assert.Equal(t, 2*time.Second, b.NextDelay(2))
		assert.Equal(t, 4*time.Second, b.NextDelay(3))
		assert.Equal(t, 8*time.Second, b.NextDelay(4))
	})

	t.Run("caps at max", func(t *testing.T) {
		t.Parallel()

		b := retrier.ExponentialBackoff{Initial: time.Second, Max: 5 * time.Second, Multiplier: 2}
		assert.Equal(t, 5*time.Second, b.NextDelay(10))
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		t.Parallel()

		b := retrier.ExponentialBackoff{Initial: time.Second, Max: time.Minute, Multiplier: 2, Jitter: 0.1}
		for i := 0; i < 100; i++ {
			d := b.NextDelay(2)
			assert.GreaterOrEqual(t, d, 1800*time.Millisecond)
			assert.LessOrEqual(t, d, 2200*time.Millisecond)
		}
	})

	t.Run("zero attempt yields no delay", func(t *testing.T) {
		t.Parallel()

		b := retrier.ExponentialBackoff{}
		assert.Equal(t, time.Duration(0), b.NextDelay(0))
		assert.Equal(t, time.Duration(0), b.NextDelay(-1))
	})

	t.Run("zero value applies defaults", func(t *testing.T) {
		t.Parallel()

		b := retrier.ExponentialBackoff{}
		assert.Equal(t, time.Second, b.NextDelay(1))
		assert.Equal(t, 2*time.Second, b.NextDelay(2))
	})
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()

	b := retrier.LinearBackoff{Step: time.Second, Max: 3 * time.Second}
	assert.Equal(t, time.Second, b.NextDelay(1))
	assert.Equal(t, 2*time.Second, b.NextDelay(2))
	assert.Equal(t, 3*time.Second, b.NextDelay(3))
	assert.Equal(t, 3*time.Second, b.NextDelay(9))
	assert.Equal(t, time.Duration(0), b.NextDelay(0))
}

func TestFixedBackoff(t *testing.T) {
	t.Parallel()

	b := retrier.FixedBackoff{Delay: 250 * time.Millisecond}
	assert.Equal(t, 250*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 250*time.Millisecond, b.NextDelay(7))
	assert.Equal(t, time.Duration(0), b.NextDelay(0))
}
