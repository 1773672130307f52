package recovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avreline/boundary/pkg/recovery"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("runs transforms in order", func(t *testing.T) {
		t.Parallel()

		out := recovery.Apply(map[string]any{"id": "p1", "junk": 1, "amount": nil},
			func(m map[string]any) map[string]any {
				return recovery.Sanitize(m, []string{"id", "amount"})
			},
			func(m map[string]any) map[string]any {
				if m["amount"] == nil {
					m["amount"] = float64(0)
				}
				return m
			},
		)

		assert.Equal(t, map[string]any{"id": "p1", "amount": float64(0)}, out)
	})

	t.Run("no transforms returns the value unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", recovery.Apply("x"))
	})
}

func TestCompose(t *testing.T) {
	t.Parallel()

	strip := recovery.Compose(
		func(m map[string]any) map[string]any { return recovery.Sanitize(m, []string{"id"}) },
	)

	assert.Equal(t, map[string]any{"id": "a"}, strip(map[string]any{"id": "a", "x": 1}))
	assert.Equal(t, map[string]any{"id": "b"}, strip(map[string]any{"id": "b", "y": 2}))
}
