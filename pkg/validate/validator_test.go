package validate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avreline/boundary/pkg/validate"
)

// newTestValidator returns a validator whose log output is captured in the
// returned buffer.
func newTestValidator() (*validate.Validator, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return validate.New(validate.WithLogger(log)), &buf
}

func TestOrDefaultValidators(t *testing.T) {
	t.Parallel()

	t.Run("valid values pass through", func(t *testing.T) {
		t.Parallel()
		v, buf := newTestValidator()

		assert.Equal(t, validate.TierPro, v.UserTierOrDefault("pro"))
		assert.Equal(t, validate.UserSuspended, v.UserStatusOrDefault("suspended"))
		assert.Equal(t, validate.PostPublished, v.PostStatusOrDefault("published"))
		assert.Empty(t, buf.String(), "no warning for valid values")
	})

	t.Run("missing tier substitutes free with a warning", func(t *testing.T) {
		t.Parallel()
		v, buf := newTestValidator()

		assert.Equal(t, validate.TierFree, v.UserTierOrDefault(nil))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "substituting default user tier")
	})

	t.Run("unknown user status substitutes inactive", func(t *testing.T) {
		t.Parallel()
		v, buf := newTestValidator()

		assert.Equal(t, validate.UserInactive, v.UserStatusOrDefault("banned"))
		assert.Contains(t, buf.String(), "substituting default user status")
	})

	t.Run("non-string post status substitutes draft", func(t *testing.T) {
		t.Parallel()
		v, buf := newTestValidator()

		assert.Equal(t, validate.PostDraft, v.PostStatusOrDefault(7))
		assert.Contains(t, buf.String(), "substituting default post status")
	})
}
