package recovery_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avreline/boundary/pkg/recovery"
)

func TestCoerceString(t *testing.T) {
	t.Parallel()

	t.Run("convertible values", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			in   any
			want string
		}{
			{"hello", "hello"},
			{true, "true"},
			{float64(12.5), "12.5"},
			{42, "42"},
			{int64(7), "7"},
			{json.Number("99"), "99"},
		}
		for _, tc := range cases {
			got, ok := recovery.CoerceString(tc.in)
			assert.True(t, ok, "should coerce %v", tc.in)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("inconvertible values", func(t *testing.T) {
		t.Parallel()

		for _, in := range []any{nil, map[string]any{}, []any{1}} {
			_, ok := recovery.CoerceString(in)
			assert.False(t, ok, "should not coerce %v", in)
		}
	})
}

func TestCoerceNumber(t *testing.T) {
	t.Parallel()

	t.Run("convertible values", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			in   any
			want float64
		}{
			{float64(1.5), 1.5},
			{42, 42},
			{"3.14", 3.14},
			{"500", 500},
			{true, 1},
			{false, 0},
			{json.Number("7"), 7},
		}
		for _, tc := range cases {
			got, ok := recovery.CoerceNumber(tc.in)
			assert.True(t, ok, "should coerce %v", tc.in)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("inconvertible values", func(t *testing.T) {
		t.Parallel()

		for _, in := range []any{nil, "not a number", map[string]any{}} {
			_, ok := recovery.CoerceNumber(in)
			assert.False(t, ok, "should not coerce %v", in)
		}
	})
}

func TestCoerceBool(t *testing.T) {
	t.Parallel()

	t.Run("convertible values", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			in   any
			want bool
		}{
			{true, true},
			{"true", true},
			{"0", false},
			{float64(1), true},
			{float64(0), false},
			{int64(5), true},
		}
		for _, tc := range cases {
			got, ok := recovery.CoerceBool(tc.in)
			assert.True(t, ok, "should coerce %v", tc.in)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("inconvertible values", func(t *testing.T) {
		t.Parallel()

		for _, in := range []any{nil, "maybe", []any{}} {
			_, ok := recovery.CoerceBool(in)
			assert.False(t, ok, "should not coerce %v", in)
		}
	})
}
