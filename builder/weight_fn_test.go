// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-edit/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.UniformWeightFn(5, 4) }, "max < min")
	require.NotPanics(t, func() { builder.UniformWeightFn(-3, -3) })
	require.NotPanics(t, func() { builder.ConstantWeightFn(-7) })
}

// TestWeightFnValues checks ranges and the nil-RNG fallbacks.
func TestWeightFnValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(-7), builder.ConstantWeightFn(-7)(nil))
	require.Equal(t, int64(-2), builder.UniformWeightFn(-2, 9)(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(1))
	fn := builder.UniformWeightFn(-2, 3)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(-2))
		require.LessOrEqual(t, w, int64(3))
		seen[w] = true
	}
	require.Len(t, seen, 6, "every value in the closed range appears")
}
