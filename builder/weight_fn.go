// SPDX-License-Identifier: MIT
// Package: lvlath-edit/builder
//
// weight_fn.go - edge weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn is set.
const DefaultEdgeWeight int64 = 1

// WeightFn draws one edge weight. rng may be nil for deterministic builds.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from the closed range [min, max]. Negative
// bounds are allowed. Without an RNG it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
