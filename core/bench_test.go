// Package core_test provides benchmarks for the two Graph backends.
package core_test

import (
	"testing"

	"github.com/katalvlaran/lvlath-edit/core"
)

// completeGraph returns K_n on the given backend.
func completeGraph(b *testing.B, n int, backend core.Backend) core.Graph {
	b.Helper()
	g, err := core.New(n, core.WithBackend(backend))
	if err != nil {
		b.Fatal(err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_ = g.AddEdge(u, v, int64(u+v))
		}
	}

	return g
}

// BenchmarkClone measures the per-branch cost paid by the solvers.
func BenchmarkClone(b *testing.B) {
	for _, backend := range []core.Backend{core.Dense, core.Sparse} {
		g := completeGraph(b, 32, backend)
		b.Run(backend.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.Clone()
			}
		})
	}
}

// BenchmarkDegree measures degree queries, the hot path of edge ordering.
func BenchmarkDegree(b *testing.B) {
	for _, backend := range []core.Backend{core.Dense, core.Sparse} {
		g := completeGraph(b, 64, backend)
		b.Run(backend.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.Degree(i%64, core.Both)
			}
		})
	}
}
