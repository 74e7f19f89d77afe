// SPDX-License-Identifier: MIT

package dist_test

import (
	"testing"

	"github.com/katalvlaran/randgraph/dist"
	"github.com/katalvlaran/randgraph/randx"
)

// BenchmarkBinomial_Sample measures the O(n²)-trial cost of G(n,p) at a
// sparse probability.
func BenchmarkBinomial_Sample(b *testing.B) {
	d, err := dist.NewBinomial(200, 0.05)
	if err != nil {
		b.Fatal(err)
	}
	src := randx.New(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Sample(src)
	}
}

// BenchmarkUniform_SampleSparse exercises the O(M)-expected selection
// path: a tiny M against a quadratic candidate space.
func BenchmarkUniform_SampleSparse(b *testing.B) {
	d, err := dist.NewUniform(2000, 500) // candidate space ≈ 2·10⁶
	if err != nil {
		b.Fatal(err)
	}
	src := randx.New(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Sample(src)
	}
}

// BenchmarkUniform_SampleComplete exercises the dense boundary where the
// whole candidate set is selected.
func BenchmarkUniform_SampleComplete(b *testing.B) {
	const nodes = 150
	d, err := dist.NewUniform(nodes, dist.MaxEdges(nodes))
	if err != nil {
		b.Fatal(err)
	}
	src := randx.New(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Sample(src)
	}
}

// BenchmarkTree_Sample measures linear-time tree growth.
func BenchmarkTree_Sample(b *testing.B) {
	d, err := dist.NewTree(10000)
	if err != nil {
		b.Fatal(err)
	}
	src := randx.New(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Sample(src)
	}
}
