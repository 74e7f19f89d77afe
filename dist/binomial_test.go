// SPDX-License-Identifier: MIT
// Package dist_test verifies the binomial model: construction-time
// validation, degenerate-parameter exactness, per-seed determinism,
// storage agnosticism, and mean edge-count convergence.

package dist_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randgraph/core"
	"github.com/katalvlaran/randgraph/dist"
	"github.com/katalvlaran/randgraph/randx"
)

// TestNewBinomial_Validation asserts p is validated against the closed
// interval [0,1] and nodes against non-negativity; all errors are
// sentinel-matchable and carry the offending value.
func TestNewBinomial_Validation(t *testing.T) {
	cases := []struct {
		name    string
		nodes   int
		p       float64
		wantErr error
	}{
		{"negative-p", 4, -0.05, dist.ErrInvalidProbability},
		{"p-above-one", 4, 1.01, dist.ErrInvalidProbability},
		{"negative-nodes", -1, 0.5, dist.ErrNegativeCount},
		{"p-zero", 4, 0.0, nil},
		{"p-quarter", 4, 0.25, nil},
		{"p-one", 4, 1.0, nil},
		{"zero-nodes", 0, 0.5, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := dist.NewBinomial(tc.nodes, tc.p)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, d)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.nodes, d.Nodes())
			require.Equal(t, tc.p, d.P())
		})
	}

	// The invalid probability is carried in the error for diagnostics.
	_, err := dist.NewBinomial(4, -0.05)
	require.ErrorContains(t, err, "-0.05")
}

// TestBinomial_DegenerateP asserts p=0 always yields the empty edge set
// and p=1 always yields the complete graph, across repeated samples.
func TestBinomial_DegenerateP(t *testing.T) {
	const nodes = 6

	empty, err := dist.NewBinomial(nodes, 0.0)
	require.NoError(t, err)
	complete, err := dist.NewBinomial(nodes, 1.0)
	require.NoError(t, err)

	src := randx.New(1)
	for round := 0; round < 20; round++ {
		g := empty.Sample(src)
		require.Equal(t, nodes, g.NodeCount())
		require.Equal(t, 0, g.EdgeCount(), "p=0 must produce no edges")

		k := complete.Sample(src)
		require.Equal(t, nodes, k.NodeCount())
		require.Equal(t, dist.MaxEdges(nodes), k.EdgeCount(), "p=1 must produce K_n")
		for i := 0; i < nodes; i++ {
			for j := i + 1; j < nodes; j++ {
				require.True(t, k.HasEdge(core.NewPair(i, j)))
			}
		}
	}
}

// TestBinomial_TinyNodeCounts asserts nodes ≤ 1 admits no pairs, so the
// edge set is empty regardless of p.
func TestBinomial_TinyNodeCounts(t *testing.T) {
	src := randx.New(2)
	for _, nodes := range []int{0, 1} {
		d, err := dist.NewBinomial(nodes, 0.9)
		require.NoError(t, err)

		g := d.Sample(src)
		require.Equal(t, nodes, g.NodeCount())
		require.Equal(t, 0, g.EdgeCount())
	}
}

// TestBinomial_SimpleUndirected asserts every sample is a simple
// undirected graph over nodes 0..n-1: no self-loops, no duplicate
// unordered pairs, all endpoints in range.
func TestBinomial_SimpleUndirected(t *testing.T) {
	const nodes = 12
	d, err := dist.NewBinomial(nodes, 0.4)
	require.NoError(t, err)

	src := randx.New(7)
	for round := 0; round < 50; round++ {
		g := d.Sample(src)
		require.True(t, g.Undirected())
		require.Equal(t, nodes, g.NodeCount())

		seen := make(map[core.Pair]struct{})
		for e := range g.EdgeIter() {
			require.Less(t, e.Source(), e.Target(), "edges are emitted as (i,j) with i<j: no self-loops")
			require.GreaterOrEqual(t, e.Source(), 0)
			require.Less(t, e.Target(), nodes)

			_, dup := seen[e]
			require.False(t, dup, "no duplicate unordered pairs")
			seen[e] = struct{}{}
		}
		require.Len(t, seen, g.EdgeCount())
	}
}

// TestBinomial_DeterministicPerSeed asserts a fixed seed reproduces the
// identical edge sequence, and that the distribution value holds no
// sampling state between calls.
func TestBinomial_DeterministicPerSeed(t *testing.T) {
	d, err := dist.NewBinomial(10, 0.3)
	require.NoError(t, err)

	first := collectEdges(d.Sample(randx.New(99)))
	second := collectEdges(d.Sample(randx.New(99)))
	require.Equal(t, first, second, "same seed must reproduce the same graph")
}

// TestBinomial_StorageAgnostic asserts the sampler produces the identical
// edge set through both storage strategies — the model never leans on a
// concrete layout.
func TestBinomial_StorageAgnostic(t *testing.T) {
	d, err := dist.NewBinomial(9, 0.5)
	require.NoError(t, err)

	list := core.NewAdjacencyList[int, core.Pair](false)
	require.NoError(t, d.SampleInto(list, randx.New(4)))

	set := core.NewAdjacencySet[int, core.Pair](false)
	require.NoError(t, d.SampleInto(set, randx.New(4)))

	require.Equal(t, list.NodeCount(), set.NodeCount())
	require.Equal(t, list.EdgeCount(), set.EdgeCount())
	for e := range list.EdgeIter() {
		require.True(t, set.HasEdge(e))
	}
}

// TestBinomial_SampleIntoRejectsMisuse asserts a storage error (endpoint
// never added) surfaces wrapped, matching the core sentinel — the only
// way to reach InvalidEdge through this package.
func TestBinomial_SampleIntoRejectsMisuse(t *testing.T) {
	d, err := dist.NewBinomial(3, 1.0)
	require.NoError(t, err)

	err = d.SampleInto(&truncatedGraph{
		Graph: core.NewAdjacencyList[int, core.Pair](false),
	}, randx.New(1))
	require.ErrorIs(t, err, core.ErrInvalidEdge)
}

// TestBinomial_MeanConvergence asserts the statistical property of the
// model: over 10,000 samples of G(9, 1/6) the mean edge count converges
// to C(9,2)·(1/6) = 6.
//
// Tolerance: per-sample variance is 36·p·(1-p) = 5, so the sample mean
// has σ ≈ sqrt(5/10000) ≈ 0.0224; the 0.12 bound is ≈ 5.4σ — consistent
// with the sample size, and deterministic anyway under a fixed seed.
func TestBinomial_MeanConvergence(t *testing.T) {
	const (
		nodes      = 9
		iterations = 10000
		expected   = 6.0
		tolerance  = 0.12
	)
	d, err := dist.NewBinomial(nodes, 1.0/6.0)
	require.NoError(t, err)
	require.InEpsilon(t, expected, d.ExpectedEdges(), 1e-12)

	src := randx.New(6)
	total := 0
	for i := 0; i < iterations; i++ {
		total += d.Sample(src).EdgeCount()
	}

	mean := float64(total) / float64(iterations)
	require.InDelta(t, expected, mean, tolerance)
}

// TestBinomial_ParallelSampling asserts independent Sources make
// concurrent Sample calls on one immutable distribution value safe.
func TestBinomial_ParallelSampling(t *testing.T) {
	const workers = 8
	d, err := dist.NewBinomial(20, 0.2)
	require.NoError(t, err)

	parent := randx.New(13)
	sources := make([]*randx.Rand, workers)
	for w := range sources {
		sources[w] = parent.Derive(uint64(w))
	}

	var wg sync.WaitGroup
	graphs := make([]*core.AdjacencyList[int, core.Pair], workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			graphs[w] = d.Sample(sources[w])
		}(w)
	}
	wg.Wait()

	for _, g := range graphs {
		require.Equal(t, 20, g.NodeCount())
	}
}

// collectEdges drains a sample's edge sequence in iteration order.
func collectEdges(g *core.AdjacencyList[int, core.Pair]) []core.Pair {
	var out []core.Pair
	for e := range g.EdgeIter() {
		out = append(out, e)
	}

	return out
}

// truncatedGraph drops every third node insertion to force the storage
// error path during SampleInto.
type truncatedGraph struct {
	dist.Graph
	calls int
}

func (tg *truncatedGraph) AddNode(id int) bool {
	tg.calls++
	if tg.calls%3 == 0 {
		return false
	}

	return tg.Graph.AddNode(id)
}
