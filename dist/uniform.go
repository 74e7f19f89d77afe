// SPDX-License-Identifier: MIT
// Package: randgraph/dist
//
// uniform.go — the uniform fixed-edge-count model G(n,M).
//
// Contract:
//   - NewUniform validates nodes ≥ 0, edges ≥ 0, edges ≤ C(nodes,2).
//   - Sampling selects exactly M distinct unordered pairs uniformly
//     without replacement: every M-subset of the candidate set is equally
//     likely. This is stronger than independent inclusion — the total is
//     exactly M, always.
//   - Candidate pairs are ranked lexicographically over {i<j}, so no
//     ordered-pair de-duplication is ever needed: each rank is one
//     unordered pair, no self-loops by construction.
//   - Edge cases: edges=0 ⇒ empty edge set; edges=C(n,2) ⇒ complete
//     graph (a deterministic selection at that boundary).
//
// Determinism:
//   - Fixed Source seed ⇒ identical rank selection ⇒ identical graphs.
//
// Complexity:
//   - Time: O(n) nodes + O(M) expected selection + O(M log n) rank
//     decode. Space: O(M) for the selected ranks.

package dist

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/randgraph/core"
)

const (
	methodNewUniform    = "NewUniform"
	methodUniformSample = "Uniform.SampleInto"
)

// Uniform is the G(n,M) distribution: a random graph on n nodes with
// exactly M edges, each M-subset of the C(n,2) candidate pairs equally
// likely. Immutable after construction.
type Uniform struct {
	nodes int
	edges int
}

// NewUniform validates the parameters and returns the distribution.
//
// Errors:
//   - ErrNegativeCount: nodes < 0 or edges < 0.
//   - ErrTooManyEdges: edges > C(nodes, 2).
func NewUniform(nodes, edges int) (*Uniform, error) {
	if nodes < 0 {
		return nil, fmt.Errorf("%s: nodes=%d: %w", methodNewUniform, nodes, ErrNegativeCount)
	}
	if edges < 0 {
		return nil, fmt.Errorf("%s: edges=%d: %w", methodNewUniform, edges, ErrNegativeCount)
	}
	if limit := MaxEdges(nodes); edges > limit {
		return nil, fmt.Errorf("%s: edges=%d > C(%d,2)=%d: %w", methodNewUniform, edges, nodes, limit, ErrTooManyEdges)
	}

	return &Uniform{nodes: nodes, edges: edges}, nil
}

// Nodes returns the node count n.
func (d *Uniform) Nodes() int { return d.nodes }

// Edges returns the exact per-sample edge count M.
func (d *Uniform) Edges() int { return d.edges }

// Sample draws one graph from the distribution into fresh
// insertion-ordered storage. Every sample has exactly Nodes() nodes and
// exactly Edges() edges.
func (d *Uniform) Sample(src Source) *core.AdjacencyList[int, core.Pair] {
	g := core.NewAdjacencyList[int, core.Pair](false)

	// Cannot fail on fresh built-in storage: endpoints precede edges and
	// distinct ranks decode to distinct unordered pairs.
	_ = d.SampleInto(g, src)

	return g
}

// SampleInto draws one graph from the distribution into caller-supplied
// storage. g should be empty and undirected. Any storage rejection is
// wrapped and returned.
func (d *Uniform) SampleInto(g Graph, src Source) error {
	addNodes(g, d.nodes)

	// Select M distinct ranks from the C(n,2)-sized candidate space, then
	// decode each rank to its unordered pair. Uniformity over rank
	// subsets is exactly uniformity over edge subsets: the ranking is a
	// bijection.
	for _, rank := range src.Choose(MaxEdges(d.nodes), d.edges) {
		i, j := pairAt(d.nodes, rank)
		if _, err := g.AddEdge(core.NewPair(i, j)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodUniformSample, i, j, err)
		}
	}

	return nil
}

// rowStart returns the rank of pair (i, i+1): the number of pairs whose
// first endpoint is smaller than i. rowStart is strictly increasing in i
// while rows are non-empty, which is what pairAt's binary search relies
// on.
func rowStart(n, i int) int {
	return i*(n-1) - i*(i-1)/2
}

// pairAt decodes a lexicographic rank in [0, C(n,2)) to its unordered
// pair (i, j), i < j: rank 0 ⇒ (0,1), rank 1 ⇒ (0,2), ..,
// rank C(n,2)-1 ⇒ (n-2, n-1).
// Complexity: O(log n) via binary search over row offsets.
func pairAt(n, rank int) (int, int) {
	// First endpoint: the last row starting at or before rank.
	i := sort.Search(n-1, func(i int) bool { return rowStart(n, i+1) > rank })
	// Second endpoint: offset within the row, shifted past the diagonal.
	j := i + 1 + (rank - rowStart(n, i))

	return i, j
}
