// SPDX-License-Identifier: MIT
// Package: randgraph/dist
//
// tree.go — uniform random recursive trees.
//
// Contract:
//   - NewTree validates nodes ≥ 0; nothing else can be invalid.
//   - Sampling grows the tree one node at a time: node 0 is the root,
//     node v ≥ 1 attaches to a parent drawn uniformly from {0..v-1}.
//   - Every sample is connected and acyclic with exactly max(n-1, 0)
//     edges; there is no failure branch — growth always reaches the
//     target size.
//
// Determinism:
//   - Stable attachment order (v asc) plus a fixed Source seed ⇒
//     identical trees.
//
// Complexity:
//   - Time O(n), space O(1) beyond the output graph.

package dist

import (
	"fmt"

	"github.com/katalvlaran/randgraph/core"
)

const (
	methodNewTree    = "NewTree"
	methodTreeSample = "Tree.SampleInto"
)

// Tree is the uniform random recursive tree distribution on n nodes:
// each attachment point is chosen uniformly among all nodes present at
// the time, giving the classic recursive-tree law (expected root degree
// H(n-1), leaf fraction → 1/2). Immutable after construction.
type Tree struct {
	nodes int
}

// NewTree validates the parameter and returns the distribution.
//
// Errors:
//   - ErrNegativeCount: nodes < 0.
func NewTree(nodes int) (*Tree, error) {
	if nodes < 0 {
		return nil, fmt.Errorf("%s: nodes=%d: %w", methodNewTree, nodes, ErrNegativeCount)
	}

	return &Tree{nodes: nodes}, nil
}

// Nodes returns the node count n.
func (d *Tree) Nodes() int { return d.nodes }

// Sample draws one tree from the distribution into fresh
// insertion-ordered storage.
func (d *Tree) Sample(src Source) *core.AdjacencyList[int, core.Pair] {
	g := core.NewAdjacencyList[int, core.Pair](false)

	// Cannot fail on fresh built-in storage: the parent always precedes
	// the child, and each child contributes exactly one new edge.
	_ = d.SampleInto(g, src)

	return g
}

// SampleInto draws one tree into caller-supplied storage. Edges are
// emitted as (parent, child) with parent < child. Any storage rejection
// is wrapped and returned.
func (d *Tree) SampleInto(g Graph, src Source) error {
	for v := 0; v < d.nodes; v++ {
		g.AddNode(v)
		if v == 0 {
			continue
		}

		// Choose(v, 1) is one unbiased draw from {0..v-1}: selection
		// without replacement at k=1.
		parent := src.Choose(v, 1)[0]
		if _, err := g.AddEdge(core.NewPair(parent, v)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodTreeSample, parent, v, err)
		}
	}

	return nil
}
