// SPDX-License-Identifier: MIT
// Package: randgraph/dist
//
// dist.go — the shared sampling surface: Source capability, Graph target
// alias, and combinatorial helpers.

package dist

import "github.com/katalvlaran/randgraph/core"

// Source is the randomness capability a distribution consumes while
// sampling. randx.Rand satisfies it; any deterministic or recorded stream
// works as long as the two outcomes are unbiased:
//
//   - Bernoulli(p): one independent trial with success probability p.
//   - Choose(n, k): k distinct values from [0,n), every k-subset equally
//     likely (selection without replacement).
//
// A Source is consumed sequentially; do not share one across concurrent
// Sample calls.
type Source interface {
	Bernoulli(p float64) bool
	Choose(n, k int) []int
}

// Graph is the target type every distribution samples into: an undirected
// simple graph over dense integer node identifiers.
type Graph = core.Graph[int, core.Pair]

// MaxEdges returns C(nodes, 2), the number of unordered pairs of distinct
// nodes — the candidate set size for every model here. Counts below two
// admit no pairs.
// Complexity: O(1).
func MaxEdges(nodes int) int {
	if nodes < 2 {
		return 0
	}

	return nodes * (nodes - 1) / 2
}

// addNodes inserts the dense identifier range 0..nodes-1 into g, in
// ascending order so insertion-ordered storage iterates reproducibly.
// Every sampler adds all nodes before any edge, which is what guarantees
// AddEdge can never observe a missing endpoint during sampling.
func addNodes(g Graph, nodes int) {
	for id := 0; id < nodes; id++ {
		g.AddNode(id)
	}
}
