// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// adjacency_list.go — AdjacencyList, the insertion-ordered storage strategy.
//
// Contract:
//   - Implements Graph[I, E] with deterministic iteration: NodeIter yields
//     nodes in insertion order, EdgeIter yields edges in insertion order.
//   - AddNode idempotent; AddEdge validates endpoints, tolerates
//     duplicates (false, nil), allows self-loops.
//   - Undirected mode mirrors adjacency so (u,v) and (v,u) are one edge.
//
// Determinism:
//   - Iteration order depends only on the sequence of successful inserts,
//     never on map iteration. Samplers insert in a stable order, so two
//     identically seeded samples iterate identically.
//
// Complexity:
//   - AddNode/HasNode/AddEdge/HasEdge: O(1) amortized.
//   - NodeIter/EdgeIter: O(V) / O(E) total, O(1) per step.
//   - Space: O(V + E).

package core

import (
	"fmt"
	"iter"
)

// File-local method tags for error context (no magic literals).
const methodListAddEdge = "AdjacencyList.AddEdge"

// AdjacencyList is a Graph backed by an insertion-ordered node slice, a
// nested adjacency map for O(1) membership, and an insertion-ordered edge
// slice. Prefer it when reproducible iteration matters (golden tests,
// stable serial consumers).
//
// The zero value is not usable; construct with NewAdjacencyList.
type AdjacencyList[I comparable, E Edge[I]] struct {
	directed bool

	order []I                 // node insertion order
	adj   map[I]map[I]struct{} // adjacency membership (mirrored when undirected)
	edges []E                  // edge insertion order
}

// Compile-time contract check.
var _ Graph[int, Pair] = (*AdjacencyList[int, Pair])(nil)

// NewAdjacencyList returns an empty AdjacencyList with the given static
// orientation policy.
// Complexity: O(1).
func NewAdjacencyList[I comparable, E Edge[I]](directed bool) *AdjacencyList[I, E] {
	return &AdjacencyList[I, E]{
		directed: directed,
		adj:      make(map[I]map[I]struct{}),
	}
}

// AddNode inserts a node and reports whether it was newly added.
// Re-adding an existing identifier is a no-op returning false.
// Complexity: O(1) amortized.
func (g *AdjacencyList[I, E]) AddNode(id I) bool {
	if _, exists := g.adj[id]; exists {
		return false
	}

	g.adj[id] = make(map[I]struct{})
	g.order = append(g.order, id)

	return true
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *AdjacencyList[I, E]) HasNode(id I) bool {
	_, ok := g.adj[id]

	return ok
}

// AddEdge inserts an edge and reports whether it was newly added.
//
// Errors:
//   - ErrInvalidEdge (also matching ErrMissingNode) when either endpoint
//     is absent. The edge is not inserted and the graph is unchanged.
//
// Duplicate unordered (undirected) or ordered (directed) pairs return
// (false, nil) and leave the edge set unchanged.
func (g *AdjacencyList[I, E]) AddEdge(e E) (bool, error) {
	src, tgt := e.Source(), e.Target()

	// Endpoint validity is the structural invariant: enforced here, never
	// reconstructed later.
	if _, ok := g.adj[src]; !ok {
		return false, fmt.Errorf("%s: endpoint %v absent: %w: %w", methodListAddEdge, src, ErrInvalidEdge, ErrMissingNode)
	}
	if _, ok := g.adj[tgt]; !ok {
		return false, fmt.Errorf("%s: endpoint %v absent: %w: %w", methodListAddEdge, tgt, ErrInvalidEdge, ErrMissingNode)
	}

	// Duplicate check: the mirror entry written below makes one lookup
	// sufficient for both orientations in undirected mode.
	if _, dup := g.adj[src][tgt]; dup {
		return false, nil
	}

	g.adj[src][tgt] = struct{}{}
	if !g.directed && src != tgt {
		g.adj[tgt][src] = struct{}{}
	}
	g.edges = append(g.edges, e)

	return true, nil
}

// HasEdge reports whether the edge is present; in undirected mode the
// reversed orientation matches as well.
// Complexity: O(1).
func (g *AdjacencyList[I, E]) HasEdge(e E) bool {
	targets, ok := g.adj[e.Source()]
	if !ok {
		return false
	}
	_, ok = targets[e.Target()]

	return ok
}

// Directed reports the static orientation policy.
func (g *AdjacencyList[I, E]) Directed() bool { return g.directed }

// Undirected is the logical negation of Directed.
func (g *AdjacencyList[I, E]) Undirected() bool { return !g.directed }

// NodeCount returns the number of nodes stored.
func (g *AdjacencyList[I, E]) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges stored.
func (g *AdjacencyList[I, E]) EdgeCount() int { return len(g.edges) }

// NodeIter returns a restartable sequence over nodes in insertion order.
func (g *AdjacencyList[I, E]) NodeIter() iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, id := range g.order {
			if !yield(id) {
				return
			}
		}
	}
}

// EdgeIter returns a restartable sequence over edges in insertion order.
func (g *AdjacencyList[I, E]) EdgeIter() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}
