// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// adjacency_set.go — AdjacencySet, the map-only storage strategy.
//
// Contract:
//   - Implements Graph[I, E] with set semantics only: membership and
//     counts are exact, iteration order is unspecified (Go map order).
//   - Same insert semantics as AdjacencyList (idempotent AddNode, lenient
//     duplicate AddEdge, endpoint validation, self-loops permitted).
//
// Why a second strategy:
//   - Proves the samplers are storage-agnostic: dist tests run the same
//     model against both strategies and assert identical edge sets.
//   - Drops the insertion-order bookkeeping for callers that only query.
//
// Complexity:
//   - All mutations and queries O(1) amortized; space O(V + E).

package core

import (
	"fmt"
	"iter"
)

const methodSetAddEdge = "AdjacencySet.AddEdge"

// AdjacencySet is a Graph backed entirely by nested maps: node set,
// adjacency membership, and the edge value stored at its insertion
// orientation. Iteration order is not reproducible across runs; use
// AdjacencyList when it must be.
//
// The zero value is not usable; construct with NewAdjacencySet.
type AdjacencySet[I comparable, E Edge[I]] struct {
	directed bool

	present map[I]map[I]struct{} // membership, mirrored when undirected
	out     map[I]map[I]E        // edge values at insertion orientation
	edges   int
}

var _ Graph[int, Pair] = (*AdjacencySet[int, Pair])(nil)

// NewAdjacencySet returns an empty AdjacencySet with the given static
// orientation policy.
// Complexity: O(1).
func NewAdjacencySet[I comparable, E Edge[I]](directed bool) *AdjacencySet[I, E] {
	return &AdjacencySet[I, E]{
		directed: directed,
		present:  make(map[I]map[I]struct{}),
		out:      make(map[I]map[I]E),
	}
}

// AddNode inserts a node; no-op returning false when already present.
func (g *AdjacencySet[I, E]) AddNode(id I) bool {
	if _, exists := g.present[id]; exists {
		return false
	}

	g.present[id] = make(map[I]struct{})

	return true
}

// HasNode reports whether the node exists.
func (g *AdjacencySet[I, E]) HasNode(id I) bool {
	_, ok := g.present[id]

	return ok
}

// AddEdge inserts an edge and reports whether it was newly added.
// Fails with ErrInvalidEdge (also matching ErrMissingNode) when either
// endpoint is absent; duplicates return (false, nil).
func (g *AdjacencySet[I, E]) AddEdge(e E) (bool, error) {
	src, tgt := e.Source(), e.Target()

	if _, ok := g.present[src]; !ok {
		return false, fmt.Errorf("%s: endpoint %v absent: %w: %w", methodSetAddEdge, src, ErrInvalidEdge, ErrMissingNode)
	}
	if _, ok := g.present[tgt]; !ok {
		return false, fmt.Errorf("%s: endpoint %v absent: %w: %w", methodSetAddEdge, tgt, ErrInvalidEdge, ErrMissingNode)
	}

	if _, dup := g.present[src][tgt]; dup {
		return false, nil
	}

	g.present[src][tgt] = struct{}{}
	if !g.directed && src != tgt {
		g.present[tgt][src] = struct{}{}
	}

	// The edge value lives only at its insertion orientation, so EdgeIter
	// yields each undirected edge exactly once.
	if g.out[src] == nil {
		g.out[src] = make(map[I]E)
	}
	g.out[src][tgt] = e
	g.edges++

	return true, nil
}

// HasEdge reports whether the edge is present; in undirected mode the
// reversed orientation matches as well.
func (g *AdjacencySet[I, E]) HasEdge(e E) bool {
	targets, ok := g.present[e.Source()]
	if !ok {
		return false
	}
	_, ok = targets[e.Target()]

	return ok
}

// Directed reports the static orientation policy.
func (g *AdjacencySet[I, E]) Directed() bool { return g.directed }

// Undirected is the logical negation of Directed.
func (g *AdjacencySet[I, E]) Undirected() bool { return !g.directed }

// NodeCount returns the number of nodes stored.
func (g *AdjacencySet[I, E]) NodeCount() int { return len(g.present) }

// EdgeCount returns the number of edges stored.
func (g *AdjacencySet[I, E]) EdgeCount() int { return g.edges }

// NodeIter returns a restartable sequence over the node set.
// Order is unspecified.
func (g *AdjacencySet[I, E]) NodeIter() iter.Seq[I] {
	return func(yield func(I) bool) {
		for id := range g.present {
			if !yield(id) {
				return
			}
		}
	}
}

// EdgeIter returns a restartable sequence over the edge set, each edge
// exactly once at its insertion orientation. Order is unspecified.
func (g *AdjacencySet[I, E]) EdgeIter() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, targets := range g.out {
			for _, e := range targets {
				if !yield(e) {
					return
				}
			}
		}
	}
}
