// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// types.go — the Edge and Graph contracts plus package sentinel errors.
//
// Contract (strict):
//   - Interfaces only; no algorithms or storage here.
//   - Implementations MUST honor the semantics documented on each method
//     (idempotent AddNode, lenient duplicate AddEdge, static Directed).
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context via %w and callers branch with
//     errors.Is.

package core

import (
	"errors"
	"iter"
)

// Sentinel errors for graph operations.
var (
	// ErrMissingNode indicates an operation referenced a non-existent node.
	ErrMissingNode = errors.New("core: node not found")

	// ErrInvalidEdge indicates an edge references at least one endpoint
	// that is absent from the graph.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge is the contract an edge value must satisfy: a (Source, Target)
// pair of node identifiers plus an optional integer key distinguishing
// parallel edges between the same endpoints.
//
// For undirected graphs the (Source, Target) orientation records only how
// the edge was constructed; storage treats the pair as unordered.
type Edge[I comparable] interface {
	// Source returns the first endpoint.
	Source() I

	// Target returns the second endpoint.
	Target() I

	// Key returns the parallel-edge key and whether one is set.
	// Simple graphs (everything randgraph/dist produces) leave it unset.
	Key() (int, bool)
}

// Graph is the capability contract every sampler writes into.
//
// I is the node-identifier type: opaque, comparable, created once per
// graph and never mutated. E is the edge type; its endpoints must satisfy
// the validity invariant enforced by AddEdge.
type Graph[I comparable, E Edge[I]] interface {
	// AddNode inserts a node and reports whether it was newly added.
	// Idempotent: re-adding an existing identifier is a no-op returning
	// false.
	AddNode(id I) bool

	// HasNode reports whether the node exists in the graph.
	HasNode(id I) bool

	// AddEdge inserts an edge and reports whether it was newly added.
	// Fails with an error matching ErrInvalidEdge when either endpoint is
	// absent. Duplicate insertion is tolerated and reported as
	// (false, nil) — deliberate leniency so samplers need not pre-check.
	AddEdge(e E) (bool, error)

	// HasEdge reports whether the edge is present. In undirected graphs
	// the reversed orientation matches as well.
	HasEdge(e E) bool

	// Directed reports the graph's static orientation policy, fixed at
	// construction and never inferred from edge contents.
	Directed() bool

	// Undirected is the logical negation of Directed.
	Undirected() bool

	// NodeCount returns the number of nodes currently stored.
	NodeCount() int

	// EdgeCount returns the number of edges currently stored.
	EdgeCount() int

	// NodeIter returns a lazy, finite, restartable sequence over the
	// current node set.
	NodeIter() iter.Seq[I]

	// EdgeIter returns a lazy, finite, restartable sequence over the
	// current edge set.
	EdgeIter() iter.Seq[E]
}
