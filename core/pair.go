// SPDX-License-Identifier: MIT
// Package: randgraph/core
//
// pair.go — Pair, the concrete int-identified edge emitted by samplers.

package core

import "fmt"

// Pair is an edge between two dense integer node identifiers.
// It is an immutable value type; the samplers in randgraph/dist emit
// Pair values with no key set.
type Pair struct {
	source int
	target int
	key    int
	keyed  bool
}

// NewPair returns the edge (source, target) with no parallel-edge key.
func NewPair(source, target int) Pair {
	return Pair{source: source, target: target}
}

// NewKeyedPair returns the edge (source, target) carrying a parallel-edge
// key. Only meaningful in multigraph storage; the built-in strategies
// treat keyed and unkeyed pairs over the same endpoints as duplicates.
func NewKeyedPair(source, target, key int) Pair {
	return Pair{source: source, target: target, key: key, keyed: true}
}

// Source returns the first endpoint.
func (p Pair) Source() int { return p.source }

// Target returns the second endpoint.
func (p Pair) Target() int { return p.target }

// Key returns the parallel-edge key and whether one is set.
func (p Pair) Key() (int, bool) { return p.key, p.keyed }

// String renders the pair for error messages and test diagnostics.
func (p Pair) String() string {
	if p.keyed {
		return fmt.Sprintf("(%d,%d)#%d", p.source, p.target, p.key)
	}

	return fmt.Sprintf("(%d,%d)", p.source, p.target)
}
