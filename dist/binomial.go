// SPDX-License-Identifier: MIT
// Package: randgraph/dist
//
// binomial.go — the binomial (Erdős–Rényi) model G(n,p).
//
// Contract:
//   - NewBinomial validates nodes ≥ 0 and 0 ≤ p ≤ 1; no other restriction
//     (nodes == 0 is legal and samples the empty graph).
//   - Sampling draws exactly one Bernoulli(p) trial per unordered pair
//     {i,j}, i<j, in stable (i asc, j asc) order; trials are mutually
//     independent across pairs and across calls.
//   - Edge cases: p=0 ⇒ empty edge set always; p=1 ⇒ complete graph
//     always; nodes ≤ 1 ⇒ no pairs regardless of p.
//
// Determinism:
//   - Fixed trial order plus a fixed Source seed ⇒ identical graphs.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) trials per sample, regardless of p — the
//     accepted cost of the model. Space: O(1) beyond the output graph.

package dist

import (
	"fmt"

	"github.com/katalvlaran/randgraph/core"
)

// File-local method tags for error context.
const (
	methodNewBinomial    = "NewBinomial"
	methodBinomialSample = "Binomial.SampleInto"
)

// Probability domain bounds (closed interval).
const (
	probMin = 0.0
	probMax = 1.0
)

// Binomial is the G(n,p) distribution: a random graph on n nodes where
// each candidate pair is included independently with probability p.
// Immutable after construction; safe to Sample from many goroutines on
// independent Sources.
type Binomial struct {
	nodes int
	p     float64
}

// NewBinomial validates the parameters and returns the distribution.
//
// Errors:
//   - ErrNegativeCount: nodes < 0.
//   - ErrInvalidProbability: p < 0 or p > 1 (the offending p is carried
//     in the wrapped message).
func NewBinomial(nodes int, p float64) (*Binomial, error) {
	if nodes < 0 {
		return nil, fmt.Errorf("%s: nodes=%d: %w", methodNewBinomial, nodes, ErrNegativeCount)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%v not in [%g,%g]: %w", methodNewBinomial, p, probMin, probMax, ErrInvalidProbability)
	}

	return &Binomial{nodes: nodes, p: p}, nil
}

// Nodes returns the node count n.
func (d *Binomial) Nodes() int { return d.nodes }

// P returns the edge-inclusion probability.
func (d *Binomial) P() float64 { return d.p }

// ExpectedEdges returns C(n,2)·p, the mean of the per-sample edge count.
// A statistical property to verify over many samples, not a per-sample
// assertion.
func (d *Binomial) ExpectedEdges() float64 {
	return float64(MaxEdges(d.nodes)) * d.p
}

// Sample draws one graph from the distribution into fresh
// insertion-ordered storage.
func (d *Binomial) Sample(src Source) *core.AdjacencyList[int, core.Pair] {
	g := core.NewAdjacencyList[int, core.Pair](false)

	// Cannot fail on fresh built-in storage: every endpoint is added
	// before any edge, and the pair order {i<j} admits no duplicates.
	_ = d.SampleInto(g, src)

	return g
}

// SampleInto draws one graph from the distribution into caller-supplied
// storage. g should be empty and undirected; the sampler adds nodes
// 0..n-1 first, then one edge per successful trial. Any storage rejection
// is wrapped and returned.
func (d *Binomial) SampleInto(g Graph, src Source) error {
	addNodes(g, d.nodes)

	for i := 0; i < d.nodes; i++ {
		for j := i + 1; j < d.nodes; j++ {
			if !src.Bernoulli(d.p) {
				continue
			}
			if _, err := g.AddEdge(core.NewPair(i, j)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodBinomialSample, i, j, err)
			}
		}
	}

	return nil
}
