// Package dist implements random-graph probability distributions over the
// storage-agnostic contract in randgraph/core.
//
// What
//
//   - Binomial — the Erdős–Rényi model G(n,p): each of the C(n,2)
//     unordered node pairs becomes an edge independently with
//     probability p. Expected edge count is C(n,2)·p; the realized count
//     varies per sample.
//   - Uniform — the fixed-edge-count model G(n,M): exactly M edges,
//     selected without replacement so that every M-subset of the C(n,2)
//     candidate pairs is equally likely. The node and edge counts are
//     exact invariants of every sample.
//   - Tree — a uniform random recursive tree on n nodes: node v ≥ 1
//     attaches to a parent chosen uniformly from 0..v-1. Always connected,
//     acyclic, exactly n-1 edges.
//
// All three produce undirected simple graphs (no self-loops, no duplicate
// unordered pairs) over dense integer node identifiers 0..n-1.
//
// Lifecycle
//
//	A distribution value is constructed once, with all validation done at
//	construction (ErrNegativeCount, ErrInvalidProbability,
//	ErrTooManyEdges). It is immutable afterwards and holds no sampling
//	state: Sample may be called an unbounded number of times, each call
//	producing an independent, freshly constructed graph. There is no
//	partial-failure mode mid-sample — either a whole graph is produced or
//	construction already failed.
//
// Randomness
//
//	Sampling consumes an injected Source (see randx for the default
//	implementation): Bernoulli trials for the binomial model, selection
//	without replacement for the uniform model. Nothing global, nothing
//	time-based; a fixed seed reproduces the graph exactly. Concurrent
//	Sample calls are safe on independent Sources.
//
// Complexity
//
//   - Binomial: O(n²) Bernoulli trials per sample, by model definition.
//   - Uniform: O(n + M log n) per sample (O(M) expected selection plus a
//     binary-search pair decode per selected rank).
//   - Tree: O(n) per sample.
//
// Errors:
//
//	ErrNegativeCount      - nodes or edges below zero.
//	ErrInvalidProbability - p outside [0,1].
//	ErrTooManyEdges       - requested edge count exceeds C(nodes, 2).
package dist
