// SPDX-License-Identifier: MIT
// Package: randgraph/dist
//
// errors.go — sentinel errors for distribution construction.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition
//     site; constructors attach the offending values via %w wrapping.
//   - All errors are raised synchronously at construction, never during
//     sampling, and are deterministic functions of the input parameters.

package dist

import "errors"

// ErrNegativeCount indicates a node or edge count below zero. The
// reference model ranges over non-negative integers; a signed host type
// makes the guard explicit.
// Usage: if errors.Is(err, ErrNegativeCount) { /* fix the count */ }.
var ErrNegativeCount = errors.New("dist: negative count")

// ErrInvalidProbability indicates an edge-inclusion probability outside
// the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("dist: probability out of range")

// ErrTooManyEdges indicates a requested edge count exceeding C(nodes, 2),
// the number of unordered pairs available in a simple graph.
// Usage: if errors.Is(err, ErrTooManyEdges) { /* lower edges or raise nodes */ }.
var ErrTooManyEdges = errors.New("dist: too many edges")
