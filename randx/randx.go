// SPDX-License-Identifier: MIT
// Package: randgraph/randx
//
// randx.go — seedable randomness stream for graph sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Safety: no panics outside constructor validation; helpers return
//     nil on invalid input.
//   - Performance: Bernoulli O(1); Choose O(k) expected for sparse k,
//     O(n) dense; Perm O(n).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; do not share a *Rand across
//     goroutines. Use Derive to create independent streams for parallel
//     sampling.

package randx

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Rand is a deterministic randomness stream. Construct with New or
// FromRand; the zero value is not usable.
type Rand struct {
	rng *rand.Rand
}

// New returns a deterministic *Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the seed verbatim.
// Complexity: O(1).
func New(seed int64) *Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &Rand{rng: rand.New(rand.NewSource(s))}
}

// FromRand wraps a caller-owned stream. Panics on nil: constructors
// validate and panic, sampling code never does.
// Complexity: O(1).
func FromRand(r *rand.Rand) *Rand {
	if r == nil {
		panic("randx: FromRand(nil)")
	}

	return &Rand{rng: r}
}

// Bernoulli performs one trial with success probability p.
// The comparison is strict (u < p) over u ∈ [0,1), so p ≤ 0 never
// succeeds and p ≥ 1 always does — the degenerate cases are exact, and
// the stream is still consumed once per trial for reproducible
// interleaving.
// Complexity: O(1).
func (s *Rand) Bernoulli(p float64) bool {
	return s.rng.Float64() < p
}

// Choose returns k distinct values drawn uniformly without replacement
// from [0,n): every k-subset is equally likely. Returns nil when k < 0,
// n < 0, or k > n. The order of the returned values is unspecified.
//
// Strategy:
//   - Dense (2k > n): partial Fisher–Yates over the full range; O(n).
//   - Sparse: Floyd's subset-sampling algorithm; O(k) expected time and
//     space, independent of n — this is what keeps G(n,M) sampling O(M)
//     even when the candidate space is quadratic.
func (s *Rand) Choose(n, k int) []int {
	if n < 0 || k < 0 || k > n {
		return nil
	}

	out := make([]int, 0, k)
	if k == 0 {
		return out
	}

	if 2*k > n {
		// Dense branch: shuffle the first k positions of 0..n-1.
		a := make([]int, n)
		for i := range a {
			a[i] = i
		}
		for i := 0; i < k; i++ {
			j := i + s.rng.Intn(n-i)
			a[i], a[j] = a[j], a[i]
		}

		return a[:k]
	}

	// Floyd's algorithm: for i in [n-k, n), pick j ∈ [0,i]; take j unless
	// already taken, in which case take i. Yields uniform k-subsets.
	chosen := make(map[int]struct{}, k)
	for i := n - k; i < n; i++ {
		j := s.rng.Intn(i + 1)
		if _, dup := chosen[j]; dup {
			j = i
		}
		chosen[j] = struct{}{}
		out = append(out, j)
	}

	return out
}

// Perm returns a uniform permutation of 0..n-1 (Fisher–Yates).
// Returns nil for n < 0.
// Complexity: O(n) time, O(n) space.
func (s *Rand) Perm(n int) []int {
	if n < 0 {
		return nil
	}

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// Derive creates an independent deterministic stream from this one.
// The parent stream is advanced once (Int63) so repeated derivation with
// the same stream id still decorrelates, then the pair is mixed with a
// SplitMix64 finalizer.
// Complexity: O(1).
func (s *Rand) Derive(stream uint64) *Rand {
	return New(deriveSeed(s.rng.Int63(), stream))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 multipliers/finalizer
// (Vigna 2014) for strong bit diffusion.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
