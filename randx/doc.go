// Package randx provides the deterministic randomness capability consumed
// by the samplers in randgraph/dist.
//
// What
//
//   - Rand: a seedable stream exposing exactly the outcomes random-graph
//     sampling needs:
//   - Bernoulli(p): one unbiased trial with success probability p
//   - Choose(n,k): k distinct values from [0,n), every k-subset
//     equally likely (selection without replacement)
//   - Perm(n): a uniform permutation of 0..n-1
//   - Derive(stream): an independent substream for parallel sampling
//
// Why
//
//   - Determinism: same seed ⇒ identical results across platforms and
//     runs; no time-based sources hidden anywhere.
//   - Encapsulation: a single factory; samplers receive the capability at
//     the call site and hold no randomness state of their own.
//
// Concurrency
//
//	A Rand is NOT goroutine-safe. Give each concurrent Sample call its
//	own Rand; use Derive to split reproducible independent streams off a
//	parent.
package randx
