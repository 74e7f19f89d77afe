// Package randgraph samples random graphs with statistically well-defined
// structure — no data files, no fixtures, just distributions.
//
// 🚀 What is randgraph?
//
//	A small, deterministic library that brings together:
//		• Core contract: a generic, storage-agnostic Graph/Edge abstraction
//		• Binomial model G(n,p): every unordered pair kept independently with probability p
//		• Uniform model G(n,M): exactly M edges, every M-subset equally likely
//		• Random recursive trees: uniform-attachment growth, always exactly n−1 edges
//		• Injected randomness: seedable Source capability, reproducible by construction
//
// ✨ Why choose randgraph?
//
//   - Exact degenerate cases – p=0, p=1, M=0, M=C(n,2) and n≤1 all behave precisely
//   - Storage-agnostic – samplers write through the core.Graph contract, never a concrete type
//   - Deterministic – same seed, same graph; independent Sources parallelize safely
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under three subpackages:
//
//	core/  — generic Graph and Edge contracts plus adjacency-list and adjacency-set storage
//	randx/ — the injected randomness capability (Bernoulli trials, k-of-n selection)
//	dist/  — the distributions: Binomial, Uniform, Tree
//
// Quick sketch of G(4, 2):
//
//	0   1        0───1
//	        ⇒        │      (one of the 15 equally likely 2-edge graphs)
//	2   3        2   3
//
// Dive into the per-package docs for contracts, complexity notes and the
// statistical properties each sampler guarantees.
//
//	go get github.com/katalvlaran/randgraph
package randgraph
