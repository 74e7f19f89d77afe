// Package core defines the generic Graph and Edge contracts that every
// random-graph sampler in this module writes into, plus two concrete
// storage strategies implementing them.
//
// What
//
//   - Edge[I]: an ordered or unordered pair (Source, Target) of node
//     identifiers, with an optional integer key for parallel-edge
//     disambiguation.
//   - Graph[I, E]: the capability contract — add node, add edge
//     (endpoint-validated), query existence, count, iterate, report
//     directedness.
//   - Pair: the concrete int-identified edge the samplers emit.
//   - AdjacencyList[I, E]: slice-backed storage preserving insertion
//     order, for reproducible iteration.
//   - AdjacencySet[I, E]: nested-map storage with no ordering guarantee,
//     for O(1) membership at minimal bookkeeping.
//
// Why
//
//	The contract decouples "what a graph model produces" from "how a
//	graph is stored". Samplers in randgraph/dist are expressed purely in
//	terms of AddNode/AddEdge and never name a concrete storage type, so
//	model correctness and storage correctness are testable in isolation,
//	and callers may substitute their own storage.
//
// Semantics (shared by all implementations)
//
//   - AddNode is idempotent: re-adding an existing identifier is a no-op
//     returning false.
//   - AddEdge requires both endpoints to already exist; otherwise it
//     fails with an error matching ErrInvalidEdge (and ErrMissingNode).
//     Duplicate insertion is tolerated and reported as false, not an
//     error — samplers need not pre-check.
//   - Directed() is a static property fixed at construction, never
//     inferred from edge contents. In undirected graphs, (u,v) and (v,u)
//     denote the same edge for both HasEdge and duplicate detection.
//   - NodeIter/EdgeIter are lazy, finite, restartable sequences over
//     current contents.
//
// Concurrency
//
//	None. A graph is a single-owner value: mutate it from one goroutine.
//	Distinct graphs are fully independent and may be built in parallel.
//
// Errors:
//
//	ErrMissingNode - an operation referenced a node absent from the graph.
//	ErrInvalidEdge - an edge references at least one absent endpoint.
package core
