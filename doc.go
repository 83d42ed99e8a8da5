// Package refnet is an in-memory engine for directed referral networks:
// who brought in whom, and what the shape of that graph tells you.
//
// 🚀 What is refnet?
//
//	A small, thread-safe-for-reads, pure-Go library combining:
//		• Core store: register users, insert referral edges guarded by
//		  no-self-loop, unique-referrer, and acyclicity invariants
//		• Traversal: breadth-first reachability, downstream sets, hop distances
//		• Rankings: Top-K users by total downstream reach
//		• Coverage: greedy unique-reach expansion (bounded set cover)
//		• Brokerage: flow centrality over all-pairs shortest paths
//		• Growth: deterministic cohort simulation + bonus optimization
//		• Fixtures: seeded generators for chains, stars, trees, random forests
//
// ✨ Why choose refnet?
//
//   - Invariants first – every edge insertion is validated against the live
//     graph; rejected edges never mutate state
//   - Deterministic – sorted enumeration and documented tie-breaks, no
//     map-iteration surprises
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – traversal hooks (OnVisit, FilterNeighbor) for custom logic
//
// Everything is organized under six subpackages:
//
//	core/       — the Network store: users, referral edges, invariants
//	reach/      — BFS primitives: Reachable, Set, Distances
//	rank/       — Top-K by total downstream reach
//	cover/      — greedy unique-reach expansion
//	centrality/ — flow-centrality broker scoring
//	simulate/   — cohort growth model and bonus search (no graph state)
//	netgen/     — deterministic network fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A──▶B──▶D
//	    │
//	    └──▶C──▶E
//
//	A referred B and C; B referred D; C referred E. A's total reach is 4.
//
//	go get github.com/katalvlaran/refnet
package refnet
