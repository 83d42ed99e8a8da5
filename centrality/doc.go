// Package centrality answers "which users sit on the most shortest paths
// between others" — the brokers of a referral network.
//
// # What
//
//   - Flow(n): every registered user with a brokerage score, ranked
//     descending.
//
// # Scoring
//
// A user v earns one point for each ordered pair (s, t), s ≠ t, where t is
// reachable from s and d(s,v) + d(v,t) == d(s,t) — i.e. v lies on at least
// one shortest s→t path. Pairs with multiple shortest paths through v
// still count once.
//
// # Unreachability
//
// Distances come from reach.Distances, which marks unreachable users by
// map absence. The scoring loop skips any pair or broker with a missing
// distance, so no infinite-distance sentinel ever enters the arithmetic.
//
// # Tie-break
//
// Equal scores are ordered ascending lexicographically by user ID — the
// same convention as package rank.
//
// # Complexity (U = users, V = users, E = edges)
//
//   - Distance phase: O(U·(V+E))
//   - Scoring phase:  O(U³), deliberately the most expensive operation in
//     the engine; run it on demand, not per insertion. Callers needing
//     bounded latency on large networks must impose their own budget.
package centrality
