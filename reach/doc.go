// Package reach provides breadth-first reachability primitives over a
// core.Network, the traversal layer every refnet analytics package is
// built on.
//
// # What
//
//   - Reachable(n, start, target): does a directed referral path exist?
//   - Set(n, user): the full downstream set of a user (excluding the user).
//   - Distances(n, source): shortest hop-distance to every reachable user.
//   - Functional options: context cancellation, depth limiting, a per-visit
//     hook, and neighbor filtering.
//
// # Why
//
//   - Reachable is the cycle guard's public twin: core.Network rejects an
//     edge referrer→candidate exactly when the candidate already reaches
//     the referrer.
//   - Set backs total-reach ranking (package rank) and greedy coverage
//     (package cover).
//   - Distances backs shortest-path brokerage scoring (package centrality).
//
// # Unreachability
//
// Distances represents "no path" by map absence: a comma-ok lookup replaces
// the sentinel infinite-distance integer of the classic dense-matrix
// formulation, so real distances can never alias the marker.
//
// # Graceful degradation
//
// Queries about unregistered users do not fail — they yield false or empty
// results, indistinguishable from registered users with no relationships.
// Callers needing the distinction check core.Network.HasUser first.
//
// # Determinism
//
// core.Network.DirectReferrals returns neighbors sorted lexicographically
// and the walker enqueues them in that order, so visit order, and therefore
// every derived result, is reproducible.
//
// # Complexity (V = users, E = referral edges)
//
//   - Time:   O(V + E) within the reachable subgraph
//   - Memory: O(V) for the queue and depth map
package reach
