// Package cover answers "which small set of referrers covers the most
// unique downstream candidates" with the classic greedy set-cover
// heuristic over a core.Network.
//
// # What
//
//   - Expand(n, limit): up to limit referrers, chosen greedily by marginal
//     unique coverage, in selection order.
//   - Coverage(n, users...): size of the union of the given users'
//     downstream reach sets.
//
// # Algorithm
//
// Reach sets for all users are computed once up front. Each round scores
// every remaining candidate by how many not-yet-covered users its reach
// set would add, picks the best, merges its set into the covered pool, and
// repeats. Selection stops when limit is met or no candidate adds anything
// new — a shorter-than-limit result means coverage was exhausted.
//
// # Tie-break
//
// Candidates are scanned in ascending lexicographic order and only a
// strictly larger gain displaces the current best, so equal-gain ties
// resolve to the smallest user ID. Deterministic by construction.
//
// # Complexity (U = users, V = users, E = edges, S = avg reach-set size)
//
//   - Precompute: O(U·(V+E))
//   - Greedy:     O(limit·U·S)
//
// The greedy heuristic carries the usual (1 − 1/e) approximation bound for
// max-coverage; exact optimization is NP-hard and out of scope.
package cover
