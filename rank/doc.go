// Package rank answers "who has the largest downstream network" over a
// core.Network.
//
// # What
//
//   - TotalReach(n, user): count of distinct users downstream of user.
//   - ByReach(n): every registered user ranked descending by total reach.
//   - TopK(n, k): the k best entries; k ≤ 0 or k ≥ user count yields the
//     full ranking.
//
// # Tie-break
//
// Users with equal reach are ordered ascending lexicographically by ID.
// The policy is part of the API contract: rankings never depend on map
// iteration order.
//
// # Complexity (U = users, V = users, E = referral edges)
//
//   - TotalReach: O(V + E)
//   - ByReach / TopK: O(U·(V+E)) + O(U log U)
//
// Nothing is cached: each call walks the network as it currently stands.
package rank
