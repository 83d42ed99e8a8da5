// Package core provides the referral Network: a mutable, invariant-guarded
// directed graph of "who referred whom".
//
// # What
//
//   - Register users (opaque non-blank string IDs) and insert referral
//     edges referrer→candidate.
//   - Every insertion is validated against the live graph; rejected edges
//     leave the Network untouched.
//   - Query the direct referrals of a user, the unique referrer of a
//     candidate, roots, leaves, and counts.
//
// # Invariants
//
// After every successful AddReferral the edge set satisfies:
//
//  1. No self-loop: referrer ≠ candidate.
//  2. Unique referrer: each candidate carries at most one incoming edge
//     over the Network's lifetime.
//  3. Acyclicity: no directed cycle exists. Enforced by a breadth-first
//     reachability check on the candidate before the edge is accepted —
//     this check is the authoritative mechanism, even though in-degree ≤ 1
//     already rules out most cycle shapes.
//
// The accepted graph is therefore always a forest of out-trees rooted at
// users with no referrer.
//
// # Error model
//
// Every rejection reason is a distinct sentinel error, so callers can
// dispatch with errors.Is:
//
//	ErrEmptyUserID, ErrDuplicateUser, ErrUnknownUser,
//	ErrSelfReferral, ErrReferrerExists, ErrReferralCycle
//
// Read-only queries never fail: asking about an unregistered user yields
// empty results, indistinguishable from a registered user with no
// relationships. Callers who need the distinction use HasUser.
//
// # Concurrency
//
// A single RWMutex guards all state. Read-only queries may run
// concurrently; mutation assumes one logical writer at a time.
//
// # Determinism
//
// Every slice-returning accessor (Users, DirectReferrals, Roots, Leaves)
// sorts lexicographically, so downstream analytics are reproducible run
// to run regardless of map iteration order.
package core
