// Package core defines the central Network type: a directed, acyclic
// referral graph in which every candidate has at most one referrer.
//
// All core APIs use a single sync.RWMutex internally, so read-only queries
// may run concurrently; mutating calls are expected from one logical writer
// at a time (externally serialized callers work too).
//
// This file declares the Network type, its sentinel errors, and the
// NewNetwork constructor.
//
// Errors:
//
//	ErrEmptyUserID    - user ID is empty or whitespace-only.
//	ErrDuplicateUser  - user already registered (no-op).
//	ErrUnknownUser    - operation referenced an unregistered user.
//	ErrSelfReferral   - referrer and candidate are the same user.
//	ErrReferrerExists - candidate already has a referrer.
//	ErrReferralCycle  - edge would close a directed cycle.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for referral network operations.
var (
	// ErrEmptyUserID indicates an empty or whitespace-only user ID.
	ErrEmptyUserID = errors.New("core: user ID is empty")

	// ErrDuplicateUser indicates registration of an already-known user.
	ErrDuplicateUser = errors.New("core: user already registered")

	// ErrUnknownUser indicates an operation referenced a user that was never registered.
	ErrUnknownUser = errors.New("core: user not registered")

	// ErrSelfReferral indicates an attempted referral from a user to themselves.
	ErrSelfReferral = errors.New("core: self-referral not allowed")

	// ErrReferrerExists indicates the candidate already has a referrer.
	ErrReferrerExists = errors.New("core: candidate already referred")

	// ErrReferralCycle indicates the edge would create a directed cycle.
	ErrReferralCycle = errors.New("core: referral would create a cycle")
)

// Network is the in-memory referral graph.
//
// Edges run referrer→candidate and are append-only: once accepted, an edge
// is never removed or re-parented. Three invariants hold after every
// successful AddReferral:
//
//  1. No self-loops.
//  2. Unique referrer: each candidate has in-degree ≤ 1.
//  3. Acyclicity, enforced by an explicit reachability check on insert.
//
// Together they make the accepted graph a forest of out-trees rooted at
// users with no referrer. Network exclusively owns its maps; accessors hand
// out defensive copies only.
type Network struct {
	mu sync.RWMutex // guards users, adj, referrer

	// Storage
	users    map[string]struct{}            // registered user IDs
	adj      map[string]map[string]struct{} // referrer ID → direct candidate set
	referrer map[string]string              // candidate ID → its unique referrer
}

// NewNetwork creates an empty referral Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		users:    make(map[string]struct{}),
		adj:      make(map[string]map[string]struct{}),
		referrer: make(map[string]string),
	}
}
