// Package core: Network method implementations.
//
// This file provides the mutation and query surface of the referral graph.
// Adjacency is stored as a nested map adj[referrer][candidate] = struct{}{},
// giving constant-time existence checks and insertion; the referrer map
// enforces the unique-parent invariant in O(1). The cycle guard walks the
// existing adjacency breadth-first before accepting an edge.

package core

import (
	"sort"
	"strings"
)

// AddUser registers a new user with the given ID.
// Returns ErrEmptyUserID if id is empty or whitespace-only,
// ErrDuplicateUser if the user is already registered (state unchanged).
// Complexity: O(1) amortized.
func (n *Network) AddUser(id string) error {
	// Validate input: blank IDs are not allowed
	if strings.TrimSpace(id) == "" {
		return ErrEmptyUserID
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.users[id]; exists {
		return ErrDuplicateUser // idempotent no-op
	}
	n.users[id] = struct{}{}
	// Initialize adjacency bucket so query paths never see a nil set
	n.adj[id] = make(map[string]struct{})

	return nil
}

// AddUsers registers every given ID, ignoring per-ID failures.
// Convenient for test and bootstrap code.
// Complexity: O(len(ids)) amortized.
func (n *Network) AddUsers(ids ...string) {
	for _, id := range ids {
		_ = n.AddUser(id)
	}
}

// HasUser reports whether id is registered.
// Complexity: O(1).
func (n *Network) HasUser(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, exists := n.users[id]

	return exists
}

// AddReferral inserts the directed edge referrer→candidate.
//
// The edge is rejected, with no mutation, when any constraint fails:
//
//	ErrEmptyUserID    - either ID is blank
//	ErrSelfReferral   - referrer == candidate
//	ErrUnknownUser    - either endpoint is unregistered
//	ErrReferrerExists - candidate already has a referrer
//	ErrReferralCycle  - candidate already reaches referrer
//
// Constraints are checked in that order; a duplicate insertion of the same
// pair fails with ErrReferrerExists. Accepted edges are permanent.
// Complexity: O(V + E) due to the cycle guard, O(1) otherwise.
func (n *Network) AddReferral(referrer, candidate string) error {
	if strings.TrimSpace(referrer) == "" || strings.TrimSpace(candidate) == "" {
		return ErrEmptyUserID
	}
	if referrer == candidate {
		return ErrSelfReferral
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.users[referrer]; !ok {
		return ErrUnknownUser
	}
	if _, ok := n.users[candidate]; !ok {
		return ErrUnknownUser
	}
	// Unique-parent invariant
	if _, ok := n.referrer[candidate]; ok {
		return ErrReferrerExists
	}
	// Cycle guard: would candidate already reach referrer?
	// Adding the edge would then close candidate→…→referrer→candidate.
	if n.reachableLocked(candidate, referrer) {
		return ErrReferralCycle
	}

	n.adj[referrer][candidate] = struct{}{}
	n.referrer[candidate] = referrer

	return nil
}

// reachableLocked reports whether target is reachable from start following
// outgoing edges. Caller must hold at least a read lock.
// Complexity: O(V + E) within the reachable subgraph.
func (n *Network) reachableLocked(start, target string) bool {
	if start == target {
		return true
	}
	queue := []string{start}
	seen := map[string]struct{}{start: {}}
	var u string
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for v := range n.adj[u] {
			if v == target {
				return true
			}
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}

	return false
}

// DirectReferrals returns the immediate candidates referred by user,
// sorted lexicographically for reproducible output. The returned slice is
// a defensive copy. Unregistered and leaf users yield an empty slice.
// Complexity: O(d log d), d = out-degree.
func (n *Network) DirectReferrals(user string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	set, ok := n.adj[user]
	if !ok || len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Referrer returns the user who referred candidate, if any.
// Complexity: O(1).
func (n *Network) Referrer(candidate string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	r, ok := n.referrer[candidate]

	return r, ok
}

// HasReferral reports whether the exact edge referrer→candidate exists.
// Complexity: O(1).
func (n *Network) HasReferral(referrer, candidate string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adj[referrer][candidate]

	return ok
}

// Users returns all registered user IDs in sorted order.
// The slice is a defensive copy.
// Complexity: O(V log V).
func (n *Network) Users() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ids := make([]string, 0, len(n.users))
	for id := range n.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Roots returns the users with no referrer, sorted. In a forest these are
// the tree roots: users who joined without being referred.
// Complexity: O(V log V).
func (n *Network) Roots() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var roots []string
	for id := range n.users {
		if _, referred := n.referrer[id]; !referred {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)

	return roots
}

// Leaves returns the users with no outgoing referrals, sorted.
// Complexity: O(V log V).
func (n *Network) Leaves() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var leaves []string
	for id := range n.users {
		if len(n.adj[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	sort.Strings(leaves)

	return leaves
}

// UserCount returns the number of registered users. O(1).
func (n *Network) UserCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.users)
}

// ReferralCount returns the total number of accepted edges. O(1).
func (n *Network) ReferralCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.referrer)
}

// Clone returns a deep copy of the Network: users, adjacency, and referrer
// records. Mutating the clone never affects the original.
// Complexity: O(V + E).
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	clone := NewNetwork()
	for id := range n.users {
		clone.users[id] = struct{}{}
		clone.adj[id] = make(map[string]struct{}, len(n.adj[id]))
		for c := range n.adj[id] {
			clone.adj[id][c] = struct{}{}
		}
	}
	for c, r := range n.referrer {
		clone.referrer[c] = r
	}

	return clone
}
