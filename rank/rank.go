// Package rank scores every registered user by total downstream reach and
// produces descending rankings with a deterministic tie-break.
package rank

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// Entry pairs a user with the size of their downstream reach set.
type Entry struct {
	User  string
	Reach int
}

// TotalReach returns the number of distinct users downstream of user,
// excluding user itself. Unregistered users yield 0.
// Complexity: O(V + E) within the reachable subgraph.
func TotalReach(n *core.Network, user string) (int, error) {
	set, err := reach.Set(n, user)
	if err != nil {
		return 0, fmt.Errorf("rank: total reach of %q: %w", user, err)
	}

	return len(set), nil
}

// ByReach ranks every registered user by total reach, descending.
// Equal reach is broken by ascending lexicographic user ID, so the ranking
// is fully deterministic.
// Complexity: O(U·(V+E)) for the reach phase, O(U log U) for the sort.
func ByReach(n *core.Network) ([]Entry, error) {
	if n == nil {
		return nil, reach.ErrNetworkNil
	}
	users := n.Users()
	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		r, err := TotalReach(n, u)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{User: u, Reach: r})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Reach != entries[j].Reach {
			return entries[i].Reach > entries[j].Reach
		}
		return entries[i].User < entries[j].User
	})

	return entries, nil
}

// TopK returns the k highest-reach entries of ByReach.
// k ≤ 0 or k ≥ user count returns the full ranking.
// Complexity: same as ByReach.
func TopK(n *core.Network, k int) ([]Entry, error) {
	all, err := ByReach(n)
	if err != nil {
		return nil, err
	}
	if k <= 0 || k >= len(all) {
		return all, nil
	}

	return all[:k], nil
}
