// Package centrality scores users by shortest-path brokerage: how many
// ordered source→target pairs each user sits between on a shortest path.
package centrality

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// Entry pairs a user with their flow-centrality score.
type Entry struct {
	User  string
	Score int
}

// Flow computes the flow centrality of every registered user.
//
// For every ordered pair (s, t) with s ≠ t and t reachable from s, every
// broker v ∉ {s, t} satisfying d(s,v) + d(v,t) == d(s,t) gains one point:
// v lies on at least one shortest s→t path. A pair contributes at most one
// point per broker, regardless of how many distinct shortest paths run
// through it.
//
// The result contains every registered user, sorted descending by score;
// equal scores are ordered ascending lexicographically by user ID.
// Complexity: O(U·(V+E)) for the distance phase, O(U³) for scoring — by
// far the most expensive query in refnet, intended for on-demand use.
func Flow(n *core.Network) ([]Entry, error) {
	if n == nil {
		return nil, reach.ErrNetworkNil
	}
	users := n.Users()

	// Phase 1: shortest hop-distances from every user. A missing key means
	// unreachable, so no sentinel distance can collide with a real one.
	dist := make(map[string]map[string]int, len(users))
	for _, u := range users {
		d, err := reach.Distances(n, u)
		if err != nil {
			return nil, fmt.Errorf("centrality: distances from %q: %w", u, err)
		}
		dist[u] = d
	}

	// Phase 2: the triple loop. Iteration over the sorted users slice
	// keeps scoring order deterministic.
	score := make(map[string]int, len(users))
	for _, u := range users {
		score[u] = 0
	}
	for _, s := range users {
		ds := dist[s]
		for _, t := range users {
			if s == t {
				continue
			}
			dst, ok := ds[t]
			if !ok {
				continue // t unreachable from s
			}
			for _, v := range users {
				if v == s || v == t {
					continue
				}
				dsv, ok := ds[v]
				if !ok {
					continue
				}
				dvt, ok := dist[v][t]
				if !ok {
					continue
				}
				if dsv+dvt == dst {
					score[v]++
				}
			}
		}
	}

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, Entry{User: u, Score: score[u]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].User < entries[j].User
	})

	return entries, nil
}
