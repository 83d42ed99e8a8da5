// Package cover selects a bounded set of referrers whose combined
// downstream reach covers as many distinct users as possible, via greedy
// set cover.
package cover

import (
	"fmt"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// Expand greedily picks up to limit referrers maximizing unique downstream
// coverage.
//
// Each round scans the remaining candidates in ascending lexicographic
// order and selects the one whose reach set adds the most not-yet-covered
// users; on equal gain the first candidate scanned wins, so ties resolve
// to the smallest user ID. Selection stops early once the best remaining
// gain is zero — the result is never padded to limit.
//
// limit ≤ 0 yields an empty selection. The returned slice is in selection
// order.
// Complexity: O(U·(V+E)) to precompute reach sets, then O(limit·U·S) for
// the greedy scan (S = average reach-set size).
func Expand(n *core.Network, limit int) ([]string, error) {
	if n == nil {
		return nil, reach.ErrNetworkNil
	}
	users := n.Users()

	// Precompute the full downstream set of every user once.
	sets := make(map[string]map[string]struct{}, len(users))
	for _, u := range users {
		s, err := reach.Set(n, u)
		if err != nil {
			return nil, fmt.Errorf("cover: reach set of %q: %w", u, err)
		}
		sets[u] = s
	}

	covered := make(map[string]struct{})
	picked := make(map[string]struct{}, limit)
	var chosen []string

	for len(chosen) < limit {
		best, bestGain := "", -1
		for _, u := range users {
			if _, done := picked[u]; done {
				continue
			}
			gain := 0
			for c := range sets[u] {
				if _, ok := covered[c]; !ok {
					gain++
				}
			}
			// strict > keeps the first-scanned candidate on ties
			if gain > bestGain {
				best, bestGain = u, gain
			}
		}
		if best == "" || bestGain <= 0 {
			break // no candidate adds new coverage
		}
		chosen = append(chosen, best)
		picked[best] = struct{}{}
		for c := range sets[best] {
			covered[c] = struct{}{}
		}
	}

	return chosen, nil
}

// Coverage returns the number of distinct users downstream of at least one
// of the given referrers. Useful for evaluating an Expand selection.
// Complexity: O(len(users)·(V+E)).
func Coverage(n *core.Network, users ...string) (int, error) {
	if n == nil {
		return 0, reach.ErrNetworkNil
	}
	union := make(map[string]struct{})
	for _, u := range users {
		s, err := reach.Set(n, u)
		if err != nil {
			return 0, fmt.Errorf("cover: reach set of %q: %w", u, err)
		}
		for c := range s {
			union[c] = struct{}{}
		}
	}

	return len(union), nil
}
