// Package reach implements breadth-first reachability primitives over a
// core.Network: a pairwise reachability test, the full downstream set of a
// user, and per-user shortest hop-distances.
//
// Traversals follow outgoing referral edges only, visit each user at most
// once, and expand neighbors in the lexicographic order core.Network
// accessors guarantee, so results are fully reproducible.
package reach

import (
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// queueItem pairs a user ID with its hop distance from the start.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable traversal state.
type walker struct {
	net   *core.Network
	opts  Options
	queue []queueItem
	depth map[string]int // visited users → hop distance
}

// prepare validates inputs, builds Options, and seeds the walker.
// A nil network yields ErrNetworkNil; an unregistered start yields a nil
// walker and nil error (graceful empty, see package core's error model).
func prepare(n *core.Network, start string, opts []Option) (*walker, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !n.HasUser(start) {
		return nil, nil
	}
	w := &walker{
		net:   n,
		opts:  o,
		queue: []queueItem{{id: start, depth: 0}},
		depth: map[string]int{start: 0},
	}

	return w, nil
}

// walk processes the queue until empty, error, or cancellation, calling
// visit for every dequeued user. visit returning true stops the walk early
// without error.
func (w *walker) walk(visit func(id string, depth int) bool) error {
	var item queueItem
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item, w.queue = w.queue[0], w.queue[1:]
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("reach: OnVisit error at %q: %w", item.id, err)
		}
		if visit(item.id, item.depth) {
			return nil
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor of item within the
// depth limit.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.net.DirectReferrals(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if _, seen := w.depth[nbr]; !seen {
			w.depth[nbr] = next
			w.queue = append(w.queue, queueItem{id: nbr, depth: next})
		}
	}
}

// Reachable reports whether target can be reached from start by following
// zero or more referral edges. A registered start always reaches itself.
// Unregistered endpoints yield (false, nil).
// Complexity: O(V + E) within the subgraph reachable from start.
func Reachable(n *core.Network, start, target string, opts ...Option) (bool, error) {
	w, err := prepare(n, start, opts)
	if err != nil || w == nil {
		return false, err
	}
	if !n.HasUser(target) {
		return false, nil
	}

	found := false
	err = w.walk(func(id string, _ int) bool {
		if id == target {
			found = true
		}
		return found
	})

	return found, err
}

// Set returns every user reachable from user via outgoing edges, excluding
// user itself. Unregistered and leaf users yield an empty set.
// The returned map is owned by the caller.
// Complexity: O(V + E) within the reachable subgraph.
func Set(n *core.Network, user string, opts ...Option) (map[string]struct{}, error) {
	w, err := prepare(n, user, opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{})
	if w == nil {
		return out, nil
	}

	err = w.walk(func(id string, _ int) bool {
		if id != user {
			out[id] = struct{}{}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Distances returns the shortest hop-distance from source to every
// reachable user, including source itself at distance 0. A user absent
// from the map is unreachable — absence is the "infinite distance" of the
// dense-matrix formulation, expressed as a comma-ok lookup instead of a
// sentinel value. Unregistered sources yield an empty map.
// Complexity: O(V + E) within the reachable subgraph.
func Distances(n *core.Network, source string, opts ...Option) (map[string]int, error) {
	w, err := prepare(n, source, opts)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return map[string]int{}, nil
	}

	if err = w.walk(func(string, int) bool { return false }); err != nil {
		return nil, err
	}

	return w.depth, nil
}
