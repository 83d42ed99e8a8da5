// Package reach provides tunable options and error definitions for
// breadth-first traversal of a core.Network.
package reach

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("reach: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops from the
	// start. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called once per visited user. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the traversal at the given hop count.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from this callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
