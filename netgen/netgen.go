// Package netgen builds deterministic referral-network fixtures: chains,
// stars, uniform trees, and seeded random forests. Intended for tests,
// benchmarks, and demos; every generator is reproducible for the same
// inputs.
package netgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/refnet/core"
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewUsers indicates a user count below the generator's minimum.
	ErrTooFewUsers = errors.New("netgen: too few users")

	// ErrInvalidFanout indicates a non-positive tree fanout.
	ErrInvalidFanout = errors.New("netgen: fanout must be positive")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("netgen: probability not in [0,1]")
)

const (
	minUsers        = 1
	defaultIDPrefix = "u"
)

// Option configures generator behavior.
type Option func(*config)

type config struct {
	idPrefix string
}

// WithIDPrefix sets the prefix of generated user IDs (default "u"):
// users are named prefix0, prefix1, … in creation order.
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.idPrefix = prefix
		}
	}
}

func resolve(opts []Option) config {
	cfg := config{idPrefix: defaultIDPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// id formats the i-th generated user ID.
func (c config) id(i int) string {
	return fmt.Sprintf("%s%d", c.idPrefix, i)
}

// seed registers users 0..n-1 on a fresh network.
func seedUsers(n int, cfg config) *core.Network {
	net := core.NewNetwork()
	for i := 0; i < n; i++ {
		net.AddUsers(cfg.id(i))
	}
	return net
}

// Chain builds a linear referral chain u0→u1→…→u(n-1).
// n ≥ 1; Complexity: O(n²) due to per-insert cycle guards on a path.
func Chain(n int, opts ...Option) (*core.Network, error) {
	if n < minUsers {
		return nil, fmt.Errorf("netgen: Chain: n=%d: %w", n, ErrTooFewUsers)
	}
	cfg := resolve(opts)
	net := seedUsers(n, cfg)
	for i := 0; i+1 < n; i++ {
		if err := net.AddReferral(cfg.id(i), cfg.id(i+1)); err != nil {
			return nil, fmt.Errorf("netgen: Chain: edge %d: %w", i, err)
		}
	}

	return net, nil
}

// Star builds a single referrer u0 with n-1 direct candidates.
// n ≥ 1; Complexity: O(n).
func Star(n int, opts ...Option) (*core.Network, error) {
	if n < minUsers {
		return nil, fmt.Errorf("netgen: Star: n=%d: %w", n, ErrTooFewUsers)
	}
	cfg := resolve(opts)
	net := seedUsers(n, cfg)
	for i := 1; i < n; i++ {
		if err := net.AddReferral(cfg.id(0), cfg.id(i)); err != nil {
			return nil, fmt.Errorf("netgen: Star: edge %d: %w", i, err)
		}
	}

	return net, nil
}

// Tree builds a complete referral tree of the given depth and fanout:
// depth 0 is a single user, depth d has (fanout^(d+1)-1)/(fanout-1) users
// (fanout ≥ 2; fanout 1 degenerates to Chain(depth+1)).
// Complexity: O(users · depth) from the per-insert cycle guard.
func Tree(depth, fanout int, opts ...Option) (*core.Network, error) {
	if depth < 0 {
		return nil, fmt.Errorf("netgen: Tree: depth=%d: %w", depth, ErrTooFewUsers)
	}
	if fanout < 1 {
		return nil, fmt.Errorf("netgen: Tree: fanout=%d: %w", fanout, ErrInvalidFanout)
	}
	cfg := resolve(opts)

	// Count users level by level, then wire each child to its parent by index:
	// the parent of user k (k ≥ 1) is user (k-1)/fanout.
	total := 1
	width := 1
	for d := 0; d < depth; d++ {
		width *= fanout
		total += width
	}
	net := seedUsers(total, cfg)
	for k := 1; k < total; k++ {
		if err := net.AddReferral(cfg.id((k-1)/fanout), cfg.id(k)); err != nil {
			return nil, fmt.Errorf("netgen: Tree: edge %d: %w", k, err)
		}
	}

	return net, nil
}

// RandomForest builds a seeded random referral forest over n users: each
// user k (k ≥ 1) is referred, with probability p, by a uniformly chosen
// earlier user. Referring only backwards guarantees acyclicity by
// construction, so every insertion is accepted. Same n, p, seed, and
// options ⇒ identical network.
// Complexity: O(n · V) worst case from the per-insert cycle guard.
func RandomForest(n int, p float64, seed int64, opts ...Option) (*core.Network, error) {
	if n < minUsers {
		return nil, fmt.Errorf("netgen: RandomForest: n=%d: %w", n, ErrTooFewUsers)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("netgen: RandomForest: p=%v: %w", p, ErrInvalidProbability)
	}
	cfg := resolve(opts)
	net := seedUsers(n, cfg)

	rng := rand.New(rand.NewSource(seed))
	for k := 1; k < n; k++ {
		if rng.Float64() >= p {
			continue // user k joins as a root
		}
		if err := net.AddReferral(cfg.id(rng.Intn(k)), cfg.id(k)); err != nil {
			return nil, fmt.Errorf("netgen: RandomForest: edge %d: %w", k, err)
		}
	}

	return net, nil
}
