// Package simulate models expected referral growth with a deterministic
// cohort/age model and searches for the cheapest bonus meeting a hiring
// target. It consumes no graph state: the model is purely scalar.
package simulate

import (
	"errors"
	"math"
)

// Model constants.
const (
	// InitialReferrers is the number of active referrers on day zero.
	InitialReferrers = 100

	// ReferralCapacity is how many successful referrals a referrer makes
	// before going inactive.
	ReferralCapacity = 10

	// bonusStep is the bonus granularity in dollars.
	bonusStep = 10

	// maxHorizon bounds the day search; targets not met within it are
	// reported unreachable.
	maxHorizon = 1_000_000

	// maxBonus bounds the bonus search.
	maxBonus = 10_000_000

	// tolerance absorbs floating-point drift in target comparisons.
	tolerance = 1e-9
)

// Sentinel errors for simulation inputs and outcomes.
var (
	// ErrNegativeDays indicates a negative simulation horizon.
	ErrNegativeDays = errors.New("simulate: days must be non-negative")

	// ErrNilAdoptionProb indicates a nil adoption-probability curve.
	ErrNilAdoptionProb = errors.New("simulate: adoption probability function is nil")

	// ErrTargetUnreachable indicates the target cannot be met within the
	// given horizon or search bounds.
	ErrTargetUnreachable = errors.New("simulate: target unreachable")
)

// AdoptionProb maps a bonus amount in dollars to the probability, in
// [0, 1], that an active referrer makes one successful referral on a
// given day.
type AdoptionProb func(bonus float64) float64

// Simulate runs the deterministic expected-value growth model.
//
// Each active referrer succeeds with probability p per day and stays
// active for an expected lifespan of ReferralCapacity/p days, approximated
// by an age queue of ceil(ReferralCapacity/p) cohorts: every day the
// expected new cohort p·active joins and the oldest cohort expires after
// producing that day's referrals.
//
// Returns a slice of length days+1 where index i holds the cumulative
// expected referrals by the end of day i. p ≤ 0 yields all zeros; p > 1 is
// clamped to 1.
// Complexity: O(days).
func Simulate(p float64, days int) ([]float64, error) {
	if days < 0 {
		return nil, ErrNegativeDays
	}
	cum := make([]float64, days+1)
	if p <= 0 {
		return cum, nil
	}
	if p > 1 {
		p = 1
	}

	// Expected active lifespan in days; the youngest slot holds today's cohort.
	lifespan := int(math.Ceil(ReferralCapacity / p))
	cohorts := make([]float64, lifespan)
	cohorts[lifespan-1] = InitialReferrers

	active := float64(InitialReferrers)
	cumulative := 0.0
	for day := 1; day <= days; day++ {
		newReferrals := p * active

		// Queue mechanics: the oldest cohort expires after producing
		// today's referrals, today's cohort becomes active tomorrow.
		expiring := cohorts[0]
		copy(cohorts, cohorts[1:])
		cohorts[lifespan-1] = newReferrals

		active += newReferrals - expiring
		cumulative += newReferrals
		cum[day] = cumulative
	}

	return cum, nil
}

// DaysToTarget returns the minimum number of days for the cumulative
// expected referrals at probability p to reach target.
//
// target ≤ 0 needs zero days. p ≤ 0, or a target not met within the
// safety horizon, yields ErrTargetUnreachable.
// Complexity: O(D log D), D = answer, via exponential growth + binary shrink.
func DaysToTarget(p float64, target int) (int, error) {
	if target <= 0 {
		return 0, nil
	}
	if p <= 0 {
		return 0, ErrTargetUnreachable
	}

	goal := float64(target)
	reached := func(days int) bool {
		cum, _ := Simulate(p, days) // days validated non-negative
		return cum[days]+tolerance >= goal
	}

	// Grow the horizon exponentially until the target is met, then shrink.
	for days := 1; days <= maxHorizon; days *= 2 {
		if !reached(days) {
			continue
		}
		lo, hi := 0, days
		for lo < hi {
			mid := (lo + hi) / 2
			if reached(mid) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}
		return lo, nil
	}

	return 0, ErrTargetUnreachable
}

// MinBonusForTarget returns the smallest bonus, on a $10 grid, whose
// adoption probability prob(bonus) meets target cumulative expected
// referrals within days.
//
// eps is the closeness-to-1 cutoff for the adoption curve: once
// prob(bonus) ≥ 1−eps and the target is still unmet, no larger bonus can
// help. Returns ErrTargetUnreachable when even p = 1 cannot meet the
// target within days.
// Complexity: O(days · log(answer/bonusStep)).
func MinBonusForTarget(days, target int, prob AdoptionProb, eps float64) (int, error) {
	if days < 0 {
		return 0, ErrNegativeDays
	}
	if prob == nil {
		return 0, ErrNilAdoptionProb
	}
	if target <= 0 {
		return 0, nil
	}

	goal := float64(target)
	// Feasibility ceiling: if certain adoption cannot meet the target, no
	// finite bonus can.
	maxCum, err := Simulate(1.0, days)
	if err != nil {
		return 0, err
	}
	if maxCum[days]+tolerance < goal {
		return 0, ErrTargetUnreachable
	}

	reached := func(bonus int) bool {
		cum, _ := Simulate(prob(float64(bonus)), days)
		return cum[days]+tolerance >= goal
	}

	// Exponential search for an upper bound on the bonus.
	lo, hi := 0, bonusStep
	for !reached(hi) {
		if prob(float64(hi)) >= 1.0-eps {
			return 0, ErrTargetUnreachable // curve saturated, still short
		}
		if hi > maxBonus {
			return 0, ErrTargetUnreachable
		}
		lo = hi
		hi *= 2
	}

	// Binary search on the $10 grid between lo and hi.
	ans := hi
	for lo <= hi {
		mid := ((lo + hi) / 2) / bonusStep * bonusStep
		if reached(mid) {
			ans = mid
			hi = mid - bonusStep
		} else {
			lo = mid + bonusStep
		}
	}

	return ans, nil
}
