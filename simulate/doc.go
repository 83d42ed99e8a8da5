// Package simulate provides a deterministic expected-value model of
// referral program growth and two searches built on it: minimum days to a
// hiring target, and minimum referral bonus to hit a target within a
// deadline.
//
// # Model
//
// The program starts with InitialReferrers active referrers. Each active
// referrer makes one successful referral per day with probability p and
// retires after ReferralCapacity successes, giving an expected active
// lifespan of ReferralCapacity/p days. The model tracks expected values
// only — no randomness — using an age queue of ceil(ReferralCapacity/p)
// cohorts: each day the expected new cohort p·active joins the queue and
// the oldest cohort expires.
//
// # Searches
//
//   - DaysToTarget(p, target): exponential horizon growth followed by
//     binary shrink.
//   - MinBonusForTarget(days, target, prob, eps): the adoption curve prob
//     maps bonus dollars to daily success probability; the search runs on
//     a $10 grid, exponential upper-bound then binary refinement.
//
// Both report ErrTargetUnreachable instead of a magic value when no
// answer exists within the search bounds.
//
// # Isolation
//
// The package reads no core.Network state. It is the numeric companion of
// the graph engine, kept separate so graph analytics and growth modelling
// cannot entangle.
package simulate
