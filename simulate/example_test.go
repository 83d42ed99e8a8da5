package simulate_test

import (
	"fmt"

	"github.com/katalvlaran/refnet/simulate"
)

// ExampleDaysToTarget finds how long a referral program needs to produce
// 500 expected hires when each active referrer succeeds 20% of days.
func ExampleDaysToTarget() {
	days, err := simulate.DaysToTarget(0.2, 500)
	if err != nil {
		fmt.Println("unreachable:", err)
		return
	}
	cum, _ := simulate.Simulate(0.2, days)
	fmt.Printf("target met on day %d (%.0f expected hires)\n", days, cum[days])

	// Output:
	// target met on day 10 (519 expected hires)
}
