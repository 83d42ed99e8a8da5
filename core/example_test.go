package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/refnet/core"
)

// ExampleNetwork demonstrates registration, referral insertion, and the
// constraint checks that guard every edge.
func ExampleNetwork() {
	// 1) Create an empty network and register users:
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")

	// 2) Insert referrals:
	_ = n.AddReferral("A", "B")
	_ = n.AddReferral("B", "C")

	// 3) Constraint checks reject bad edges without mutating state:
	err := n.AddReferral("C", "A") // would close A→B→C→A
	fmt.Println("cycle rejected?", errors.Is(err, core.ErrReferralCycle))

	err = n.AddReferral("A", "C") // C already referred by B
	fmt.Println("re-parent rejected?", errors.Is(err, core.ErrReferrerExists))

	// 4) Query the graph:
	fmt.Println("direct referrals of A:", n.DirectReferrals("A"))
	fmt.Println("roots:", n.Roots())

	// Output:
	// cycle rejected? true
	// re-parent rejected? true
	// direct referrals of A: [B]
	// roots: [A]
}
