package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/refnet/centrality"
	"github.com/katalvlaran/refnet/core"
)

// ExampleFlow finds the brokers of a chain: interior users score, the
// endpoints do not.
func ExampleFlow() {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C", "D", "E")
	_ = n.AddReferral("A", "B")
	_ = n.AddReferral("B", "C")
	_ = n.AddReferral("C", "D")
	_ = n.AddReferral("D", "E")

	entries, _ := centrality.Flow(n)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.User, e.Score)
	}

	// Output:
	// C: 4
	// B: 3
	// D: 3
	// A: 0
	// E: 0
}
