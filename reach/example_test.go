package reach_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/reach"
)

// ExampleSet computes the downstream network of a referrer.
func ExampleSet() {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C", "D")
	_ = n.AddReferral("A", "B")
	_ = n.AddReferral("B", "C")
	_ = n.AddReferral("A", "D")

	set, _ := reach.Set(n, "A")
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Println("downstream of A:", ids)

	// Output:
	// downstream of A: [B C D]
}

// ExampleReachable tests for a directed referral path.
func ExampleReachable() {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")
	_ = n.AddReferral("A", "B")
	_ = n.AddReferral("B", "C")

	forward, _ := reach.Reachable(n, "A", "C")
	backward, _ := reach.Reachable(n, "C", "A")
	fmt.Println("A reaches C:", forward)
	fmt.Println("C reaches A:", backward)

	// Output:
	// A reaches C: true
	// C reaches A: false
}

// ExampleDistances shows hop counts with map absence as "unreachable".
func ExampleDistances() {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C", "X")
	_ = n.AddReferral("A", "B")
	_ = n.AddReferral("B", "C")

	d, _ := reach.Distances(n, "A")
	fmt.Println("hops to C:", d["C"])
	_, ok := d["X"]
	fmt.Println("X reachable:", ok)

	// Output:
	// hops to C: 2
	// X reachable: false
}
