package rank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refnet/core"
	"github.com/katalvlaran/refnet/rank"
	"github.com/katalvlaran/refnet/reach"
)

// buildForest wires the given edges into a fresh network, registering
// every endpoint first.
func buildForest(t *testing.T, edges [][2]string, extra ...string) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, e := range edges {
		n.AddUsers(e[0], e[1])
	}
	n.AddUsers(extra...)
	for _, e := range edges {
		require.NoError(t, n.AddReferral(e[0], e[1]))
	}
	return n
}

// TestTotalReach verifies reach counts over a branching tree.
func TestTotalReach(t *testing.T) {
	// A→B, A→C, B→D, C→E, E→F
	n := buildForest(t, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"E", "F"},
	})

	cases := map[string]int{
		"A": 5, // B,C,D,E,F
		"B": 1, // D
		"C": 2, // E,F
		"F": 0, // leaf
	}
	for user, want := range cases {
		got, err := rank.TotalReach(n, user)
		require.NoError(t, err)
		assert.Equal(t, want, got, "TotalReach(%s)", user)
	}

	// unregistered user degrades to zero reach
	got, err := rank.TotalReach(n, "missing")
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestTopK covers the prefix semantics and the k ≤ 0 / k ≥ count cases.
func TestTopK(t *testing.T) {
	// A→B, A→C, B→D, C→E
	n := buildForest(t, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"},
	})

	top2, err := rank.TopK(n, 2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, rank.Entry{User: "A", Reach: 4}, top2[0])

	full, err := rank.ByReach(n)
	require.NoError(t, err)
	require.Len(t, full, 5)

	// k ≤ 0 and k ≥ count both return the full ranking
	for _, k := range []int{0, -3, 5, 99} {
		got, err := rank.TopK(n, k)
		require.NoError(t, err)
		assert.Equal(t, full, got, "TopK(%d)", k)
	}
}

// TestByReach_TieBreak pins the documented lexicographic tie order.
func TestByReach_TieBreak(t *testing.T) {
	// two independent chains of equal reach: X→Y, P→Q
	n := buildForest(t, [][2]string{{"X", "Y"}, {"P", "Q"}})

	got, err := rank.ByReach(n)
	require.NoError(t, err)
	want := []rank.Entry{
		{User: "P", Reach: 1},
		{User: "X", Reach: 1},
		{User: "Q", Reach: 0},
		{User: "Y", Reach: 0},
	}
	assert.Equal(t, want, got)
}

// TestByReach_NilNetwork surfaces the traversal sentinel.
func TestByReach_NilNetwork(t *testing.T) {
	_, err := rank.ByReach(nil)
	assert.ErrorIs(t, err, reach.ErrNetworkNil)

	_, err = rank.TotalReach(nil, "A")
	assert.ErrorIs(t, err, reach.ErrNetworkNil)
}

// TestByReach_EmptyNetwork returns an empty ranking, not an error.
func TestByReach_EmptyNetwork(t *testing.T) {
	got, err := rank.ByReach(core.NewNetwork())
	require.NoError(t, err)
	assert.Empty(t, got)
}
