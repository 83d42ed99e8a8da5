package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refnet/core"
)

// TestAddUser_Validation verifies blank-ID rejection and idempotence.
func TestAddUser_Validation(t *testing.T) {
	n := core.NewNetwork()

	assert.ErrorIs(t, n.AddUser(""), core.ErrEmptyUserID)
	assert.ErrorIs(t, n.AddUser("   "), core.ErrEmptyUserID)
	assert.ErrorIs(t, n.AddUser("\t\n"), core.ErrEmptyUserID)

	require.NoError(t, n.AddUser("A"))
	// second registration is a no-op signalled by ErrDuplicateUser
	assert.ErrorIs(t, n.AddUser("A"), core.ErrDuplicateUser)
	assert.Equal(t, 1, n.UserCount())
	assert.True(t, n.HasUser("A"))
	assert.False(t, n.HasUser("B"))
}

// TestAddUsers_Bulk ensures bulk registration skips failures silently.
func TestAddUsers_Bulk(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "", "A", "C")
	assert.Equal(t, []string{"A", "B", "C"}, n.Users())
}

// TestAddReferral_Constraints walks every rejection reason in order.
func TestAddReferral_Constraints(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C", "D")

	// blank IDs
	assert.ErrorIs(t, n.AddReferral("", "B"), core.ErrEmptyUserID)
	assert.ErrorIs(t, n.AddReferral("A", " "), core.ErrEmptyUserID)

	// self referral rejected
	assert.ErrorIs(t, n.AddReferral("A", "A"), core.ErrSelfReferral)

	// unregistered endpoints
	assert.ErrorIs(t, n.AddReferral("A", "Z"), core.ErrUnknownUser)
	assert.ErrorIs(t, n.AddReferral("Z", "A"), core.ErrUnknownUser)

	// unique referrer
	require.NoError(t, n.AddReferral("A", "B"))
	assert.ErrorIs(t, n.AddReferral("C", "B"), core.ErrReferrerExists)

	// exact duplicate insertion also fails on the parent record, unchanged state
	assert.ErrorIs(t, n.AddReferral("A", "B"), core.ErrReferrerExists)
	assert.Equal(t, 1, n.ReferralCount())

	// cycle prevention: A→B→C→D then D→A would close the loop
	require.NoError(t, n.AddReferral("B", "C"))
	require.NoError(t, n.AddReferral("C", "D"))
	assert.ErrorIs(t, n.AddReferral("D", "A"), core.ErrReferralCycle)
	assert.Equal(t, 3, n.ReferralCount())
}

// TestAddReferral_RejectionLeavesStateUntouched asserts no partial writes.
func TestAddReferral_RejectionLeavesStateUntouched(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")
	require.NoError(t, n.AddReferral("A", "B"))
	require.NoError(t, n.AddReferral("B", "C"))

	// rejected edge
	assert.Error(t, n.AddReferral("C", "A"))

	assert.Equal(t, 2, n.ReferralCount())
	assert.Empty(t, n.DirectReferrals("C"))
	_, referred := n.Referrer("A")
	assert.False(t, referred)
}

// TestDirectReferrals covers sorted output, defensive copies, and the
// empty result for unregistered users.
func TestDirectReferrals(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")
	require.NoError(t, n.AddReferral("A", "C"))
	require.NoError(t, n.AddReferral("A", "B"))

	direct := n.DirectReferrals("A")
	assert.Equal(t, []string{"B", "C"}, direct)

	// mutating the returned slice must not leak into the Network
	direct[0] = "X"
	assert.Equal(t, []string{"B", "C"}, n.DirectReferrals("A"))

	assert.Empty(t, n.DirectReferrals("B"))       // leaf
	assert.Empty(t, n.DirectReferrals("missing")) // unregistered
}

// TestReferrer checks the parent lookup.
func TestReferrer(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B")
	require.NoError(t, n.AddReferral("A", "B"))

	r, ok := n.Referrer("B")
	assert.True(t, ok)
	assert.Equal(t, "A", r)

	_, ok = n.Referrer("A")
	assert.False(t, ok)
}

// TestRootsAndLeaves verifies forest-shape queries.
func TestRootsAndLeaves(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C", "D", "E")
	require.NoError(t, n.AddReferral("A", "B"))
	require.NoError(t, n.AddReferral("B", "C"))
	require.NoError(t, n.AddReferral("D", "E"))

	assert.Equal(t, []string{"A", "D"}, n.Roots())
	assert.Equal(t, []string{"C", "E"}, n.Leaves())
}

// TestHasReferral checks exact-edge membership.
func TestHasReferral(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")
	require.NoError(t, n.AddReferral("A", "B"))

	assert.True(t, n.HasReferral("A", "B"))
	assert.False(t, n.HasReferral("B", "A"))
	assert.False(t, n.HasReferral("A", "C"))
}

// TestClone ensures deep-copy independence.
func TestClone(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("A", "B", "C")
	require.NoError(t, n.AddReferral("A", "B"))

	c := n.Clone()
	require.NoError(t, c.AddReferral("B", "C"))

	assert.Equal(t, 2, c.ReferralCount())
	assert.Equal(t, 1, n.ReferralCount())
	assert.False(t, n.HasReferral("B", "C"))
}

// TestUsers_DefensiveCopy guards the registry snapshot contract.
func TestUsers_DefensiveCopy(t *testing.T) {
	n := core.NewNetwork()
	n.AddUsers("B", "A")

	ids := n.Users()
	assert.Equal(t, []string{"A", "B"}, ids)
	ids[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, n.Users())
}
