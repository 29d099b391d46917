package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Internal always passes, regardless of flags
// -----------------------------------------------------------------------------.
func TestAllowed_InternalAlwaysPasses(t *testing.T) {
	var flags AccessFlags // zero value: nothing granted

	require.True(t, Allowed(flags, Internal, OpRead))
	require.True(t, Allowed(flags, Internal, OpWrite))
	require.True(t, Allowed(flags, Internal, OpLogWrite))
}

// -----------------------------------------------------------------------------
// External groups require an explicit grant
// -----------------------------------------------------------------------------.
func TestAllowed_ExternalGroupRequiresGrant(t *testing.T) {
	var flags AccessFlags

	require.False(t, Allowed(flags, Group1, OpRead))

	flags = flags.Grant(Group1, OpRead)
	require.True(t, Allowed(flags, Group1, OpRead))
	require.False(t, Allowed(flags, Group1, OpWrite))
}

// -----------------------------------------------------------------------------
// Grant is additive and does not leak across groups or operations
// -----------------------------------------------------------------------------.
func TestGrant_DoesNotLeakAcrossGroupsOrOps(t *testing.T) {
	flags := AccessFlags(0).Grant(Group2, OpWrite)

	require.True(t, Allowed(flags, Group2, OpWrite))
	require.False(t, Allowed(flags, Group2, OpRead))
	require.False(t, Allowed(flags, Group1, OpWrite))
	require.False(t, Allowed(flags, Group3, OpWrite))
}

// -----------------------------------------------------------------------------
// GrantAll grants every listed op for one group
// -----------------------------------------------------------------------------.
func TestGrantAll_GrantsEveryListedOp(t *testing.T) {
	flags := AccessFlags(0).GrantAll(Group0, OpRead, OpWrite)

	require.True(t, Allowed(flags, Group0, OpRead))
	require.True(t, Allowed(flags, Group0, OpWrite))
	require.False(t, Allowed(flags, Group0, OpLogWrite))
}

// -----------------------------------------------------------------------------
// Every (group, op) pair occupies a distinct bit across all six groups
// -----------------------------------------------------------------------------.
func TestMask_EveryGroupOpPairIsDistinctBit(t *testing.T) {
	seen := make(map[AccessFlags]bool)
	groups := []AccessGroup{Group0, Group1, Group2, Group3, Group4, Group5}
	ops := []Op{OpRead, OpWrite, OpLogWrite}

	for _, g := range groups {
		for _, op := range ops {
			m := mask(g, op)
			require.NotZero(t, m)
			require.False(t, seen[m], "duplicate bit for group=%d op=%d", g, op)
			seen[m] = true
		}
	}
	require.Len(t, seen, 18)
}

func TestMask_InternalIsZero(t *testing.T) {
	require.Zero(t, mask(Internal, OpRead))
	require.Zero(t, mask(Internal, OpWrite))
}

// -----------------------------------------------------------------------------
// validateAccess surfaces CodePermissionDenied, not a bare error
// -----------------------------------------------------------------------------.
func TestValidateAccess_DeniedReturnsPermissionDeniedCode(t *testing.T) {
	n := &Node{Name: "voltage"}

	err := validateAccess(n, Group1, OpRead)
	require.Error(t, err)
	require.Equal(t, CodePermissionDenied, CodeOf(err))
}

func TestValidateAccess_GrantedReturnsNil(t *testing.T) {
	n := &Node{Name: "voltage", Flags: AccessFlags(0).Grant(Group1, OpRead)}

	require.NoError(t, validateAccess(n, Group1, OpRead))
}
