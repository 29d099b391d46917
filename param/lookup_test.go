package param_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/paramkit/param"
)

// -----------------------------------------------------------------------------
// LookupByID: exact id match at any depth
// -----------------------------------------------------------------------------.
func TestLookupByID_FindsDirectChild(t *testing.T) {
	root, voltage, _, _, _ := newTestTree(t)

	got := param.LookupByID(root, 0x01000000)
	require.Same(t, voltage, got)
}

func TestLookupByID_UnknownIDReturnsNil(t *testing.T) {
	root, _, _, _, _ := newTestTree(t)

	require.Nil(t, param.LookupByID(root, 0xFFFFFFFF))
}

func TestLookupByID_DescendsIntoNestedGroups(t *testing.T) {
	root := param.NewGroup(0x00000000, "root", "", 8)
	sub := param.NewGroup(0x10000000, "sub", "", 8)
	leaf, err := param.NewScalar(0x10200000, "leaf", "", param.U8, 1, 0, make([]byte, 1))
	require.NoError(t, err)

	require.NoError(t, param.AddChild(root, sub))
	require.NoError(t, param.AddChild(sub, leaf))

	tree, err := param.Build(root)
	require.NoError(t, err)

	require.Same(t, leaf, param.LookupByID(tree, 0x10200000))
	require.Same(t, sub, param.LookupGroupByID(tree, 0x10000000))
	require.Nil(t, param.LookupParameterByID(tree, 0x10000000)) // resolves to a Group, not a leaf
}

func TestLookupParameterByID_RootOwnIDIsNotMatched(t *testing.T) {
	root, _, _, _, _ := newTestTree(t)

	require.Nil(t, param.LookupParameterByID(root, 0x00000000))
}

// -----------------------------------------------------------------------------
// LookupByName: dotted-path resolution
// -----------------------------------------------------------------------------.
func TestLookupByName_ResolvesDirectChildByName(t *testing.T) {
	root, voltage, _, _, _ := newTestTree(t)

	got := param.LookupByName(root, "voltage", '.')
	require.Same(t, voltage, got)
}

func TestLookupByName_RecursesThroughDottedPath(t *testing.T) {
	root := param.NewGroup(0x00000000, "root", "", 8)
	sub := param.NewGroup(0x10000000, "sensors", "", 8)
	leaf, err := param.NewScalar(0x10200000, "temp", "", param.U8, 1, 0, make([]byte, 1))
	require.NoError(t, err)

	require.NoError(t, param.AddChild(root, sub))
	require.NoError(t, param.AddChild(sub, leaf))
	tree, err := param.Build(root)
	require.NoError(t, err)

	require.Same(t, leaf, param.LookupByName(tree, "sensors.temp", '.'))
	require.Nil(t, param.LookupByName(tree, "sensors.missing", '.'))
	require.Nil(t, param.LookupByName(tree, "missing.temp", '.'))
}

func TestLookupByName_UnknownNameReturnsNil(t *testing.T) {
	root, _, _, _, _ := newTestTree(t)

	require.Nil(t, param.LookupByName(root, "nonexistent", '.'))
}
