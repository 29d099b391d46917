package param_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/paramkit/param"
)

// -----------------------------------------------------------------------------
// Range validator: rejects values strictly outside [min, max], accepts the
// exact bounds.
// -----------------------------------------------------------------------------.
func TestNewRangeValidator_RejectsStrictlyOutsideBoundsAcceptsExact(t *testing.T) {
	root := param.NewGroup(0x00000000, "root", "", 8)

	n, err := param.NewScalar(0x01000000, "temp", "", param.F32, 4,
		param.AccessFlags(0).GrantAll(param.Group1, param.OpRead, param.OpWrite),
		make([]byte, 4), param.NewRangeValidator(0, 100))
	require.NoError(t, err)
	require.NoError(t, param.AddChild(root, n))

	tree, err := param.Build(root)
	require.NoError(t, err)
	n = tree.Children[0]

	write := func(v float64) error {
		buf := make([]byte, 4)
		require.NoError(t, param.DecodeFromFloat(param.F32, buf, v))
		_, err := param.Write(n, buf, param.Group1)
		return err
	}

	// Just outside the bounds: rejected.
	err = write(-0.001)
	require.Error(t, err)
	require.Equal(t, param.CodeValidation, param.CodeOf(err))

	err = write(100.001)
	require.Error(t, err)
	require.Equal(t, param.CodeValidation, param.CodeOf(err))

	// Exact bounds: accepted.
	require.NoError(t, write(0))
	require.NoError(t, write(100))
}
