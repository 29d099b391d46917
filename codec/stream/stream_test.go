package stream_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/paramkit/codec/stream"
	"github.com/joshuapare/paramkit/param"
)

var rw = param.AccessFlags(0).GrantAll(param.Group1, param.OpRead, param.OpWrite)

func TestEncodeDecode_SingleLeafRoundTrips(t *testing.T) {
	n, err := param.NewScalar(0x01000000, "v", "", param.U32, 4, rw, make([]byte, 4))
	require.NoError(t, err)
	_, err = param.Write(n, []byte{0xDE, 0xAD, 0xBE, 0xEF}, param.Group1)
	require.NoError(t, err)

	buf, err := stream.Encode(n, nil, param.Group1)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	root := param.NewGroup(0x00000000, "root", "", 8)
	require.NoError(t, param.AddChild(root, n))
	tree, err := param.Build(root)
	require.NoError(t, err)

	_, err = param.Write(n, []byte{0, 0, 0, 0}, param.Group1)
	require.NoError(t, err)

	consumed, err := stream.Decode(tree, buf, param.Group1)
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)

	out := make([]byte, 4)
	_, err = param.Read(n, out, param.Group1)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, out)
}

func TestEncodeDecode_GroupProducesOneSubmessagePerLeaf(t *testing.T) {
	a, err := param.NewScalar(0x10000000, "a", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)
	b, err := param.NewScalar(0x20000000, "b", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)
	_, err = param.Write(a, []byte{0x11}, param.Group1)
	require.NoError(t, err)
	_, err = param.Write(b, []byte{0x22}, param.Group1)
	require.NoError(t, err)

	root := param.NewGroup(0x00000000, "root", "", 0)
	require.NoError(t, param.AddChild(root, a))
	require.NoError(t, param.AddChild(root, b))
	tree, err := param.Build(root)
	require.NoError(t, err)

	buf, err := stream.Encode(tree, nil, param.Group1)
	require.NoError(t, err)

	_, err = param.Write(a, []byte{0}, param.Group1)
	require.NoError(t, err)
	_, err = param.Write(b, []byte{0}, param.Group1)
	require.NoError(t, err)

	_, err = stream.Decode(tree, buf, param.Group1)
	require.NoError(t, err)

	outA := make([]byte, 1)
	_, err = param.Read(a, outA, param.Group1)
	require.NoError(t, err)
	require.Equal(t, byte(0x11), outA[0])

	outB := make([]byte, 1)
	_, err = param.Read(b, outB, param.Group1)
	require.NoError(t, err)
	require.Equal(t, byte(0x22), outB[0])
}

func TestDecode_UnknownIDFailsTheWholeCollection(t *testing.T) {
	known, err := param.NewScalar(0x01000000, "known", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)
	unknown, err := param.NewScalar(0x02000000, "unknown", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)
	_, err = param.Write(known, []byte{1}, param.Group1)
	require.NoError(t, err)
	_, err = param.Write(unknown, []byte{2}, param.Group1)
	require.NoError(t, err)

	root := param.NewGroup(0x00000000, "root", "", 0)
	require.NoError(t, param.AddChild(root, known))
	require.NoError(t, param.AddChild(root, unknown))
	fullTree, err := param.Build(root)
	require.NoError(t, err)

	buf, err := stream.Encode(fullTree, nil, param.Group1)
	require.NoError(t, err)

	// build a second tree that only knows about "known" — "unknown"'s
	// submessage must now fail, and that failure must abort decode
	// entirely rather than silently skipping it.
	partialRoot := param.NewGroup(0x00000000, "root", "", 0)
	partialKnown, err := param.NewScalar(0x01000000, "known", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)
	require.NoError(t, param.AddChild(partialRoot, partialKnown))
	partialTree, err := param.Build(partialRoot)
	require.NoError(t, err)

	_, err = stream.Decode(partialTree, buf, param.Group1)
	require.Error(t, err)
	require.Equal(t, param.CodeParameterNotFound, param.CodeOf(err))
}

func TestEncodeDecode_FileVariantRoundTrips(t *testing.T) {
	n, err := param.NewScalar(0x01000000, "v", "", param.U32, 4, rw, make([]byte, 4))
	require.NoError(t, err)
	_, err = param.Write(n, []byte{1, 2, 3, 4}, param.Group1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "params.bin")
	require.NoError(t, stream.EncodeToFile(n, path, param.Group1))

	root := param.NewGroup(0x00000000, "root", "", 8)
	require.NoError(t, param.AddChild(root, n))
	tree, err := param.Build(root)
	require.NoError(t, err)

	_, err = param.Write(n, []byte{0, 0, 0, 0}, param.Group1)
	require.NoError(t, err)

	_, err = stream.DecodeFromFile(tree, path, param.Group1)
	require.NoError(t, err)

	out := make([]byte, 4)
	_, err = param.Read(n, out, param.Group1)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestDecodeFromFile_MissingFileIsFileNotFound(t *testing.T) {
	root := param.NewGroup(0x00000000, "root", "", 8)
	tree, err := param.Build(root)
	require.NoError(t, err)

	_, err = stream.DecodeFromFile(tree, filepath.Join(t.TempDir(), "missing.bin"), param.Internal)
	require.Error(t, err)
	require.Equal(t, param.CodeFileNotFound, param.CodeOf(err))
}

func TestEncodeToFile_CreatesFile(t *testing.T) {
	n, err := param.NewScalar(0x01000000, "v", "", param.U8, 1, rw, make([]byte, 1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, stream.EncodeToFile(n, path, param.Group1))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
