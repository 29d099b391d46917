package param

import "github.com/joshuapare/paramkit/internal/wire"

// vectorHeaderSize is the width of the element-count header a Vector's
// storage carries ahead of its element data (Invariant 2, §4.4 step 7).
const vectorHeaderSize = 2

// Node is a typed, permission-tagged cell in the parameter tree. It is
// either a leaf (Scalar, FixedArray, Vector) backed by owned storage, or a
// Group that owns only children.
//
// Node never exposes storage as an untyped pointer: every access goes
// through the bounds-checked views in this file or the pipeline in
// pipeline.go, per the tagged-storage redesign called for over the source's
// void* data field.
type Node struct {
	GlobalID     uint32
	Kind         NodeKind
	ElementKind  Kind
	ElementWidth int
	MaxElements  int
	Flags        AccessFlags
	Name         string
	Description  string

	storage    []byte      // nil for Group; nil for a leaf fully serviced by an IO extension
	extensions []Extension // chain order matters: first match of a type wins (Invariant 5)

	// Shift and Children are Group-only; parent is set by AddChild on
	// every attached node, leaf or Group.
	Shift    uint
	Children []*Node
	parent   *Node
}

// Parent returns the enclosing Group, or nil for the tree root.
func (n *Node) Parent() *Node { return n.parent }

// HasStorage reports whether the node owns a backing byte region. A leaf
// with no storage must be serviced entirely by an IO extension (Invariant:
// Read/Write step 4 — CodeInvalidAction otherwise).
func (n *Node) HasStorage() bool { return n.storage != nil }

// rawStorage returns the node's owned byte slice directly. Its only caller
// is the mapped-scalar IO extension in extension.go; everything else goes
// through Read/Write.
func (n *Node) rawStorage() []byte { return n.storage }

// vectorCount returns the element count currently stored in a Vector's
// 2-byte header, clamped to MaxElements per §4.4 step 5 / scenario 5.
func (n *Node) vectorCount() int {
	stored := int(wire.ReadU16(n.storage, 0))
	if stored > n.MaxElements {
		return n.MaxElements
	}
	return stored
}

// setVectorCount writes count into a Vector's 2-byte header.
func (n *Node) setVectorCount(count int) {
	wire.PutU16(n.storage, 0, uint16(count))
}

// effectiveLen is the number of payload bytes Read should copy for n, per
// §4.4 step 5.
func (n *Node) effectiveLen() int {
	switch n.Kind {
	case Scalar:
		return n.ElementWidth
	case FixedArray:
		return n.ElementWidth * n.MaxElements
	case Vector:
		return n.ElementWidth * n.vectorCount()
	default:
		return 0
	}
}

// maxDataSize is the maximum payload bytes n could ever hold, per
// ODIN_get_max_data_size / §4.4 ReadIntoBuffer.
func (n *Node) maxDataSize() int {
	switch n.Kind {
	case Scalar:
		return n.ElementWidth
	case FixedArray, Vector:
		return n.ElementWidth * n.MaxElements
	default:
		return 0
	}
}

// MaxDataSize exposes maxDataSize for codecs that must size buffers ahead
// of a call to ReadIntoBuffer (component H/I).
func (n *Node) MaxDataSize() int { return n.maxDataSize() }

// findExtension returns the first extension of kind k in chain order, or
// nil. Invariant 5: at most one extension of each type is consulted.
func (n *Node) findExtension(k ExtensionKind) Extension {
	for _, e := range n.extensions {
		if e.Kind() == k {
			return e
		}
	}
	return nil
}

// StringCodec returns n's StringCodec extension, if any. It is the only
// extension codecs outside this package may read directly — Validate and
// IO are consulted solely by the pipeline in pipeline.go.
func (n *Node) StringCodec() (StringCodecExtension, bool) {
	e := n.findExtension(ExtStringCodec)
	if e == nil {
		return StringCodecExtension{}, false
	}
	return e.(StringCodecExtension), true
}

// payloadOffset returns the byte offset into storage where element data
// begins: 0 for Scalar/FixedArray, past the count header for Vector.
func (n *Node) payloadOffset() int {
	if n.Kind == Vector {
		return vectorHeaderSize
	}
	return 0
}
