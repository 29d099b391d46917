// Package param provides an in-memory hierarchical parameter registry for
// embedded and edge devices.
//
// # Overview
//
// A registry is a tree of typed, permission-tagged cells (Node): Scalar,
// FixedArray, and Vector leaves carry owned byte storage or delegate to an
// IO extension; Group nodes own only children. Every node carries a 32-bit
// GlobalID assembled hierarchically from its ancestors' shift values, and a
// Name unique among its siblings, so a parameter can be resolved either way
// (see Data Model, §3).
//
// # Key Types
//
//   - Node: a cell in the tree, either a leaf or a Group
//   - AccessFlags: the packed per-group, per-operation permission bitfield
//   - Extension: the Validate/IO/StringCodec extension chain a leaf may carry
//   - Error: the typed, negative-Code error every pipeline operation returns
//
// # Building a Tree
//
// Leaves and groups are constructed with NewScalar, NewFixedArray,
// NewVector, and NewGroup, wired together with AddChild, and validated in
// one pass with Build:
//
//	root := param.NewGroup(0x00000000, "root", "", 8)
//	leaf, err := param.NewScalar(0x01000000, "voltage", "", param.F32, 4,
//	    param.AccessFlags(0).GrantAll(param.Group1, param.OpRead), storage)
//	if err != nil {
//	    return err
//	}
//	if err := param.AddChild(root, leaf); err != nil {
//	    return err
//	}
//	tree, err := param.Build(root)
//
// Build rejects a tree whose ids or sibling names violate the invariants
// described in lookup.go and build.go before handing it to a caller — a
// malformed tree never becomes reachable.
//
// # Reading and Writing
//
// Read and Write run the full pipeline from §4.4 (access control, then any
// Validate or IO extension, then the bounds-checked copy).
// ArrayReadElement and ArrayWriteElement address one FixedArray element
// after the access check and consult no extension. ReadIntoBuffer wraps
// Read for callers that size buffers by MaxDataSize:
//
//	buf := make([]byte, leaf.MaxDataSize())
//	n, err := param.ReadIntoBuffer(leaf, buf, param.Group1)
//
// # Lookup
//
// LookupByID walks the id-prefix hierarchy described in §4.5; LookupByName
// walks a dotted (or otherwise separated) path. Both are read-only and safe
// for concurrent use once a tree has been built (see Concurrency below).
//
// # Concurrency
//
// A *Node and its subtree are safe for concurrent reads (Read, LookupByID,
// LookupByName, codec encode). Concurrent Write calls, or a Write
// concurrent with AddChild/Build, are not synchronized by this package —
// callers serialize writes externally, the same contract the source this
// is modeled on assumes of its caller.
//
// # Related Packages
//
//   - github.com/joshuapare/paramkit/codec/tlv: binary TLV wire codec
//   - github.com/joshuapare/paramkit/codec/stream: length-prefixed submessage codec
//   - github.com/joshuapare/paramkit/codec/schema: JSON schema codec
//   - github.com/joshuapare/paramkit/codec/text: human-readable text codec
package param
