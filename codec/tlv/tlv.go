// Package tlv implements the binary TLV wire codec (§4.7): a flat
// concatenation of { id u32, length u16, payload } frames, little-endian,
// packed, no padding. Groups emit no frame of their own — the hierarchy is
// reconstructed at decode time from the id prefix scheme in param.LookupByID.
package tlv

import (
	"github.com/joshuapare/paramkit/internal/wire"
	"github.com/joshuapare/paramkit/param"
)

// headerSize is the width of a frame's {id, length} header.
const headerSize = 6

// Encode writes node's TLV frame(s) into buf, gated by g, and returns the
// number of bytes written.
//
// For a leaf, the frame is { id, length, ReadIntoBuffer(node) }. For a
// Group, it is the concatenation of every child's encoding in left-to-right
// order; the total is the sum of successful frame lengths. A child failure
// aborts the whole encode and propagates that error — bytes already written
// to buf are not rolled back (§7). A leaf whose buffer cannot hold the
// header plus its MaxDataSize fails with CodeSizeMismatch.
func Encode(node *param.Node, buf []byte, g param.AccessGroup) (int, error) {
	if node == nil {
		return 0, param.CodeInvalidArgument.Err("encode: nil node")
	}

	if node.Kind == param.Group {
		off := 0
		for _, child := range node.Children {
			n, err := Encode(child, buf[off:], g)
			if err != nil {
				return 0, err
			}
			off += n
		}
		return off, nil
	}

	if len(buf) < headerSize {
		return 0, param.CodeSizeMismatch.Err("encode: buffer shorter than frame header")
	}
	if len(buf) < headerSize+node.MaxDataSize() {
		return 0, param.CodeSizeMismatch.Err("encode: buffer shorter than frame")
	}

	n, err := param.ReadIntoBuffer(node, buf[headerSize:], g)
	if err != nil {
		return 0, err
	}

	wire.PutU32(buf, 0, node.GlobalID)
	wire.PutU16(buf, 4, uint16(n))
	return headerSize + n, nil
}

// Decode consumes frames sequentially from buf, resolving each by id from
// root (§4.5) and writing its payload, gated by g. It returns the total
// number of bytes consumed. An id not found under root, or a malformed
// frame, aborts decoding and surfaces that error immediately (§7, §9: a
// failed frame must fail the whole decode, never be swallowed).
func Decode(root *param.Node, buf []byte, g param.AccessGroup) (int, error) {
	off := 0
	for off < len(buf) {
		remaining := buf[off:]
		if len(remaining) < headerSize {
			return 0, param.CodeSizeMismatch.Err("decode: buffer shorter than frame header")
		}

		id := wire.ReadU32(remaining, 0)
		length := int(wire.ReadU16(remaining, 4))
		if len(remaining) < headerSize+length {
			return 0, param.CodeSizeMismatch.Err("decode: buffer shorter than declared frame length")
		}

		target := param.LookupParameterByID(root, id)
		if target == nil {
			return 0, param.CodeParameterNotFound.Err("decode: no parameter with the given id")
		}

		payload := remaining[headerSize : headerSize+length]
		if _, err := param.Write(target, payload, g); err != nil {
			return 0, err
		}

		off += headerSize + length
	}
	return off, nil
}
