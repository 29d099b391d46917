// Package stream implements the length-prefixed submessage codec (§4.8):
// each parameter is framed as { 1: varint id, 2: length-delimited data },
// and a collection is a repeated sequence of such submessages. Framing
// itself is delegated to protowire, the external varint/tag/length-delimited
// primitive §6 calls out — this package only pins the payload contract.
package stream

import (
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/joshuapare/paramkit/param"
)

// outerField is the field number every submessage occupies in the
// collection-level repeated field. innerIDField/innerDataField are the
// submessage's own two fields per §6.
const (
	outerField     protowire.Number = 1
	innerIDField   protowire.Number = 1
	innerDataField protowire.Number = 2
)

// Encode appends node's submessage(s) to buf and returns the extended
// slice. A Group recurses pre-order over its leaf descendants, matching
// the TLV codec's ordering; a leaf contributes exactly one submessage.
func Encode(node *param.Node, buf []byte, g param.AccessGroup) ([]byte, error) {
	if node == nil {
		return buf, param.CodeInvalidArgument.Err("stream encode: nil node")
	}

	if node.Kind == param.Group {
		for _, child := range node.Children {
			var err error
			buf, err = Encode(child, buf, g)
			if err != nil {
				return buf, err
			}
		}
		return buf, nil
	}

	payload := make([]byte, node.MaxDataSize())
	n, err := param.ReadIntoBuffer(node, payload, g)
	if err != nil {
		return buf, err
	}
	payload = payload[:n]

	var inner []byte
	inner = protowire.AppendTag(inner, innerIDField, protowire.VarintType)
	inner = protowire.AppendVarint(inner, uint64(node.GlobalID))
	inner = protowire.AppendTag(inner, innerDataField, protowire.BytesType)
	inner = protowire.AppendBytes(inner, payload)

	buf = protowire.AppendTag(buf, outerField, protowire.BytesType)
	buf = protowire.AppendBytes(buf, inner)
	return buf, nil
}

// Decode reads submessages from buf until it is exhausted, resolving each
// by id from root and writing its payload, gated by g. A malformed
// submessage or an unresolved id aborts the whole decode and returns that
// error — per §9, a failed mid-stream decode fails the entire collection,
// it is never silently swallowed.
func Decode(root *param.Node, buf []byte, g param.AccessGroup) (int, error) {
	total := len(buf)
	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 || num != outerField || typ != protowire.BytesType {
			return 0, param.CodeSizeMismatch.Err("stream decode: malformed submessage tag")
		}
		buf = buf[n:]

		inner, n := protowire.ConsumeBytes(buf)
		if n < 0 {
			return 0, param.CodeSizeMismatch.Err("stream decode: malformed submessage length")
		}
		buf = buf[n:]

		id, data, err := decodeInner(inner)
		if err != nil {
			return 0, err
		}

		target := param.LookupParameterByID(root, id)
		if target == nil {
			return 0, param.CodeParameterNotFound.Err("stream decode: no parameter with the given id")
		}
		if _, err := param.Write(target, data, g); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func decodeInner(inner []byte) (uint32, []byte, error) {
	num, typ, n := protowire.ConsumeTag(inner)
	if n < 0 || num != innerIDField || typ != protowire.VarintType {
		return 0, nil, param.CodeSizeMismatch.Err("stream decode: malformed id field")
	}
	inner = inner[n:]

	id, n := protowire.ConsumeVarint(inner)
	if n < 0 {
		return 0, nil, param.CodeSizeMismatch.Err("stream decode: malformed id varint")
	}
	inner = inner[n:]

	num, typ, n = protowire.ConsumeTag(inner)
	if n < 0 || num != innerDataField || typ != protowire.BytesType {
		return 0, nil, param.CodeSizeMismatch.Err("stream decode: malformed data field")
	}
	inner = inner[n:]

	data, n := protowire.ConsumeBytes(inner)
	if n < 0 {
		return 0, nil, param.CodeSizeMismatch.Err("stream decode: malformed data bytes")
	}

	return uint32(id), data, nil
}

// EncodeToFile writes node's encoded submessages to path, truncating any
// existing file. The file handle is scoped to the call (§5 resource
// ownership: I/O).
func EncodeToFile(node *param.Node, path string, g param.AccessGroup) error {
	buf, err := Encode(node, nil, g)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return param.CodeFileNotFound.Wrap("stream encode to file: create "+path, err)
	}
	defer f.Close()

	if _, err := f.Write(buf); err != nil {
		return param.CodeError.Wrap("stream encode to file: write "+path, err)
	}
	return nil
}

// DecodeFromFile reads path in full and decodes its submessages into root,
// gated by g. The file handle is scoped to the call.
func DecodeFromFile(root *param.Node, path string, g param.AccessGroup) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, param.CodeFileNotFound.Wrap("stream decode from file: open "+path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return 0, param.CodeError.Wrap("stream decode from file: read "+path, err)
	}
	return Decode(root, buf, g)
}
