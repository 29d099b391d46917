// Package text implements the human-readable text codec (§4.10): per-kind
// element formatting, bracketed list rendering for vectors/arrays with
// truncation, and Scalar-only parsing back from text.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/paramkit/param"
)

// truncationMargin is the minimum slack (in bytes) encode_to_text reserves
// before it gives up on the next element and emits "..." instead (§4.10).
const truncationMargin = 10

// ElementToText formats a single element of kind k read from data. Custom
// delegates to n's StringCodec extension; its absence is NotSupported.
func ElementToText(n *param.Node, k param.Kind, data []byte) (string, error) {
	switch k {
	case param.Bool:
		if data[0] != 0 {
			return "true", nil
		}
		return "false", nil
	case param.Hex8:
		return fmt.Sprintf("0x%02x", data[0]), nil
	case param.Char:
		return decodeChar(data[0]), nil
	case param.Custom:
		sc, ok := n.StringCodec()
		if !ok || sc.Encode == nil {
			return "", param.CodeNotSupported.Err("element to text: custom kind has no string codec extension")
		}
		return sc.Encode(n, data)
	}

	if k.IsNumeric() {
		v, err := param.EncodeToFloat(k, data)
		if err != nil {
			return "", err
		}
		if k == param.F32 || k == param.F64 {
			return fmt.Sprintf("%f", v), nil
		}
		return strconv.FormatInt(int64(v), 10), nil
	}

	return "", param.CodeNotSupported.Err("element to text: unsupported kind " + k.String())
}

// decodeChar renders a single raw byte as text, treating 0x80-0xFF as
// Windows-1252 (matching the teacher's legacy 8-bit name decoding).
func decodeChar(b byte) string {
	if b < 0x80 {
		return string(rune(b))
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes([]byte{b})
	if err != nil || len(decoded) == 0 {
		return string(rune(b))
	}
	return string(decoded)
}

// EncodeToText renders node's current value as text, gated by g. Scalars
// render one element; char vectors/arrays render a quoted string; other
// vectors/arrays render a bracketed, comma-separated list, truncated with
// "..." once fewer than truncationMargin bytes of the output budget remain.
func EncodeToText(n *param.Node, maxLen int, g param.AccessGroup) (string, error) {
	if n == nil {
		return "", param.CodeInvalidArgument.Err("encode to text: nil node")
	}

	buf := make([]byte, n.MaxDataSize())
	read, err := param.ReadIntoBuffer(n, buf, g)
	if err != nil {
		return "", err
	}
	buf = buf[:read]

	if n.Kind == param.Scalar {
		return ElementToText(n, n.ElementKind, buf)
	}

	count := read / n.ElementWidth
	if n.ElementKind == param.Char {
		return encodeCharSequence(buf, count, maxLen)
	}
	return encodeBracketedList(n, buf, count, maxLen)
}

func encodeCharSequence(buf []byte, count, maxLen int) (string, error) {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < count; i++ {
		b.WriteString(decodeChar(buf[i]))
		if maxLen > 0 && b.Len() >= maxLen-2 { // leave room for closing quote + NUL
			break
		}
	}
	b.WriteByte('"')
	out := b.String()
	if maxLen > 0 && len(out)+1 > maxLen {
		out = out[:maxLen-1]
	}
	return out, nil
}

func encodeBracketedList(n *param.Node, buf []byte, count, maxLen int) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < count; i++ {
		elem, err := ElementToText(n, n.ElementKind, buf[i*n.ElementWidth:(i+1)*n.ElementWidth])
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}

		if maxLen > 0 && b.Len()+len(elem)+1 > maxLen-truncationMargin && i < count-1 {
			b.WriteString("...")
			b.WriteByte(']')
			return b.String(), nil
		}
		b.WriteString(elem)
	}
	b.WriteByte(']')
	return b.String(), nil
}

// DecodeFromText parses in as one element of n's kind and writes it via the
// pipeline, gated by g. Only Scalar nodes are supported (§4.10); anything
// else is NotSupported.
func DecodeFromText(n *param.Node, in string, g param.AccessGroup) error {
	if n == nil {
		return param.CodeInvalidArgument.Err("decode from text: nil node")
	}
	if n.Kind != param.Scalar {
		return param.CodeNotSupported.Err("decode from text: only scalars support text decode")
	}

	data := make([]byte, n.ElementWidth)
	if err := decodeElement(n, in, data); err != nil {
		return err
	}

	_, err := param.Write(n, data, g)
	return err
}

func decodeElement(n *param.Node, in string, data []byte) error {
	switch n.ElementKind {
	case param.Bool:
		switch strings.TrimSpace(in) {
		case "true":
			data[0] = 1
		case "false":
			data[0] = 0
		default:
			return param.CodeInvalidArgument.Err("decode from text: invalid bool literal " + in)
		}
		return nil
	case param.Hex8:
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(in), "0x"), 16, 8)
		if err != nil {
			return param.CodeInvalidArgument.Wrap("decode from text: invalid hex8 literal "+in, err)
		}
		data[0] = byte(v)
		return nil
	case param.Char:
		trimmed := strings.TrimSpace(in)
		if len(trimmed) == 0 {
			return param.CodeInvalidArgument.Err("decode from text: empty char literal")
		}
		data[0] = trimmed[0]
		return nil
	case param.Custom:
		sc, ok := n.StringCodec()
		if !ok || sc.Decode == nil {
			return param.CodeNotSupported.Err("decode from text: custom kind has no string codec extension")
		}
		return sc.Decode(n, in, data)
	}

	if n.ElementKind.IsNumeric() {
		f, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
		if err != nil {
			return param.CodeInvalidArgument.Wrap("decode from text: invalid numeric literal "+in, err)
		}
		return param.DecodeFromFloat(n.ElementKind, data, f)
	}

	return param.CodeNotSupported.Err("decode from text: unsupported kind " + n.ElementKind.String())
}
