package param

// ExtensionKind distinguishes the three extension roles. Represented as a
// Go tagged sum (interface + Kind tag), never an untyped pointer cast by an
// out-of-band type field — the redesign §9 calls for over the source's
// linked list of void* ops.
type ExtensionKind uint8

const (
	ExtValidate ExtensionKind = iota
	ExtIO
	ExtStringCodec
)

// Extension is one link in a node's extension chain (§3 "Extension
// record"). Exactly one of ValidateExtension, IOExtension, or
// StringCodecExtension satisfies it for any given value.
type Extension interface {
	Kind() ExtensionKind
}

// ValidateFunc inspects a prospective write before it reaches storage or an
// IO extension. A non-nil error aborts the write; Validate never mutates
// storage itself.
type ValidateFunc func(n *Node, data []byte, g AccessGroup) error

// ValidateExtension rejects writes that fail a domain check.
type ValidateExtension struct {
	Validate ValidateFunc
}

func (ValidateExtension) Kind() ExtensionKind { return ExtValidate }

// IOReadFunc/IOWriteFunc fully replace the pipeline's default memcpy for a
// node when an IO extension is present (§4.3).
type IOReadFunc func(n *Node, out []byte, g AccessGroup) (int, error)
type IOWriteFunc func(n *Node, in []byte, g AccessGroup) (int, error)

// IOExtension is the authoritative read/write implementation for a node,
// in place of a direct copy against its own storage.
type IOExtension struct {
	Read  IOReadFunc
	Write IOWriteFunc
}

func (IOExtension) Kind() ExtensionKind { return ExtIO }

// TextEncodeFunc/TextDecodeFunc implement Custom-kind text rendering; only
// the text front end (codec/text) ever consults a StringCodecExtension.
type TextEncodeFunc func(n *Node, data []byte) (string, error)
type TextDecodeFunc func(n *Node, s string, data []byte) error

// StringCodecExtension formats/parses Custom-kind elements as text.
type StringCodecExtension struct {
	Encode TextEncodeFunc
	Decode TextDecodeFunc
}

func (StringCodecExtension) Kind() ExtensionKind { return ExtStringCodec }

// NewRangeValidator builds the reference Validate extension from §4.3: it
// fails with CodeValidation when the carried float falls strictly outside
// [min, max], accepting the bounds themselves.
func NewRangeValidator(min, max float64) Extension {
	return ValidateExtension{Validate: func(n *Node, data []byte, _ AccessGroup) error {
		v, err := EncodeToFloat(n.ElementKind, data)
		if err != nil {
			return err
		}
		if v < min || v > max {
			return newErr(CodeValidation, "value out of range for "+n.Name, nil)
		}
		return nil
	}}
}

// NewMappedScalarIO builds the reference IO extension from §4.3: a scalar
// whose value is read as scale*ref+offset and whose writes solve back for
// ref := (v-offset)/scale, with both directions routed through the
// numeric carrier on both this node's kind and the reference node's kind.
func NewMappedScalarIO(ref *Node, scale, offset float64) Extension {
	read := func(n *Node, out []byte, g AccessGroup) (int, error) {
		refBytes := ref.rawStorage()[ref.payloadOffset() : ref.payloadOffset()+ref.ElementWidth]
		refVal, err := EncodeToFloat(ref.ElementKind, refBytes)
		if err != nil {
			return 0, err
		}
		v := refVal*scale + offset
		if err := DecodeFromFloat(n.ElementKind, out, v); err != nil {
			return 0, err
		}
		return n.ElementWidth, nil
	}
	write := func(n *Node, in []byte, g AccessGroup) (int, error) {
		v, err := EncodeToFloat(n.ElementKind, in)
		if err != nil {
			return 0, err
		}
		refVal := (v - offset) / scale
		refBytes := ref.rawStorage()[ref.payloadOffset() : ref.payloadOffset()+ref.ElementWidth]
		if err := DecodeFromFloat(ref.ElementKind, refBytes, refVal); err != nil {
			return 0, err
		}
		return len(in), nil
	}
	return IOExtension{Read: read, Write: write}
}
