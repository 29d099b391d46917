package param

import "fmt"

// Kind is the closed enumeration of element kinds a Node's storage can hold.
type Kind uint8

const (
	Bool Kind = iota
	Hex8 // semantically U8, rendered in base 16
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Char
	Custom // width is caller-supplied; no implicit conversion
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Hex8:
		return "hex8"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case Char:
		return "char"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// width returns the fixed byte width implied by kind, or 0 for Custom, whose
// width is never implied and must be supplied explicitly by the caller that
// builds the Node.
func (k Kind) width() int {
	switch k {
	case Bool, Hex8, U8, I8, Char:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	default:
		return 0
	}
}

// IsNumeric reports whether kind participates in the numeric carrier
// conversions of Invariant 1 / §4.2. Char and Custom do not.
func (k Kind) IsNumeric() bool {
	switch k {
	case Bool, Hex8, U8, U16, U32, U64, I8, I16, I32, I64, F32, F64:
		return true
	default:
		return false
	}
}

// NodeKind is the closed enumeration of tree-node shapes.
type NodeKind uint8

const (
	Scalar NodeKind = iota
	FixedArray
	Vector
	Group
)

func (k NodeKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case FixedArray:
		return "fixed_array"
	case Vector:
		return "vector"
	case Group:
		return "group"
	default:
		return fmt.Sprintf("node_kind(%d)", uint8(k))
	}
}
