package param

import (
	"math"

	"github.com/joshuapare/paramkit/internal/wire"
)

// EncodeToFloat reinterprets the first width(kind) bytes of data as a
// canonical float64 carrier (§4.2). Bool round-trips through 0.0/non-zero.
// Non-numeric kinds (Char, Custom) fail with CodeNotSupported.
//
// This module specifies exactly one success convention: a nil error means
// success, full stop. The source this is modeled on returns the element
// width for some kinds and ODIN_SUCCESS (0) for others from the equivalent
// call — that inconsistency is not ported.
func EncodeToFloat(kind Kind, data []byte) (float64, error) {
	if !kind.IsNumeric() {
		return 0, newErr(CodeNotSupported, "kind "+kind.String()+" has no numeric carrier", nil)
	}
	if len(data) < kind.width() {
		return 0, newErr(CodeSizeMismatch, "carrier source too short for "+kind.String(), nil)
	}
	switch kind {
	case Bool:
		if data[0] != 0 {
			return 1, nil
		}
		return 0, nil
	case Hex8, U8:
		return float64(data[0]), nil
	case I8:
		return float64(int8(data[0])), nil
	case U16:
		return float64(wire.ReadU16(data, 0)), nil
	case I16:
		return float64(int16(wire.ReadU16(data, 0))), nil
	case U32:
		return float64(wire.ReadU32(data, 0)), nil
	case I32:
		return float64(int32(wire.ReadU32(data, 0))), nil
	case U64:
		return float64(wire.ReadU64(data, 0)), nil
	case I64:
		return float64(int64(wire.ReadU64(data, 0))), nil
	case F32:
		return float64(math.Float32frombits(wire.ReadU32(data, 0))), nil
	case F64:
		return math.Float64frombits(wire.ReadU64(data, 0)), nil
	default:
		return 0, newErr(CodeNotSupported, "kind "+kind.String()+" has no numeric carrier", nil)
	}
}

// DecodeFromFloat performs the truncating cast from the canonical carrier
// back into data, per §4.2.
func DecodeFromFloat(kind Kind, data []byte, f float64) error {
	if !kind.IsNumeric() {
		return newErr(CodeNotSupported, "kind "+kind.String()+" has no numeric carrier", nil)
	}
	if len(data) < kind.width() {
		return newErr(CodeSizeMismatch, "carrier destination too short for "+kind.String(), nil)
	}
	switch kind {
	case Bool:
		if f != 0 {
			data[0] = 1
		} else {
			data[0] = 0
		}
	case Hex8, U8:
		data[0] = byte(uint8(f))
	case I8:
		data[0] = byte(int8(f))
	case U16:
		wire.PutU16(data, 0, uint16(f))
	case I16:
		wire.PutU16(data, 0, uint16(int16(f)))
	case U32:
		wire.PutU32(data, 0, uint32(f))
	case I32:
		wire.PutU32(data, 0, uint32(int32(f)))
	case U64:
		wire.PutU64(data, 0, uint64(f))
	case I64:
		wire.PutU64(data, 0, uint64(int64(f)))
	case F32:
		wire.PutU32(data, 0, math.Float32bits(float32(f)))
	case F64:
		wire.PutU64(data, 0, math.Float64bits(f))
	default:
		return newErr(CodeNotSupported, "kind "+kind.String()+" has no numeric carrier", nil)
	}
	return nil
}
