package param

// AccessGroup identifies the external identity requesting an operation.
// There are six mutually exclusive external groups (0..5) plus the
// distinguished Internal group, which always passes every check.
type AccessGroup uint8

const (
	Internal AccessGroup = iota
	Group0
	Group1
	Group2
	Group3
	Group4
	Group5
)

const maxAccessGroup = Group5

// accessBitsPerGroup is the number of operation bits reserved per group in
// the flags bitfield (Read, Write, LogWrite).
const accessBitsPerGroup = 3

// Op is one of the three operations gated by access control.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
	OpLogWrite
)

// AccessFlags is the 18-bit access matrix (3 operation bits * 6 groups)
// packed into a node's flags field. Bit layout per group g, operation op:
//
//	bit index = g*3 + op   (g is 0-based over Group0..Group5)
type AccessFlags uint32

// mask returns the single bit selecting operation op within group g's
// 3-bit slot. Internal is never encoded in the bitfield: it always passes
// regardless of flags (see Allowed).
func mask(g AccessGroup, op Op) AccessFlags {
	if g == Internal {
		return 0
	}
	slot := uint(g-1) * accessBitsPerGroup
	return AccessFlags(1) << (slot + uint(op))
}

// Grant returns flags with (g, op) permitted, in addition to whatever was
// already set in flags. Internal is a no-op: it is always allowed.
func (flags AccessFlags) Grant(g AccessGroup, op Op) AccessFlags {
	return flags | mask(g, op)
}

// GrantAll grants every operation in ops to group g.
func (flags AccessFlags) GrantAll(g AccessGroup, ops ...Op) AccessFlags {
	for _, op := range ops {
		flags = flags.Grant(g, op)
	}
	return flags
}

// Allowed reports whether group g may perform op given flags. Internal
// always passes; every other group requires its bit set.
func Allowed(flags AccessFlags, g AccessGroup, op Op) bool {
	if g == Internal {
		return true
	}
	return flags&mask(g, op) != 0
}

// validateAccess is the gate every pipeline operation calls before touching
// storage. It returns a *Error with CodePermissionDenied when denied, nil
// when allowed.
func validateAccess(n *Node, g AccessGroup, op Op) error {
	if !Allowed(n.Flags, g, op) {
		return newErr(CodePermissionDenied,
			"access denied for "+n.Name+" group="+groupName(g)+" op="+opName(op), nil)
	}
	return nil
}

func groupName(g AccessGroup) string {
	switch g {
	case Internal:
		return "internal"
	case Group0:
		return "group0"
	case Group1:
		return "group1"
	case Group2:
		return "group2"
	case Group3:
		return "group3"
	case Group4:
		return "group4"
	case Group5:
		return "group5"
	default:
		return "group?"
	}
}

func opName(op Op) string {
	switch op {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpLogWrite:
		return "log_write"
	default:
		return "op?"
	}
}
