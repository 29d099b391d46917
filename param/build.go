package param

import "fmt"

// NewGroup creates a Group node with the given id, name/description, and
// shift (the number of high-order GlobalID bits this level consumes, §3).
// Children are attached with AddChild and the tree is validated once, with
// Build, before it is handed to a caller.
func NewGroup(globalID uint32, name, description string, shift uint) *Node {
	return &Node{
		Kind:        Group,
		GlobalID:    globalID,
		Name:        name,
		Description: description,
		Shift:       shift,
	}
}

// NewScalar creates a Scalar leaf. storage may be nil only if an IO
// extension is supplied in exts (Invariant: storage is owned unless every
// read/write is serviced by an IO extension).
func NewScalar(globalID uint32, name, description string, kind Kind, width int, flags AccessFlags, storage []byte, exts ...Extension) (*Node, error) {
	if err := checkElementWidth(kind, width); err != nil {
		return nil, err
	}
	if storage != nil && len(storage) != width {
		return nil, fmt.Errorf("param: scalar %q storage is %d bytes, want %d", name, len(storage), width)
	}
	if storage == nil && !hasIO(exts) {
		return nil, fmt.Errorf("param: scalar %q has no storage and no IO extension", name)
	}
	return &Node{
		Kind: Scalar, GlobalID: globalID, Name: name, Description: description,
		ElementKind: kind, ElementWidth: width, MaxElements: 1, Flags: flags,
		storage: storage, extensions: exts,
	}, nil
}

// NewFixedArray creates a FixedArray leaf of exactly maxElements elements
// (Invariant 3: storage_bytes = max_elements * element_width).
func NewFixedArray(globalID uint32, name, description string, kind Kind, width, maxElements int, flags AccessFlags, storage []byte, exts ...Extension) (*Node, error) {
	if err := checkElementWidth(kind, width); err != nil {
		return nil, err
	}
	if maxElements <= 0 {
		return nil, fmt.Errorf("param: fixed array %q needs max_elements > 0", name)
	}
	want := width * maxElements
	if storage != nil && len(storage) != want {
		return nil, fmt.Errorf("param: fixed array %q storage is %d bytes, want %d", name, len(storage), want)
	}
	if storage == nil && !hasIO(exts) {
		return nil, fmt.Errorf("param: fixed array %q has no storage and no IO extension", name)
	}
	return &Node{
		Kind: FixedArray, GlobalID: globalID, Name: name, Description: description,
		ElementKind: kind, ElementWidth: width, MaxElements: maxElements, Flags: flags,
		storage: storage, extensions: exts,
	}, nil
}

// NewVector creates a Vector leaf of up to maxElements elements (Invariant
// 2: storage_bytes >= 2 + max_elements*element_width, the leading 2 bytes
// being the element-count header).
func NewVector(globalID uint32, name, description string, kind Kind, width, maxElements int, flags AccessFlags, storage []byte, exts ...Extension) (*Node, error) {
	if err := checkElementWidth(kind, width); err != nil {
		return nil, err
	}
	if maxElements <= 0 {
		return nil, fmt.Errorf("param: vector %q needs max_elements > 0", name)
	}
	need := vectorHeaderSize + width*maxElements
	if storage != nil && len(storage) < need {
		return nil, fmt.Errorf("param: vector %q storage is %d bytes, want at least %d", name, len(storage), need)
	}
	if storage == nil && !hasIO(exts) {
		return nil, fmt.Errorf("param: vector %q has no storage and no IO extension", name)
	}
	return &Node{
		Kind: Vector, GlobalID: globalID, Name: name, Description: description,
		ElementKind: kind, ElementWidth: width, MaxElements: maxElements, Flags: flags,
		storage: storage, extensions: exts,
	}, nil
}

func checkElementWidth(kind Kind, width int) error {
	if kind == Custom {
		if width <= 0 {
			return fmt.Errorf("param: custom kind requires an explicit width > 0")
		}
		return nil
	}
	if width != kind.width() {
		return fmt.Errorf("param: element width %d does not match %s (want %d)", width, kind, kind.width())
	}
	return nil
}

func hasIO(exts []Extension) bool {
	for _, e := range exts {
		if e.Kind() == ExtIO {
			return true
		}
	}
	return false
}

// AddChild attaches child under parent, which must be a Group. It does not
// itself validate id-prefix or name-uniqueness invariants — call Build once
// the whole tree is assembled to do that in one pass.
func AddChild(parent, child *Node) error {
	if parent == nil || parent.Kind != Group {
		return fmt.Errorf("param: AddChild: parent %q is not a group", nameOf(parent))
	}
	if child == nil {
		return fmt.Errorf("param: AddChild: nil child")
	}
	child.parent = parent
	parent.Children = append(parent.Children, child)
	return nil
}

func nameOf(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// Build validates the assembled tree rooted at root against Invariants 4
// and 6 before it is handed to a caller: every descendant's GlobalID must
// share its group's id prefix, and sibling names must be unique. This
// fails construction outright rather than letting a malformed tree exist,
// per the fragile-id-prefix note in the redesign flags. A WithLogger option
// receives the failure on the error path only; Build never logs on success.
func Build(root *Node, opts ...Option) (*Node, error) {
	o := resolveOptions(opts)

	if root == nil || root.Kind != Group {
		err := fmt.Errorf("param: Build: root must be a group")
		o.log.Errorf("param: build failed: %v", err)
		return nil, err
	}
	if err := validateSubtree(root, 0); err != nil {
		o.log.Errorf("param: build failed: %v", err)
		return nil, err
	}
	return root, nil
}

// validateSubtree checks g's children against the prefix g itself was
// routed under (ancestorShift: the cumulative shift of everything above g,
// not including g's own shift). g's own shift is exactly what partitions
// its children from each other, so it must not be folded into the mask
// used to check them — that partitioning is what lets two children share
// a group (e.g. ids 0x10000000 and 0x20000000 under a root with shift=0)
// while still being validly grouped. g's own shift only becomes part of
// the ancestor prefix one level down, for g's children's own children.
func validateSubtree(g *Node, ancestorShift uint) error {
	m := prefixMask(ancestorShift)

	seen := make(map[string]bool, len(g.Children))
	for _, child := range g.Children {
		if seen[child.Name] {
			return fmt.Errorf("param: group %q has duplicate child name %q", g.Name, child.Name)
		}
		seen[child.Name] = true

		if child.GlobalID&m != g.GlobalID&m {
			return fmt.Errorf("param: child %q (id 0x%08x) does not share group %q's id prefix (shift=%d)",
				child.Name, child.GlobalID, g.Name, ancestorShift)
		}

		if child.Kind == Group {
			if err := validateSubtree(child, ancestorShift+g.Shift); err != nil {
				return err
			}
		}
	}
	return nil
}
