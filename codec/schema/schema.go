// Package schema produces the JSON schema object form of a parameter tree
// (§4.9): groups recurse as nested objects, leaves become name → global_id
// entries. No access gating beyond argument validity is applied — this
// codec publishes structure, not values.
package schema

import (
	"encoding/json"

	"github.com/joshuapare/paramkit/param"
)

// Encode renders the subtree rooted at node as indented JSON. node itself
// is not wrapped in an outer object keyed by its own name — callers that
// want the root's name as a key should do so themselves; every other Group
// in the tree is keyed by its name as held in its parent's Children slice
// (§9: shadowing resolution — the parent's view of the child's name wins).
func Encode(node *param.Node) ([]byte, error) {
	if node == nil {
		return nil, param.CodeInvalidArgument.Err("schema encode: nil node")
	}
	tree, err := buildTree(node)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, param.CodeError.Wrap("schema encode: marshal failed", err)
	}
	return out, nil
}

// buildTree returns a JSON-marshalable value for node: a map keyed by each
// child's own name for a Group, or node's bare GlobalID for a leaf.
func buildTree(node *param.Node) (any, error) {
	if node.Kind != param.Group {
		return node.GlobalID, nil
	}

	obj := make(map[string]any, len(node.Children))
	for _, child := range node.Children {
		v, err := buildTree(child)
		if err != nil {
			return nil, err
		}
		obj[child.Name] = v
	}
	return obj, nil
}
