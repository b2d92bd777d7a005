package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// NoDescription is the description recorded for operations without one. The
// catalog consumer always receives a complete descriptor, so missing docs
// degrade to this sentinel instead of failing.
const NoDescription = "No description available."

// internalMarker prefixes operation names that never become tools.
const internalMarker = "_"

// ErrSchemaConflict reports that two operations flattened to the same tool
// name, or that sibling nodes share a segment. The compile that detected it
// fails as a whole; conflicts are never resolved silently.
var ErrSchemaConflict = errors.New("schema conflict")

// Property is the schema entry for one parameter.
type Property struct {
	Type        Type   `json:"type"`
	Description string `json:"description"`
}

// Schema is the object-shaped parameter schema of a tool. It is a closed
// contract: additionalProperties is always false, so callers may not pass
// parameters the operation doesn't declare.
type Schema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

// Tool is one entry of the compiled catalog: a globally unique flat name, a
// human-readable description, and the parameter schema derived from the
// operation's registered signature.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Schema      Schema `json:"parameters"`
}

// Compile walks the tree depth-first and returns one Tool per non-internal
// operation. A node's own operations come before its children's, both in
// registration order, so two compiles of an unchanged tree produce identical
// catalogs in identical order.
//
// Flat names are the node's dotted path joined to the operation name with
// "_": an operation "get_roots" on the node reached via "server" → "files"
// becomes "server.files_get_roots".
func Compile(root *Node) ([]Tool, error) {
	var tools []Tool
	seen := make(map[string]struct{})

	var walk func(n *Node, path []string) error
	walk = func(n *Node, path []string) error {
		prefix := joinPrefix(path)
		for _, op := range n.ops {
			if strings.HasPrefix(op.Name, internalMarker) {
				continue
			}
			name := prefix + op.Name
			if _, dup := seen[name]; dup {
				return fmt.Errorf("catalog: tool %q registered twice: %w", name, ErrSchemaConflict)
			}
			seen[name] = struct{}{}
			tools = append(tools, describe(name, op))
		}

		segments := make(map[string]struct{}, len(n.children))
		for _, child := range n.children {
			if _, dup := segments[child.segment]; dup {
				return fmt.Errorf("catalog: sibling segment %q registered twice under %q: %w",
					child.segment, prefix, ErrSchemaConflict)
			}
			segments[child.segment] = struct{}{}
			if err := walk(child, childPath(path, child)); err != nil {
				return err
			}
		}
		return nil
	}

	start := make([]string, 0, 4)
	if root.segment != "" {
		start = append(start, root.segment)
	}
	if err := walk(root, start); err != nil {
		return nil, err
	}
	return tools, nil
}

// describe builds the descriptor for one operation.
func describe(name string, op *Operation) Tool {
	doc := strings.TrimSpace(op.Doc)
	if doc == "" {
		doc = NoDescription
	}

	schema := Schema{
		Type:       "object",
		Properties: make(map[string]Property, len(op.Params)),
		Required:   []string{},
	}
	for _, p := range op.Params {
		typ := p.Type
		if typ == "" {
			typ = TypeString
		}
		schema.Properties[p.Name] = Property{
			Type:        typ,
			Description: "Parameter " + p.Name,
		}
		if !p.Optional {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return Tool{Name: name, Description: doc, Schema: schema}
}

// joinPrefix turns a node path into a flat-name prefix: path segments joined
// with "." plus the trailing "_" separator. An empty path (unnamed root)
// yields an empty prefix.
func joinPrefix(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return strings.Join(path, ".") + "_"
}

// childPath appends the child's segment without aliasing the parent's slice.
func childPath(path []string, child *Node) []string {
	next := make([]string, len(path), len(path)+1)
	copy(next, path)
	return append(next, child.segment)
}
