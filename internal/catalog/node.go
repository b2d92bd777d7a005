// Package catalog turns a tree of namespaced device commands into a flat,
// schema-annotated tool catalog for LLM function calling, and resolves a
// flat tool name back to the operation it came from.
//
// The tree is assembled explicitly: each device client registers its
// operations on a Node, binding an invoke closure at construction time.
// The catalog never reflects over objects and never mutates the tree.
package catalog

import "context"

// Type is the JSON Schema type tag recorded for a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

// Param describes one parameter of an operation, in signature order.
type Param struct {
	// Name is the parameter name, unique within the operation.
	Name string
	// Type is the schema type tag. An empty Type means string — parameters
	// without a portable type degrade to string rather than failing.
	Type Type
	// Optional marks a parameter that has a default value. Optional
	// parameters are left out of the schema's required list.
	Optional bool
}

// InvokeFunc executes an operation with agent-supplied arguments. Argument
// validation against the tool schema is the caller's job; invocation errors
// are returned untouched.
type InvokeFunc func(ctx context.Context, args map[string]any) (any, error)

// Operation is one invokable command registered on a Node.
//
// Names starting with "_" are internal: they are skipped during compilation
// and cannot be resolved by flat name.
type Operation struct {
	Name   string
	Doc    string
	Params []Param
	Invoke InvokeFunc
}

// Node is a named region of the command tree. A Node owns zero or more
// operations and zero or more child Nodes, both kept in registration order
// so compiled catalogs are stable across runs.
//
// Invariants (enforced by Compile, which fails with ErrSchemaConflict when
// violated): sibling children have distinct segments, and operations within
// one node have distinct names.
type Node struct {
	segment  string
	ops      []*Operation
	children []*Node
}

// NewNode creates a node labeled with the given path segment. The root of a
// tree may use an empty segment; such a node contributes no prefix element
// and exists only to hold top-level children.
func NewNode(segment string, ops ...*Operation) *Node {
	return &Node{segment: segment, ops: ops}
}

// Segment returns the node's path segment.
func (n *Node) Segment() string {
	return n.segment
}

// Add registers an operation and returns the node for chaining.
func (n *Node) Add(op *Operation) *Node {
	n.ops = append(n.ops, op)
	return n
}

// AddChild mounts a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// Operations returns the node's operations in registration order.
func (n *Node) Operations() []*Operation {
	return n.ops
}

// Children returns the node's children in registration order.
func (n *Node) Children() []*Node {
	return n.children
}

// op returns the named operation, or nil.
func (n *Node) op(name string) *Operation {
	for _, o := range n.ops {
		if o.Name == name {
			return o
		}
	}
	return nil
}
