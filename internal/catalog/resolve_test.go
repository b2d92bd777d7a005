package catalog

import (
	"errors"
	"testing"
)

func TestResolve_RoundTrip(t *testing.T) {
	tree := fixtureTree()
	tools, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, tool := range tools {
		op, err := Resolve(tree, tool.Name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tool.Name, err)
			continue
		}
		// The resolved handle must be the exact operation the descriptor was
		// derived from, not a copy or a namesake from another node.
		if !treeContains(tree, op) {
			t.Errorf("Resolve(%q) returned an operation not present in the tree", tool.Name)
		}
		if prefixAndOp := tool.Name; !hasSuffixOp(prefixAndOp, op.Name) {
			t.Errorf("Resolve(%q) returned operation %q", tool.Name, op.Name)
		}
	}
}

func treeContains(n *Node, target *Operation) bool {
	for _, op := range n.Operations() {
		if op == target {
			return true
		}
	}
	for _, child := range n.Children() {
		if treeContains(child, target) {
			return true
		}
	}
	return false
}

func hasSuffixOp(flatName, opName string) bool {
	return len(flatName) >= len(opName) && flatName[len(flatName)-len(opName):] == opName
}

func TestResolve_ExactHandle(t *testing.T) {
	info := &Operation{Name: "info", Doc: "Get info."}
	tree := NewNode("").
		AddChild(NewNode("printer", info)).
		AddChild(NewNode("server", &Operation{Name: "info", Doc: "Server info."}))

	op, err := Resolve(tree, "printer_info")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if op != info {
		t.Errorf("Resolve(printer_info) = %q (%p), want the printer handle %p", op.Doc, op, info)
	}
}

func TestResolve_LongestPrefix(t *testing.T) {
	files := NewNode("files", &Operation{Name: "get_roots"})
	tree := NewNode("").
		AddChild(NewNode("printer", &Operation{Name: "info"})).
		AddChild(NewNode("server", &Operation{Name: "info"}).AddChild(files))

	op, err := Resolve(tree, "server.files_get_roots")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if op.Name != "get_roots" {
		t.Errorf("Resolve picked %q, want get_roots from the server.files node", op.Name)
	}
}

// A shallow prefix can be a literal string prefix of a deeper flat name when
// segments contain underscores. The resolver must try the most specific
// namespace, not stop at the first prefix that happens to match.
func TestResolve_OverlappingPrefixes(t *testing.T) {
	deep := &Operation{Name: "read"}
	tree := NewNode("").
		AddChild(NewNode("box", &Operation{Name: "status"})).
		AddChild(NewNode("box_sub", deep))

	op, err := Resolve(tree, "box_sub_read")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if op != deep {
		t.Errorf("Resolve(box_sub_read) = %q, want the box_sub read handle", op.Name)
	}
}

func TestResolve_Unknown(t *testing.T) {
	tree := fixtureTree()
	tests := []struct {
		name     string
		flatName string
	}{
		{"no such tool", "nonexistent_tool"},
		{"valid prefix, unknown operation", "printer_nope"},
		{"internal operation", "printer__refresh"},
		{"empty name", ""},
		{"bare operation without prefix", "info"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tree, tc.flatName)
			if !errors.Is(err, ErrUnknownTool) {
				t.Errorf("Resolve(%q) error = %v, want ErrUnknownTool", tc.flatName, err)
			}
		})
	}
}
