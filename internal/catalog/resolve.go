package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTool reports that a flat name matched no node prefix, or matched
// a node that has no operation of that name.
var ErrUnknownTool = errors.New("unknown tool")

// Resolve maps a flat tool name back to the operation it was compiled from.
//
// The valid prefixes are exactly the ones Compile produces. Resolution picks
// the longest matching prefix: a shallow prefix can be a literal string
// prefix of a deeper one (segments may themselves contain "_"), so trying
// the most specific namespace first is what makes the flattening lossless.
// Internal operations (leading "_") are never resolvable.
func Resolve(root *Node, flatName string) (*Operation, error) {
	var match *Operation
	matchLen := -1

	var walk func(n *Node, path []string)
	walk = func(n *Node, path []string) {
		prefix := joinPrefix(path)
		if strings.HasPrefix(flatName, prefix) && len(prefix) > matchLen {
			opName := flatName[len(prefix):]
			if !strings.HasPrefix(opName, internalMarker) {
				if op := n.op(opName); op != nil {
					match = op
					matchLen = len(prefix)
				}
			}
		}
		for _, child := range n.children {
			walk(child, childPath(path, child))
		}
	}

	start := make([]string, 0, 4)
	if root.segment != "" {
		start = append(start, root.segment)
	}
	walk(root, start)

	if match == nil {
		return nil, fmt.Errorf("catalog: %q: %w", flatName, ErrUnknownTool)
	}
	return match, nil
}
