// Package hub assembles device command trees into a single capability
// surface: one compiled tool catalog and one dispatcher over it.
package hub

import (
	"context"
	"fmt"
	"sync"

	"github.com/makerhub/makerhub/internal/catalog"
	"github.com/makerhub/makerhub/internal/isy"
	"github.com/makerhub/makerhub/internal/moonraker"
)

// Options configures which devices contribute commands and which tools
// survive filtering. At least one device client must be set.
type Options struct {
	Moonraker *moonraker.Client
	ISY       *isy.Client

	// Include and Exclude filter the compiled catalog by flat tool name.
	// They are mutually exclusive.
	Include []string
	Exclude []string
}

// Hub holds the assembled command tree, the compiled (and filtered) tool
// catalog, and the dispatch index from flat names back to operations.
type Hub struct {
	opts Options

	mu    sync.RWMutex
	root  *catalog.Node
	tools []catalog.Tool
	ops   map[string]*catalog.Operation
}

// New assembles the command tree from the configured devices, compiles it,
// and applies include/exclude filtering. Compilation errors (duplicate flat
// names) and filter errors (unknown include names, everything excluded)
// surface here rather than at call time.
func New(opts Options) (*Hub, error) {
	if opts.Moonraker == nil && opts.ISY == nil {
		return nil, fmt.Errorf("hub: no devices configured")
	}

	h := &Hub{opts: opts}
	if err := h.Recompile(); err != nil {
		return nil, err
	}
	return h, nil
}

// Recompile reassembles the command tree from the devices and compiles it
// again, replacing the catalog and the dispatch index. The serve refresh
// schedule calls this so device-side changes show up without a restart.
// Safe to call while dispatches are in flight; a failed recompile leaves
// the previous catalog in place.
func (h *Hub) Recompile() error {
	root := catalog.NewNode("")
	if h.opts.Moonraker != nil {
		for _, n := range h.opts.Moonraker.Commands() {
			root.AddChild(n)
		}
	}
	if h.opts.ISY != nil {
		root.AddChild(h.opts.ISY.Commands())
	}

	tools, err := catalog.Compile(root)
	if err != nil {
		return err
	}
	tools, err = FilterTools(tools, h.opts.Include, h.opts.Exclude)
	if err != nil {
		return err
	}

	// Filtered-out tools must not be dispatchable either, so the index is
	// built from the surviving catalog, not the full tree.
	ops := make(map[string]*catalog.Operation, len(tools))
	for _, t := range tools {
		op, err := catalog.Resolve(root, t.Name)
		if err != nil {
			return err
		}
		ops[t.Name] = op
	}

	h.mu.Lock()
	h.root, h.tools, h.ops = root, tools, ops
	h.mu.Unlock()
	return nil
}

// Root returns the assembled command tree.
func (h *Hub) Root() *catalog.Node {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.root
}

// Catalog returns the compiled, filtered tool catalog in deterministic order.
func (h *Hub) Catalog() []catalog.Tool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]catalog.Tool, len(h.tools))
	copy(out, h.tools)
	return out
}

// Lookup resolves a flat tool name to its operation. Names removed by
// filtering are unknown here even though the underlying tree still has them.
func (h *Hub) Lookup(name string) (*catalog.Operation, error) {
	h.mu.RLock()
	op, ok := h.ops[name]
	var available []string
	if !ok {
		available = make([]string, len(h.tools))
		for i, t := range h.tools {
			available[i] = t.Name
		}
	}
	h.mu.RUnlock()

	if !ok {
		msg := fmt.Sprintf("hub: tool %q not in catalog", name)
		if suggestion := SuggestName(name, available); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		return nil, fmt.Errorf("%s: %w", msg, catalog.ErrUnknownTool)
	}
	return op, nil
}

// Call dispatches a flat tool name with the given arguments.
func (h *Hub) Call(ctx context.Context, name string, args map[string]any) (any, error) {
	op, err := h.Lookup(name)
	if err != nil {
		return nil, err
	}
	return op.Invoke(ctx, args)
}
