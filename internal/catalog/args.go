package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Argument helpers for invoke closures. Agent-supplied arguments arrive as a
// generic JSON object, so numbers are float64 and everything else needs a
// checked assertion. Missing optional arguments fall back to the registered
// default.

// StringArg returns a required string argument.
func StringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("catalog: missing required argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("catalog: argument %q: expected string, got %T", name, v)
	}
	return s, nil
}

// OptionalStringArg returns a string argument or def when absent.
func OptionalStringArg(args map[string]any, name, def string) (string, error) {
	if _, ok := args[name]; !ok {
		return def, nil
	}
	return StringArg(args, name)
}

// BoolArg returns a boolean argument or def when absent.
func BoolArg(args map[string]any, name string, def bool) (bool, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("catalog: argument %q: expected boolean, got %T", name, v)
	}
	return b, nil
}

// IntArg returns an integer argument or def when absent. JSON numbers decode
// as float64; fractional and out-of-range values are rejected, since a
// float64 beyond the int range does not convert portably.
func IntArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("catalog: argument %q: expected integer, got %v", name, n)
		}
		// float64(math.MaxInt) rounds up to 2^63, which already overflows.
		if n < math.MinInt || n >= math.MaxInt {
			return 0, fmt.Errorf("catalog: argument %q: integer out of range: %v", name, n)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("catalog: argument %q: expected integer, got %T", name, v)
	}
}

// StringListArg returns a list argument. List-typed parameters degrade to
// the string type tag in the schema, so agents may send either a JSON array
// of strings or one comma-separated string; both are accepted here.
func StringListArg(args map[string]any, name string) ([]string, error) {
	v, ok := args[name]
	if !ok {
		return nil, fmt.Errorf("catalog: missing required argument %q", name)
	}
	switch list := v.(type) {
	case string:
		parts := strings.Split(list, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("catalog: argument %q: expected string items, got %T", name, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return list, nil
	default:
		return nil, fmt.Errorf("catalog: argument %q: expected list or string, got %T", name, v)
	}
}
