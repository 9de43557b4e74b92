// Package payload provides defensive access to the raw provider payload: an
// arbitrarily deep, optional-at-every-level JSON tree with no fixed schema.
// Accessors never panic; a missing, nil, or wrong-typed node reads as absent.
package payload

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Node is one object in the raw payload tree. The whole payload is itself a
// Node.
type Node map[string]any

// Parse decodes a raw JSON payload. A JSON null decodes to an empty Node so
// callers never have to nil-check.
func Parse(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	if n == nil {
		n = Node{}
	}
	return n, nil
}

// AsNode converts an arbitrary decoded value to a Node. Non-objects read as
// an empty node.
func AsNode(v any) Node {
	switch m := v.(type) {
	case Node:
		return m
	case map[string]any:
		return Node(m)
	default:
		return nil
	}
}

// get walks a dotted path and returns the raw value at the end of it.
func (n Node) get(path string) (any, bool) {
	if n == nil {
		return nil, false
	}
	cur := any(map[string]any(n))
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			if nn, ok2 := cur.(Node); ok2 {
				m = map[string]any(nn)
			} else {
				return nil, false
			}
		}
		v, exists := m[part]
		if !exists || v == nil {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Has reports whether the dotted path resolves to any non-nil value.
func (n Node) Has(path string) bool {
	_, ok := n.get(path)
	return ok
}

// String returns the string at path.
func (n Node) String(path string) (string, bool) {
	v, ok := n.get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// Float returns the number at path. Numeric strings are accepted because
// several provider versions serialize counts as strings.
func (n Node) Float(path string) (float64, bool) {
	v, ok := n.get(path)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Int returns the number at path rounded to the nearest integer.
func (n Node) Int(path string) (int64, bool) {
	f, ok := n.Float(path)
	if !ok {
		return 0, false
	}
	return int64(math.Round(f)), true
}

// Bool returns the boolean at path.
func (n Node) Bool(path string) (bool, bool) {
	v, ok := n.get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Map returns the object at path, nil when absent.
func (n Node) Map(path string) Node {
	v, ok := n.get(path)
	if !ok {
		return nil
	}
	return AsNode(v)
}

// Slice returns the array at path, nil when absent.
func (n Node) Slice(path string) []any {
	v, ok := n.get(path)
	if !ok {
		return nil
	}
	s, ok := v.([]any)
	if !ok {
		return nil
	}
	return s
}

// The First* helpers implement the ordered candidate chain: probe each path
// in order and take the first hit. They replace the implicit a?.b ?? c?.d
// chains of the source payload with an explicit, testable table.

// FirstString returns the first non-empty string among the candidate paths.
func (n Node) FirstString(paths ...string) (string, bool) {
	for _, p := range paths {
		if s, ok := n.String(p); ok {
			return s, true
		}
	}
	return "", false
}

// FirstFloat returns the first number among the candidate paths.
func (n Node) FirstFloat(paths ...string) (float64, bool) {
	for _, p := range paths {
		if f, ok := n.Float(p); ok {
			return f, true
		}
	}
	return 0, false
}

// FirstInt returns the first number among the candidate paths, rounded.
func (n Node) FirstInt(paths ...string) (int64, bool) {
	for _, p := range paths {
		if i, ok := n.Int(p); ok {
			return i, true
		}
	}
	return 0, false
}

// FirstBool returns the first boolean among the candidate paths.
func (n Node) FirstBool(paths ...string) (bool, bool) {
	for _, p := range paths {
		if b, ok := n.Bool(p); ok {
			return b, true
		}
	}
	return false, false
}

// FirstMap returns the first object among the candidate paths.
func (n Node) FirstMap(paths ...string) Node {
	for _, p := range paths {
		if m := n.Map(p); m != nil {
			return m
		}
	}
	return nil
}

// FirstSlice returns the first non-empty array among the candidate paths.
func (n Node) FirstSlice(paths ...string) []any {
	for _, p := range paths {
		if s := n.Slice(p); len(s) > 0 {
			return s
		}
	}
	return nil
}

// HasAny reports whether any candidate path resolves.
func (n Node) HasAny(paths ...string) bool {
	for _, p := range paths {
		if n.Has(p) {
			return true
		}
	}
	return false
}

// Strings returns the array at path coerced to its string elements, skipping
// anything that is not a string.
func (n Node) Strings(path string) []string {
	raw := n.Slice(path)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
