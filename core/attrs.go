// File: attrs.go
// Role: The open attribute bag shared by nodes, edges, and the graph,
//       plus the numeric-read helper behind the weight convention.
// Determinism:
//   - Keys() returns attribute names sorted lexicographically; the bag
//     itself is an ordinary map with no order guarantee.

package core

import "sort"

// Attrs is an open, string-keyed attribute bag attached to a node, an
// edge, or the graph itself. Values are arbitrary; numeric values are
// readable through Float regardless of their concrete Go type.
//
// Bags returned by accessors (NodeAttrs, EdgeAttrs, views) are live:
// mutating them mutates the stored entity. Attribute mutation is not a
// structural change and never invalidates view iteration.
type Attrs map[string]any

// Merge applies patch onto a in place: existing keys are overwritten,
// missing keys are added, keys absent from patch are left untouched.
// This is the "patch" half of the patch/replace pair; SetNodeAttrs is
// the "replace" half. A nil patch is a no-op.
// Complexity: O(len(patch)).
func (a Attrs) Merge(patch Attrs) {
	for k, v := range patch {
		a[k] = v
	}
}

// Clone returns a deep copy of the bag. Nested Attrs, map[string]any, and
// []any values are copied recursively; every other value is copied by
// assignment (scalars by value, other reference types by reference).
// Complexity: O(size of the bag).
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = cloneValue(v)
	}

	return out
}

// Float reads a numeric attribute as float64, returning def when the key
// is absent or the value is not numeric. This implements the weight
// convention: algorithms accepting a weight attribute name read each
// edge's bag with Float(name, 1) so a missing attribute defaults to 1.
// Complexity: O(1).
func (a Attrs) Float(key string, def float64) float64 {
	v, ok := a[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case uint32:
		return float64(n)
	default:
		return def
	}
}

// Keys returns the attribute names sorted lexicographically ascending.
// Complexity: O(n log n).
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// cloneValue deep-copies the container shapes an attribute bag commonly
// holds; anything else is returned as-is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case Attrs:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// mergedAttrs builds one bag from a sequence of patches. Always returns a
// fresh non-nil bag; patches are merged left to right.
func mergedAttrs(patches []Attrs) Attrs {
	out := Attrs{}
	for _, p := range patches {
		out.Merge(p)
	}

	return out
}
