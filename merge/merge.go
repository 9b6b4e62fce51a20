// Package merge implements the combine rules for HOCL values: deep merge
// for include layering, the plain-assignment rules for repeated keys, and
// the += append rules.
package merge

import (
	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
)

// Into deep-merges src into dst, key by key. Both must be mappings; dst is
// mutated and returned. Matching mappings recurse, matching arrays follow
// the single-element patch rule (see Array), anything else is replaced by
// the source value.
func Into(dst, src *ir.Node) *ir.Node {
	if dst == nil || dst.Type != ir.ObjectType || src == nil || src.Type != ir.ObjectType {
		return src
	}
	for i := range src.Fields {
		key := src.Fields[i].String
		sv := src.Values[i]
		dv := dst.Get(key)
		if dv == nil {
			dst.Set(key, sv)
			continue
		}
		if debug.Merge() {
			debug.Logf("merge %s %s <- %s\n", key, dv.Type, sv.Type)
		}
		dst.Set(key, Value(dv, sv))
	}
	return dst
}

// Value combines one old value with one incoming value under deep-merge
// rules.
func Value(old, src *ir.Node) *ir.Node {
	if old != nil && src != nil && old.Type == ir.ObjectType && src.Type == ir.ObjectType {
		return Into(old, src)
	}
	if old != nil && src != nil && old.Type == ir.ArrayType && src.Type == ir.ArrayType {
		return Array(old, src)
	}
	return src
}

// Array applies the partial-array-override rule: a single-element source
// whose element is absent-or-null leaves the target untouched; a
// single-element source with a present element patches index 0 only; any
// other source (zero or two-plus elements) fully replaces the target.
// The same rule serves direct re-assignment and include-merge.
func Array(old, src *ir.Node) *ir.Node {
	if len(src.Values) != 1 {
		return src
	}
	elt := src.Values[0]
	if ir.IsAbsent(elt) {
		return old
	}
	if len(old.Values) == 0 {
		return src
	}
	elt.Parent = old
	elt.ParentIndex = 0
	old.Values[0] = elt
	return old
}

// Assign combines an existing value with a newly-assigned one under the
// in-document assignment rules: an absent-or-null incoming value keeps the
// old one, otherwise deep-merge rules apply. A nil result means nothing
// should be stored.
func Assign(old, src *ir.Node) *ir.Node {
	if src == nil {
		return old
	}
	if ir.IsAbsent(src) && old != nil {
		return old
	}
	if old == nil {
		return src
	}
	return Value(old, src)
}
