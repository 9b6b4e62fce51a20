package ir

import (
	"strconv"
	"strings"
)

// Path returns a debug path for y, e.g. $.servers.http[0].
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType, FallbackType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		return y.Parent.Path()
	}
}

// SplitKey expands a dotted key into its segments.
func SplitKey(key string) []string {
	return strings.Split(key, ".")
}

// GetPath looks up a dotted path under y, returning nil when any segment
// is missing or a non-mapping intervenes.
func (y *Node) GetPath(path string) *Node {
	res := y
	for _, seg := range SplitKey(path) {
		if res == nil || res.Type != ObjectType {
			return nil
		}
		res = res.Get(seg)
	}
	return res
}

// SetPath assigns v at a dotted path under y, creating intermediate
// mappings as needed and fully replacing whatever was there. Intermediate
// non-mapping values are replaced by fresh mappings.
func (y *Node) SetPath(path string, v *Node) {
	segs := SplitKey(path)
	cur := y
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil || next.Type != ObjectType {
			next = NewObject()
			cur.Set(seg, next)
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], v)
}
