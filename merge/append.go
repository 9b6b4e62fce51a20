package merge

import (
	"github.com/hocl-format/hocl/ir"
)

// Append implements += semantics. An absent target behaves as plain
// assignment; an absent-or-null incoming value is a no-op; two arrays
// concatenate (never the partial patch rule); two mappings deep-merge; two
// strings concatenate textually; any other pairing replaces.
func Append(old, src *ir.Node) *ir.Node {
	if old == nil {
		return src
	}
	if ir.IsAbsent(src) {
		return old
	}
	if old.Type == ir.ArrayType && src.Type == ir.ArrayType {
		for _, v := range src.Values {
			v.Parent = old
			v.ParentIndex = len(old.Values)
			old.Values = append(old.Values, v)
		}
		return old
	}
	if old.Type == ir.ObjectType && src.Type == ir.ObjectType {
		return Into(old, src)
	}
	if old.Type == ir.StringType && src.Type == ir.StringType {
		return ir.FromString(old.String + src.String)
	}
	return src
}
