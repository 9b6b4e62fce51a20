// Package resolve collapses the deferred node kinds left behind by
// parsing: a Fallback pass, then a Reference pass with an identity-based
// cycle guard.
package resolve

import (
	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
)

// Fallbacks walks the tree depth-first and replaces every Fallback node by
// its main operand, or by its fallback operand when main is absent-or-null.
// Operands are themselves resolved first, so nested fallbacks chain.
func Fallbacks(root *ir.Node) {
	fallbacks(root)
}

func fallbacks(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType, ir.ArrayType:
		for i, v := range n.Values {
			nv := fallbacks(v)
			if nv == nil {
				nv = ir.Null()
			}
			if nv != v {
				replaceAt(n, i, nv)
			}
		}
		return n
	case ir.FallbackType:
		if debug.Resolve() {
			debug.Logf("fallback at %s\n", n.Path())
		}
		main := fallbacks(n.Main())
		if main == nil {
			main = ir.Null()
		}
		if main.Type.IsDeferred() {
			// whether main is present is only known after the
			// reference pass, which handles surviving fallbacks
			if main != n.Main() {
				replaceAt(n, 0, main)
			}
			fb := fallbacks(n.Fallback())
			if fb == nil {
				fb = ir.Null()
			}
			if fb != n.Fallback() {
				replaceAt(n, 1, fb)
			}
			return n
		}
		if !ir.IsAbsent(main) {
			return main
		}
		return fallbacks(n.Fallback())
	default:
		return n
	}
}

func replaceAt(parent *ir.Node, i int, v *ir.Node) {
	v.Parent = parent
	v.ParentIndex = i
	if parent.Type == ir.ObjectType {
		v.ParentField = parent.Fields[i].String
	}
	parent.Values[i] = v
}
