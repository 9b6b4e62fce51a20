package resolve

import (
	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
)

// References resolves every Reference node under n against the document
// root, in place. Passing a subtree still resolves paths against the
// whole document. A missing path resolves to the absent sentinel, silently. The
// located subtree is resolved at its source, then deep-copied to the
// reference site so later edits cannot corrupt the shared value. Cycle
// protection is an identity-based visited set: re-entering a node already
// being resolved stops the walk and returns the node as it stands, which
// may leave a deferred marker in the output (the documented cycle escape).
func References(n *ir.Node) {
	r := &refResolver{root: n.Root(), visited: map[*ir.Node]bool{}}
	r.resolve(n)
}

type refResolver struct {
	root    *ir.Node
	visited map[*ir.Node]bool
}

func (r *refResolver) resolve(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType, ir.ArrayType:
		if r.visited[n] {
			return n
		}
		r.visited[n] = true
		for i, v := range n.Values {
			nv := r.resolve(v)
			if nv == nil {
				nv = ir.Null()
			}
			if nv != v {
				replaceAt(n, i, nv)
			}
		}
		return n
	case ir.ReferenceType:
		if r.visited[n] {
			return n
		}
		r.visited[n] = true
		if debug.Resolve() {
			debug.Logf("reference %s at %s\n", n.Ref, n.Path())
		}
		target := r.root.GetPath(n.Ref)
		if target == nil {
			return nil
		}
		res := r.resolve(target)
		if res == nil {
			return nil
		}
		if res != target && target.Parent != nil {
			replaceAt(target.Parent, target.ParentIndex, res)
		}
		return res.Clone()
	case ir.FallbackType:
		// a fallback surviving the prior pass has a reference as its
		// main operand; presence is decided here.
		if r.visited[n] {
			return n
		}
		r.visited[n] = true
		main := r.resolve(n.Main())
		if !ir.IsAbsent(main) {
			return main
		}
		return r.resolve(n.Fallback())
	default:
		return n
	}
}
