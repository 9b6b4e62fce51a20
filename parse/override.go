package parse

import (
	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
)

// applyOverrides stores each override value at its path, in order, after
// the document parses and before the resolution passes. Unlike in-document
// assignment this is a full replacement: an override of null really stores
// null, and an override never merges with what it lands on.
func applyOverrides(root *ir.Node, po *parseOpts) error {
	for _, ov := range po.overrides {
		v, err := resolveValue(ov.Value, po)
		if err != nil {
			return err
		}
		if v == nil {
			v = ir.Null()
		}
		if debug.Parse() {
			debug.Logf("override %s = %s\n", ov.Path, ov.Value)
		}
		root.SetPath(ov.Path, v)
	}
	return nil
}
