package encode

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/hocl-format/hocl/ir"
)

// ToAny lowers a resolved tree into plain Go values suitable for JSON or
// YAML marshaling. Deferred nodes render as their source text so a tree
// holding a cycle escape still serializes.
func ToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Bool
	case ir.StringType:
		return n.String
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		if f, err := strconv.ParseFloat(n.Number, 64); err == nil {
			return f
		}
		return n.Number
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			res[f.String] = ToAny(n.Values[i])
		}
		return res
	case ir.ReferenceType:
		return "${" + n.Ref + "}"
	case ir.FallbackType:
		return map[string]any{
			"main":     ToAny(n.Main()),
			"fallback": ToAny(n.Fallback()),
		}
	}
	return nil
}

func encodeJSON(n *ir.Node, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if es.indent != 2 {
		var pad string
		for i := 0; i < es.indent; i++ {
			pad += " "
		}
		enc.SetIndent("", pad)
	}
	return enc.Encode(ToAny(n))
}
