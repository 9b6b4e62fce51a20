package parse

import (
	"strings"

	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/merge"
	"github.com/hocl-format/hocl/token"
)

// resolveValue turns the raw text right of an assignment into a value
// node. The text is tokenized at top level; a single token resolves
// directly, "a or b" builds a fallback, homogeneous array or mapping
// groups combine, and anything else joins back into one string. A nil
// result is the absent sentinel and makes the whole assignment a no-op.
func resolveValue(raw string, po *parseOpts) (*ir.Node, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	toks := token.Fields(raw)
	if len(toks) == 1 {
		return resolveSingle(toks[0], po)
	}
	if orChain(toks) {
		// right associative: a or b or c falls back to (b or c)
		res, err := resolveSingle(toks[len(toks)-1], po)
		if err != nil {
			return nil, err
		}
		for i := len(toks) - 3; i >= 0; i -= 2 {
			main, err := resolveSingle(toks[i], po)
			if err != nil {
				return nil, err
			}
			res = ir.NewFallback(main, res)
		}
		return res, nil
	}
	vals := make([]*ir.Node, 0, len(toks))
	for _, t := range toks {
		v, err := resolveSingle(t, po)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	if v, ok := combineGroups(vals); ok {
		return v, nil
	}
	return joinText(vals, toks), nil
}

func orChain(toks []string) bool {
	if len(toks) < 3 || len(toks)%2 == 0 {
		return false
	}
	for i := 1; i < len(toks); i += 2 {
		if !strings.EqualFold(toks[i], "or") {
			return false
		}
	}
	return true
}

// combineGroups concatenates all-array token runs and merges all-mapping
// runs. Mixed runs fall through to textual joining.
func combineGroups(vals []*ir.Node) (*ir.Node, bool) {
	allArr, allObj := true, true
	for _, v := range vals {
		if v == nil || v.Type != ir.ArrayType {
			allArr = false
		}
		if v == nil || v.Type != ir.ObjectType {
			allObj = false
		}
	}
	switch {
	case allArr:
		out := vals[0]
		for _, v := range vals[1:] {
			out = merge.Append(out, v)
		}
		return out, true
	case allObj:
		out := vals[0]
		for _, v := range vals[1:] {
			merge.Into(out, v)
		}
		return out, true
	}
	return nil, false
}

// joinText renders each token back to text and space-joins them into one
// string value. Absent tokens drop out; if every token is absent the
// result is absent too.
func joinText(vals []*ir.Node, toks []string) *ir.Node {
	parts := make([]string, 0, len(vals))
	for i, v := range vals {
		if ir.IsAbsent(v) {
			continue
		}
		parts = append(parts, textForm(v, toks[i]))
	}
	if len(parts) == 0 {
		return nil
	}
	return ir.FromString(strings.Join(parts, " "))
}

func textForm(v *ir.Node, tok string) string {
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.NumberType:
		return v.Number
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return tok
	}
}

// resolveSingle resolves one token: an array or inline mapping group, an
// environment substitution, a reference expression, or a scalar literal.
func resolveSingle(t string, po *parseOpts) (*ir.Node, error) {
	t = strings.TrimSpace(t)
	switch {
	case t == "":
		return nil, nil
	case strings.HasPrefix(t, "["):
		return resolveArray(t, po)
	case strings.HasPrefix(t, "{"):
		child := ir.NewObject()
		body := strings.TrimPrefix(t, "{")
		body = strings.TrimSuffix(strings.TrimSpace(body), "}")
		if err := parseInline(body, child, po); err != nil {
			return nil, err
		}
		return child, nil
	}
	return resolveToken(t, po)
}

func resolveArray(t string, po *parseOpts) (*ir.Node, error) {
	body := strings.TrimPrefix(t, "[")
	body = strings.TrimSuffix(strings.TrimSpace(body), "]")
	items := token.Items(body)
	elts := make([]*ir.Node, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		v, err := resolveValue(it, po)
		if err != nil {
			return nil, err
		}
		if v == nil {
			v = ir.Null()
		}
		elts = append(elts, v)
	}
	return ir.FromSlice(elts), nil
}

// resolveToken handles a scalar token. Quoting wins first: a quoted token
// is a string, with one env substitution allowed inside the quotes. Then
// env forms (?NAME, ${?NAME}), then references (${path}), then literal
// coercion.
func resolveToken(t string, po *parseOpts) (*ir.Node, error) {
	if token.IsTripleQuoted(t) {
		return ir.FromString(token.UnquoteTriple(t)), nil
	}
	if inner, ok := token.QuoteLayer(t); ok {
		if name, ok := envRef(inner); ok {
			val, set := po.env(name)
			if !set {
				return nil, nil
			}
			// a quoted env value loses its quote layer here too
			if iv, ok := token.QuoteLayer(val); ok {
				val = iv
			}
			return ir.FromString(val), nil
		}
		return ir.FromString(token.DecodeEscapes(inner)), nil
	}
	if name, ok := envRef(t); ok {
		val, set := po.env(name)
		if !set {
			return nil, nil
		}
		if inner, ok := token.QuoteLayer(val); ok {
			return ir.FromString(inner), nil
		}
		return token.Coerce(val), nil
	}
	if path, ok := refExpr(t); ok {
		return ir.NewReference(path), nil
	}
	return token.Coerce(t), nil
}

// envRef reports whether t names an environment variable, in either the
// bare ?NAME form or the braced ${?NAME} form.
func envRef(t string) (string, bool) {
	if strings.HasPrefix(t, "${?") && strings.HasSuffix(t, "}") {
		return t[3 : len(t)-1], true
	}
	if strings.HasPrefix(t, "?") && len(t) > 1 {
		return t[1:], true
	}
	return "", false
}

// refExpr reports whether t is a ${path} reference into the document.
func refExpr(t string) (string, bool) {
	if strings.HasPrefix(t, "${") && strings.HasSuffix(t, "}") && !strings.HasPrefix(t, "${?") {
		return t[2 : len(t)-1], true
	}
	return "", false
}
