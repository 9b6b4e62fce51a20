// Package parse turns HOCL text into a fully-resolved document tree. The
// grammar is line oriented: the preprocessor produces logical lines, a
// recursive block parser with one shared forward-only cursor builds the
// mapping tree, and two resolution passes collapse deferred nodes.
package parse

import (
	"strings"

	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/merge"
	"github.com/hocl-format/hocl/resolve"
	"github.com/hocl-format/hocl/token"
)

// Parse builds the document: preprocess, block-parse (with includes),
// apply overrides, then run the fallback and reference passes. The only
// error it returns is a missing required include.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{env: OSEnv, fetcher: osFetcher{}}
	for _, f := range opts {
		f(po)
	}
	lines := token.LogicalLines(d)
	root := ir.NewObject()
	pi := 0
	if err := parseBlock(lines, &pi, root, po); err != nil {
		return nil, err
	}
	if err := applyOverrides(root, po); err != nil {
		return nil, err
	}
	resolve.Fallbacks(root)
	resolve.References(root)
	return root, nil
}

// parseBlock consumes lines into obj until a closing } or end of input.
// All recursive invocations share the one cursor; there is no
// backtracking. Lines matching no statement form are skipped silently.
func parseBlock(lines []string, pi *int, obj *ir.Node, po *parseOpts) error {
	for *pi < len(lines) {
		ln := strings.TrimSpace(lines[*pi])
		*pi++
		if ln == "}" {
			return nil
		}
		if isInclude(ln) {
			if err := include(ln, obj, po); err != nil {
				return err
			}
			continue
		}
		key, form, rest := splitStatement(ln)
		if key == "" && form != formNone {
			form = formNone
		}
		switch form {
		case formBlockOpen:
			child := ir.NewObject()
			if err := parseBlock(lines, pi, child, po); err != nil {
				return err
			}
			assignPath(obj, key, child)
		case formInline:
			child := ir.NewObject()
			if err := parseInline(rest, child, po); err != nil {
				return err
			}
			assignPath(obj, key, child)
		case formAppend:
			v, err := resolveValue(rest, po)
			if err != nil {
				return err
			}
			appendPath(obj, key, v)
		case formAssign:
			v, err := resolveValue(rest, po)
			if err != nil {
				return err
			}
			assignPath(obj, key, v)
		default:
			if debug.Parse() {
				debug.Logf("skipping line %q\n", ln)
			}
		}
	}
	return nil
}

// parseInline parses a single-line block body, treating top-level commas
// as statement separators.
func parseInline(body string, obj *ir.Node, po *parseOpts) error {
	lns := token.Statements(body)
	i := 0
	return parseBlock(lns, &i, obj, po)
}

type stmtForm int

const (
	formNone stmtForm = iota
	formBlockOpen
	formInline
	formAssign
	formAppend
)

// splitStatement classifies one logical line. It scans for the first
// unquoted, top-level brace or separator; whichever comes first decides
// between block forms and assignment forms.
func splitStatement(ln string) (key string, form stmtForm, rest string) {
	bracePos, sepPos := -1, -1
	var st token.Scan
	depth := 0
	for i := 0; i < len(ln) && bracePos == -1 && sepPos == -1; i++ {
		n := st.Step(ln, i)
		if n > 0 {
			i += n - 1
			continue
		}
		if st.Quoted() {
			continue
		}
		if depth > 0 {
			switch ln[i] {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
			continue
		}
		switch ln[i] {
		case '[':
			depth++
		case '{':
			bracePos = i
		case '=', ':':
			sepPos = i
		}
	}
	switch {
	case bracePos != -1:
		key = strings.TrimSpace(ln[:bracePos])
		body := strings.TrimSpace(ln[bracePos+1:])
		if body == "" {
			return key, formBlockOpen, ""
		}
		body = strings.TrimSuffix(body, "}")
		return key, formInline, body
	case sepPos != -1:
		rest = strings.TrimSpace(ln[sepPos+1:])
		if sepPos > 0 && ln[sepPos] == '=' && ln[sepPos-1] == '+' {
			return strings.TrimSpace(ln[:sepPos-1]), formAppend, rest
		}
		return strings.TrimSpace(ln[:sepPos]), formAssign, rest
	default:
		return "", formNone, ""
	}
}

// assignPath stores v at a dotted key under obj with the in-document
// assignment rules (absent skips, mappings merge, arrays patch).
func assignPath(obj *ir.Node, key string, v *ir.Node) {
	parent, last := ensurePath(obj, key)
	old := parent.Get(last)
	nv := merge.Assign(old, v)
	if nv == nil {
		return
	}
	parent.Set(last, nv)
}

// appendPath stores v at a dotted key under obj with += rules.
func appendPath(obj *ir.Node, key string, v *ir.Node) {
	parent, last := ensurePath(obj, key)
	old := parent.Get(last)
	nv := merge.Append(old, v)
	if nv == nil {
		return
	}
	parent.Set(last, nv)
}

// ensurePath walks the dotted key, creating intermediate mappings, and
// returns the parent mapping plus the final segment. A quoted segment
// stores under its unquoted text.
func ensurePath(obj *ir.Node, key string) (*ir.Node, string) {
	segs := ir.SplitKey(key)
	for i, seg := range segs {
		if inner, ok := token.QuoteLayer(seg); ok {
			segs[i] = inner
		}
	}
	cur := obj
	for _, seg := range segs[:len(segs)-1] {
		next := cur.Get(seg)
		if next == nil || next.Type != ir.ObjectType {
			next = ir.NewObject()
			cur.Set(seg, next)
		}
		cur = next
	}
	return cur, segs[len(segs)-1]
}
