// Package encode renders document trees back to text, in HOCL itself or
// in JSON or YAML, optionally colorized for terminals.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/token"
)

type EncState struct {
	depth  int
	indent int

	format Format
	color  func(ir.Type, ColorAttr, string) string
}

func (es *EncState) colorize(t ir.Type, a ColorAttr, s string) string {
	if es.color == nil {
		return s
	}
	return es.color(t, a, s)
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case JSONFormat:
		return encodeJSON(node, w, es)
	case YAMLFormat:
		return encodeYAML(node, w)
	}
	return encodeHOCL(node, w, es)
}

func encodeHOCL(n *ir.Node, w io.Writer, es *EncState) error {
	if n == nil {
		return nil
	}
	if n.Type == ir.ObjectType {
		return hoclEntries(n, w, es)
	}
	_, err := io.WriteString(w, hoclValue(n, es)+"\n")
	return err
}

// hoclEntries writes one mapping level, one entry per line. Non-empty
// nested mappings open a block; everything else renders inline after " = ".
func hoclEntries(obj *ir.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	for i, f := range obj.Fields {
		v := obj.Values[i]
		key := es.colorize(v.Type, FieldColor, hoclKey(f.String))
		if v.Type == ir.ObjectType && len(v.Fields) > 0 {
			if _, err := fmt.Fprintf(w, "%s%s {\n", pad, key); err != nil {
				return err
			}
			es.depth++
			if err := hoclEntries(v, w, es); err != nil {
				return err
			}
			es.depth--
			if _, err := fmt.Fprintf(w, "%s}\n", pad); err != nil {
				return err
			}
			continue
		}
		sep := es.colorize(v.Type, SepColor, "=")
		if _, err := fmt.Fprintf(w, "%s%s %s %s\n", pad, key, sep, hoclValue(v, es)); err != nil {
			return err
		}
	}
	return nil
}

func hoclValue(v *ir.Node, es *EncState) string {
	switch v.Type {
	case ir.NullType:
		return es.colorize(v.Type, ValueColor, "null")
	case ir.BoolType:
		if v.Bool {
			return es.colorize(v.Type, ValueColor, "true")
		}
		return es.colorize(v.Type, ValueColor, "false")
	case ir.NumberType:
		return es.colorize(v.Type, ValueColor, v.Number)
	case ir.StringType:
		return es.colorize(v.Type, ValueColor, hoclString(v.String))
	case ir.ArrayType:
		elts := make([]string, len(v.Values))
		for i, e := range v.Values {
			elts[i] = hoclValue(e, es)
		}
		return "[" + strings.Join(elts, ", ") + "]"
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return "{}"
		}
		elts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			elts[i] = hoclKey(f.String) + " = " + hoclValue(v.Values[i], es)
		}
		return "{ " + strings.Join(elts, ", ") + " }"
	case ir.ReferenceType:
		return es.colorize(v.Type, RefColor, "${"+v.Ref+"}")
	case ir.FallbackType:
		or := es.colorize(v.Type, RefColor, "or")
		return hoclValue(v.Main(), es) + " " + or + " " + hoclValue(v.Fallback(), es)
	}
	return ""
}

// hoclString renders a string so it parses back to the same value: quoted
// whenever the bare text would coerce away, split, or comment; triple
// quoted when it spans lines.
func hoclString(s string) string {
	if strings.ContainsRune(s, '\n') {
		return `"""` + escapeString(s) + `"""`
	}
	if s != "" && !needsQuote(s) {
		return s
	}
	return `"` + escapeString(s) + `"`
}

func needsQuote(s string) bool {
	if token.Coerce(s).Type != ir.StringType {
		return true
	}
	return strings.ContainsAny(s, " \t,#{}[]\"'=:$?")
}

func hoclKey(k string) string {
	if k != "" && !strings.ContainsAny(k, " \t,#{}[]\"'=:$?") {
		return k
	}
	return `"` + escapeString(k) + `"`
}

func escapeString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\t", `\t`,
		"\r", `\r`,
	)
	return r.Replace(s)
}
