// Package gomap maps resolved document trees onto Go values, and back.
// The mapping goes through encoding/json so standard struct tags and
// types apply.
package gomap

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/hocl-format/hocl/encode"
	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/parse"
)

// Decode stores the tree rooted at node into p, which must be a pointer.
func Decode(node *ir.Node, p any) error {
	d, err := json.Marshal(encode.ToAny(node))
	if err != nil {
		return err
	}
	return json.Unmarshal(d, p)
}

// Load parses d and decodes the resolved document into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return Decode(node, p)
}

// FromAny lifts plain Go values, as produced by encoding/json, into a
// document tree.
func FromAny(v any) *ir.Node {
	switch t := v.(type) {
	case nil:
		return ir.Null()
	case bool:
		return ir.FromBool(t)
	case string:
		return ir.FromString(t)
	case int:
		return ir.FromInt(int64(t))
	case int64:
		return ir.FromInt(t)
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return ir.FromInt(int64(t))
		}
		return ir.FromFloat(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.FromInt(i)
		}
		if f, err := t.Float64(); err == nil {
			return ir.FromFloat(f)
		}
		return ir.FromString(t.String())
	case []any:
		elts := make([]*ir.Node, len(t))
		for i, e := range t {
			elts[i] = FromAny(e)
		}
		return ir.FromSlice(elts)
	case map[string]any:
		res := ir.NewObject()
		for _, k := range sortedKeys(t) {
			res.Set(k, FromAny(t[k]))
		}
		return res
	}
	return ir.Null()
}

func sortedKeys(m map[string]any) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
