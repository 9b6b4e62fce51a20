// Package ir holds the node representation for HOCL documents: a tagged
// union of mappings, arrays, scalars and the two deferred kinds, Reference
// and Fallback, which exist only between parsing and resolution.
package ir

import (
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields/Values are parallel for ObjectType; Values alone holds
	// ArrayType elements and FallbackType operands (main, fallback).
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string // original literal text of a NumberType
	Float64 *float64
	Int64   *int64

	Ref string // dotted path of a ReferenceType
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   NumberType,
		Int64:  &v,
		Number: strconv.FormatInt(v, 10),
	}
}

func FromFloat(v float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &v,
		Number:  strconv.FormatFloat(v, 'f', -1, 64),
	}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		if v == nil {
			v = Null()
		}
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

// NewReference makes a deferred pointer to another value in the same
// document, identified by dotted path.
func NewReference(path string) *Node {
	return &Node{Type: ReferenceType, Ref: path}
}

// NewFallback makes a deferred "main or fallback" pair. Absent operands are
// stored as Null so the fallback pass sees the absent-or-null sentinel.
func NewFallback(main, fallback *Node) *Node {
	if main == nil {
		main = Null()
	}
	if fallback == nil {
		fallback = Null()
	}
	res := &Node{Type: FallbackType, Values: []*Node{main, fallback}}
	main.Parent = res
	main.ParentIndex = 0
	fallback.Parent = res
	fallback.ParentIndex = 1
	return res
}

// Main returns the primary operand of a FallbackType node.
func (y *Node) Main() *Node {
	return y.Values[0]
}

// Fallback returns the secondary operand of a FallbackType node.
func (y *Node) Fallback() *Node {
	return y.Values[1]
}

// IsAbsent reports the absent-or-null sentinel: a missing value and an
// explicit null are treated alike for skip and merge decisions.
func IsAbsent(y *Node) bool {
	return y == nil || y.Type == NullType
}

// Get returns the value at field, or nil.
func (y *Node) Get(field string) *Node {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set assigns field to v, replacing an existing entry in place and
// appending otherwise. Keys stay unique at each level.
func (y *Node) Set(field string, v *Node) {
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentField = field
	for i := range y.Fields {
		if y.Fields[i].String == field {
			v.ParentIndex = i
			y.Values[i] = v
			return
		}
	}
	f := FromString(field)
	f.Parent = y
	f.ParentIndex = len(y.Fields)
	f.ParentField = field
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, f)
	y.Values = append(y.Values, v)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Ref = y.Ref
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			c := yf.Clone()
			c.Parent = dst
			c.ParentIndex = i
			dst.Fields[i] = c
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			c := yv.Clone()
			c.Parent = dst
			c.ParentIndex = i
			dst.Values[i] = c
		}
	}
	return dst
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// HasDeferred reports whether any Reference or Fallback node survives in
// the tree, which after resolution signals a structural cycle.
func HasDeferred(y *Node) bool {
	found := false
	y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost || found {
			return false, nil
		}
		if n.Type.IsDeferred() {
			found = true
			return false, nil
		}
		return true, nil
	})
	return found
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
