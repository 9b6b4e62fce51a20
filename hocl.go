// Package hocl parses and resolves HOCL configuration documents. Parsing
// is forgiving: the only fatal inputs are a missing required include and
// a bad override; everything else degrades to skipped lines or absent
// values. See the parse, merge and resolve packages for the layers.
package hocl

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/parse"
)

// ErrUnresolved reports that deferred nodes survived resolution, which
// happens only when the document holds a structural reference cycle. The
// tree is still returned alongside it, with the cycle escape markers in
// place.
var ErrUnresolved = errors.New("unresolved nodes after resolution")

type Override = parse.Override

// Load parses and resolves a document held in memory.
func Load(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if ir.HasDeferred(node) {
		return node, ErrUnresolved
	}
	return node, nil
}

// LoadFile parses and resolves the document at path, resolving relative
// includes against the file's directory.
func LoadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]parse.ParseOption{parse.ParseDir(filepath.Dir(path))}, opts...)
	return Load(d, opts...)
}

// MustLoad is Load for known-good documents, such as defaults compiled
// into a binary.
func MustLoad(d []byte, opts ...parse.ParseOption) *ir.Node {
	node, err := Load(d, opts...)
	if err != nil {
		panic(err)
	}
	return node
}
