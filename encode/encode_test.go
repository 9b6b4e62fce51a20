package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hocl-format/hocl/ir"
)

func testDoc() *ir.Node {
	root := ir.NewObject()
	server := ir.NewObject()
	server.Set("port", ir.FromInt(8080))
	server.Set("host", ir.FromString("localhost"))
	root.Set("server", server)
	root.Set("tags", ir.FromSlice([]*ir.Node{
		ir.FromString("a"), ir.FromString("b"),
	}))
	return root
}

func TestMustStringHOCL(t *testing.T) {
	want := `server {
  port = 8080
  host = localhost
}
tags = [a, b]`
	if got := MustString(testDoc()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeQuoting(t *testing.T) {
	root := ir.NewObject()
	root.Set("n", ir.FromString("42"))
	root.Set("f", ir.FromString("2.0"))
	root.Set("spacey", ir.FromString("two words"))
	root.Set("multi", ir.FromString("line1\nline2"))
	root.Set("empty", ir.FromString(""))
	// "2.0" re-parses as the same string without quoting, so it stays bare
	want := `n = "42"
f = 2.0
spacey = "two words"
multi = """line1\nline2"""
empty = ""`
	if got := MustString(root); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeDeferred(t *testing.T) {
	root := ir.NewObject()
	root.Set("a", ir.NewReference("b.c"))
	root.Set("d", ir.NewFallback(ir.NewReference("x"), ir.FromInt(5)))
	want := `a = ${b.c}
d = ${x} or 5`
	if got := MustString(root); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "server": {
    "host": "localhost",
    "port": 8080
  },
  "tags": [
    "a",
    "b"
  ]
}`
	if got := MustString(testDoc(), EncodeFormat(JSONFormat)); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToAny(t *testing.T) {
	want := map[string]any{
		"server": map[string]any{"port": int64(8080), "host": "localhost"},
		"tags":   []any{"a", "b"},
	}
	if d := cmp.Diff(want, ToAny(testDoc())); d != "" {
		t.Error(d)
	}
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
		err  bool
	}{
		{"hocl", HOCLFormat, false},
		{"", HOCLFormat, false},
		{"json", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"toml", HOCLFormat, true},
	} {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseFormat(%q) err = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
