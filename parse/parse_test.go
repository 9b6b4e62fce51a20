package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hocl-format/hocl/encode"
	"github.com/hocl-format/hocl/ir"
)

func testEnv(m map[string]string) ParseOption {
	return ParseEnv(func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		env  map[string]string
		want any
	}{
		{
			name: "scalars coerce",
			in: `
i = 42
f = 2.5
s = hello
b = true
n = null
`,
			want: map[string]any{
				"i": int64(42), "f": 2.5, "s": "hello", "b": true, "n": nil,
			},
		},
		{
			name: "integral float stays text",
			in:   "v = 2.0\n",
			want: map[string]any{"v": "2.0"},
		},
		{
			name: "quoting disables coercion",
			in:   "v = \"42\"\nw = '2.5'\n",
			want: map[string]any{"v": "42", "w": "2.5"},
		},
		{
			name: "multi token joins as text",
			in:   "v = hello big world\n",
			want: map[string]any{"v": "hello big world"},
		},
		{
			name: "nested blocks",
			in: `
server {
  port = 8080
  tls {
    enabled = false
  }
}
`,
			want: map[string]any{
				"server": map[string]any{
					"port": int64(8080),
					"tls":  map[string]any{"enabled": false},
				},
			},
		},
		{
			name: "inline block",
			in:   "server { port = 8080, host = localhost }\n",
			want: map[string]any{
				"server": map[string]any{"port": int64(8080), "host": "localhost"},
			},
		},
		{
			name: "dotted keys",
			in:   "a.b.c = 1\na.b.d = 2\n",
			want: map[string]any{
				"a": map[string]any{"b": map[string]any{"c": int64(1), "d": int64(2)}},
			},
		},
		{
			name: "colon separator",
			in:   "a: 1\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "arrays",
			in:   "xs = [1, 2, three]\nempty = []\n",
			want: map[string]any{
				"xs":    []any{int64(1), int64(2), "three"},
				"empty": []any{},
			},
		},
		{
			name: "multi line array",
			in:   "xs = [\n  1,\n  2,\n]\n",
			want: map[string]any{"xs": []any{int64(1), int64(2)}},
		},
		{
			name: "array concatenation",
			in:   "xs = [1] [2, 3]\n",
			want: map[string]any{"xs": []any{int64(1), int64(2), int64(3)}},
		},
		{
			name: "repeated key deep merges",
			in: `
m { x = 1 }
m { y = 2 }
`,
			want: map[string]any{"m": map[string]any{"x": int64(1), "y": int64(2)}},
		},
		{
			name: "repeated scalar replaces",
			in:   "a = 1\na = 2\n",
			want: map[string]any{"a": int64(2)},
		},
		{
			name: "single element array patches index zero",
			in:   "xs = [1, 2, 3]\nxs = [9]\n",
			want: map[string]any{"xs": []any{int64(9), int64(2), int64(3)}},
		},
		{
			name: "two element array replaces",
			in:   "xs = [1, 2, 3]\nxs = [7, 8]\n",
			want: map[string]any{"xs": []any{int64(7), int64(8)}},
		},
		{
			name: "append to array",
			in:   "xs = [1]\nxs += [2]\n",
			want: map[string]any{"xs": []any{int64(1), int64(2)}},
		},
		{
			name: "append to string",
			in:   "s = ab\ns += cd\n",
			want: map[string]any{"s": "abcd"},
		},
		{
			name: "append to missing assigns",
			in:   "xs += [1]\n",
			want: map[string]any{"xs": []any{int64(1)}},
		},
		{
			name: "explicit null over present keeps old",
			in:   "a = 1\na = null\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "explicit null on fresh key stores null",
			in:   "a = null\n",
			want: map[string]any{"a": nil},
		},
		{
			name: "env substitution coerces",
			in:   "port = ?PORT\nbraced = ${?PORT}\n",
			env:  map[string]string{"PORT": "8080"},
			want: map[string]any{"port": int64(8080), "braced": int64(8080)},
		},
		{
			name: "unset env skips assignment",
			in:   "a = 1\na = ?UNSET\n",
			env:  map[string]string{},
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "quoted env value stays string",
			in:   "v = ?NUM\n",
			env:  map[string]string{"NUM": `"42"`},
			want: map[string]any{"v": "42"},
		},
		{
			name: "env inside quotes is a string",
			in:   "v = \"?NUM\"\n",
			env:  map[string]string{"NUM": "42"},
			want: map[string]any{"v": "42"},
		},
		{
			name: "quoted env value inside quoted token loses its quote layer",
			in:   "v = \"?NUM\"\n",
			env:  map[string]string{"NUM": `"42"`},
			want: map[string]any{"v": "42"},
		},
		{
			name: "env fallback",
			in:   "port = ?UNSET or 9090\n",
			env:  map[string]string{},
			want: map[string]any{"port": int64(9090)},
		},
		{
			name: "env fallback prefers set value",
			in:   "port = ?PORT or 9090\n",
			env:  map[string]string{"PORT": "8080"},
			want: map[string]any{"port": int64(8080)},
		},
		{
			name: "fallback chain",
			in:   "v = ?A or ?B or last\n",
			env:  map[string]string{"B": "found"},
			want: map[string]any{"v": "found"},
		},
		{
			name: "fallback chain exhausted",
			in:   "v = ?A or ?B or last\n",
			env:  map[string]string{},
			want: map[string]any{"v": "last"},
		},
		{
			name: "references resolve after parse",
			in: `
defaults {
  timeout = 30
}
service {
  timeout = ${defaults.timeout}
}
`,
			want: map[string]any{
				"defaults": map[string]any{"timeout": int64(30)},
				"service":  map[string]any{"timeout": int64(30)},
			},
		},
		{
			name: "forward reference",
			in:   "a = ${b}\nb = 1\n",
			want: map[string]any{"a": int64(1), "b": int64(1)},
		},
		{
			name: "reference to missing is null",
			in:   "a = ${no.such}\nb = 1\n",
			want: map[string]any{"a": nil, "b": int64(1)},
		},
		{
			name: "reference fallback",
			in:   "a = ${no.such} or fallback\n",
			want: map[string]any{"a": "fallback"},
		},
		{
			name: "reference copies subtrees",
			in: `
base { x = 1 }
copy = ${base}
copy { x = 2 }
`,
			want: map[string]any{
				"base": map[string]any{"x": int64(1)},
				"copy": map[string]any{"x": int64(2)},
			},
		},
		{
			name: "triple quoted multi line",
			in:   "s = \"\"\"line1\nline2\"\"\"\n",
			want: map[string]any{"s": "line1\nline2"},
		},
		{
			name: "comments and blanks",
			in:   "# header\na = 1 // trailing\n\nb = 2\n",
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			name: "malformed lines skip silently",
			in:   "garbage with no separator\na = 1\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "quoted keys",
			in:   "\"a\" = 1\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "object value inline",
			in:   "m = { x = 1, y = 2 }\n",
			want: map[string]any{"m": map[string]any{"x": int64(1), "y": int64(2)}},
		},
	}
	for _, tc := range tests {
		opts := []ParseOption{}
		if tc.env != nil {
			opts = append(opts, testEnv(tc.env))
		}
		got, err := Parse([]byte(tc.in), opts...)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if d := cmp.Diff(tc.want, encode.ToAny(got)); d != "" {
			t.Errorf("%s: %s", tc.name, d)
		}
		if ir.HasDeferred(got) {
			t.Errorf("%s: deferred nodes in output of an acyclic document", tc.name)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	in := `
server {
  port = 8080
  hosts = [a, b]
}
timeout = ${server.port} or 30
`
	a, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(a)
	b, err := Parse([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(encode.ToAny(a), encode.ToAny(b)); d != "" {
		t.Errorf("re-parsing encoded output changed the document: %s", d)
	}
}

func TestParseCycle(t *testing.T) {
	got, err := Parse([]byte("a = ${b}\nb = ${a}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.HasDeferred(got) {
		t.Fatal("cycle should leave deferred markers")
	}
}

func TestParseOverrides(t *testing.T) {
	in := "server { port = 8080 }\n"
	got, err := Parse([]byte(in), ParseOverrides(
		Override{Path: "server.port", Value: "9090"},
		Override{Path: "extra", Value: "[1, 2]"},
	))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"server": map[string]any{"port": int64(9090)},
		"extra":  []any{int64(1), int64(2)},
	}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}

func TestParseOverrideNullReallyStoresNull(t *testing.T) {
	got, err := Parse([]byte("a = 1\n"), ParseOverrides(Override{Path: "a", Value: "null"}))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": nil}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}

func TestParseOverrideOrder(t *testing.T) {
	got, err := Parse([]byte("a = 1\n"), ParseOverrides(
		Override{Path: "a", Value: "2"},
		Override{Path: "a", Value: "3"},
	))
	if err != nil {
		t.Fatal(err)
	}
	if v := got.GetPath("a"); v.Int64 == nil || *v.Int64 != 3 {
		t.Fatalf("later override should win, got %v", encode.ToAny(v))
	}
}

func TestParseOverridesSeeReferences(t *testing.T) {
	in := "base = 1\nderived = ${base}\n"
	got, err := Parse([]byte(in), ParseOverrides(Override{Path: "base", Value: "7"}))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"base": int64(7), "derived": int64(7)}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}
