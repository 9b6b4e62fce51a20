package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hocl-format/hocl/encode"
)

type serverConfig struct {
	Port int      `json:"port"`
	Host string   `json:"host"`
	Tags []string `json:"tags"`
}

type appConfig struct {
	Server serverConfig `json:"server"`
	Debug  bool         `json:"debug"`
}

func TestLoad(t *testing.T) {
	in := `
server {
  port = 8080
  host = localhost
  tags = [a, b]
}
debug = true
`
	var cfg appConfig
	if err := Load([]byte(in), &cfg); err != nil {
		t.Fatal(err)
	}
	want := appConfig{
		Server: serverConfig{Port: 8080, Host: "localhost", Tags: []string{"a", "b"}},
		Debug:  true,
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	v := map[string]any{
		"i":  int64(3),
		"f":  2.5,
		"s":  "str",
		"b":  true,
		"n":  nil,
		"xs": []any{int64(1), "two"},
		"m":  map[string]any{"k": "v"},
	}
	got := encode.ToAny(FromAny(v))
	if d := cmp.Diff(v, got); d != "" {
		t.Error(d)
	}
}

func TestFromAnyJSONFloat(t *testing.T) {
	// encoding/json decodes all numbers to float64; integral ones come
	// back as integers
	n := FromAny(float64(42))
	if n.Int64 == nil || *n.Int64 != 42 {
		t.Fatalf("FromAny(42.0) = %v", encode.ToAny(n))
	}
}
