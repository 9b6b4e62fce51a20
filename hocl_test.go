package hocl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hocl-format/hocl/encode"
	"github.com/hocl-format/hocl/parse"
)

func TestLoad(t *testing.T) {
	got, err := Load([]byte("a = 1\nb = ${a}\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": int64(1), "b": int64(1)}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}

func TestLoadCycle(t *testing.T) {
	got, err := Load([]byte("a = ${b}\nb = ${a}\n"))
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("want ErrUnresolved, got %v", err)
	}
	if got == nil {
		t.Fatal("tree should be returned alongside ErrUnresolved")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.hocl")
	main := filepath.Join(dir, "main.hocl")
	if err := os.WriteFile(lib, []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(main, []byte("include \"lib.hocl\"\ny = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(main)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"x": int64(1), "y": int64(2)}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	got, err := Load([]byte("port = 8080\n"),
		parse.ParseOverrides(Override{Path: "port", Value: "9090"}))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"port": int64(9090)}
	if d := cmp.Diff(want, encode.ToAny(got)); d != "" {
		t.Error(d)
	}
}

func TestMustLoadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLoad should panic on a cycle")
		}
	}()
	MustLoad([]byte("a = ${b}\nb = ${a}\n"))
}
