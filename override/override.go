// Package override builds external override layers from the process
// environment and command-line arguments. Layers stack in order, later
// entries winning, and apply after parsing but before resolution.
package override

import (
	"strings"

	"github.com/hocl-format/hocl/parse"
)

// FromEnviron collects overrides from environ entries carrying prefix.
// The remainder of the variable name maps to a dotted path: underscores
// become dots and the path lowercases, so APP_SERVER_PORT=9090 with
// prefix "APP_" overrides server.port.
func FromEnviron(prefix string, environ []string) []parse.Override {
	if prefix == "" {
		return nil
	}
	var res []parse.Override
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(k, prefix)
		if !ok || name == "" {
			continue
		}
		path := strings.ToLower(strings.ReplaceAll(name, "_", "."))
		res = append(res, parse.Override{Path: path, Value: v})
	}
	return res
}

// FromArgs collects path=value overrides from args, with or without a
// leading --, returning the overrides and the arguments that did not
// parse as one.
func FromArgs(args []string) ([]parse.Override, []string) {
	var ovs []parse.Override
	var rest []string
	for _, a := range args {
		p, v, ok := strings.Cut(a, "=")
		p = strings.TrimSpace(strings.TrimLeft(p, "-"))
		if !ok || p == "" {
			rest = append(rest, a)
			continue
		}
		ovs = append(ovs, parse.Override{Path: p, Value: v})
	}
	return ovs, rest
}

// Layered flattens override layers into one ordered slice.
func Layered(layers ...[]parse.Override) []parse.Override {
	var res []parse.Override
	for _, l := range layers {
		res = append(res, l...)
	}
	return res
}
