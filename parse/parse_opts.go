package parse

import "os"

// Env looks up one host environment variable. Injecting it keeps parsing
// deterministic under test.
type Env func(name string) (string, bool)

// OSEnv is the default Env, backed by the process environment.
func OSEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Fetcher loads included documents by path. Absence is reported with an
// error wrapping os.ErrNotExist.
type Fetcher interface {
	Fetch(path string) ([]byte, error)
}

// Override is one external override entry: a dotted path and the raw value
// text to resolve and store there. Later entries win on collision.
type Override struct {
	Path  string
	Value string
}

type parseOpts struct {
	env       Env
	fetcher   Fetcher
	dir       string
	overrides []Override
}

type ParseOption func(*parseOpts)

// ParseEnv injects the environment-variable lookup used for ?NAME and
// ${?NAME} substitution.
func ParseEnv(env Env) ParseOption {
	return func(po *parseOpts) { po.env = env }
}

// ParseDir sets the directory against which relative include paths
// resolve.
func ParseDir(dir string) ParseOption {
	return func(po *parseOpts) { po.dir = dir }
}

// ParseFetcher injects the loader for included documents.
func ParseFetcher(f Fetcher) ParseOption {
	return func(po *parseOpts) { po.fetcher = f }
}

// ParseOverrides appends external overrides, applied in order after
// parsing and before the resolution passes.
func ParseOverrides(ovs ...Override) ParseOption {
	return func(po *parseOpts) { po.overrides = append(po.overrides, ovs...) }
}

func (po *parseOpts) subOpts(dir string) []ParseOption {
	return []ParseOption{
		ParseEnv(po.env),
		ParseFetcher(po.fetcher),
		ParseDir(dir),
	}
}
