package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hocl-format/hocl/debug"
	"github.com/hocl-format/hocl/ir"
	"github.com/hocl-format/hocl/merge"
	"github.com/hocl-format/hocl/token"
)

type osFetcher struct{}

func (osFetcher) Fetch(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func isInclude(ln string) bool {
	rest, ok := strings.CutPrefix(ln, "include")
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// include loads the named document and deep-merges it into obj at the
// point of the directive. An optional include that cannot be fetched is a
// no-op; a required one is the parser's only fatal condition. The
// sub-document parses with its own directory base, and its references
// resolve against its own root before merging.
func include(ln string, obj *ir.Node, po *parseOpts) error {
	arg := strings.TrimSpace(strings.TrimPrefix(ln, "include"))
	required := false
	if inner, ok := strings.CutPrefix(arg, "required("); ok {
		arg = strings.TrimSuffix(strings.TrimSpace(inner), ")")
		arg = strings.TrimSpace(arg)
		required = true
	}
	path, ok := token.QuoteLayer(arg)
	if !ok {
		path = arg
	}
	if path == "" {
		return nil
	}
	full := path
	if !filepath.IsAbs(full) && po.dir != "" {
		full = filepath.Join(po.dir, full)
	}
	d, err := po.fetcher.Fetch(full)
	if err != nil {
		if required {
			return fmt.Errorf("%w: %s: %v", ErrMissingInclude, path, err)
		}
		if debug.Include() {
			debug.Logf("optional include %s skipped: %v\n", path, err)
		}
		return nil
	}
	if debug.Include() {
		debug.Logf("including %s\n", full)
	}
	sub, err := Parse(d, po.subOpts(filepath.Dir(full))...)
	if err != nil {
		return err
	}
	merge.Into(obj, sub)
	return nil
}
