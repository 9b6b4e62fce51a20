package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/hocl-format/hocl/ir"
)

func encodeYAML(n *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ToAny(n))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
