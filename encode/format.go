package encode

import "fmt"

// Format selects the output syntax for Encode.
type Format int

const (
	HOCLFormat Format = iota
	JSONFormat
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	default:
		return "hocl"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "hocl", "":
		return HOCLFormat, nil
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	}
	return HOCLFormat, fmt.Errorf("unknown format %q", s)
}
