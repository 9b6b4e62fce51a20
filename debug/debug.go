package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Merge   bool
	Resolve bool
	Include bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("HOCL_DEBUG_PARSE")
	d.Merge = boolEnv("HOCL_DEBUG_MERGE")
	d.Resolve = boolEnv("HOCL_DEBUG_RESOLVE")
	d.Include = boolEnv("HOCL_DEBUG_INCLUDE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Merge() bool {
	return d.Merge
}
func Resolve() bool {
	return d.Resolve
}
func Include() bool {
	return d.Include
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
