package token

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hocl-format/hocl/ir"
)

var numberRe = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?$`)

// Coerce converts bare literal text into its typed node. Booleans and null
// match case-insensitively; numeric text becomes a Number, except that a
// decimal literal whose value is mathematically an integer (e.g. "2.0")
// keeps its original text as a String. Everything else is a String as-is.
func Coerce(text string) *ir.Node {
	if strings.EqualFold(text, "true") {
		return ir.FromBool(true)
	}
	if strings.EqualFold(text, "false") {
		return ir.FromBool(false)
	}
	if strings.EqualFold(text, "null") {
		return ir.Null()
	}
	if !numberRe.MatchString(text) {
		return ir.FromString(text)
	}
	if !strings.ContainsRune(text, '.') {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return ir.FromString(text)
		}
		res := ir.FromInt(i)
		res.Number = text
		return res
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ir.FromString(text)
	}
	if f == math.Trunc(f) {
		return ir.FromString(text)
	}
	res := ir.FromFloat(f)
	res.Number = text
	return res
}
