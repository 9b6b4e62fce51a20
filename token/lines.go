// Package token provides the lexical layer for HOCL: physical-to-logical
// line preprocessing, quote- and depth-aware splitting, and typed literal
// coercion.
package token

import (
	"strings"
)

const triple = `"""`

// LogicalLines normalizes raw document text into logical lines. Multi-line
// triple-quoted strings are absorbed into a single line with newlines
// re-encoded as \n escapes; arrays left open at end of line absorb
// subsequent lines verbatim until the bracket closes; comments and blank
// lines are removed. Unterminated constructs at end of input are accepted.
func LogicalLines(d []byte) []string {
	physical := strings.Split(string(d), "\n")
	res := make([]string, 0, len(physical))
	i := 0
	for i < len(physical) {
		raw := physical[i]
		i++
		var ln string
		if strings.Count(raw, triple)%2 == 1 {
			parts := raw
			for i < len(physical) && strings.Count(parts, triple)%2 == 1 {
				parts += `\n` + physical[i]
				i++
			}
			ln = StripComment(parts)
		} else {
			ln = StripComment(raw)
			for bracketDepth(ln) > 0 && i < len(physical) {
				ln += StripComment(physical[i])
				i++
			}
		}
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		res = append(res, ln)
	}
	return res
}

// StripComment removes a trailing # or // comment, ignoring comment
// markers inside quoted or triple-quoted runs.
func StripComment(s string) string {
	var st Scan
	for i := 0; i < len(s); i++ {
		n := st.Step(s, i)
		if n > 0 {
			i += n - 1
			continue
		}
		if !st.Quoted() {
			if s[i] == '#' {
				return s[:i]
			}
			if s[i] == '/' && i+1 < len(s) && s[i+1] == '/' {
				return s[:i]
			}
		}
	}
	return s
}

func bracketDepth(s string) int {
	var st Scan
	depth := 0
	for i := 0; i < len(s); i++ {
		n := st.Step(s, i)
		if n > 0 {
			i += n - 1
			continue
		}
		if st.Quoted() {
			continue
		}
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		}
	}
	return depth
}

// Scan tracks quoting while scanning a line byte-wise. Step consumes the
// quote construct starting at i, returning the number of bytes it ate
// (0 when s[i] is an ordinary byte for the caller to handle).
type Scan struct {
	inSingle bool
	inDouble bool
	inTriple bool
}

func (st *Scan) Quoted() bool {
	return st.inSingle || st.inDouble || st.inTriple
}

func (st *Scan) Step(s string, i int) int {
	c := s[i]
	if st.inTriple {
		if c == '"' && strings.HasPrefix(s[i:], triple) {
			st.inTriple = false
			return 3
		}
		return 1
	}
	if st.inSingle {
		if c == '\\' && i+1 < len(s) {
			return 2
		}
		if c == '\'' {
			st.inSingle = false
		}
		return 1
	}
	if st.inDouble {
		if c == '\\' && i+1 < len(s) {
			return 2
		}
		if c == '"' {
			st.inDouble = false
		}
		return 1
	}
	switch c {
	case '"':
		if strings.HasPrefix(s[i:], triple) {
			st.inTriple = true
			return 3
		}
		st.inDouble = true
		return 1
	case '\'':
		st.inSingle = true
		return 1
	}
	return 0
}
