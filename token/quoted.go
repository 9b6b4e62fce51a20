package token

import "strings"

// IsTripleQuoted reports whether s is a complete """…""" literal.
func IsTripleQuoted(s string) bool {
	return len(s) >= 6 && strings.HasPrefix(s, triple) && strings.HasSuffix(s, triple)
}

// UnquoteTriple strips the """ delimiters and decodes escape sequences,
// turning the \n escapes the preprocessor encodes back into line breaks.
func UnquoteTriple(s string) string {
	return DecodeEscapes(s[3 : len(s)-3])
}

// QuoteLayer strips exactly one layer of matching single or double quotes,
// reporting whether s was quoted at all.
func QuoteLayer(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return s, false
	}
	if s[len(s)-1] != q {
		return s, false
	}
	return s[1 : len(s)-1], true
}

// DecodeEscapes decodes the escape sequences HOCL strings carry. Unknown
// escapes pass through with the backslash dropped.
func DecodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	res := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			res = append(res, c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			res = append(res, '\n')
		case 't':
			res = append(res, '\t')
		case 'r':
			res = append(res, '\r')
		default:
			res = append(res, s[i])
		}
	}
	return string(res)
}
