package token

// Fields splits s into top-level tokens: whitespace separates tokens only
// at bracket/brace depth zero and outside quotes, so groups like [a, b],
// { x = 1 } and ${path} travel as single tokens.
func Fields(s string) []string {
	return split(s, false)
}

// Items splits an array interior on top-level commas and whitespace.
func Items(s string) []string {
	return split(s, true)
}

// Statements splits an inline block body on top-level commas, leaving
// whitespace inside each statement intact.
func Statements(s string) []string {
	var st Scan
	depth := 0
	res := []string{}
	start := 0
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
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		res = append(res, s[start:])
	}
	return res
}

func split(s string, commas bool) []string {
	var st Scan
	depth := 0
	res := []string{}
	cur := []byte{}
	flush := func() {
		if len(cur) > 0 {
			res = append(res, string(cur))
			cur = cur[:0]
		}
	}
	for i := 0; i < len(s); i++ {
		n := st.Step(s, i)
		if n > 0 {
			cur = append(cur, s[i:i+n]...)
			i += n - 1
			continue
		}
		c := s[i]
		if !st.Quoted() && depth == 0 {
			if c == ' ' || c == '\t' {
				flush()
				continue
			}
			if commas && c == ',' {
				flush()
				continue
			}
		}
		if !st.Quoted() {
			switch c {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			}
		}
		cur = append(cur, c)
	}
	flush()
	return res
}
