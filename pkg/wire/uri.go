package wire

// Stop sets for the URI fields. Query and fragment deliberately admit tab
// bytes; only a literal space terminates them.
const (
	authorityStop = " \t/?#\r\n"
	pathStop      = " \t?#\r\n"
	queryStop     = " #\r\n"
	fragmentStop  = " \r\n"
)

// isSchemeByte reports whether b may appear in a URI scheme.
func isSchemeByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '+' || b == '-' || b == '.':
		return true
	}
	return false
}

// ParseURI decomposes one line's worth of text into scheme, authority,
// path, query, and fragment in a single left-to-right pass:
//
//   - scheme: a non-empty run of scheme bytes directly followed by ':'
//     (colon consumed, excluded from the span); otherwise absent and
//     nothing is consumed.
//   - authority: only after a literal "//" (consumed, excluded).
//   - path: possibly empty run up to whitespace, '?', '#', or line end.
//   - query: only after '?' (consumed, excluded).
//   - fragment: only after '#' (consumed, excluded).
//
// A line ending or end of input must follow the last field.
func ParseURI(c *Cursor) (*URI, error) {
	u := &URI{}

	save := c.pos
	for c.pos < c.end && isSchemeByte(c.src[c.pos]) {
		c.pos++
	}
	if c.pos > save && c.pos < c.end && c.src[c.pos] == ':' {
		u.Scheme = Span{src: c.src, start: save, end: c.pos}
		c.pos++
	} else {
		c.pos = save
	}

	if c.end-c.pos >= 2 && c.src[c.pos] == '/' && c.src[c.pos+1] == '/' {
		c.pos += 2
		u.Authority = c.takeUntil(authorityStop)
	}

	u.Path = c.takeUntil(pathStop)

	if b, ok := c.peek(); ok && b == '?' {
		c.pos++
		u.Query = c.takeUntil(queryStop)
	}

	if b, ok := c.peek(); ok && b == '#' {
		c.pos++
		u.Fragment = c.takeUntil(fragmentStop)
	}

	if !c.lineEnd() {
		return nil, newParseError(errIncompleteURI, c.pos)
	}
	return u, nil
}
