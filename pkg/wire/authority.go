package wire

// authWordStop delimits an authority word: a possibly empty run excluding
// '@', ':', and whitespace.
const authWordStop = "@: \t\r\n"

// ParseAuthority parses a token of the shape [user[:pass]@]host[:port].
// The user/password alternative is tried first; when no '@' follows, any
// tentatively captured username and password are discarded and the leading
// word is the host. An optional ":port" suffix is parsed either way.
//
// Every piece is optional, so the grammar accepts any input; the error
// return is always nil and kept for signature uniformity with the other
// parsers.
func ParseAuthority(c *Cursor) (*Authority, error) {
	a := &Authority{}

	w1 := c.takeUntil(authWordStop)
	switch b, ok := c.peek(); {
	case ok && b == '@':
		c.pos++
		a.Username = w1
		a.Host = c.takeUntil(authWordStop)

	case ok && b == ':':
		c.pos++
		w2 := c.takeUntil(authWordStop)
		if b2, ok2 := c.peek(); ok2 && b2 == '@' {
			c.pos++
			a.Username = w1
			a.Password = w2
			a.Host = c.takeUntil(authWordStop)
		} else {
			// Host-only fallback: w1 was not a username and w2 was not a
			// password after all.
			a.Host = w1
			a.Port = w2
			return a, nil
		}

	default:
		a.Host = w1
	}

	if b, ok := c.peek(); ok && b == ':' {
		c.pos++
		a.Port = c.takeUntil(authWordStop)
	}
	return a, nil
}
