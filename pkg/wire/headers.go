package wire

// Stop sets for header lines. A key excludes whitespace, the colon, and
// line endings; a value runs to the end of the line.
const (
	keyStop   = " \t:\r\n"
	valueStop = "\r\n"
)

// ParseHeaders parses one or more header or continuation lines followed by
// an optional terminator (a line of horizontal whitespace ending in CRLF
// or LF). Terminated reports whether the terminator was consumed.
//
// A header line is "key ':' [WS] value EOL" with a non-empty value; it
// starts a new entry. A continuation line is "WS value EOL"; its value is
// appended to the most recently started entry, and a continuation with no
// preceding header fails with a dedicated error.
//
// An entry is recorded as soon as its "key:" prefix matches. If the rest
// of the line then fails (an empty value), the entry is retained with no
// values, the line is left unconsumed, and the loop stops — mirroring the
// observable output of the reference grammar.
func ParseHeaders(c *Cursor) (*Headers, error) {
	h := &Headers{}

	matched := 0
	for {
		save := c.pos
		ok, err := parseHeaderLine(c, h)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.pos = save
			break
		}
		matched++
	}
	if matched == 0 {
		return nil, newParseError(errIncompleteHeaders, c.pos)
	}

	save := c.pos
	c.skipHWS()
	if c.takeEOL() {
		h.Terminated = true
	} else {
		c.pos = save
	}
	return h, nil
}

// parseHeaderLine matches one header or continuation line, first-match-wins.
// It reports whether a line was consumed; the cursor is only meaningful on
// a true return.
func parseHeaderLine(c *Cursor, h *Headers) (bool, error) {
	start := c.pos

	// Header line.
	key := c.takeUntil(keyStop)
	if b, ok := c.peek(); ok && b == ':' {
		c.pos++
		h.Entries = append(h.Entries, HeaderEntry{Key: key})
		c.skipHWS()
		val := c.takeUntil(valueStop)
		if !val.IsEmpty() && c.lineEnd() {
			last := &h.Entries[len(h.Entries)-1]
			last.Values = append(last.Values, val)
			return true, nil
		}
	}
	c.pos = start

	// Continuation line.
	if b, ok := c.peek(); !ok || (b != ' ' && b != '\t') {
		return false, nil
	}
	c.skipHWS()
	val := c.takeUntil(valueStop)
	if val.IsEmpty() || !c.lineEnd() {
		return false, nil
	}
	if len(h.Entries) == 0 {
		return false, newParseError(errContinuationWithoutHeader, start)
	}
	last := &h.Entries[len(h.Entries)-1]
	last.Values = append(last.Values, val)
	return true, nil
}
