package wire

// wordStop delimits a word: a run of at least one byte that is not
// horizontal whitespace or a line-ending byte.
const wordStop = " \t\r\n"

// ParseRequestLine parses "[WS] method WS uri [WS version] EOL" where the
// version token and the final line ending are optional (end of input also
// terminates the line). The cursor is advanced past the line ending.
func ParseRequestLine(c *Cursor) (*RequestLine, error) {
	r := &RequestLine{}

	c.skipHWS()
	r.Method = c.takeUntil(wordStop)
	if r.Method.IsEmpty() {
		return nil, newParseError(errIncompleteRequestLine, c.pos)
	}

	c.skipHWS()
	r.URI = c.takeUntil(wordStop)
	if r.URI.IsEmpty() {
		return nil, newParseError(errIncompleteRequestLine, c.pos)
	}

	c.skipHWS()
	r.Version = c.takeUntil(wordStop) // optional

	// No whitespace is skipped after the version: trailing bytes before
	// the line ending fail the line.
	if !c.lineEnd() {
		return nil, newParseError(errIncompleteRequestLine, c.pos)
	}
	return r, nil
}

// ParseResponseLine parses "[WS] version WS status [WS message] EOL". The
// message is the remainder of the line and may contain spaces; it may be
// empty.
func ParseResponseLine(c *Cursor) (*ResponseLine, error) {
	r := &ResponseLine{}

	c.skipHWS()
	r.Version = c.takeUntil(wordStop)
	if r.Version.IsEmpty() {
		return nil, newParseError(errIncompleteResponseLine, c.pos)
	}

	c.skipHWS()
	r.Status = c.takeUntil(wordStop)
	if r.Status.IsEmpty() {
		return nil, newParseError(errIncompleteResponseLine, c.pos)
	}

	c.skipHWS()
	r.Message = c.takeUntil("\r\n")

	if !c.lineEnd() {
		return nil, newParseError(errIncompleteResponseLine, c.pos)
	}
	return r, nil
}
