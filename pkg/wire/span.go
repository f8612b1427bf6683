package wire

import (
	"bytes"
	"strings"
)

// Span identifies a half-open byte range within a source buffer. It is
// immutable and non-owning: reading a Span after its buffer has been freed
// or mutated is a caller error. The zero Span is empty.
type Span struct {
	src        []byte
	start, end int
}

// NewSpan returns a span over src[start:end]. It panics if the range is not
// within src.
func NewSpan(src []byte, start, end int) Span {
	if start < 0 || end < start || end > len(src) {
		panic("wire: span range out of bounds")
	}
	return Span{src: src, start: start, end: end}
}

// Bytes returns the referenced bytes without copying.
func (s Span) Bytes() []byte { return s.src[s.start:s.end] }

// String returns a copy of the referenced bytes as a string.
func (s Span) String() string { return string(s.Bytes()) }

// Len returns the number of referenced bytes.
func (s Span) Len() int { return s.end - s.start }

// IsEmpty reports whether the span references no bytes.
func (s Span) IsEmpty() bool { return s.start == s.end }

// Start returns the span's starting offset within its buffer.
func (s Span) Start() int { return s.start }

// End returns the span's ending offset within its buffer.
func (s Span) End() int { return s.end }

// Equal reports whether two spans reference equal bytes. Spans over
// different buffers compare equal if their contents match.
func (s Span) Equal(t Span) bool { return bytes.Equal(s.Bytes(), t.Bytes()) }

// Cursor returns a new cursor over the span's bytes, positioned at its
// start. Spans produced by that cursor reference the span's own buffer.
func (s Span) Cursor() *Cursor {
	return &Cursor{src: s.src, pos: s.start, end: s.end}
}

// Cursor tracks the unconsumed suffix of a buffer. Each parse operation
// consumes a prefix of the cursor and advances it; after a failed parse the
// cursor position is unspecified and the cursor must be discarded.
type Cursor struct {
	src      []byte
	pos, end int
}

// NewCursor returns a cursor over the whole of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{src: buf, end: len(buf)}
}

// Rest returns the unconsumed input as a span.
func (c *Cursor) Rest() Span { return Span{src: c.src, start: c.pos, end: c.end} }

// Offset returns the cursor's byte offset within the original buffer.
func (c *Cursor) Offset() int { return c.pos }

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int { return c.end - c.pos }

// IsEmpty reports whether all input has been consumed.
func (c *Cursor) IsEmpty() bool { return c.pos == c.end }

func (c *Cursor) peek() (byte, bool) {
	if c.pos >= c.end {
		return 0, false
	}
	return c.src[c.pos], true
}

// skipHWS consumes a run of horizontal whitespace (space and tab).
func (c *Cursor) skipHWS() {
	for c.pos < c.end && (c.src[c.pos] == ' ' || c.src[c.pos] == '\t') {
		c.pos++
	}
}

// takeUntil consumes the longest run of bytes not in stop and returns it as
// a span. The run may be empty.
func (c *Cursor) takeUntil(stop string) Span {
	start := c.pos
	for c.pos < c.end && strings.IndexByte(stop, c.src[c.pos]) < 0 {
		c.pos++
	}
	return Span{src: c.src, start: start, end: c.pos}
}

// takeUntilByte consumes the longest run of bytes other than sep and
// returns it as a span.
func (c *Cursor) takeUntilByte(sep byte) Span {
	start := c.pos
	if i := bytes.IndexByte(c.src[c.pos:c.end], sep); i < 0 {
		c.pos = c.end
	} else {
		c.pos += i
	}
	return Span{src: c.src, start: start, end: c.pos}
}

// takeEOL consumes a CRLF or LF line ending. A bare CR is not a line
// ending.
func (c *Cursor) takeEOL() bool {
	if c.pos < c.end && c.src[c.pos] == '\n' {
		c.pos++
		return true
	}
	if c.pos+1 < c.end && c.src[c.pos] == '\r' && c.src[c.pos+1] == '\n' {
		c.pos += 2
		return true
	}
	return false
}

// lineEnd consumes a line ending or matches end of input.
func (c *Cursor) lineEnd() bool {
	if c.pos >= c.end {
		return true
	}
	return c.takeEOL()
}
