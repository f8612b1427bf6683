// Package wire provides zero-copy span parsing of HTTP-like wire text.
//
// The parsers decompose request lines, response lines, URIs, authority
// components, header blocks, and separator-delimited filesystem paths into
// Span views over the caller's byte buffer. No matched byte is ever copied:
// every result field identifies a range of the original input, so results
// must not outlive the buffer they were parsed from.
//
// The grammars are permissive supersets of their RFC counterparts, intended
// for traffic inspection rather than conformance checking. They validate
// structure, not semantics: a port span may hold non-digits, a scheme is any
// run of scheme characters before a colon.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines provided no two calls share a Cursor. Parsers hold no state
// outside the cursor threaded through them.
//
// # Parsing APIs
//
//   - ParseRequest/ParseResponse - composite message parsing over a Cursor
//   - ParseRequestLine/ParseResponseLine/ParseURI/ParseAuthority/
//     ParseHeaders/ParsePath - the individual grammars
//   - Parse/ParseReader - AST construction via shape-core
package wire

import "strings"

// RequestLine is the decomposed first line of a request.
// Version is empty when the line carries no version token.
type RequestLine struct {
	Method  Span
	URI     Span
	Version Span
}

// ResponseLine is the decomposed first line of a response. Message is the
// remainder of the line and may contain spaces.
type ResponseLine struct {
	Version Span
	Status  Span
	Message Span
}

// URI is a decomposed URI. Every field is independently empty when its
// introducer is absent from the input.
type URI struct {
	Scheme    Span
	Authority Span
	Path      Span
	Query     Span
	Fragment  Span
}

// Authority is a decomposed authority component of the shape
// [user[:pass]@]host[:port]. Absent fields are empty spans.
type Authority struct {
	Username Span
	Password Span
	Host     Span
	Port     Span
}

// HeaderEntry is one logical header: a key plus an ordered sequence of
// value spans. A continuation line appends a further value to the entry it
// follows, so one entry may hold several values.
type HeaderEntry struct {
	Key    Span
	Values []Span
}

// Headers is a parsed header block. Terminated reports whether a blank
// line was consumed after the last header.
type Headers struct {
	Entries    []HeaderEntry
	Terminated bool
}

// Get returns the first value of the first entry whose key matches
// (ASCII case-insensitive). The second return is false if no entry with a
// value matches.
func (h Headers) Get(key string) (Span, bool) {
	for _, e := range h.Entries {
		if strings.EqualFold(e.Key.String(), key) && len(e.Values) > 0 {
			return e.Values[0], true
		}
	}
	return Span{}, false
}

// Values returns every value span of every entry whose key matches
// (ASCII case-insensitive), in input order.
func (h Headers) Values(key string) []Span {
	var vals []Span
	for _, e := range h.Entries {
		if strings.EqualFold(e.Key.String(), key) {
			vals = append(vals, e.Values...)
		}
	}
	return vals
}

// Path is a decomposed separator-parameterized path. File equals Base when
// Extension is empty; otherwise File spans from Base's start to Extension's
// end, with the extension separator in between.
type Path struct {
	Directory          Span
	File               Span
	Base               Span
	Extension          Span
	DirectorySeparator byte
	ExtensionSeparator byte
}

// Request is a fully parsed request: first line, its URI re-parsed, and the
// header block.
type Request struct {
	RawRequestLine Span
	RequestLine    RequestLine
	URI            URI
	Headers        Headers
}

// Response is a fully parsed response: first line and header block.
type Response struct {
	RawResponseLine Span
	ResponseLine    ResponseLine
	Headers         Headers
}
