package wire

import (
	"bytes"
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ParseRequest parses a request line, re-parses its URI token, and parses
// the header block, all over one cursor.
//
// RawRequestLine is the consumed first line minus its final byte: a
// CRLF-terminated line keeps its CR, an LF-terminated line loses only the
// LF. If the URI grammar leaves any of the URI token unconsumed the parse
// fails with "URI not fully parsed", distinct from the grammar-level
// "Incomplete URI".
func ParseRequest(c *Cursor) (*Request, error) {
	r := &Request{}

	start := c.pos
	rl, err := ParseRequestLine(c)
	if err != nil {
		return nil, err
	}
	r.RequestLine = *rl
	r.RawRequestLine = Span{src: c.src, start: start, end: c.pos - 1}

	u, err := parseTargetURI(r.RequestLine.URI)
	if err != nil {
		return nil, err
	}
	r.URI = *u

	hs, err := ParseHeaders(c)
	if err != nil {
		return nil, err
	}
	r.Headers = *hs
	return r, nil
}

// parseTargetURI re-parses a request target with the URI grammar. The
// grammar consumes a line ending, so a target containing one can parse
// successfully with visible residue after it; that residue fails the
// composite parse. Request targets scanned off the wire cannot contain
// line-ending bytes, so through ParseRequest the residue check is a guard.
func parseTargetURI(target Span) (*URI, error) {
	c := target.Cursor()
	u, err := ParseURI(c)
	if err != nil {
		return nil, err
	}
	if !c.IsEmpty() {
		return nil, newParseError(errURINotFullyParsed, c.pos)
	}
	return u, nil
}

// ParseResponse parses a response line and the header block over one
// cursor. RawResponseLine is captured like RawRequestLine.
func ParseResponse(c *Cursor) (*Response, error) {
	r := &Response{}

	start := c.pos
	rl, err := ParseResponseLine(c)
	if err != nil {
		return nil, err
	}
	r.ResponseLine = *rl
	r.RawResponseLine = Span{src: c.src, start: start, end: c.pos - 1}

	hs, err := ParseHeaders(c)
	if err != nil {
		return nil, err
	}
	r.Headers = *hs
	return r, nil
}

// ParseRequestReader reads all data from r and parses it as a request. The
// returned spans reference the buffer read from r, which the result keeps
// alive.
func ParseRequestReader(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseRequest(NewCursor(data))
}

// ParseResponseReader reads all data from r and parses it as a response.
func ParseResponseReader(r io.Reader) (*Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseResponse(NewCursor(data))
}

// DetectMessageType returns "request" or "response" based on the data
// prefix. Data starting with "HTTP/" is detected as a response; everything
// else as a request.
func DetectMessageType(data []byte) string {
	if bytes.HasPrefix(data, []byte("HTTP/")) {
		return "response"
	}
	return "request"
}

// Parse parses wire-format input into an AST. The message type is
// auto-detected via DetectMessageType. The AST copies span text into its
// nodes; it is an interop surface, not part of the zero-copy contract.
//
// For requests the node has the shape:
//
//	{ "type": "request", "rawRequestLine": "...", "method": "GET",
//	  "target": "/api", "version": "HTTP/1.1",
//	  "uri": {"scheme": ..., "authority": ..., "path": ..., "query": ..., "fragment": ...},
//	  "headers": [{"key": "Host", "values": ["example.com"]}, ...],
//	  "terminated": true }
//
// For responses:
//
//	{ "type": "response", "rawResponseLine": "...", "version": "HTTP/1.1",
//	  "status": "200", "message": "OK",
//	  "headers": [...], "terminated": true }
func Parse(input string) (ast.SchemaNode, error) {
	data := []byte(input)
	c := NewCursor(data)
	if DetectMessageType(data) == "response" {
		resp, err := ParseResponse(c)
		if err != nil {
			return nil, err
		}
		return ResponseToNode(resp), nil
	}
	req, err := ParseRequest(c)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// ParseReader reads all data from r and parses it as an AST. See Parse.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
