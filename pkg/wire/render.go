package wire

import (
	"fmt"
	"strings"
)

// Canonical debug rendering. Each result renders as "field=value" lines in
// declared field order; composite results render their raw line, then each
// sub-result block followed by a blank line. Existing consumers diff this
// output verbatim, so the format is frozen.

// String renders the request line as canonical debug text.
func (r RequestLine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "method=%s\n", r.Method)
	fmt.Fprintf(&b, "uri=%s\n", r.URI)
	fmt.Fprintf(&b, "version=%s\n", r.Version)
	return b.String()
}

// String renders the response line as canonical debug text.
func (r ResponseLine) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "version=%s\n", r.Version)
	fmt.Fprintf(&b, "status=%s\n", r.Status)
	fmt.Fprintf(&b, "message=%s\n", r.Message)
	return b.String()
}

// String renders the URI as canonical debug text.
func (u URI) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scheme=%s\n", u.Scheme)
	fmt.Fprintf(&b, "authority=%s\n", u.Authority)
	fmt.Fprintf(&b, "path=%s\n", u.Path)
	fmt.Fprintf(&b, "query=%s\n", u.Query)
	fmt.Fprintf(&b, "fragment=%s\n", u.Fragment)
	return b.String()
}

// String renders the authority as canonical debug text.
func (a Authority) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "username=%s\n", a.Username)
	fmt.Fprintf(&b, "password=%s\n", a.Password)
	fmt.Fprintf(&b, "host=%s\n", a.Host)
	fmt.Fprintf(&b, "port=%s\n", a.Port)
	return b.String()
}

// String renders the header block: one "key=value1 value2" line per entry
// (an entry with no values renders as "key="), then the terminated flag.
func (h Headers) String() string {
	var b strings.Builder
	for _, e := range h.Entries {
		fmt.Fprintf(&b, "%s=", e.Key)
		for i, v := range e.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.Write(v.Bytes())
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "terminated=%t\n", h.Terminated)
	return b.String()
}

// String renders the path as canonical debug text. The separator bytes are
// parameters, not parse output, and are not rendered.
func (p Path) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "directory=%s\n", p.Directory)
	fmt.Fprintf(&b, "file=%s\n", p.File)
	fmt.Fprintf(&b, "base=%s\n", p.Base)
	fmt.Fprintf(&b, "extension=%s\n", p.Extension)
	return b.String()
}

// String renders the request: the raw line, then the request line, URI,
// and headers blocks, each followed by a blank line.
func (r Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "raw_request_line=%s\n", r.RawRequestLine)
	b.WriteString(r.RequestLine.String())
	b.WriteByte('\n')
	b.WriteString(r.URI.String())
	b.WriteByte('\n')
	b.WriteString(r.Headers.String())
	b.WriteByte('\n')
	return b.String()
}

// String renders the response: the raw line, then the response line and
// headers blocks, each followed by a blank line.
func (r Response) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "raw_response_line=%s\n", r.RawResponseLine)
	b.WriteString(r.ResponseLine.String())
	b.WriteByte('\n')
	b.WriteString(r.Headers.String())
	b.WriteByte('\n')
	return b.String()
}
