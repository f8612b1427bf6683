package wire

import "fmt"

// Canonical failure messages. Composite parsing distinguishes a malformed
// URI token ("Incomplete URI") from a well-formed one that left visible
// residue ("URI not fully parsed").
const (
	errIncompleteRequestLine     = "Incomplete request line"
	errIncompleteResponseLine    = "Incomplete response line"
	errIncompleteURI             = "Incomplete URI"
	errIncompleteHeaders         = "Incomplete headers"
	errURINotFullyParsed         = "URI not fully parsed"
	errContinuationWithoutHeader = "Continuation line without preceding header"
)

// ParseError is the single error kind raised by every parser in this
// package. Offset is a byte offset into the buffer the failing cursor was
// created over, pointing as close as possible to the first byte the
// grammar could not match.
type ParseError struct {
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wire: parse error at offset %d: %s", e.Offset, e.Message)
}

func newParseError(msg string, offset int) *ParseError {
	return &ParseError{Message: msg, Offset: offset}
}
