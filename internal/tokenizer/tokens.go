// Package tokenizer provides wire-text tokenization using Shape's
// tokenizer framework.
package tokenizer

// Token type constants for HTTP-like wire text. Tokens mirror the span
// grammar's lexical classes: words separated by horizontal whitespace,
// structural delimiter bytes, and line endings.
const (
	TokenWord  = "Word"  // run of bytes excluding whitespace and delimiters
	TokenWS    = "WS"    // run of horizontal whitespace (space, tab)
	TokenCRLF  = "CRLF"  // line-ending bytes: \r\n, \n, or a stray \r
	TokenColon = "Colon" // header key/value and port separator
	TokenQuery = "Query" // '?' query introducer
	TokenFrag  = "Frag"  // '#' fragment introducer
	TokenAt    = "At"    // '@' userinfo/host separator

	// Special
	TokenEOF = "EOF" // end of input
)
