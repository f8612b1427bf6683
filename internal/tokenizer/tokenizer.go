package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for HTTP-like wire text. The format is
// line-oriented, so the matchers work at the line level:
// 1. CRLF (line endings)
// 2. WS (horizontal whitespace runs)
// 3. Delimiter bytes (colon, '?', '#', '@')
// 4. Generic word (everything else)
//
// Note: the default whitespace skipper is not used because whitespace and
// line endings are semantically significant in this grammar.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		// CRLF first (highest priority - line endings are structural)
		CRLFMatcher(),

		// Horizontal whitespace run
		WSMatcher(),

		// Delimiter bytes
		tokenizer.StringMatcherFunc(TokenColon, ":"),
		tokenizer.StringMatcherFunc(TokenQuery, "?"),
		tokenizer.StringMatcherFunc(TokenFrag, "#"),
		tokenizer.StringMatcherFunc(TokenAt, "@"),

		// Generic word token (everything else until a delimiter)
		WordMatcher(),
	)
}

// NewTokenizerWithStream creates a wire-text tokenizer using a
// pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// CRLFMatcher matches \r\n, bare \n, or a stray \r. The stream has no
// pushback, so a consumed \r with no \n behind it is emitted as a CRLF
// token rather than lost; the span grammar, not the tokenizer, enforces
// which endings terminate a line.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}

		if r == '\r' {
			value := []rune{'\r'}
			stream.NextChar()
			// Check for \n after \r
			r2, ok := stream.PeekChar()
			if ok && r2 == '\n' {
				stream.NextChar()
				value = append(value, '\n')
			}
			return tokenizer.NewToken(TokenCRLF, value)
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// WSMatcher matches a run of one or more space or tab characters.
func WSMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r != ' ' && r != '\t' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenWS, value)
	}
}

// WordMatcher matches any sequence of characters until whitespace, a line
// ending, a delimiter byte, or EOS. This is used for methods, targets,
// header names, path components, host names, and the like.
func WordMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' ||
				r == ':' || r == '?' || r == '#' || r == '@' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenWord, value)
	}
}
