package pararg

import "strings"

// TokenKind is the shape of a single argv entry.
type TokenKind int

const (
	TokenMalformed  TokenKind = iota
	TokenShort                // -x
	TokenLong                 // --name...
	TokenPositional           // file, ./file, ~/file, /file
)

func (k TokenKind) String() string {
	switch k {
	case TokenShort:
		return "short"
	case TokenLong:
		return "long"
	case TokenPositional:
		return "positional"
	default:
		return "malformed"
	}
}

// Classify reports the shape of token without consuming anything.
// The empty string, "-", "--" and anything starting with other
// punctuation are malformed.
func Classify(token string) TokenKind {
	switch {
	case len(token) == 2 && token[0] == '-' && isAlnum(token[1]):
		return TokenShort
	case len(token) >= 3 && token[0] == '-' && token[1] == '-' && isAlnum(token[2]):
		return TokenLong
	case len(token) >= 1 && (isAlnum(token[0]) || isPathStart(token[0])):
		return TokenPositional
	default:
		return TokenMalformed
	}
}

func isPathStart(c byte) bool {
	return c == '~' || c == '.' || c == '/'
}

// SplitInline looks for the first '=' in a long flag body (the text after
// "--"). offset is the byte just past it and length the number of bytes
// from there to the end. found is false when body has no '='; found with a
// zero length means the value was written but left empty ("--name=").
func SplitInline(body string) (offset, length int, found bool) {
	i := strings.IndexByte(body, '=')
	if i < 0 {
		return 0, 0, false
	}
	return i + 1, len(body) - i - 1, true
}

// stripInline drops an "=value" suffix from a long flag body.
func stripInline(body string) string {
	if i := strings.IndexByte(body, '='); i >= 0 {
		return body[:i]
	}
	return body
}
