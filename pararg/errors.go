package pararg

import (
	"errors"
	"fmt"
)

// ErrorType represents the categories of input errors a session reports.
// They drive exit-code mapping (via ExitCodeManager) and diagnostics.
type ErrorType string

const (
	ErrorTypeUndefinedFlag   ErrorType = "undefined_flag"
	ErrorTypeMissingArgument ErrorType = "missing_argument"
	ErrorTypeMalformed       ErrorType = "malformed"
)

// Sentinels matched by errors.Is against a *ParseError.
var (
	ErrUndefinedFlag   = errors.New("undefined flag")
	ErrMissingArgument = errors.New("missing argument")
	ErrMalformed       = errors.New("malformed argument")
)

// ParseError is the error form of an error Result.
type ParseError struct {
	Type        ErrorType
	Message     string
	Flag        string // declared name, set for missing arguments and malformed inline values
	Token       string // the argv entry that failed
	Index       int    // its position in argv
	Suggestions []Suggestion
}

func (e *ParseError) Error() string {
	return e.Message
}

// Unwrap maps the error type onto its sentinel.
func (e *ParseError) Unwrap() error {
	switch e.Type {
	case ErrorTypeUndefinedFlag:
		return ErrUndefinedFlag
	case ErrorTypeMissingArgument:
		return ErrMissingArgument
	case ErrorTypeMalformed:
		return ErrMalformed
	default:
		return nil
	}
}

// NewParseError creates a ParseError with a message derived from its type
func NewParseError(typ ErrorType, token, flag string) *ParseError {
	e := &ParseError{Type: typ, Token: token, Flag: flag}
	switch typ {
	case ErrorTypeUndefinedFlag:
		e.Message = fmt.Sprintf("undefined flag `%s`", token)
	case ErrorTypeMissingArgument:
		e.Message = fmt.Sprintf("missing argument for `%s`", flag)
	case ErrorTypeMalformed:
		if flag != "" {
			e.Message = fmt.Sprintf("flag `%s` does not take an argument: `%s`", flag, token)
		} else {
			e.Message = fmt.Sprintf("invalid input: `%s`", token)
		}
	default:
		e.Message = fmt.Sprintf("%s: `%s`", typ, token)
	}
	return e
}
