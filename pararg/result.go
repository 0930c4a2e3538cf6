package pararg

import "fmt"

// Kind tags a Result.
type Kind int

const (
	KindDone Kind = iota
	KindPositional
	KindFlag
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindPositional:
		return "positional"
	case KindFlag:
		return "flag"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Span locates a value inside the caller's argv: args[Index][Offset:Offset+Len].
type Span struct {
	Index  int
	Offset int
	Len    int
}

// Suggestion is a declared flag name close to an undefined one.
type Suggestion struct {
	Name    string
	Favored bool // close enough to highlight
}

// Result is what one call to Session.Next produced.
//
//   - KindDone: nothing left. Only Index is set.
//   - KindPositional: Value holds the token.
//   - KindFlag: ID and Name identify the option; Value is set when HasValue.
//   - KindError: ErrType says why. Name is set when the flag itself was
//     recognized (missing or unexpected argument); Suggestions may be set
//     for an undefined long flag.
//
// Value is always a substring of an argv entry and Span says which one.
type Result struct {
	Kind     Kind
	ID       byte
	Name     string
	Value    string
	HasValue bool
	Span     Span

	ErrType     ErrorType
	Suggestions []Suggestion

	// Token is the argv entry that produced the result, at args[Index].
	Token string
	Index int
}

// Err returns the result as a *ParseError, or nil unless Kind is KindError.
func (r Result) Err() error {
	if r.Kind != KindError {
		return nil
	}
	e := NewParseError(r.ErrType, r.Token, r.Name)
	e.Index = r.Index
	if len(r.Suggestions) > 0 {
		e.Suggestions = append([]Suggestion(nil), r.Suggestions...)
	}
	return e
}

func (r Result) String() string {
	switch r.Kind {
	case KindDone:
		return "done"
	case KindPositional:
		return fmt.Sprintf("positional(%q)", r.Value)
	case KindFlag:
		if r.HasValue {
			return fmt.Sprintf("flag(%c, %q)", r.ID, r.Value)
		}
		return fmt.Sprintf("flag(%c)", r.ID)
	case KindError:
		return fmt.Sprintf("error(%s, %q)", r.ErrType, r.Token)
	default:
		return r.Kind.String()
	}
}
