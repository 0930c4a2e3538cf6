package pararg

import "fmt"

// Arity says whether a flag takes an argument.
type Arity int

const (
	// ArgRequired: --flag value, or --flag=value
	ArgRequired Arity = iota
	// ArgOptional: --flag, --flag value, or --flag=value
	ArgOptional
	// ArgNone: --flag only
	ArgNone
)

func (a Arity) String() string {
	switch a {
	case ArgRequired:
		return "required"
	case ArgOptional:
		return "optional"
	case ArgNone:
		return "none"
	default:
		return fmt.Sprintf("Arity(%d)", int(a))
	}
}

// Option declares one flag. Name is matched after "--", ID after "-".
//
// Neither ids nor names are checked for uniqueness. Lookups walk the table
// in declaration order and the first match wins, so an option whose name is
// a prefix of a later one ("doc" before "document") shadows it.
type Option struct {
	Name  string
	ID    byte
	Arity Arity
}

// ConfigError reports an invalid option table. It is a programming error:
// Session.Next panics with it instead of returning a Result.
type ConfigError struct {
	Program string // argv[0] of the session that found it, if any
	Index   int    // 1-based position of the offending option
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pararg: option %d: %s", e.Index, e.Reason)
}

const (
	reasonEmptyName = "option names cannot be empty"
	reasonCharset   = "both id and name must start with [0-9] [a-z] or [A-Z]"
)

// Validate checks every option in order and returns a *ConfigError for the
// first one that is unusable: an empty name, or an id or first name byte
// outside [0-9A-Za-z].
func Validate(opts []Option) error {
	_, err := validate(opts)
	return err
}

// validate returns the name length of every option on success.
func validate(opts []Option) ([]int, error) {
	lengths := make([]int, len(opts))
	for i, opt := range opts {
		if opt.Name == "" {
			return nil, &ConfigError{Index: i + 1, Reason: reasonEmptyName}
		}
		if !isAlnum(opt.ID) || !isAlnum(opt.Name[0]) {
			return nil, &ConfigError{Index: i + 1, Reason: reasonCharset}
		}
		lengths[i] = len(opt.Name)
	}
	return lengths, nil
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
