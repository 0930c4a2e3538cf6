package pararg

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type customErr struct{}

func (customErr) Error() string { return "custom" }

func TestExitCodeManager(t *testing.T) {
	m := NewExitCodeManager()

	undefined := NewParseError(ErrorTypeUndefinedFlag, "--reed", "")
	missing := NewParseError(ErrorTypeMissingArgument, "-D", "document")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, 0},
		{"parse errors default to general", undefined, 1},
		{"config error", &ConfigError{Index: 1, Reason: reasonEmptyName}, 1},
		{"wrapped config error", fmt.Errorf("setup: %w", &ConfigError{Index: 2}), 1},
		{"unknown error", errors.New("boom"), 1},
		{"exit error wins", &ExitError{Code: 7, Err: undefined}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Code(tt.err); got != tt.want {
				t.Errorf("Code(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}

	m.DefineParse(ErrorTypeMissingArgument, m.Defaults().MisusageError)
	if got := m.Code(missing); got != 2 {
		t.Errorf("DefineParse override: got %d, want 2", got)
	}
	if got := m.Code(undefined); got != 1 {
		t.Errorf("other categories must keep the default, got %d", got)
	}

	m.DefineError(customErr{}, 42).DefineError(nil, 9)
	if got := m.Code(fmt.Errorf("wrapped: %w", customErr{})); got != 42 {
		t.Errorf("DefineError mapping: got %d, want 42", got)
	}

	m.Default(ExitCodeDefaults{Success: 0, GeneralError: 3, MisusageError: 4, ConfigError: 5})
	if got := m.Code(errors.New("x")); got != 3 {
		t.Errorf("custom general default: got %d", got)
	}
	if got := m.Code(&ConfigError{}); got != 5 {
		t.Errorf("custom config default: got %d", got)
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("inner")
	e := &ExitError{Code: 3, Err: inner}
	if e.Error() != "inner" || !errors.Is(e, inner) {
		t.Errorf("ExitError should expose its cause")
	}
	if (&ExitError{Code: 1}).Error() != "exit" {
		t.Errorf("bare ExitError message")
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		typ      ErrorType
		token    string
		flag     string
		sentinel error
		message  string
	}{
		{ErrorTypeUndefinedFlag, "--reed", "", ErrUndefinedFlag, "undefined flag `--reed`"},
		{ErrorTypeMissingArgument, "-D", "document", ErrMissingArgument, "missing argument for `document`"},
		{ErrorTypeMalformed, "-", "", ErrMalformed, "invalid input: `-`"},
		{ErrorTypeMalformed, "--readonly=yes", "readonly", ErrMalformed, "flag `readonly` does not take an argument"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			e := NewParseError(tt.typ, tt.token, tt.flag)
			if !errors.Is(e, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", e, tt.sentinel)
			}
			if !strings.Contains(e.Error(), tt.message) {
				t.Errorf("Error() = %q, want it to contain %q", e.Error(), tt.message)
			}
		})
	}

	other := NewParseError(ErrorType("other"), "x", "")
	if other.Unwrap() != nil {
		t.Errorf("unknown types have no sentinel")
	}
}

func TestResultErr(t *testing.T) {
	if (Result{Kind: KindFlag}).Err() != nil {
		t.Errorf("non-error results have no error")
	}

	r := Result{
		Kind:        KindError,
		ErrType:     ErrorTypeUndefinedFlag,
		Token:       "--reed",
		Index:       3,
		Suggestions: []Suggestion{{Name: "readonly", Favored: true}},
	}
	var parseErr *ParseError
	if !errors.As(r.Err(), &parseErr) {
		t.Fatalf("expected *ParseError")
	}
	if parseErr.Index != 3 || len(parseErr.Suggestions) != 1 {
		t.Errorf("unexpected %+v", parseErr)
	}

	parseErr.Suggestions[0].Name = "changed"
	if r.Suggestions[0].Name != "readonly" {
		t.Errorf("ParseError must hold its own copy of the suggestions")
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindDone:       "done",
		KindPositional: "positional",
		KindFlag:       "flag",
		KindError:      "error",
		Kind(8):        "Kind(8)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind.String() = %q, want %q", got, want)
		}
	}
}
