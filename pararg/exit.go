package pararg

import (
	"errors"
	"reflect"
)

// ExitError is a sentinel used to request a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
	ConfigError   int // default: 1
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ConfigError: 1}
}

// ExitCodeManager maps errors and categories to process exit codes.
// Every input error maps to GeneralError until overridden with DefineParse.
type ExitCodeManager struct {
	codesByParse map[ErrorType]int
	codesByType  map[reflect.Type]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the default codes.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByParse: make(map[ErrorType]int),
		codesByType:  make(map[reflect.Type]int),
		defaults:     defaultExitDefaults(),
	}
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. A matching type takes precedence over the default codes but is
// secondary to an explicit ExitError.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByType[reflect.TypeOf(err)] = code
	return e
}

// DefineParse overrides the exit code used for one input error category.
func (e *ExitCodeManager) DefineParse(typ ErrorType, code int) *ExitCodeManager {
	e.codesByParse[typ] = code
	return e
}

// Default replaces the manager's default codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager { e.defaults = d; return e }

// Defaults returns the codes currently in effect.
func (e *ExitCodeManager) Defaults() ExitCodeDefaults { return e.defaults }

// Code converts an error to an exit code according to registered mappings.
// Precedence:
//  1. ExitError (requested code)
//  2. ParseError category mapping (DefineParse)
//  3. Concrete error type mapping (DefineError)
//  4. ConfigError, then the general default
func (e *ExitCodeManager) Code(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByParse[parseErr.Type]; ok {
			return code
		}
	}

	for t, code := range e.codesByType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return e.defaults.ConfigError
	}

	return e.defaults.GeneralError
}
