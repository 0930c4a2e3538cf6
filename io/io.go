package paio

import (
	stdio "io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// IOManager centralizes IO and terminal capabilities
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool

	isTerminal func(fd int) bool
	getSize    func(fd int) (width, height int, err error)
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{
		in:         os.Stdin,
		out:        os.Stdout,
		err:        os.Stderr,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
	}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool { return m.terminal(m.out) }

// IsErrTTY reports whether the error writer is a terminal.
func (m *IOManager) IsErrTTY() bool { return m.terminal(m.err) }

func (m *IOManager) terminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return m.isTerminal(int(f.Fd()))
}

// Width returns the terminal width of the output writer, then $COLUMNS, then 80.
func (m *IOManager) Width() int {
	if f, ok := m.out.(*os.File); ok && f != nil {
		if w, _, err := m.getSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if c := os.Getenv("COLUMNS"); c != "" {
		if w, err := strconv.Atoi(c); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// SupportsColor reports whether ANSI styling should be emitted.
// Diagnostics go to the error writer, so that is the stream inspected.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsErrTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}
