// Package report prints the diagnostics a program shows when a pararg
// session hands back an error result or an invalid option table.
package report

import (
	"fmt"
	"io"

	paio "github.com/dzonerzy/go-pararg/io"
	"github.com/dzonerzy/go-pararg/pararg"
)

// Printer writes diagnostics to the error writer of an IOManager.
type Printer struct {
	io      *paio.IOManager
	theme   paio.Theme
	app     string // heading, e.g. "Parfait"
	command string // what the user types, e.g. "pf"
}

// NewPrinter creates a printer bound to m.
func NewPrinter(m *paio.IOManager) *Printer {
	return &Printer{
		io:      m,
		theme:   paio.DefaultTheme(),
		app:     "pararg",
		command: "pararg",
	}
}

// WithApp sets the name used in headings and the command used in hints
func (p *Printer) WithApp(name, command string) *Printer {
	p.app = name
	p.command = command
	return p
}

// WithTheme sets the styles used for emphasis and favored suggestions
func (p *Printer) WithTheme(theme paio.Theme) *Printer {
	p.theme = theme
	return p
}

// Result prints the diagnostic matching an error result. Other results
// print nothing.
func (p *Printer) Result(r pararg.Result) {
	if r.Kind != pararg.KindError {
		return
	}
	switch r.ErrType {
	case pararg.ErrorTypeUndefinedFlag:
		p.UndefinedFlag(r.Token, r.Suggestions)
	case pararg.ErrorTypeMissingArgument:
		p.MissingArgument(r.Name)
	case pararg.ErrorTypeMalformed:
		p.Malformed(r.Token)
	}
}

// UndefinedFlag reports a flag absent from the option table, followed by
// the suggestions, favored ones highlighted.
func (p *Printer) UndefinedFlag(token string, suggestions []pararg.Suggestion) {
	w := p.io.Err()
	fmt.Fprintf(w, "\n  %s - Undefined flag `%s`\n\n", p.app, p.emph(token))
	fmt.Fprintf(w, "  Error: Unrecognized flag. Execution cannot continue.\n")
	if len(suggestions) == 0 {
		fmt.Fprintf(w, "  For correct usage, type:\n    $ %s --help\n\n", p.command)
		return
	}

	fmt.Fprintf(w, "  Did you mean one of the following?\n\n")
	for _, s := range suggestions {
		name := s.Name
		if s.Favored {
			name = p.theme.Favored.Sprint(p.io, name)
		}
		fmt.Fprintf(w, "    ~ %s\n", name)
	}
	fmt.Fprintln(w)
}

// MissingArgument reports a flag whose required argument was not given.
func (p *Printer) MissingArgument(name string) {
	w := p.io.Err()
	fmt.Fprintf(w, "\n  %s - Missing argument for `%s`\n\n", p.app, p.emph(name))
	fmt.Fprintf(w, "  This flag requires an argument.\n")
	p.hint(w, "For more information, type:", "--help "+name)
}

// Malformed reports a token that is neither a flag nor a positional.
func (p *Printer) Malformed(token string) {
	w := p.io.Err()
	fmt.Fprintf(w, "\n  %s - Invalid input: `%s`\n\n", p.app, p.emph(token))
	fmt.Fprintf(w, "  Unrecognized command or argument.\n")
	p.hint(w, "For correct usage, type:", "--help")
}

// ConfigFault reports an invalid option table.
func (p *Printer) ConfigFault(err *pararg.ConfigError) {
	w := p.io.Err()
	program := err.Program
	if program == "" {
		program = p.command
	}
	fmt.Fprintf(w, "\n  [PA:%s]: cannot continue...\n", program)
	fmt.Fprintf(w, "   due to: %s\n", err.Reason)
	fmt.Fprintf(w, "       at: %s option\n\n", ordinal(err.Index))
}

func (p *Printer) hint(w io.Writer, lead, args string) {
	fmt.Fprintf(w, "  %s\n    $ %s %s\n\n", lead, p.command, args)
}

func (p *Printer) emph(s string) string {
	return p.theme.Emphasis.Sprint(p.io, s)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
