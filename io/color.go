package paio

import (
	"fmt"

	"github.com/fatih/color"
)

// Basic colors, re-exported so callers do not need fatih/color directly
var (
	Red     = color.FgRed
	Green   = color.FgGreen
	Yellow  = color.FgYellow
	Blue    = color.FgBlue
	Magenta = color.FgMagenta
	Cyan    = color.FgCyan
	Gray    = color.FgHiBlack

	BrightRed     = color.FgHiRed
	BrightGreen   = color.FgHiGreen
	BrightYellow  = color.FgHiYellow
	BrightBlue    = color.FgHiBlue
	BrightMagenta = color.FgHiMagenta
	BrightCyan    = color.FgHiCyan
)

// Style is a fluent style builder over fatih/color attributes.
type Style struct {
	attrs []color.Attribute
}

// NewStyle creates a new empty style builder.
func NewStyle() *Style                        { return &Style{} }
func (s *Style) Fg(c color.Attribute) *Style { s.attrs = append(s.attrs, c); return s }
func (s *Style) Bold() *Style                 { s.attrs = append(s.attrs, color.Bold); return s }
func (s *Style) Faint() *Style                { s.attrs = append(s.attrs, color.Faint); return s }
func (s *Style) Italic() *Style               { s.attrs = append(s.attrs, color.Italic); return s }
func (s *Style) Underline() *Style            { s.attrs = append(s.attrs, color.Underline); return s }

// Sprint returns a styled string if the manager supports color; otherwise it
// returns the text unchanged. The decision is made per manager, not from
// fatih/color's global NoColor.
func (s *Style) Sprint(io *IOManager, text string) string {
	if s == nil || len(s.attrs) == 0 || !io.SupportsColor() {
		return text
	}
	c := color.New(s.attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// Sprintf formats the content with fmt.Sprintf and then applies the style.
func (s *Style) Sprintf(io *IOManager, format string, a ...any) string {
	return s.Sprint(io, fmt.Sprintf(format, a...))
}

// Theme provides semantic styles
type Theme struct {
	Debug, Info, Success, Warning, Error *Style
	// Emphasis marks names quoted in diagnostics; Favored marks the
	// closest suggestions.
	Emphasis, Favored *Style
}

// DefaultTheme returns the theme used by NewLogger and the report printer.
func DefaultTheme() Theme {
	return Theme{
		Debug:    NewStyle().Fg(BrightMagenta),
		Info:     NewStyle().Fg(BrightCyan),
		Success:  NewStyle().Fg(BrightGreen),
		Warning:  NewStyle().Fg(BrightYellow),
		Error:    NewStyle().Fg(BrightRed),
		Emphasis: NewStyle().Bold(),
		Favored:  NewStyle().Bold(),
	}
}
