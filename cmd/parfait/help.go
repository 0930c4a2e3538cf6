package main

import (
	"fmt"
	"io"
	"strings"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type helpPage struct {
	flag string
	text string
}

var helpPages = []helpPage{
	{"document", `
  Parfait - Document Flag (-D, --document)

  Description:
    Specifies the spreadsheet file to load. If omitted, a new blank document
    is created automatically.

  Example:
    $ pf --document mysheet.pf
    $ pf -D mysheet.pf
`},
	{"readonly", `
  Parfait - Read-Only Flag (-R, --readonly)

  Description:
    Opens the spreadsheet in read-only mode. This setting can be changed
    at runtime.

  Example:
    $ pf --readonly
    $ pf -R
`},
	{"help", `
  Parfait - Help Flag (-H, --help)

  Description:
    Displays general program usage. If followed by a flag name, shows
    specific usage information for that flag.

  Example:
    $ pf --help document
    $ pf -H help
    $ pf -H
`},
	{"verbose", `
  Parfait - Verbose Flag (-V, --verbose)

  Description:
    Traces how every command-line argument was understood. Only affects
    the arguments that follow it.

  Example:
    $ pf -V --document mysheet.pf
`},
}

const usage = `
  Parfait - Spreadsheet Engine (%s)

  Usage:
    pf [options] [document]
    pf [options] -D <document>
    pf -H [flag]

  Options:
    -D, --document <file>  Load specified spreadsheet file
    -R, --readonly         Open in read-only mode (modifiable at runtime)
    -H, --help [flag]      Show program usage or specific flag usage
    -V, --verbose          Trace argument parsing

`

// usageHelp prints the page of the first flag whose name starts with
// topic, or the general usage when topic is empty or matches nothing.
func usageHelp(w io.Writer, topic string) {
	if topic != "" {
		for _, page := range helpPages {
			if strings.HasPrefix(page.flag, topic) {
				fmt.Fprintln(w, page.text)
				return
			}
		}
	}
	fmt.Fprintf(w, usage, version)
}
