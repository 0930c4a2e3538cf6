// Command parfait is the entry point of the Parfait spreadsheet engine. It
// only reads its command line for now: documents are not loaded yet.
package main

import (
	"os"

	paio "github.com/dzonerzy/go-pararg/io"
	"github.com/dzonerzy/go-pararg/pararg"
	"github.com/dzonerzy/go-pararg/report"
)

// If a flag is added here, give it a page in help.go as well.
var options = []pararg.Option{
	{Name: "document", ID: 'D', Arity: pararg.ArgRequired},
	{Name: "readonly", ID: 'R', Arity: pararg.ArgNone},
	{Name: "help", ID: 'H', Arity: pararg.ArgOptional},
	{Name: "verbose", ID: 'V', Arity: pararg.ArgNone},
}

type program struct {
	document string
	readonly bool
}

func main() {
	os.Exit(run(os.Args, paio.New()))
}

func run(args []string, m *paio.IOManager) (code int) {
	exits := pararg.NewExitCodeManager()
	printer := report.NewPrinter(m).WithApp("Parfait", "pf")
	logger := paio.NewLogger(m)

	defer func() {
		if rec := recover(); rec != nil {
			cfgErr, ok := rec.(*pararg.ConfigError)
			if !ok {
				panic(rec)
			}
			printer.ConfigFault(cfgErr)
			code = exits.Code(cfgErr)
		}
	}()

	p, done, err := parseExecutionArguments(args, m, printer, logger)
	if err != nil {
		return exits.Code(err)
	}
	if done {
		return exits.Code(nil)
	}

	if p.document == "" {
		logger.Info("creating a new blank document")
	} else {
		logger.Info("loading %s", p.document)
	}
	if p.readonly {
		logger.Info("read-only mode")
	}
	return exits.Code(nil)
}

// parseExecutionArguments fills a program from args. done is true when a
// help page was printed and nothing else should happen.
func parseExecutionArguments(args []string, m *paio.IOManager, printer *report.Printer, logger *paio.Logger) (p program, done bool, err error) {
	s := pararg.New(args, options).WithLogger(logger)

	for r := s.Next(); r.Kind != pararg.KindDone; r = s.Next() {
		switch r.Kind {
		case pararg.KindPositional:
			p.document = r.Value
		case pararg.KindFlag:
			switch r.ID {
			case 'D':
				p.document = r.Value
			case 'R':
				p.readonly = true
			case 'H':
				usageHelp(m.Out(), r.Value)
				return p, true, nil
			case 'V':
				logger.WithLevel(paio.LevelDebug)
			}
		case pararg.KindError:
			printer.Result(r)
			return p, false, r.Err()
		}
	}
	return p, false, nil
}
