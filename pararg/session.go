package pararg

import (
	"github.com/dzonerzy/go-pararg/internal/fuzzy"
	paio "github.com/dzonerzy/go-pararg/io"
)

// Session walks one argument vector, a token or two per call. It is
// forward only and holds no state shared with other sessions, so any number
// may run side by side; a single Session is not safe for concurrent use.
type Session struct {
	args []string
	opts []Option

	// filled by the first Next
	validated bool
	lengths   []int
	names     []string

	cursor      int
	suggestions []Suggestion

	unixStyle bool
	fuzzy     bool
	matcher   *fuzzy.Matcher
	logger    *paio.Logger
}

// New creates a session over args, where args[0] is the program name, and
// the option table opts. Neither slice is copied; both must stay unchanged
// while the session is in use.
//
// Inline values (--name=value) and fuzzy suggestions are enabled.
func New(args []string, opts []Option) *Session {
	return &Session{
		args:      args,
		opts:      opts,
		cursor:    min(1, len(args)),
		unixStyle: true,
		fuzzy:     true,
		matcher:   fuzzy.DefaultMatcher(),
	}
}

// UnixStyle enables/disables "--name=value". When disabled '=' is an
// ordinary byte of the flag body.
func (s *Session) UnixStyle(enabled bool) *Session {
	s.unixStyle = enabled
	return s
}

// FuzzyMatching enables/disables suggestions for undefined long flags
func (s *Session) FuzzyMatching(enabled bool) *Session {
	s.fuzzy = enabled
	return s
}

// SuggestThresholds sets the similarity a declared name needs to be
// suggested (include) and to be favored (favor). Defaults are 0.20 and 0.50.
func (s *Session) SuggestThresholds(include, favor float64) *Session {
	s.matcher = fuzzy.NewMatcher(include, favor)
	return s
}

// WithLogger traces every decision at debug level
func (s *Session) WithLogger(l *paio.Logger) *Session {
	s.logger = l
	return s
}

// Cursor is the argv index of the next unread token.
func (s *Session) Cursor() int { return s.cursor }

// Program returns args[0], or "" for an empty argument vector.
func (s *Session) Program() string {
	if len(s.args) == 0 {
		return ""
	}
	return s.args[0]
}

// Done reports whether every token has been read.
func (s *Session) Done() bool { return s.cursor >= len(s.args) }

// Suggestions returns the suggestion set built for the last undefined long
// flag. It is dropped by the next call to Next.
func (s *Session) Suggestions() []Suggestion { return s.suggestions }

// Next reads the token under the cursor and returns exactly one Result.
// Once every token has been read it keeps returning KindDone.
//
// The option table is validated on the first call; an invalid table makes
// Next panic with a *ConfigError before any token is read.
func (s *Session) Next() Result {
	if !s.validated {
		s.validate()
	}
	s.suggestions = nil

	if s.cursor >= len(s.args) {
		return Result{Kind: KindDone, Index: s.cursor}
	}

	at := s.cursor
	token := s.args[at]
	s.cursor++

	kind := Classify(token)
	s.logger.Debug("pararg: argv[%d] %q is %s", at, token, kind)

	switch kind {
	case TokenShort:
		return s.resolveShort(at, token)
	case TokenLong:
		return s.resolveLong(at, token)
	case TokenPositional:
		return Result{
			Kind:     KindPositional,
			Value:    token,
			HasValue: true,
			Span:     Span{Index: at, Len: len(token)},
			Token:    token,
			Index:    at,
		}
	default:
		return s.fail(ErrorTypeMalformed, at, token, "", 0)
	}
}

// Collect drains the session. It stops at the first error result and
// returns it as a *ParseError along with the results read before it.
func (s *Session) Collect() ([]Result, error) {
	var out []Result
	for {
		r := s.Next()
		switch r.Kind {
		case KindDone:
			return out, nil
		case KindError:
			return out, r.Err()
		default:
			out = append(out, r)
		}
	}
}

// Parse is New(args, opts).Collect() with the default settings.
func Parse(args []string, opts []Option) ([]Result, error) {
	return New(args, opts).Collect()
}

func (s *Session) validate() {
	lengths, err := validate(s.opts)
	if err != nil {
		cfgErr := err.(*ConfigError)
		cfgErr.Program = s.Program()
		s.logger.Error("pararg: %s", cfgErr.Reason)
		panic(cfgErr)
	}

	s.lengths = lengths
	s.names = make([]string, len(s.opts))
	for i, opt := range s.opts {
		s.names[i] = opt.Name
	}
	s.validated = true
	s.logger.Debug("pararg: %d options validated", len(s.opts))
}

func (s *Session) resolveShort(at int, token string) Result {
	id := token[1]
	for i := range s.opts {
		if s.opts[i].ID == id {
			return s.takeArgument(at, token, i)
		}
	}
	return s.fail(ErrorTypeUndefinedFlag, at, token, "", 0)
}

func (s *Session) resolveLong(at int, token string) Result {
	body := token[2:]

	i, ok := matchPrefix(body, s.opts, s.lengths)
	if !ok {
		if s.fuzzy {
			s.suggest(stripInline(body))
		}
		return s.fail(ErrorTypeUndefinedFlag, at, token, "", 0)
	}
	opt := s.opts[i]
	s.logger.Debug("pararg: %q resolved to --%s", token, opt.Name)

	if s.unixStyle {
		if offset, length, found := SplitInline(body); found {
			switch {
			case length > 0 && opt.Arity == ArgNone:
				return s.fail(ErrorTypeMalformed, at, token, opt.Name, opt.ID)
			case length == 0 && opt.Arity == ArgRequired:
				return s.fail(ErrorTypeMissingArgument, at, token, opt.Name, opt.ID)
			case length == 0:
				return s.flag(at, token, opt)
			}
			r := s.flag(at, token, opt)
			r.Value = body[offset:]
			r.HasValue = true
			r.Span = Span{Index: at, Offset: offset + 2, Len: length}
			return r
		}
	}

	return s.takeArgument(at, token, i)
}

// takeArgument applies the arity of opts[i] to the token after the flag,
// consuming it only when it is used.
func (s *Session) takeArgument(at int, token string, i int) Result {
	opt := s.opts[i]
	if opt.Arity == ArgNone {
		return s.flag(at, token, opt)
	}

	if s.cursor < len(s.args) {
		next := s.args[s.cursor]
		if Classify(next) == TokenPositional {
			r := s.flag(at, token, opt)
			r.Value = next
			r.HasValue = true
			r.Span = Span{Index: s.cursor, Len: len(next)}
			s.cursor++
			return r
		}
	}

	if opt.Arity == ArgRequired {
		return s.fail(ErrorTypeMissingArgument, at, token, opt.Name, opt.ID)
	}
	return s.flag(at, token, opt)
}

func (s *Session) suggest(input string) {
	candidates := s.matcher.Suggest(input, s.names)
	if len(candidates) == 0 {
		s.logger.Debug("pararg: no suggestions for %q", input)
		return
	}

	s.suggestions = make([]Suggestion, len(candidates))
	for i, c := range candidates {
		s.suggestions[i] = Suggestion{Name: c.Value, Favored: c.Favored}
	}
	s.logger.Debug("pararg: %d suggestions for %q", len(s.suggestions), input)
}

func (s *Session) flag(at int, token string, opt Option) Result {
	return Result{Kind: KindFlag, ID: opt.ID, Name: opt.Name, Token: token, Index: at}
}

func (s *Session) fail(typ ErrorType, at int, token, name string, id byte) Result {
	s.logger.Debug("pararg: argv[%d] %q: %s", at, token, typ)
	return Result{
		Kind:        KindError,
		ErrType:     typ,
		ID:          id,
		Name:        name,
		Token:       token,
		Index:       at,
		Suggestions: s.suggestions,
	}
}

// Resolve returns the index of the option a long flag body selects: the
// first declared option whose whole name is a byte prefix of body. Later
// options never win a tie, even when their name matches more of body.
func Resolve(body string, opts []Option) (int, bool) {
	return matchPrefix(body, opts, nil)
}

func matchPrefix(body string, opts []Option, lengths []int) (int, bool) {
	for i, opt := range opts {
		n := len(opt.Name)
		if lengths != nil {
			n = lengths[i]
		}
		if n > 0 && len(body) >= n && body[:n] == opt.Name {
			return i, true
		}
	}
	return 0, false
}
