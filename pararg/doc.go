// Package pararg is a small, call-driven command-line argument scanner.
//
// The caller declares an ordered option table and pulls one Result at a
// time from a Session:
//
//	opts := []pararg.Option{
//	    {Name: "document", ID: 'D', Arity: pararg.ArgRequired},
//	    {Name: "readonly", ID: 'R', Arity: pararg.ArgNone},
//	    {Name: "help", ID: 'H', Arity: pararg.ArgOptional},
//	}
//
//	s := pararg.New(os.Args, opts)
//	for r := s.Next(); r.Kind != pararg.KindDone; r = s.Next() {
//	    switch r.Kind {
//	    case pararg.KindFlag:
//	        // r.ID, r.Value
//	    case pararg.KindPositional:
//	        // r.Value
//	    case pararg.KindError:
//	        return r.Err()
//	    }
//	}
//
// Accepted syntax:
//
//	-x                 short flag, x in [0-9A-Za-z]
//	--name             long flag
//	--name value       long flag with a trailing value
//	--name=value       long flag with an inline value
//	file ./f ~/f /f    positional
//
// A long flag selects the first declared option whose name is a prefix of
// what follows "--". An undefined long flag comes back together with the
// declared names that look like it, in declaration order.
package pararg
