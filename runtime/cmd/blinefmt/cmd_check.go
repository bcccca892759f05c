package main

import (
	"github.com/blinelang/bline/runtime/internal/cliargs"
	"github.com/blinelang/bline/runtime/internal/directive"
	"github.com/blinelang/bline/runtime/internal/term"
)

/* ---------- check ---------- */

func cmdCheck(argv []string) int {
	a, err := parseCmdArgs(argv)
	if err != nil {
		term.Eprintf("error: %v\n", err)
		term.Eprintln(checkUsage)
		return 2
	}
	s, code := newSession(a)
	if s == nil {
		return code
	}

	// Listing stops at a malformed directive; Check below reports it.
	toks, _ := directive.Directives(s.format)
	slots := cliargs.Slots(s.format)
	term.Printf("%-6s %-6s %-12s %s\n", "offset", "arg", "directive", "expects")
	arg := 0
	for _, t := range toks {
		for i := 0; i < t.Spec.Args(); i++ {
			what := slots[arg]
			if i < t.Spec.Args()-1 {
				what += " (star)"
			}
			term.Printf("%-6d %-6d %-12s %s\n", t.Off, arg, t.Lex, what)
			arg++
		}
	}

	if err := s.options().Check(s.format, s.vals...); err != nil {
		s.report(err)
		return 1
	}
	term.Printf("ok: %d directive(s), %d argument(s)\n", len(toks), len(s.vals))
	return 0
}
