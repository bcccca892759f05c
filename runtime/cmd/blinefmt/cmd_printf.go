package main

import (
	"github.com/blinelang/bline/runtime/internal/term"
)

/* ---------- printf ---------- */

func cmdPrintf(argv []string) int {
	a, err := parseCmdArgs(argv)
	if err != nil {
		term.Eprintf("error: %v\n", err)
		term.Eprintln(printfUsage)
		return 2
	}
	s, code := newSession(a)
	if s == nil {
		return code
	}
	n, err := s.options().Fprintf(term.Stream(s.cfg.Output), s.format, s.vals...)
	if err != nil {
		s.report(err)
		return 1
	}
	s.log.WithField("bytes", n).Debug("printed")
	return 0
}
