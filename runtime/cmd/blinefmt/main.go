package main

import (
	"os"

	"github.com/blinelang/bline/runtime/internal/term"
	"github.com/blinelang/bline/runtime/internal/version"
)

/* ---------- main ---------- */

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
		return 0
	case "help", "--help", "-h":
		usage()
		return 0
	case "printf":
		return cmdPrintf(args[1:])
	case "check":
		return cmdCheck(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}
