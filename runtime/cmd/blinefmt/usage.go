package main

import "github.com/blinelang/bline/runtime/internal/term"

const (
	printfUsage = "usage: blinefmt printf [--config FILE] [--strict] [--json ARRAY] [--stderr] [--raw] [--verbose] [--] <format> [arg...]"
	checkUsage  = "usage: blinefmt check [--config FILE] [--strict] [--json ARRAY] [--raw] [--verbose] [--] <format> [arg...]"
)

func usage() {
	term.Eprintln("blinefmt — bline runtime formatted output")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  blinefmt <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  printf [flags] <format> [arg...]          Format the arguments and print them")
	term.Eprintln("  check [flags] <format> [arg...]           List directives and check the arguments against them")
	term.Eprintln("")
	term.Eprintln("Flags:")
	term.Eprintln("  --config, -c FILE   TOML config (default $BLINEFMT_CONFIG)")
	term.Eprintln("  --strict            arguments left over after the last directive are an error")
	term.Eprintln("  --json, -j ARRAY    take arguments from a JSON array instead of the command line")
	term.Eprintln("  --stderr            print to stderr (printf only)")
	term.Eprintln("  --raw, -r           do not interpret backslash escapes in the format")
	term.Eprintln("  --verbose           debug logging")
	term.Eprintln("")
	term.Eprintln("Arguments:")
	term.Eprintf("  Each word is converted to what its directive expects (%%d takes 42, %%c takes x).\n")
	term.Eprintln("  A prefix forces the kind: int: uint: float: str: char: bool: ptr:")
	term.Eprintln("  Words that start with '-' go after --, or use a prefix (int:-5).")
	term.Eprintln("")
	term.Eprintln("Exit status: 0 ok, 1 format or argument error, 2 usage error.")
}
