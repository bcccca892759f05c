package main

import (
	"strings"

	"github.com/fred1268/go-clap/clap"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/blinelang/bline/runtime/internal/cliargs"
	"github.com/blinelang/bline/runtime/internal/config"
	"github.com/blinelang/bline/runtime/internal/logging"
	"github.com/blinelang/bline/runtime/internal/term"
	"github.com/blinelang/bline/runtime/stdio"
)

/* ---------- shared flag parsing and setup ---------- */

type cmdArgs struct {
	Config  string   `clap:"--config,-c"`
	Strict  bool     `clap:"--strict"`
	JSON    string   `clap:"--json,-j"`
	Stderr  bool     `clap:"--stderr"`
	Raw     bool     `clap:"--raw,-r"`
	Verbose bool     `clap:"--verbose"`
	Words   []string `clap:"trailing"`
}

// parseCmdArgs parses a subcommand's flags and words. Words after a "--"
// are taken as they are, so a format or argument may start with '-'.
func parseCmdArgs(argv []string) (cmdArgs, error) {
	var a cmdArgs
	flags, rest := argv, []string(nil)
	for i, w := range argv {
		if w == "--" {
			flags, rest = argv[:i], argv[i+1:]
			break
		}
	}
	res, err := clap.Parse(flags, &a)
	if err != nil {
		return a, errors.Wrap(err, "flags")
	}
	if len(res.Ignored) > 0 {
		return a, errors.Errorf("unexpected argument %q (put words that start with '-' after --)", dashWord(res.Ignored))
	}
	a.Words = append(a.Words, rest...)
	if len(a.Words) == 0 {
		return a, errors.New("missing format")
	}
	if a.JSON != "" && len(a.Words) > 1 {
		return a, errors.New("--json takes the arguments, only the format may follow")
	}
	return a, nil
}

// dashWord picks the word clap tripped over. Plain words are only ignored
// because a '-' word follows them.
func dashWord(ignored []string) string {
	for _, w := range ignored {
		if strings.HasPrefix(w, "-") {
			return w
		}
	}
	return ignored[0]
}

// session is everything a subcommand needs once flags and config agree.
type session struct {
	cfg    config.Config
	log    *logrus.Logger
	format string
	vals   []stdio.Value
}

func (s *session) options() stdio.Options { return stdio.Options{Strict: s.cfg.Strict} }

// newSession loads config, builds the logger and converts the arguments.
// A non-zero code means setup failed and the error is already reported.
func newSession(a cmdArgs) (*session, int) {
	cfg, path, err := config.Resolve(a.Config)
	if err != nil {
		term.Eprintf("error: %v\n", err)
		return nil, 1
	}
	if a.Strict {
		cfg.Strict = true
	}
	if a.Raw {
		cfg.Escapes = false
	}
	if a.Stderr {
		cfg.Output = "stderr"
	}

	log, err := logging.New(cfg.Log, term.Err)
	if err != nil {
		term.Eprintf("error: %v\n", err)
		return nil, 1
	}
	if a.Verbose {
		logging.Verbose(log)
	}
	log.WithFields(logrus.Fields{
		"config":  path,
		"strict":  cfg.Strict,
		"escapes": cfg.Escapes,
		"output":  cfg.Output,
	}).Debug("config resolved")

	s := &session{cfg: cfg, log: log, format: a.Words[0]}
	if cfg.Escapes {
		if s.format, err = cliargs.Unescape(s.format); err != nil {
			term.Eprintf("error: format: %v\n", err)
			return nil, 1
		}
	}

	if a.JSON != "" {
		s.vals, err = cliargs.FromJSON(a.JSON)
	} else {
		s.vals, err = cliargs.Resolve(s.format, a.Words[1:])
	}
	if err != nil {
		s.report(err)
		return nil, 1
	}
	log.WithField("args", len(s.vals)).Debug("arguments converted")
	return s, 0
}

// report prints err as a diagnostic on stderr and logs it.
func (s *session) report(err error) {
	var fe *stdio.FormatError
	var ae *cliargs.ArgError
	switch {
	case errors.As(err, &fe):
		term.Eprint(fe.Render(s.format))
		s.log.WithFields(logrus.Fields{
			"code":      fe.Code(),
			"offset":    fe.Offset,
			"directive": fe.Directive,
		}).Debug("format error")
	case errors.As(err, &ae):
		term.Eprintf("error[%s]: %v\n", ae.Code, ae)
		if h := ae.Help(); h != "" {
			term.Eprintf("help: %s\n", h)
		}
		s.log.WithFields(logrus.Fields{
			"code":  ae.Code,
			"index": ae.Index,
		}).Debug("argument error")
	default:
		term.Eprintf("error: %v\n", err)
		s.log.WithError(err).Debug("print failed")
	}
}
