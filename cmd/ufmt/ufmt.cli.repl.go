package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/itsatony/go-ufmt"
)

// replConfig holds parsed repl command configuration
type replConfig struct {
	varsFiles stringList
	verbose   bool
}

func runRepl(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseReplFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReplStartFailed, err)
		return ExitCodeUsageError
	}

	ctx := ufmt.NewLocalContext(ufmt.WithLogger(newCLILogger(cfg.verbose, stderr)))
	for _, path := range cfg.varsFiles {
		if err := ufmt.ImportVarsFile(ctx, path); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadVarsFailed, err)
			return ExitCodeInputError
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: ReplPrompt,
		Stdin:  io.NopCloser(stdin),
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReplStartFailed, err)
		return ExitCodeError
	}
	defer rl.Close()

	session := &replSession{ctx: ctx, stdout: stdout, stderr: stderr}
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return ExitCodeSuccess
		}
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReplStartFailed, err)
			return ExitCodeError
		}
		if !session.handle(strings.TrimSpace(line)) {
			return ExitCodeSuccess
		}
	}
}

func parseReplFlags(args []string) (*replConfig, error) {
	fs := flag.NewFlagSet(CmdNameRepl, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &replConfig{}

	fs.Var(&cfg.varsFiles, FlagVars, "")
	fs.Var(&cfg.varsFiles, FlagVarsShort, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// replSession holds the state of one interactive session.
type replSession struct {
	ctx    *ufmt.LocalContext
	stdout io.Writer
	stderr io.Writer
}

// handle processes one input line and reports whether the session
// continues. Directive lines start with ":"; everything else renders as
// a template against the stored variables.
func (s *replSession) handle(line string) bool {
	if line == "" {
		return true
	}
	if strings.HasPrefix(line, ReplDirectivePrefix) {
		return s.handleDirective(line)
	}

	result, err := s.ctx.FormatStrict(line)
	fmt.Fprintln(s.stdout, result)
	if err != nil {
		fmt.Fprintf(s.stderr, FmtReplIssue, err)
	}
	return true
}

func (s *replSession) handleDirective(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ReplCmdQuit, ReplCmdExit:
		return false
	case ReplCmdHelp:
		fmt.Fprintln(s.stdout, HelpReplUsage)
	case ReplCmdVars:
		s.printVars()
	case ReplCmdSet:
		// The value is everything after the name; runs of spaces
		// inside it collapse to single spaces.
		if len(fields) < 3 {
			fmt.Fprintln(s.stderr, ReplMsgUsageSet)
			return true
		}
		s.ctx.SetVar(fields[1], strings.Join(fields[2:], " "))
	case ReplCmdClear:
		if len(fields) != 2 {
			fmt.Fprintln(s.stderr, ReplMsgUsageClear)
			return true
		}
		s.ctx.ClearVar(fields[1])
	case ReplCmdLoad:
		if len(fields) != 2 {
			fmt.Fprintln(s.stderr, ReplMsgUsageLoad)
			return true
		}
		if err := ufmt.ImportVarsFile(s.ctx, fields[1]); err != nil {
			fmt.Fprintf(s.stderr, FmtReplIssue, err)
		}
	default:
		fmt.Fprintln(s.stderr, ReplMsgUnknown)
	}
	return true
}

func (s *replSession) printVars() {
	names := s.ctx.VarNames()
	if len(names) == 0 {
		fmt.Fprintln(s.stdout, ReplMsgNoVars)
		return
	}
	for _, name := range names {
		value, _ := s.ctx.GetVar(name)
		fmt.Fprintf(s.stdout, FmtReplVariable, name, value)
	}
}
