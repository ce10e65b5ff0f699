package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-ufmt"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	varsFiles    stringList
	args         stringList
	outputPath   string
	strict       bool
	watch        bool
	verbose      bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	if cfg.watch {
		if cfg.templatePath == InputSourceStdin {
			fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgWatchStdin, cfg.templatePath)
			return ExitCodeUsageError
		}
		return watchRender(cfg, stdout, stderr, nil)
	}

	return renderOnce(cfg, stdin, stdout, stderr)
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.Var(&cfg.varsFiles, FlagVars, "")
	fs.Var(&cfg.varsFiles, FlagVarsShort, "")
	fs.Var(&cfg.args, FlagArg, "")
	fs.Var(&cfg.args, FlagArgShort, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")
	fs.BoolVar(&cfg.watch, FlagWatch, false, "")
	fs.BoolVar(&cfg.watch, FlagWatchShort, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

// renderOnce renders the template a single time and writes the result.
func renderOnce(cfg *renderConfig, stdin io.Reader, stdout, stderr io.Writer) int {
	result, code := renderDocument(cfg, stdin, stderr)
	if code != ExitCodeSuccess && result == "" {
		return code
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return code
}

// renderDocument reads the template and vars files and renders. A
// non-empty result comes back even when strict mode reports issues, so
// callers can write it before exiting non-zero.
func renderDocument(cfg *renderConfig, stdin io.Reader, stderr io.Writer) (string, int) {
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return "", ExitCodeInputError
	}

	ctx := ufmt.NewLocalContext(ufmt.WithLogger(newCLILogger(cfg.verbose, stderr)))
	for _, path := range cfg.varsFiles {
		if err := ufmt.ImportVarsFile(ctx, path); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadVarsFailed, err)
			return "", ExitCodeInputError
		}
	}

	result, err := ctx.FormatStrict(string(templateSource), bindCLIArgs(cfg.args)...)
	if err != nil && cfg.strict {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderIssues, err)
		return result, ExitCodeStrictError
	}

	return result, ExitCodeSuccess
}

// watchRender renders once, then re-renders whenever the template or a
// vars file changes. It returns when stop closes or the watcher dies;
// in normal CLI use stop is nil and the loop runs until interrupted.
func watchRender(cfg *renderConfig, stdout, stderr io.Writer, stop <-chan struct{}) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWatchFailed, err)
		return ExitCodeError
	}
	defer watcher.Close()

	// Watch the directories; editors often replace files on save, which
	// drops a watch registered on the file itself.
	watched := map[string]bool{filepath.Clean(cfg.templatePath): true}
	dirs := map[string]bool{filepath.Dir(cfg.templatePath): true}
	for _, path := range cfg.varsFiles {
		watched[filepath.Clean(path)] = true
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWatchFailed, err)
			return ExitCodeError
		}
	}

	code := watchRenderPass(cfg, stdout, stderr)

	for {
		select {
		case <-stop:
			return code
		case event, ok := <-watcher.Events:
			if !ok {
				return code
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			code = watchRenderPass(cfg, stdout, stderr)
		case err, ok := <-watcher.Errors:
			if !ok {
				return code
			}
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWatchFailed, err)
		}
	}
}

// watchRenderPass is one render inside the watch loop. Renders going to
// stdout get a trailing newline so consecutive results stay separated.
func watchRenderPass(cfg *renderConfig, stdout, stderr io.Writer) int {
	code := renderOnce(cfg, nil, stdout, stderr)
	if cfg.outputPath == FlagDefaultOutput {
		fmt.Fprint(stdout, FmtNewline)
	}
	return code
}

// bindCLIArgs converts flag values to their natural types, so numeric
// specs format numeric-looking arguments as numbers.
func bindCLIArgs(values []string) []any {
	args := make([]any, len(values))
	for i, value := range values {
		args[i] = parseArgValue(value)
	}
	return args
}

func parseArgValue(value string) any {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	switch value {
	case StrArgTrue:
		return true
	case StrArgFalse:
		return false
	}
	return value
}

// newCLILogger builds a stderr logger for --verbose, or a nop logger.
func newCLILogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core)
}
