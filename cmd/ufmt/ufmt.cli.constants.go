package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameRepl    = "repl"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagVars     = "vars"
	FlagArg      = "arg"
	FlagOutput   = "output"
	FlagStrict   = "strict"
	FlagWatch    = "watch"
	FlagVerbose  = "verbose"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagVarsShort     = "v"
	FlagArgShort      = "a"
	FlagOutputShort   = "o"
	FlagWatchShort    = "w"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeUsageError  = 2
	ExitCodeStrictError = 3
	ExitCodeInputError  = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Typed argument literals recognized by parseArgValue
const (
	StrArgTrue  = "true"
	StrArgFalse = "false"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgLoadVarsFailed    = "failed to load vars file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgRenderIssues      = "template rendered with issues"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgWatchStdin        = "cannot watch a template read from stdin"
	ErrMsgWatchFailed       = "failed to watch files"
	ErrMsgReplStartFailed   = "failed to start repl"
)

// Help text templates
const (
	HelpMainUsage = `go-ufmt - String formatting CLI for {}-style templates

Usage:
    ufmt <command> [options]

Commands:
    render      Render a template with variables and arguments
    repl        Interactive formatting playground
    version     Show version information
    help        Show help for a command

Use "ufmt help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with variables and arguments

Usage:
    ufmt render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -v, --vars <file>       YAML or TOML variables file (repeatable)
    -a, --arg <value>       Positional argument for {0}, {1}, ... (repeatable)
    -o, --output <file>     Output file (default: stdout)
    -w, --watch             Re-render when template or vars files change
    --strict                Exit non-zero when placeholders fail to resolve
    --verbose               Log rendering details to stderr

Examples:
    ufmt render -t greeting.txt -v vars.yaml
    ufmt render -t report.txt -a Alice -a 5
    echo 'Hello {0}!' | ufmt render -t - -a world
    ufmt render -t status.txt -v vars.toml -w`

	HelpReplUsage = `Interactive formatting playground

Usage:
    ufmt repl [options]

Options:
    -v, --vars <file>       YAML or TOML variables file (repeatable)
    --verbose               Log rendering details to stderr

Directives:
    :set <name> <value>     Store a variable
    :clear <name>           Remove a variable
    :vars                   List stored variables
    :load <file>            Load a YAML or TOML variables file
    :help                   Show this directive list
    :quit                   Leave the repl

Any other input renders as a template against the stored variables.`

	HelpVersionUsage = `Show version information

Usage:
    ufmt version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    ufmt help [command]

Commands:
    render      Show help for render command
    repl        Show help for repl command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-ufmt version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Repl output constants
const (
	ReplPrompt          = "ufmt> "
	ReplDirectivePrefix = ":"
	ReplCmdSet          = ":set"
	ReplCmdClear        = ":clear"
	ReplCmdVars         = ":vars"
	ReplCmdLoad         = ":load"
	ReplCmdHelp         = ":help"
	ReplCmdQuit         = ":quit"
	ReplCmdExit         = ":exit"
	ReplMsgNoVars       = "(no variables set)"
	ReplMsgUsageSet     = "usage: :set <name> <value>"
	ReplMsgUsageClear   = "usage: :clear <name>"
	ReplMsgUsageLoad    = "usage: :load <file>"
	ReplMsgUnknown      = "unknown directive, try :help"
)

// CLI metadata
const (
	CLIName        = "ufmt"
	CLIDescription = "String formatting CLI for {}-style templates"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtReplVariable    = "%s = %s\n"
	FmtReplIssue       = "! %v\n"
	FmtNewline         = "\n"
)
