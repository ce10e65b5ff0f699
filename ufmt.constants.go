package ufmt

// Placeholder delimiter constants - the {} syntax follows the common
// brace-template convention
const (
	StrPlaceholderOpen  = "{"
	StrPlaceholderClose = "}"
	StrSpecSeparator    = ":"
)

// ContextKind identifies the concurrency model of a formatting context
type ContextKind int

const (
	// ContextKindStateless backs the package-level helpers and holds no
	// variables or formatters
	ContextKindStateless ContextKind = iota
	// ContextKindLocal is a plain context for single-goroutine use
	ContextKindLocal
	// ContextKindShared is safe for concurrent use across goroutines
	ContextKindShared
)

// Context kind string values
const (
	ContextKindNameStateless = "stateless"
	ContextKindNameLocal     = "local"
	ContextKindNameShared    = "shared"
)

// String returns the string representation of the context kind
func (k ContextKind) String() string {
	switch k {
	case ContextKindLocal:
		return ContextKindNameLocal
	case ContextKindShared:
		return ContextKindNameShared
	default:
		return ContextKindNameStateless
	}
}

// IssueKind classifies a problem encountered while formatting.
// Formatting never fails on an issue; the affected placeholder is left
// in place or rendered through a fallback path instead.
type IssueKind int

const (
	// IssueUnterminatedPlaceholder is an opening brace without a closing brace
	IssueUnterminatedPlaceholder IssueKind = iota
	// IssueArgumentRange is a positional placeholder without a matching argument
	IssueArgumentRange
	// IssueUnknownVariable is a named placeholder with no stored variable
	IssueUnknownVariable
	// IssueNumericParse is a numeric spec applied to a non-numeric value
	IssueNumericParse
)

// Issue kind string values
const (
	IssueNameUnterminatedPlaceholder = "unterminated_placeholder"
	IssueNameArgumentRange           = "argument_range"
	IssueNameUnknownVariable         = "unknown_variable"
	IssueNameNumericParse            = "numeric_parse"
)

// String returns the string representation of the issue kind
func (k IssueKind) String() string {
	switch k {
	case IssueArgumentRange:
		return IssueNameArgumentRange
	case IssueUnknownVariable:
		return IssueNameUnknownVariable
	case IssueNumericParse:
		return IssueNameNumericParse
	default:
		return IssueNameUnterminatedPlaceholder
	}
}

// Error code constants for cuserr classification
const (
	ErrCodeTemplate = "UFMT_TEMPLATE"
	ErrCodeArgument = "UFMT_ARGUMENT"
	ErrCodeVariable = "UFMT_VARIABLE"
	ErrCodeFormat   = "UFMT_FORMAT"
	ErrCodeVars     = "UFMT_VARS"
)

// Error message constants
const (
	ErrMsgUnterminatedPlaceholder = "placeholder is not terminated"
	ErrMsgArgumentOutOfRange      = "placeholder index has no argument"
	ErrMsgUnknownVariable         = "variable is not defined"
	ErrMsgNumericParse            = "value does not parse under numeric spec"
	ErrMsgVarsReadFailed          = "failed to read vars file"
	ErrMsgVarsParseYAML           = "failed to parse YAML vars"
	ErrMsgVarsParseTOML           = "failed to parse TOML vars"
	ErrMsgVarsUnsupportedExt      = "unsupported vars file extension"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyPlaceholder = "placeholder"
	MetaKeyArgument    = "argument"
	MetaKeyArgIndex    = "arg_index"
	MetaKeyArgCount    = "arg_count"
	MetaKeyVariable    = "variable"
	MetaKeySpec        = "spec"
	MetaKeyOffset      = "offset"
	MetaKeyValue       = "value"
	MetaKeyPath        = "path"
	MetaKeyExtension   = "extension"
)

// Log message constants
const (
	LogMsgContextCreated   = "context created"
	LogMsgVariableSet      = "variable set"
	LogMsgVariableCleared  = "variable cleared"
	LogMsgFormatterSet     = "formatter registered"
	LogMsgFormatterCleared = "formatter cleared"
	LogMsgFormatIssues     = "formatting finished with issues"
	LogMsgOwnerDesignated  = "owner goroutine designated"
	LogMsgOverlayWrite     = "variable stored in goroutine overlay"
	LogMsgRegistryCreated  = "context registry created"
	LogMsgRegistryGet      = "registry context created"
	LogMsgRegistryRemove   = "registry context removed"
	LogMsgRegistryCleared  = "context registry cleared"
)

// Log field names
const (
	LogFieldContext    = "context"
	LogFieldKind       = "kind"
	LogFieldVariable   = "variable"
	LogFieldTypeTag    = "type_tag"
	LogFieldGoroutine  = "goroutine_id"
	LogFieldIssueCount = "issue_count"
	LogFieldCount      = "count"
)

// Vars file extensions accepted by ImportVarsFile
const (
	FileExtYAML = ".yaml"
	FileExtYML  = ".yml"
	FileExtTOML = ".toml"
)

// VarsKeySeparator joins nested keys when flattening imported maps,
// so {server: {port: 80}} becomes the variable "server.port".
const VarsKeySeparator = "."

// Fallback stringification constants
const (
	StrNilValue      = "<nil>"
	FmtDefaultValue  = "%v"
	FmtFallbackValue = "[%s]"
)
