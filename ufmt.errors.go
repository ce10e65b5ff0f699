package ufmt

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// NewUnterminatedPlaceholderError creates an error for an opening brace
// that never closes
func NewUnterminatedPlaceholderError(placeholder string, offset int) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgUnterminatedPlaceholder).
		WithMetadata(MetaKeyPlaceholder, placeholder).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewArgumentRangeError creates an error for a positional placeholder
// whose index has no argument
func NewArgumentRangeError(index, argCount int, placeholder string) error {
	return cuserr.NewNotFoundError(MetaKeyArgument, ErrMsgArgumentOutOfRange).
		WithMetadata(MetaKeyArgIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyArgCount, strconv.Itoa(argCount)).
		WithMetadata(MetaKeyPlaceholder, placeholder)
}

// NewUnknownVariableError creates an error for a named placeholder with
// no stored variable
func NewUnknownVariableError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyVariable, ErrMsgUnknownVariable).
		WithMetadata(MetaKeyVariable, name)
}

// NewNumericParseError creates an error for a numeric spec applied to a
// value that does not parse as a number
func NewNumericParseError(value, spec string) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgNumericParse).
		WithMetadata(MetaKeyValue, value).
		WithMetadata(MetaKeySpec, spec)
}

// NewVarsReadError creates an error for an unreadable vars file
func NewVarsReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeVars, ErrMsgVarsReadFailed).
		WithMetadata(MetaKeyPath, path)
}

// NewVarsParseError creates an error for vars data that fails to parse.
// The path is attached when known; byte-level imports leave it empty.
func NewVarsParseError(msg, path string, cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeVars, msg)
	if path != "" {
		return err.WithMetadata(MetaKeyPath, path)
	}
	return err
}

// NewVarsExtensionError creates an error for a vars file whose extension
// maps to no known format
func NewVarsExtensionError(path, ext string) error {
	return cuserr.NewValidationError(ErrCodeVars, ErrMsgVarsUnsupportedExt).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyExtension, ext)
}

// issueError converts a substitution issue into its error form
func issueError(is substitutionIssue) error {
	switch is.Kind {
	case IssueArgumentRange:
		return NewArgumentRangeError(is.ArgIndex, is.ArgCount, is.Placeholder)
	case IssueUnknownVariable:
		return NewUnknownVariableError(is.Variable)
	case IssueNumericParse:
		return NewNumericParseError(is.Value, is.Spec)
	default:
		return NewUnterminatedPlaceholderError(is.Placeholder, is.Offset)
	}
}
