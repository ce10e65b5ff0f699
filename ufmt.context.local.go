package ufmt

import (
	"sort"

	"go.uber.org/zap"
)

// LocalContext is a formatting context for single-goroutine use. It
// carries no locking; when several goroutines touch the same context,
// use a SharedContext instead.
type LocalContext struct {
	variables  map[string]string
	formatters map[string]Formatter
	logger     *zap.Logger
}

// LocalContext implements Context.
var _ Context = (*LocalContext)(nil)

// NewLocalContext creates an empty local context.
func NewLocalContext(opts ...Option) *LocalContext {
	config := applyOptions(opts)
	c := &LocalContext{
		variables:  make(map[string]string),
		formatters: make(map[string]Formatter),
		logger:     config.logger,
	}
	c.logger.Debug(LogMsgContextCreated, zap.String(LogFieldKind, ContextKindLocal.String()))
	return c
}

// Kind reports the concurrency model of the context.
func (c *LocalContext) Kind() ContextKind {
	return ContextKindLocal
}

// SetVar stores a variable. String values are stored verbatim; other
// values render through a matching formatter, then through Stringify.
func (c *LocalContext) SetVar(name string, value any) {
	c.variables[name] = renderStored(value, c.lookupFormatter)
	c.logger.Debug(LogMsgVariableSet, zap.String(LogFieldVariable, name))
}

// ClearVar removes a variable.
func (c *LocalContext) ClearVar(name string) {
	delete(c.variables, name)
	c.logger.Debug(LogMsgVariableCleared, zap.String(LogFieldVariable, name))
}

// HasVar reports whether a variable is set.
func (c *LocalContext) HasVar(name string) bool {
	_, ok := c.variables[name]
	return ok
}

// GetVar returns the stored string form of a variable.
func (c *LocalContext) GetVar(name string) (string, bool) {
	value, ok := c.variables[name]
	return value, ok
}

// VarNames returns all variable names in sorted order.
func (c *LocalContext) VarNames() []string {
	names := make([]string, 0, len(c.variables))
	for name := range c.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetFormatter registers a formatter keyed by its type tag.
func (c *LocalContext) SetFormatter(f Formatter) {
	c.formatters[f.TypeTag()] = f
	c.logger.Debug(LogMsgFormatterSet, zap.String(LogFieldTypeTag, f.TypeTag()))
}

// ClearFormatter removes the formatter for a type tag.
func (c *LocalContext) ClearFormatter(tag string) {
	delete(c.formatters, tag)
	c.logger.Debug(LogMsgFormatterCleared, zap.String(LogFieldTypeTag, tag))
}

// HasFormatter reports whether a formatter is registered for a tag.
func (c *LocalContext) HasFormatter(tag string) bool {
	_, ok := c.formatters[tag]
	return ok
}

// Format renders a template against the context.
func (c *LocalContext) Format(template string, args ...any) string {
	result, issues := substitute(template, bindArgs(args, c.lookupFormatter), c.GetVar)
	c.logIssues(issues)
	return result
}

// FormatStrict renders like Format and reports issues as an error.
func (c *LocalContext) FormatStrict(template string, args ...any) (string, error) {
	result, issues := substitute(template, bindArgs(args, c.lookupFormatter), c.GetVar)
	c.logIssues(issues)
	return result, issuesError(issues)
}

func (c *LocalContext) lookupFormatter(tag string) (Formatter, bool) {
	f, ok := c.formatters[tag]
	return f, ok
}

func (c *LocalContext) logIssues(issues []substitutionIssue) {
	if len(issues) == 0 {
		return
	}
	c.logger.Debug(LogMsgFormatIssues, zap.Int(LogFieldIssueCount, len(issues)))
}

// renderStored converts a value to the string form kept in a variable
// map. String values bypass formatters so stored text is never rewritten.
func renderStored(value any, lookup formatterLookup) string {
	if s, ok := value.(string); ok {
		return s
	}
	if f, ok := lookup(TypeTagOf(value)); ok {
		return f.Render(value)
	}
	return Stringify(value)
}
