package ufmt

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
	"go.uber.org/zap"
)

// The process-wide default owner is the first goroutine that writes to
// any shared context. Explicit designation per context overrides it.
var (
	processOwnerOnce sync.Once
	processOwnerID   atomic.Int64
)

func claimProcessOwner() int64 {
	processOwnerOnce.Do(func() {
		processOwnerID.Store(goid.Get())
	})
	return processOwnerID.Load()
}

// SharedContext is a formatting context safe for concurrent use. Writes
// follow a two-tier model: the owner goroutine writes to the shared
// variable map under a mutex, every other goroutine writes to a private
// overlay visible only to itself. Reads check the caller's overlay
// first and fall back to the shared map, so a goroutine always sees its
// own overrides without disturbing the shared state other goroutines
// read.
//
// The owner defaults to the first goroutine that writes to any shared
// context in the process. DesignateOwner or WithOwnerDesignation pin
// the owner per context instead. Overlays live as long as the context,
// one small map per goroutine that has written through it.
type SharedContext struct {
	mu         sync.Mutex
	variables  map[string]string
	formatters map[string]Formatter
	overlays   sync.Map // goroutine id -> map[string]string
	owner      atomic.Int64
	logger     *zap.Logger
}

// SharedContext implements Context.
var _ Context = (*SharedContext)(nil)

// NewSharedContext creates an empty shared context.
func NewSharedContext(opts ...Option) *SharedContext {
	config := applyOptions(opts)
	c := &SharedContext{
		variables:  make(map[string]string),
		formatters: make(map[string]Formatter),
		logger:     config.logger,
	}
	if config.designateOwner {
		c.DesignateOwner()
	}
	c.logger.Debug(LogMsgContextCreated, zap.String(LogFieldKind, ContextKindShared.String()))
	return c
}

// Kind reports the concurrency model of the context.
func (c *SharedContext) Kind() ContextKind {
	return ContextKindShared
}

// DesignateOwner makes the calling goroutine the owner of this context.
// The owner's writes land in the shared variable map; writes from any
// other goroutine land in that goroutine's private overlay.
func (c *SharedContext) DesignateOwner() {
	id := goid.Get()
	c.owner.Store(id)
	c.logger.Debug(LogMsgOwnerDesignated, zap.Int64(LogFieldGoroutine, id))
}

// SetVar stores a variable. The owner writes to the shared map; any
// other goroutine writes to its private overlay. String values are
// stored verbatim; other values render through a matching formatter,
// then through Stringify.
func (c *SharedContext) SetVar(name string, value any) {
	stored := renderStored(value, c.lookupFormatter)
	id := goid.Get()
	if c.ownedBy(id) {
		c.mu.Lock()
		c.variables[name] = stored
		c.mu.Unlock()
		c.logger.Debug(LogMsgVariableSet,
			zap.String(LogFieldVariable, name),
			zap.Int64(LogFieldGoroutine, id))
		return
	}
	c.overlayFor(id)[name] = stored
	c.logger.Debug(LogMsgOverlayWrite,
		zap.String(LogFieldVariable, name),
		zap.Int64(LogFieldGoroutine, id))
}

// ClearVar removes a variable. The owner clears the shared entry; any
// other goroutine only clears its own overlay entry, so a shared value
// hidden by an overlay becomes visible to that goroutine again.
func (c *SharedContext) ClearVar(name string) {
	id := goid.Get()
	if c.ownedBy(id) {
		c.mu.Lock()
		delete(c.variables, name)
		c.mu.Unlock()
		c.logger.Debug(LogMsgVariableCleared,
			zap.String(LogFieldVariable, name),
			zap.Int64(LogFieldGoroutine, id))
		return
	}
	if overlay, ok := c.overlays.Load(id); ok {
		delete(overlay.(map[string]string), name)
	}
}

// HasVar reports whether a variable is visible to the calling
// goroutine, through its overlay or the shared map.
func (c *SharedContext) HasVar(name string) bool {
	_, ok := c.GetVar(name)
	return ok
}

// GetVar returns the stored string form of a variable. The calling
// goroutine's overlay wins over the shared map.
func (c *SharedContext) GetVar(name string) (string, bool) {
	if overlay, ok := c.overlays.Load(goid.Get()); ok {
		if value, ok := overlay.(map[string]string)[name]; ok {
			return value, true
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.variables[name]
	return value, ok
}

// VarNames returns the variable names visible to the calling goroutine
// in sorted order: the shared names plus the caller's overlay names.
func (c *SharedContext) VarNames() []string {
	seen := make(map[string]bool)
	if overlay, ok := c.overlays.Load(goid.Get()); ok {
		for name := range overlay.(map[string]string) {
			seen[name] = true
		}
	}

	c.mu.Lock()
	for name := range c.variables {
		seen[name] = true
	}
	c.mu.Unlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetFormatter registers a formatter keyed by its type tag. Formatters
// are always shared; overlays hold variables only.
func (c *SharedContext) SetFormatter(f Formatter) {
	c.mu.Lock()
	c.formatters[f.TypeTag()] = f
	c.mu.Unlock()
	c.logger.Debug(LogMsgFormatterSet, zap.String(LogFieldTypeTag, f.TypeTag()))
}

// ClearFormatter removes the formatter for a type tag.
func (c *SharedContext) ClearFormatter(tag string) {
	c.mu.Lock()
	delete(c.formatters, tag)
	c.mu.Unlock()
	c.logger.Debug(LogMsgFormatterCleared, zap.String(LogFieldTypeTag, tag))
}

// HasFormatter reports whether a formatter is registered for a tag.
func (c *SharedContext) HasFormatter(tag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.formatters[tag]
	return ok
}

// Format renders a template against the context.
func (c *SharedContext) Format(template string, args ...any) string {
	result, issues := substitute(template, bindArgs(args, c.lookupFormatter), c.GetVar)
	c.logIssues(issues)
	return result
}

// FormatStrict renders like Format and reports issues as an error.
func (c *SharedContext) FormatStrict(template string, args ...any) (string, error) {
	result, issues := substitute(template, bindArgs(args, c.lookupFormatter), c.GetVar)
	c.logIssues(issues)
	return result, issuesError(issues)
}

// ownedBy reports whether id is the owner goroutine, falling back to
// the process-wide default when no owner was designated. The fallback
// claims the default for the first writer, so it only runs on the
// write paths.
func (c *SharedContext) ownedBy(id int64) bool {
	if owner := c.owner.Load(); owner != 0 {
		return owner == id
	}
	return claimProcessOwner() == id
}

// overlayFor returns the calling goroutine's overlay, creating it on
// first write. The overlay map is only ever touched by its own
// goroutine; the sync.Map just indexes them.
func (c *SharedContext) overlayFor(id int64) map[string]string {
	if overlay, ok := c.overlays.Load(id); ok {
		return overlay.(map[string]string)
	}
	overlay, _ := c.overlays.LoadOrStore(id, make(map[string]string))
	return overlay.(map[string]string)
}

func (c *SharedContext) lookupFormatter(tag string) (Formatter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, ok := c.formatters[tag]
	return f, ok
}

func (c *SharedContext) logIssues(issues []substitutionIssue) {
	if len(issues) == 0 {
		return
	}
	c.logger.Debug(LogMsgFormatIssues, zap.Int(LogFieldIssueCount, len(issues)))
}
