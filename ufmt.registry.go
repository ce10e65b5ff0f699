package ufmt

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ContextRegistry hands out shared contexts by name, so unrelated parts
// of a process can reach the same context without passing it around.
type ContextRegistry struct {
	mu       sync.Mutex
	contexts map[string]*SharedContext
	logger   *zap.Logger
}

// NewContextRegistry creates an empty registry.
func NewContextRegistry(opts ...Option) *ContextRegistry {
	config := applyOptions(opts)
	r := &ContextRegistry{
		logger: config.logger,
	}
	r.logger.Debug(LogMsgRegistryCreated)
	return r
}

// GetOrCreate returns the named context, creating it on first use. The
// context map itself is created lazily under the lock, so Clear can
// simply drop it.
func (r *ContextRegistry) GetOrCreate(name string) *SharedContext {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.contexts == nil {
		r.contexts = make(map[string]*SharedContext)
	}
	if c, ok := r.contexts[name]; ok {
		return c
	}
	c := NewSharedContext(WithLogger(r.logger))
	r.contexts[name] = c
	r.logger.Debug(LogMsgRegistryGet, zap.String(LogFieldContext, name))
	return c
}

// Remove drops the named context. Goroutines still holding the context
// keep a working reference; the name simply maps to a fresh context on
// the next GetOrCreate.
func (r *ContextRegistry) Remove(name string) {
	r.mu.Lock()
	delete(r.contexts, name)
	r.mu.Unlock()
	r.logger.Debug(LogMsgRegistryRemove, zap.String(LogFieldContext, name))
}

// Clear drops every context.
func (r *ContextRegistry) Clear() {
	r.mu.Lock()
	count := len(r.contexts)
	r.contexts = nil
	r.mu.Unlock()
	r.logger.Debug(LogMsgRegistryCleared, zap.Int(LogFieldCount, count))
}

// Names returns the registered context names in sorted order.
func (r *ContextRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.contexts))
	for name := range r.contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// The process-wide registry backs the package-level helpers. It is
// created on first use.
var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *ContextRegistry
)

// DefaultRegistry returns the process-wide context registry.
func DefaultRegistry() *ContextRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewContextRegistry()
	})
	return defaultRegistry
}

// GetOrCreateContext returns a named context from the process-wide
// registry, creating it on first use.
func GetOrCreateContext(name string) *SharedContext {
	return DefaultRegistry().GetOrCreate(name)
}

// RemoveContext drops a named context from the process-wide registry.
func RemoveContext(name string) {
	DefaultRegistry().Remove(name)
}

// ClearAllContexts drops every context in the process-wide registry.
func ClearAllContexts() {
	DefaultRegistry().Clear()
}
