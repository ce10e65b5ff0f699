package ufmt

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring contexts and registries.
type Option func(*contextConfig)

// contextConfig holds the internal configuration applied at construction.
type contextConfig struct {
	logger         *zap.Logger
	designateOwner bool
}

// defaultContextConfig returns the default configuration.
func defaultContextConfig() *contextConfig {
	return &contextConfig{
		logger:         nil,
		designateOwner: false,
	}
}

// applyOptions runs the options over the default configuration and
// falls back to a no-op logger when none was set.
func applyOptions(opts []Option) *contextConfig {
	config := defaultContextConfig()
	for _, opt := range opts {
		opt(config)
	}
	if config.logger == nil {
		config.logger = zap.NewNop()
	}
	return config
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *contextConfig) {
		c.logger = logger
	}
}

// WithOwnerDesignation marks the constructing goroutine as the owner of
// the new shared context, so its writes land in the shared variable map
// from the start. Has no effect on local contexts.
// Default: the first goroutine to write to any shared context becomes
// the process-wide default owner.
func WithOwnerDesignation() Option {
	return func(c *contextConfig) {
		c.designateOwner = true
	}
}
