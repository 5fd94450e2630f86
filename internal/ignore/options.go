package ignore

import "github.com/ykawataki/c2c/internal/utils"

// Option configures an Engine during construction.
type Option func(*Engine)

// WithExcludes seeds root-scoped exclude patterns. They are loaded before
// any discovered ignore file, so ignore-file rules can override them.
func WithExcludes(patterns []string) Option {
	return func(e *Engine) {
		e.excludes = patterns
	}
}

// WithIgnoreFileName overrides the per-directory ignore file name.
func WithIgnoreFileName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.ignoreFile = name
		}
	}
}

// WithDiscovery toggles loading of ignore files found under the root.
// When disabled, only patterns supplied through WithExcludes apply.
func WithDiscovery(enabled bool) Option {
	return func(e *Engine) {
		e.discovery = enabled
	}
}

// WithLogger sets the logger used for rule tracing and load warnings.
func WithLogger(logger utils.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
