package walker

import (
	"strings"

	"github.com/ykawataki/c2c/internal/utils"
)

// WalkOptions configures the behavior of Walk.
type WalkOptions struct {
	Logger       utils.Logger
	SkipHidden   bool
	MaxFileSize  int64
	ExtensionMap map[string]struct{}
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:       utils.NoopLogger{},
		SkipHidden:   false,
		MaxFileSize:  0, // no limit
		ExtensionMap: nil,
	}
}

// Option is a functional option for configuring WalkOptions.
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithSkipHidden skips dot-prefixed files and prunes dot-prefixed
// directories.
func WithSkipHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.SkipHidden = enabled
	}
}

// WithMaxFileSize skips files larger than maxBytes. Zero means no limit.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		opts.MaxFileSize = maxBytes
	}
}

// WithExtensions keeps only files with one of the given extensions,
// compared without the leading dot and case-insensitively.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext != "" {
				extMap[ext] = struct{}{}
			}
		}
		if len(extMap) > 0 {
			opts.ExtensionMap = extMap
		}
	}
}
