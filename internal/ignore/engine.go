// Package ignore decides which paths a scan keeps. It loads gitignore-style
// rules from every ignore file under the scan root plus caller-supplied
// exclude patterns, scopes each rule to the directory that defined it, and
// resolves negation overrides with last-match-wins semantics.
package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/ykawataki/c2c/internal/utils"
)

// Engine evaluates paths against the loaded rule store.
type Engine struct {
	root       string // absolute scan root
	ignoreFile string // name of the per-directory ignore file
	discovery  bool   // load ignore files found under root
	excludes   []string
	store      *Store
	logger     utils.Logger
}

// New creates an Engine rooted at rootDir and loads its rules: first the
// configured exclude patterns, scoped to the root, then every discovered
// ignore file in discovery order. A missing or unreadable ignore file is
// logged and skipped; it never fails construction.
func New(rootDir string, opts ...Option) (*Engine, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: resolve root %q: %w", rootDir, err)
	}

	e := &Engine{
		root:       absRoot,
		ignoreFile: DefaultIgnoreFile,
		discovery:  true,
		store:      NewStore(),
		logger:     utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("ignore.New: root=%s ignoreFile=%s discovery=%v", e.root, e.ignoreFile, e.discovery)

	e.AddPatterns(e.excludes)

	if e.discovery {
		for _, path := range e.DiscoverIgnoreFiles() {
			e.AddRulesFromFile(path)
		}
	}

	return e, nil
}

// Rules returns the loaded rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return e.store.Rules()
}

// ShouldIgnore reports whether a path should be excluded from the scan.
// Every rule is evaluated in store order with no short-circuit: a matching
// normal rule sets the verdict to ignored, a matching negation rule clears
// it, and the last match wins. A path no rule matches is kept.
func (e *Engine) ShouldIgnore(relativePath string, isDir bool) bool {
	e.logger.Debug("ignore.ShouldIgnore: checking %q (isDir=%v)", relativePath, isDir)

	ignored := false
	for _, rule := range e.store.Rules() {
		if !rule.Matches(relativePath, isDir) {
			continue
		}
		if rule.Negation {
			ignored = false
			e.logger.Debug("ignore.ShouldIgnore: %q unignored by pattern=%q base_dir=%q",
				relativePath, "!"+rule.Pattern, rule.ScopeDir)
		} else {
			ignored = true
			e.logger.Debug("ignore.ShouldIgnore: %q matched pattern=%q base_dir=%q",
				relativePath, rule.Pattern, rule.ScopeDir)
		}
	}

	return ignored
}
