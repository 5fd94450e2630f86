package ignore

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Rule is a single ignore pattern scoped to the directory whose ignore file
// defined it. Rules are immutable once constructed; all normalization
// happens in NewRule.
type Rule struct {
	// Pattern is the glob pattern with any leading "!" and every literal
	// "**/" already stripped.
	Pattern string

	// ScopeDir is the directory the rule applies under, relative to the
	// scan root with forward slashes. "." means the root itself.
	ScopeDir string

	// Negation marks a rule that re-includes matching paths instead of
	// excluding them.
	Negation bool
}

// NewRule normalizes a raw pattern line into a Rule. Every literal "**/"
// collapses away, since the unanchored match already covers any depth. The
// strip runs before the "!" prefix is interpreted, so "!**/build" becomes a
// negation for "build".
func NewRule(pattern, scopeDir string) Rule {
	pattern = strings.ReplaceAll(pattern, "**/", "")

	negation := false
	if strings.HasPrefix(pattern, "!") {
		negation = true
		pattern = pattern[1:]
	}

	if scopeDir == "" {
		scopeDir = "."
	}

	return Rule{
		Pattern:  pattern,
		ScopeDir: scopeDir,
		Negation: negation,
	}
}

// Matches reports whether the rule matches the given path. The path must be
// relative to the scan root; separators are normalized and a leading "./"
// is dropped before comparison. Matching is pure: identical inputs always
// produce the same answer.
func (r Rule) Matches(relativePath string, isDir bool) bool {
	p := filepath.ToSlash(relativePath)
	p = strings.TrimPrefix(p, "./")

	if r.Pattern == "" {
		return false
	}

	// Rules only apply inside their scope directory.
	relToBase := p
	if r.ScopeDir != "." {
		if p != r.ScopeDir && !strings.HasPrefix(p, r.ScopeDir+"/") {
			return false
		}
		if p == r.ScopeDir {
			relToBase = ""
		} else {
			relToBase = p[len(r.ScopeDir)+1:]
		}
	}

	// A leading slash anchors the pattern to the scope root: it must match
	// the whole scope-relative path, with no basename fallback.
	if strings.HasPrefix(r.Pattern, "/") {
		pattern := strings.TrimLeft(r.Pattern, "/")
		return fnmatch.Match(pattern, relToBase, 0)
	}

	pattern := r.Pattern
	if strings.HasSuffix(pattern, "/") {
		// Directory-only pattern.
		if !isDir {
			return false
		}
		pattern = strings.TrimRight(pattern, "/")
	}

	if fnmatch.Match(pattern, path.Base(p), 0) {
		return true
	}

	// Unanchored patterns also match the scope-relative path itself, or at
	// any depth below the scope.
	return fnmatch.Match(pattern, relToBase, 0) ||
		fnmatch.Match("**/"+pattern, relToBase, 0)
}
