package ignore

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreFile is the per-directory ignore file name the engine looks
// for unless overridden with WithIgnoreFileName.
const DefaultIgnoreFile = ".gitignore"

// AddPatterns appends one root-scoped rule per pattern, in the order given.
// Blank patterns are dropped.
func (e *Engine) AddPatterns(patterns []string) {
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		rule := NewRule(pattern, ".")
		e.store.Append(rule)
		e.logger.Debug("ignore.AddPatterns: added rule pattern=%q base_dir=%q", displayPattern(rule), rule.ScopeDir)
	}
}

// AddRulesFromFile loads the rules of one ignore file, scoping them to the
// file's directory. Read failures are logged as warnings and leave the
// store as it was; they never abort the scan. Comment lines and blank lines
// are skipped, and "**/" is normalized away before the rule is built.
func (e *Engine) AddRulesFromFile(path string) {
	relDir, err := filepath.Rel(e.root, filepath.Dir(path))
	if err != nil {
		e.logger.Warn("Error reading %s: %v", path, err)
		return
	}
	scopeDir := "."
	if relDir != "." {
		scopeDir = filepath.ToSlash(relDir)
	}

	f, err := os.Open(path)
	if err != nil {
		e.logger.Warn("Error reading %s: %v", path, err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rule := NewRule(line, scopeDir)
		e.store.Append(rule)
		e.logger.Debug("ignore.AddRulesFromFile: added rule pattern=%q base_dir=%q", displayPattern(rule), scopeDir)
	}
	if err := scanner.Err(); err != nil {
		// Rules read before the failure stay loaded.
		e.logger.Warn("Error reading %s: %v", path, err)
	}
}

// DiscoverIgnoreFiles walks the scan root and returns the path of every
// ignore file beneath it, in top-down lexical directory order so rule
// evaluation order is reproducible. Unreadable directories are skipped with
// a warning. The .git directory is not excluded here; exclusion happens
// during the main tree walk.
func (e *Engine) DiscoverIgnoreFiles() []string {
	var found []string

	filepath.WalkDir(e.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			e.logger.Warn("ignore.DiscoverIgnoreFiles: skipping %s: %v", path, err)
			if path == e.root {
				return filepath.SkipAll
			}
			return nil
		}
		if !d.IsDir() && d.Name() == e.ignoreFile {
			found = append(found, path)
		}
		return nil
	})

	return found
}

// displayPattern restores the "!" prefix for log output.
func displayPattern(r Rule) string {
	if r.Negation {
		return "!" + r.Pattern
	}
	return r.Pattern
}
