package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ykawataki/c2c/internal/ignore"
)

// Walk traverses the tree under rootDir top-down and returns the kept files
// as root-relative slash-separated paths, in traversal order, together with
// the skipped items. Directories the matcher ignores are pruned before
// descending: nothing below them is visited or evaluated, so a file-level
// negation rule cannot resurrect content of an ignored directory. The .git
// directory is always pruned regardless of rules.
//
// Only a failure on the root itself aborts the walk; every other error is
// logged, recorded as a skipped item, and the walk continues.
func Walk(rootDir string, matcher *ignore.Engine, opts ...Option) ([]string, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: resolve root %q: %w", rootDir, err)
	}

	tracker := NewSkippedTracker(64)
	var files []string

	options.Logger.Debug("walker.Walk: starting at %s", absRoot)

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				// The root itself is unreadable; nothing to scan.
				return err
			}
			rel := relOrRaw(absRoot, path)
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Warn("Walker: error at %q: %v", rel, err)
			tracker.Track(rel, reason, d != nil && d.IsDir())
			return nil
		}

		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			options.Logger.Error("Walker: path calculation failed for %q: %v", path, relErr)
			tracker.Track(path, ReasonSkippedPathError, d.IsDir())
			return nil
		}
		rel = filepath.ToSlash(rel)
		isDir := d.IsDir()

		if isDir && d.Name() == ".git" {
			options.Logger.Debug("Walker: pruning .git directory at %q", rel)
			tracker.Track(rel, ReasonIgnoredGit, true)
			return filepath.SkipDir
		}

		if options.SkipHidden && strings.HasPrefix(d.Name(), ".") {
			options.Logger.Debug("Walker: skipping hidden entry %q", rel)
			tracker.Track(rel, ReasonIgnoredHidden, isDir)
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.ShouldIgnore(rel, isDir) {
			tracker.Track(rel, ReasonIgnoredRule, isDir)
			if isDir {
				options.Logger.Debug("Walker: pruning ignored directory %q", rel)
				return filepath.SkipDir
			}
			options.Logger.Debug("Walker: skipping ignored file %q", rel)
			return nil
		}

		if isDir {
			options.Logger.Debug("Walker: descending into %q", rel)
			return nil
		}

		if !d.Type().IsRegular() {
			options.Logger.Debug("Walker: skipping non-regular file %q", rel)
			tracker.Track(rel, ReasonSkippedNotRegular, false)
			return nil
		}

		if options.ExtensionMap != nil {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(rel), "."))
			if _, allowed := options.ExtensionMap[ext]; !allowed {
				options.Logger.Debug("Walker: extension %q not allowed for %q", ext, rel)
				tracker.Track(rel, ReasonFilteredExtension, false)
				return nil
			}
		}

		if options.MaxFileSize > 0 {
			info, infoErr := d.Info()
			if infoErr != nil {
				options.Logger.Error("Walker: file info failed for %q: %v", rel, infoErr)
				tracker.Track(rel, ReasonSkippedInfoError, false)
				return nil
			}
			if info.Size() > options.MaxFileSize {
				options.Logger.Debug("Walker: %q exceeds size limit (%d > %d bytes)",
					rel, info.Size(), options.MaxFileSize)
				tracker.Track(rel, ReasonSkippedSizeLimit, false)
				return nil
			}
		}

		files = append(files, rel)
		return nil
	})

	if walkErr != nil {
		return files, tracker.Items(), walkErr
	}

	options.Logger.Debug("walker.Walk: finished, %d files kept, %d skipped", len(files), len(tracker.Items()))
	return files, tracker.Items(), nil
}

// relOrRaw falls back to the raw path when the relative one cannot be
// computed, which only matters for log output.
func relOrRaw(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
