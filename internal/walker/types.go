// Package walker performs the top-down directory traversal. It prunes
// ignored directories before descending, so the contents of an ignored
// directory are never visited, and returns the kept files as root-relative
// slash-separated paths in traversal order.
package walker

// SkippedReason says why a path was left out of the result.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Exclude Rule)"
	ReasonIgnoredGit        SkippedReason = "Ignored (.git Directory)"
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedSizeLimit  SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedInfoError  SkippedReason = "Skipped (File Info Error)"
	ReasonSkippedPathError  SkippedReason = "Skipped (Path Calculation Error)"
	ReasonSkippedBinary     SkippedReason = "Skipped (Binary Content)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
)

// SkippedItem records one path that was not emitted and why.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker accumulates skipped items during a scan. The scan is
// single-threaded, so no locking is needed.
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a tracker with the given initial capacity.
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track records a skipped path.
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the recorded items in the order they were tracked.
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
