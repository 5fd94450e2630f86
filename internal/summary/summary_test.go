package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ykawataki/c2c/internal/walker"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, 3, 2, 1500*time.Millisecond, false)

	want := []string{
		"Found and emitted 3 files.",
		"Skipped 2 binary files.",
		"Scan complete in 1.5s.",
	}
	if len(log.lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), log.lines)
	}
	for i := range want {
		if log.lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, log.lines[i], want[i])
		}
	}
}

func TestDisplayResultsNoBinarySkips(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, 1, 0, time.Second, false)

	for _, line := range log.lines {
		if strings.Contains(line, "binary") {
			t.Fatalf("binary line should be absent when none were skipped: %v", log.lines)
		}
	}
}

func TestDisplayResultsQuiet(t *testing.T) {
	log := &recordingLogger{}
	DisplayResults(log, 3, 2, time.Second, true)

	if len(log.lines) != 0 {
		t.Fatalf("quiet run should log nothing, got %v", log.lines)
	}
}

func TestDisplaySkippedItemsSortedAndFormatted(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "zeta.txt", Reason: walker.ReasonSkippedBinary},
		{Path: "alpha", Reason: walker.ReasonIgnoredRule, IsDir: true},
		{Path: "mid/file.go", Reason: walker.ReasonSkippedReadError},
	}

	DisplaySkippedItems(log, items, &out, false)

	want := []string{
		"Skipped DIR : alpha [Ignored (Gitignore/Exclude Rule)]",
		"Skipped FILE: mid/file.go [Skipped (Read Error)]",
		"Skipped FILE: zeta.txt [Skipped (Binary Content)]",
	}
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("expected %d report lines, got %d:\n%s", len(want), len(got), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if len(log.lines) == 0 || log.lines[0] != "--- Skipped Items (3) ---" {
		t.Fatalf("unexpected framing header: %v", log.lines)
	}
	if log.lines[len(log.lines)-1] != "--- End Skipped Items ---" {
		t.Fatalf("unexpected framing footer: %v", log.lines)
	}
}

func TestDisplaySkippedItemsTruncatesLongPaths(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	long := strings.Repeat("d", 60)

	DisplaySkippedItems(log, []walker.SkippedItem{{Path: long, Reason: walker.ReasonIgnoredRule}}, &out, false)

	if strings.Contains(out.String(), long) {
		t.Fatalf("path should be cut to the column width:\n%s", out.String())
	}
	if !strings.Contains(out.String(), strings.Repeat("d", 50)) {
		t.Fatalf("expected the first 50 characters of the path:\n%s", out.String())
	}
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer

	DisplaySkippedItems(log, nil, &out, false)

	if out.Len() != 0 {
		t.Fatalf("no items should produce no report lines, got:\n%s", out.String())
	}
	found := false
	for _, line := range log.lines {
		if line == "No items were skipped." {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the empty notice, got %v", log.lines)
	}
}

func TestDisplaySkippedItemsQuietStillReports(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	items := []walker.SkippedItem{{Path: "a.bin", Reason: walker.ReasonSkippedBinary}}

	DisplaySkippedItems(log, items, &out, true)

	if len(log.lines) != 0 {
		t.Fatalf("quiet should suppress the framing lines, got %v", log.lines)
	}
	if !strings.Contains(out.String(), "a.bin") {
		t.Fatalf("the report itself is still written when quiet, got:\n%s", out.String())
	}
}
