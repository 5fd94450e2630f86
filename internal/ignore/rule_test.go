package ignore

import (
	"testing"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		pattern      string
		scope        string
		wantPattern  string
		wantScope    string
		wantNegation bool
	}{
		{"*.txt", ".", "*.txt", ".", false},
		{"!important.txt", ".", "important.txt", ".", true},
		{"build/", "src", "build/", "src", false},
		{"!", ".", "", ".", true},
		{"foo", "", "foo", ".", false},
		{"**/node_modules", ".", "node_modules", ".", false},
		{"src/**/gen", ".", "src/gen", ".", false},
		// The "**/" strip runs before the "!" prefix is read.
		{"!**/build", ".", "build", ".", true},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, tt.scope)
		if r.Pattern != tt.wantPattern || r.ScopeDir != tt.wantScope || r.Negation != tt.wantNegation {
			t.Errorf("NewRule(%q, %q) = %+v, want pattern=%q scope=%q negation=%v",
				tt.pattern, tt.scope, r, tt.wantPattern, tt.wantScope, tt.wantNegation)
		}
	}
}

func TestRuleMatchesBasename(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		isDir   bool
		want    bool
	}{
		{"*.txt", "test.txt", false, true},
		{"*.txt", "dir/test.txt", false, true},
		{"*.txt", "a/b/c/test.txt", false, true},
		{"*.txt", "test.txt.bak", false, false},
		{"*.txt", "main.py", false, false},
		{"node_modules", "node_modules", true, true},
		{"node_modules", "src/node_modules", true, true},
		{"node_modules", "src/node_modules/pkg", false, false},

		// Leading "./" is stripped before comparison.
		{"*.txt", "./test.txt", false, true},

		// A bare name also matches a file by that name at any depth.
		{"docs", "a/b/docs", false, true},
		{"docs", "a/b/docs", true, true},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, ".")
		if got := r.Matches(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Rule(%q).Matches(%q, isDir=%v) = %v, want %v",
				tt.pattern, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestRuleMatchesDirectoryOnly(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		isDir   bool
		want    bool
	}{
		{"temp/", "temp", true, true},
		{"temp/", "temp", false, false},
		{"temp/", "nested/temp", true, true},
		{"temp/", "temp.txt", true, false},
		{"build/", "build", true, true},
		{"build/", "build.log", false, false},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, ".")
		if got := r.Matches(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Rule(%q).Matches(%q, isDir=%v) = %v, want %v",
				tt.pattern, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestRuleMatchesAnchored(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Anchored patterns match the scope-relative path only, with no
		// basename fallback.
		{"/root.txt", "root.txt", true},
		{"/root.txt", "nested/root.txt", false},
		{"/build", "build", true},
		{"/build", "src/build", false},
		{"/build/*", "build/out.o", true},
		{"/build/*", "src/build/out.o", false},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, ".")
		if got := r.Matches(tt.path, false); got != tt.want {
			t.Errorf("Rule(%q).Matches(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestRuleMatchesScopeIsolation(t *testing.T) {
	tests := []struct {
		pattern string
		scope   string
		path    string
		isDir   bool
		want    bool
	}{
		{"*.txt", "src", "src/a.txt", false, true},
		{"*.txt", "src", "src/sub/a.txt", false, true},
		{"*.txt", "src", "docs/a.txt", false, false},
		{"*.txt", "src", "a.txt", false, false},
		// "srcfoo" does not live under scope "src".
		{"*.txt", "src", "srcfoo/a.txt", false, false},
		// The scope directory itself can match an unanchored pattern.
		{"*", "src", "src", true, true},
		// Anchored patterns resolve against the scope, not the root.
		{"/top.txt", "src", "src/top.txt", false, true},
		{"/top.txt", "src", "src/sub/top.txt", false, false},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, tt.scope)
		if got := r.Matches(tt.path, tt.isDir); got != tt.want {
			t.Errorf("Rule(%q, scope=%q).Matches(%q, isDir=%v) = %v, want %v",
				tt.pattern, tt.scope, tt.path, tt.isDir, got, tt.want)
		}
	}
}

func TestRuleMatchesEmptyPattern(t *testing.T) {
	for _, raw := range []string{"", "!"} {
		r := NewRule(raw, ".")
		if r.Matches("anything.txt", false) {
			t.Errorf("Rule(%q) matched %q, want no match", raw, "anything.txt")
		}
		if r.Matches("", false) {
			t.Errorf("Rule(%q) matched empty path, want no match", raw)
		}
	}
}

func TestRuleMatchesGlobWildcards(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},
		{"[0-9]*.log", "1-debug.log", true},
		{"[0-9]*.log", "debug.log", false},
		{"*.py[cod]", "mod.pyc", true},
		{"*.py[cod]", "mod.py", false},

		// Globs are flat string matches: "*" crosses path separators when
		// matching the scope-relative path.
		{"src*", "src/main.py", true},
		{"docs/*.txt", "docs/readme.txt", true},
		{"docs/*.txt", "docs/sub/readme.txt", true},
	}

	for _, tt := range tests {
		r := NewRule(tt.pattern, ".")
		if got := r.Matches(tt.path, false); got != tt.want {
			t.Errorf("Rule(%q).Matches(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestRuleMatchesIsPure(t *testing.T) {
	r := NewRule("*.txt", "src")
	for i := 0; i < 3; i++ {
		if !r.Matches("src/a.txt", false) {
			t.Fatalf("Matches changed answer on call %d", i+1)
		}
		if r.Matches("docs/a.txt", false) {
			t.Fatalf("Matches changed answer on call %d", i+1)
		}
	}
	if r.Pattern != "*.txt" || r.ScopeDir != "src" || r.Negation {
		t.Fatalf("rule mutated by Matches: %+v", r)
	}
}
