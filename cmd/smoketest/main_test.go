package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/az-ai-labs/numerizer/latin"
	"github.com/az-ai-labs/numerizer/numerize"
)

func newChecker(t *testing.T) (*checker, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &checker{
		num:       numerize.Default(),
		normalize: latin.Default().Normalize,
		log:       zap.New(core),
		stats:     &Stats{kinds: make(map[numerize.Kind]int)},
	}, logs
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"a.txt":          "forty two apples\n12 / 7\n",
		"nested/b.txt":   "one and two thirds\n\n   \nthe fifth of november\n",
		"nested/c.md":    "ignored twenty",
		"nested/d/e.txt": "21/09/2002\n10.0.0.1\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := collectFiles(dir)
	if err != nil {
		t.Fatalf("collectFiles: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("collectFiles = %v, want 3 .txt files", paths)
	}

	c, logs := newChecker(t)
	if err := c.run(context.Background(), paths, 2); err != nil {
		t.Fatalf("run: %v", err)
	}

	s := c.stats
	if s.filesScanned != 3 || s.lines != 8 {
		t.Errorf("files, lines = %d, %d; want 3, 8", s.filesScanned, s.lines)
	}
	if s.failed() {
		t.Errorf("failures = %v, want none; logs: %v", s.failures, logs.FilterMessage("check failed").All())
	}
	if s.kinds[numerize.Integer] != 3 || s.kinds[numerize.Decimal] != 1 || s.kinds[numerize.Fraction] != 1 {
		t.Errorf("kinds = %v", s.kinds)
	}
	if got := logs.FilterMessage("done").Len(); got != 3 {
		t.Errorf("done entries = %d, want 3", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	c, _ := newChecker(t)
	missing := filepath.Join(t.TempDir(), "gone.txt")
	if err := c.run(context.Background(), []string{missing}, 1); err == nil {
		t.Error("run on a missing file returned nil")
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _ := newChecker(t)
	if err := c.run(ctx, []string{path}, 1); err == nil {
		t.Error("run with a canceled context returned nil")
	}
}

func TestCheckLineReportsFailures(t *testing.T) {
	t.Parallel()

	c, logs := newChecker(t)
	fs := &fileState{path: "x.txt", kinds: make(map[numerize.Kind]int)}

	c.normalize = func(string) string { return "12 7 !" }
	c.checkLine(fs, "12   7")

	if fs.failures[passthrough] != 1 {
		t.Fatalf("passthrough failures = %d, want 1", fs.failures[passthrough])
	}
	entries := logs.FilterMessage("check failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d failures, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["check"] != "passthrough" || fields["diverges_at"] != int64(4) {
		t.Errorf("fields = %v", fields)
	}
}

func TestIsNumericOnly(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"":             false,
		" ":            false,
		"42":           true,
		"1.667 3/4 10": true,
		"1000s":        false,
		"-3":           false,
	}
	for input, want := range cases {
		if got := isNumericOnly(input); got != want {
			t.Errorf("isNumericOnly(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestFirstDivergence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		want, got string
		pos       int
		g, w      byte
	}{
		{"abc", "abc", 3, 0, 0},
		{"abc", "abd", 2, 'd', 'c'},
		{"ab", "abc", 2, 'c', 0},
		{"abc", "a", 1, 0, 'b'},
	}
	for _, tt := range cases {
		pos, g, w := firstDivergence(tt.want, tt.got)
		if pos != tt.pos || g != tt.g || w != tt.w {
			t.Errorf("firstDivergence(%q, %q) = %d, %q, %q", tt.want, tt.got, pos, g, w)
		}
	}
}
