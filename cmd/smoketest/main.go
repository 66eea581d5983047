// Command smoketest runs the numerizer over every .txt file under a
// directory and checks properties that must hold for any input:
//
//   - no pipeline sentinel reaches the output
//   - numeric-only output is stable under a second pass
//   - lines without letters come back only normalized
//
// Usage:
//
//	smoketest [-config path] [-workers n] <directory>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/numerizer/internal/config"
	"github.com/az-ai-labs/numerizer/internal/logger"
	"github.com/az-ai-labs/numerizer/latin"
	"github.com/az-ai-labs/numerizer/numerize"
)

const (
	maxLineBytes   = 16 << 20
	maxInputBytes  = 1 << 20 // numerize returns longer text unchanged
	bytesToMBShift = 20
	maxReported    = 5 // failures logged per file and check
)

type check int

const (
	sentinelLeak check = iota
	unstable
	passthrough
	numChecks
)

var checkNames = [numChecks]string{"sentinel_leak", "unstable", "passthrough"}

func (c check) String() string { return checkNames[c] }

type Stats struct {
	mu           sync.Mutex
	filesScanned int
	lines        int
	totalBytes   int64
	changed      int
	failures     [numChecks]int
	kinds        map[numerize.Kind]int
	slowest      []fileTiming
}

type fileTiming struct {
	path    string
	elapsed time.Duration
}

type fileState struct {
	path       string
	lines      int
	totalBytes int64
	changed    int
	failures   [numChecks]int
	kinds      map[numerize.Kind]int
}

type checker struct {
	num       *numerize.Numerizer
	// normalize is what letterless lines must come back as.
	normalize func(string) string
	log       *zap.Logger
	stats     *Stats
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	workers := flag.Int("workers", 0, "files processed in parallel (default from config)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "smoketest: %v\n", err)
		os.Exit(2)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoketest: %v\n", err)
		os.Exit(2)
	}
	if *workers > 0 {
		cfg.Smoketest.Workers = *workers
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	defer logger.Sync(log)

	num, err := cfg.Numerizer()
	if err != nil {
		log.Fatal("failed to build numerizer", zap.Error(err))
	}

	paths, err := collectFiles(flag.Arg(0))
	if err != nil {
		log.Fatal("failed to walk directory", zap.Error(err))
	}
	log.Info("found files", zap.Int("count", len(paths)), zap.Int("workers", cfg.Smoketest.Workers))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &checker{
		num:       num,
		normalize: latin.Default().Normalize,
		log:       log,
		stats:     &Stats{kinds: make(map[numerize.Kind]int)},
	}

	start := time.Now()
	if err := c.run(ctx, paths, cfg.Smoketest.Workers); err != nil {
		log.Error("smoketest aborted", zap.Error(err))
		os.Exit(1)
	}
	log.Info("completed", zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	printStats(c.stats)
	if c.stats.failed() {
		os.Exit(1)
	}
}

func collectFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

// run checks every file with at most workers files in flight. The first
// I/O error cancels the remaining files.
func (c *checker) run(ctx context.Context, paths []string, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		g.Go(func() error {
			return c.processFile(ctx, path)
		})
	}
	return g.Wait()
}

func (c *checker) processFile(ctx context.Context, path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	c.log.Debug("start", zap.String("path", path), zap.Int64("mb", info.Size()>>bytesToMBShift))
	fileStart := time.Now()

	state := &fileState{path: path, kinds: make(map[numerize.Kind]int)}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.checkLine(state, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	elapsed := time.Since(fileStart)
	c.log.Info("done",
		zap.String("file", filepath.Base(path)),
		zap.Duration("elapsed", elapsed.Round(time.Millisecond)),
		zap.Int("lines", state.lines),
		zap.Int("changed", state.changed),
	)
	c.stats.merge(state, elapsed)
	return nil
}

func (c *checker) checkLine(fs *fileState, line string) {
	fs.lines++
	fs.totalBytes += int64(len(line)) + 1

	out, nums := c.num.Extract(line)
	if out != line {
		fs.changed++
	}
	for _, n := range nums {
		fs.kinds[n.Kind]++
	}

	if strings.ContainsRune(out, '\uE000') || strings.ContainsRune(out, '\uE001') {
		c.fail(fs, sentinelLeak, line, out, "")
	}
	if isNumericOnly(out) {
		if again := c.num.Numerize(out); again != out {
			c.fail(fs, unstable, line, out, again)
		}
	}
	if len(line) <= maxInputBytes && !hasLetter(line) {
		if want := c.normalize(line); out != want {
			c.fail(fs, passthrough, line, out, want)
		}
	}
}

func (c *checker) fail(fs *fileState, k check, line, got, want string) {
	fs.failures[k]++
	if fs.failures[k] > maxReported {
		return
	}
	fields := []zap.Field{
		zap.String("check", k.String()),
		zap.String("path", fs.path),
		zap.Int("line", fs.lines),
		zap.String("input", truncate(line)),
		zap.String("output", truncate(got)),
	}
	if want != "" {
		pos, g, w := firstDivergence(want, got)
		fields = append(fields,
			zap.String("want", truncate(want)),
			zap.Int("diverges_at", pos),
			zap.Uint8("got_byte", g),
			zap.Uint8("want_byte", w),
		)
	}
	c.log.Warn("check failed", fields...)
}

func (s *Stats) merge(fs *fileState, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filesScanned++
	s.lines += fs.lines
	s.totalBytes += fs.totalBytes
	s.changed += fs.changed
	for i, n := range fs.failures {
		s.failures[i] += n
	}
	for k, n := range fs.kinds {
		s.kinds[k] += n
	}
	s.slowest = append(s.slowest, fileTiming{path: fs.path, elapsed: elapsed})
}

func (s *Stats) failed() bool {
	for _, n := range s.failures {
		if n > 0 {
			return true
		}
	}
	return false
}

// isNumericOnly reports whether s holds nothing but digits, separators and
// spaces, and at least one digit.
func isNumericOnly(s string) bool {
	digit := false
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b >= '0' && b <= '9':
			digit = true
		case b == '.' || b == '/' || b == ' ':
		default:
			return false
		}
	}
	return digit
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func truncate(s string) string {
	const limit = 120
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(want, got string) (pos int, g, w byte) {
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			return i, got[i], want[i]
		}
	}
	pos = n
	if pos < len(got) {
		g = got[pos]
	}
	if pos < len(want) {
		w = want[pos]
	}
	return pos, g, w
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Lines:                   %d\n", stats.lines)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Lines changed:           %d\n", stats.changed)
	for k := range numChecks {
		fmt.Printf("  %-22s %d\n", k.String()+":", stats.failures[k])
	}
	fmt.Println()

	total := 0
	for _, n := range stats.kinds {
		total += n
	}
	fmt.Println("Numbers found:")
	for _, k := range []numerize.Kind{numerize.Integer, numerize.Decimal, numerize.Fraction} {
		pct := 0.0
		if total > 0 {
			pct = float64(stats.kinds[k]) / float64(total) * 100
		}
		fmt.Printf("  %-15s %d  (%.1f%%)\n", k.String()+":", stats.kinds[k], pct)
	}

	sort.Slice(stats.slowest, func(i, j int) bool {
		return stats.slowest[i].elapsed > stats.slowest[j].elapsed
	})
	if len(stats.slowest) > 0 {
		fmt.Println()
		fmt.Println("Slowest files:")
		for _, ft := range stats.slowest[:min(len(stats.slowest), maxReported)] {
			fmt.Printf("  %-10s %s\n", ft.elapsed.Round(time.Millisecond), ft.path)
		}
	}
}
