// Command numerize rewrites number words into numerals.
//
// Usage:
//
//	numerize [flags] [text ...]
//
// With text arguments the joined arguments are numerized as one input.
// Otherwise each line of -file, or of standard input, is numerized and
// printed on its own line.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/az-ai-labs/numerizer/internal/config"
	"github.com/az-ai-labs/numerizer/internal/logger"
	"github.com/az-ai-labs/numerizer/numerize"
)

const (
	exitIO    = 1
	exitUsage = 2

	maxLineBytes = 1 << 20
)

type result struct {
	Input   string            `json:"input"`
	Output  string            `json:"output"`
	Numbers []numerize.Number `json:"numbers"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numerize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	localeName := fs.String("locale", "", "locale of the number words (default from config)")
	systemName := fs.String("system", "", "numbering system of the output (default from config)")
	file := fs.String("file", "", "read input lines from `path` instead of stdin")
	asJSON := fs.Bool("json", false, "print one JSON object per input with the numbers found")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: numerize [flags] [text ...]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(stderr, "numerize: %v\n", err)
		return exitUsage
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "numerize: %v\n", err)
		return exitUsage
	}
	if *localeName != "" {
		cfg.Locale = *localeName
	}
	if *systemName != "" {
		cfg.System = *systemName
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	defer logger.Sync(log)

	num, err := cfg.Numerizer()
	if err != nil {
		fmt.Fprintf(stderr, "numerize: %v\n", err)
		return exitUsage
	}
	log.Debug("numerizer ready",
		zap.Stringer("locale", num.Locale()),
		zap.Stringer("system", num.NumberingSystem()),
	)

	w := bufio.NewWriter(stdout)
	defer func() { _ = w.Flush() }()
	emit := func(input string) error {
		return write(w, num, input, *asJSON)
	}

	if fs.NArg() > 0 {
		if *file != "" {
			fmt.Fprintln(stderr, "numerize: text arguments and -file are mutually exclusive")
			return exitUsage
		}
		if err := emit(strings.Join(fs.Args(), " ")); err != nil {
			fmt.Fprintf(stderr, "numerize: %v\n", err)
			return exitIO
		}
		return 0
	}

	in := stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(stderr, "numerize: %v\n", err)
			return exitIO
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	lines, err := numerizeLines(in, emit)
	log.Debug("input consumed", zap.Int("lines", lines))
	if err != nil {
		fmt.Fprintf(stderr, "numerize: %v\n", err)
		return exitIO
	}
	return 0
}

// numerizeLines calls emit for every line of r and returns the number of
// lines read.
func numerizeLines(r io.Reader, emit func(string) error) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		if err := emit(sc.Text()); err != nil {
			return n, err
		}
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read input: %w", err)
	}
	return n, nil
}

func write(w io.Writer, num *numerize.Numerizer, input string, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, num.Numerize(input))
		return err
	}

	out, nums := num.Extract(input)
	if nums == nil {
		nums = []numerize.Number{}
	}
	return json.NewEncoder(w).Encode(result{Input: input, Output: out, Numbers: nums})
}
