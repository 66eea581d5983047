// Package numerize converts number words in free text into numerals.
//
//	numerize.Numerize("forty two")          // "42"
//	numerize.Numerize("one and two thirds") // "1.667"
//	numerize.Numerize("a hundred lakh")     // "10000000"
//
// A Numerizer is bound to one locale and numbering system, chosen with
// options to New. Only English with Latin digits has a rule set; asking for
// anything else fails with ErrUnsupportedLocale or
// ErrUnsupportedNumberingSystem.
//
// Extract numerizes text and reports the numbers in the result with byte
// offsets. Scan does the same for text that already contains numerals.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Text longer than 1 MiB is returned unchanged.
//   - See package latin for the limits of the English rule set.
package numerize

import (
	"fmt"
	"sync"

	"github.com/az-ai-labs/numerizer/latin"
)

// maxInputBytes bounds the text a single call will rewrite.
const maxInputBytes = 1 << 20 // 1 MiB input guard

// provider is a compiled rule set for one (locale, numbering system) pair.
type provider interface {
	Process(text string) string
}

// Numerizer rewrites number words for one locale and numbering system.
type Numerizer struct {
	locale   Locale
	system   NumberingSystem
	provider provider
}

// Option configures a Numerizer.
type Option func(*options)

type options struct {
	locale Locale
	system NumberingSystem
}

// WithLocale selects the language of the number words. Default: English.
func WithLocale(l Locale) Option {
	return func(o *options) { o.locale = l }
}

// WithNumberingSystem selects the output digits. Default: Latin.
func WithNumberingSystem(n NumberingSystem) Option {
	return func(o *options) { o.system = n }
}

// New returns a Numerizer for the selected locale and numbering system.
func New(opts ...Option) (*Numerizer, error) {
	o := options{locale: English, system: Latin}
	for _, opt := range opts {
		opt(&o)
	}

	p, err := providerFor(o.locale, o.system)
	if err != nil {
		return nil, err
	}
	return &Numerizer{locale: o.locale, system: o.system, provider: p}, nil
}

// providerFor is the single dispatch point from (locale, system) to a rule
// set.
func providerFor(l Locale, n NumberingSystem) (provider, error) {
	switch l {
	case English:
		switch n {
		case Latin:
			return latin.Default(), nil
		case Roman:
			return nil, fmt.Errorf("numerize: %s with %s: %w", l, n, ErrUnsupportedNumberingSystem)
		default:
			return nil, fmt.Errorf("numerize: %s: %w", n, ErrUnsupportedNumberingSystem)
		}
	default:
		return nil, fmt.Errorf("numerize: %s: %w", l, ErrUnsupportedLocale)
	}
}

// Locale returns the locale the Numerizer was built for.
func (n *Numerizer) Locale() Locale { return n.locale }

// NumberingSystem returns the numbering system the Numerizer writes.
func (n *Numerizer) NumberingSystem() NumberingSystem { return n.system }

// Numerize returns text with every recognised number expression replaced
// by its numeral. Text without number words comes back lowercased and with
// whitespace collapsed.
func (n *Numerizer) Numerize(text string) string {
	if text == "" || len(text) > maxInputBytes {
		return text
	}
	return n.provider.Process(text)
}

// Extract numerizes text and returns the numbers found in the result.
// Offsets refer to the numerized text, which is returned alongside.
func (n *Numerizer) Extract(text string) (string, []Number) {
	out := n.Numerize(text)
	return out, Scan(out)
}

var defaultNumerizer = sync.OnceValue(func() *Numerizer {
	n, err := New()
	if err != nil {
		panic(err)
	}
	return n
})

// Default returns the English, Latin-digit Numerizer.
func Default() *Numerizer {
	return defaultNumerizer()
}

// Numerize converts text with the default Numerizer.
func Numerize(text string) string {
	return Default().Numerize(text)
}

// Extract numerizes text with the default Numerizer and scans the result.
func Extract(text string) (string, []Number) {
	return Default().Extract(text)
}
