// Package latin rewrites English number words into Latin (Indo-Arabic)
// numerals.
//
// Text flows through five stages, always in this order:
//
//   - Normalize: lowercase, whitespace and hyphen cleanup, trailing article
//   - RewriteNumerals: cardinal words to marked tokens ("forty two" → ⟨40⟩ ⟨2⟩)
//   - RewriteFractions: fractional words to num/den tokens and decimals
//   - RewriteMagnitudes: hundred … trillion, merging adjacent tokens (Merge)
//   - Finalize: strip the token marker, turn fraction bars into "/"
//
// Resolved numbers are carried between stages as marked tokens: the private
// use rune Marker followed by digits. Fraction words leave a second private
// use rune, the fraction bar, in front of their denominator. Normalize
// removes both runes from the input, so neither sentinel collides with user
// text.
//
// Text that contains no number word passes through the pipeline unchanged
// apart from normalization ("Pennyweight" → "pennyweight").
//
// A Provider holds only compiled patterns built from immutable tables and is
// safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Negative numbers are not recognised ("minus five" → "minus 5").
//   - Two adjacent numbers of the same digit width separated only by
//     whitespace are not summed ("ten eleven" → "10 11"), while a wider
//     number followed by a narrower one is ("twenty one" → "21",
//     "hundred ten" → "110"). There is no attempt to resolve the ambiguity
//     beyond that rule.
//   - Magnitude words are matched without a trailing word boundary, so
//     "thousands" becomes "1000s".
//   - A repeated magnitude word yields two equal-width tokens that are
//     neither summed nor separated, so "thousand thousand" becomes
//     "10001000".
package latin

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/numerizer/internal/rewrite"
	"github.com/az-ai-labs/numerizer/internal/textcase"
	"github.com/az-ai-labs/numerizer/normalize"
)

// Marker prefixes every resolved number while the pipeline runs.
const Marker = "\uE000"

// fractionBar stands in for "/" between a fraction word's denominator and
// whatever numerator precedes it, so that slashes typed by the user are
// never given an implicit numerator.
const fractionBar = "\uE001"

const (
	markerRune      = '\uE000'
	fractionBarRune = '\uE001'
)

// InvariantError reports a marked token whose value is not a decimal
// integer. The pipeline only ever writes digits it produced itself, so this
// is a programming error and is raised with panic.
type InvariantError struct {
	Stage string
	Value string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("latin: %s: token value %q is not an integer", e.Stage, e.Value)
}

// Provider is the compiled Latin rule set.
type Provider struct {
	// numerals
	implicitHundreds *rewrite.Pattern
	plainWords       *rewrite.Pattern
	article          *rewrite.Pattern
	tensWords        *rewrite.Pattern
	values           map[string]int64

	// fractions
	fractionArticle *rewrite.Pattern
	fractionWord    *rewrite.Pattern
	denominators    []int64
	mixedFraction   *rewrite.Pattern
	loneFraction    *rewrite.Pattern

	// magnitudes
	magnitudes []magnitude
	andition   *rewrite.Pattern
}

var defaultProvider = sync.OnceValue(New)

// Default returns the shared Provider, compiled on first use.
func Default() *Provider {
	return defaultProvider()
}

// New compiles the rule tables into a Provider.
// Prefer Default unless an isolated instance is needed.
func New() *Provider {
	p := &Provider{}
	p.compileNumerals()
	p.compileFractions()
	p.compileMagnitudes()
	return p
}

// Process runs every stage on text and returns the numerized result.
func (p *Provider) Process(text string) string {
	s := p.Normalize(text)
	s = p.RewriteNumerals(s)
	s = p.RewriteFractions(s)
	s = p.RewriteMagnitudes(s)
	return p.Finalize(s)
}

// Normalize removes pipeline sentinels from text and applies
// normalize.Normalize.
func (p *Provider) Normalize(text string) string {
	text = textcase.StripRune(text, markerRune)
	text = textcase.StripRune(text, fractionBarRune)
	return normalize.Normalize(text)
}

// Finalize strips every Marker, leaving bare digits, fractions and decimals.
func (p *Provider) Finalize(text string) string {
	text = textcase.StripRune(text, markerRune)
	if strings.ContainsRune(text, fractionBarRune) {
		text = strings.ReplaceAll(text, fractionBar, "/")
	}
	return text
}

// wordStart matches the start of text or a single character that cannot be
// part of a word. It is consumed, so callbacks must re-emit it.
const wordStart = `(^|[^\p{L}\p{M}\p{N}_])`

// isWordRune reports whether r can be part of a word.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// atWordEnd reports whether a word ending at byte offset end of text is
// followed by the end of text or a character that is not part of a word.
func atWordEnd(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

// replaceWords is ReplaceFunc restricted to matches that end at a word
// boundary. Other matches are left as they are.
func replaceWords(pat *rewrite.Pattern, text string, fn func(rewrite.Match) string) string {
	return pat.ReplaceFunc(text, func(m rewrite.Match) string {
		if !atWordEnd(text, m.End) {
			return m.Text
		}
		return fn(m)
	})
}

// token formats n as a marked token.
func token(n int64) string {
	return Marker + strconv.FormatInt(n, 10)
}

// bigToken formats n as a marked token.
func bigToken(n *big.Int) string {
	return Marker + n.String()
}

// mustBigInt parses the digits of a marked token.
func mustBigInt(stage, digits string) *big.Int {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		panic(&InvariantError{Stage: stage, Value: digits})
	}
	return n
}

// words joins the rule patterns of tables with "|".
func words(tables ...[]Rule) string {
	var parts []string
	for _, table := range tables {
		for _, r := range table {
			parts = append(parts, r.Pattern)
		}
	}
	return strings.Join(parts, "|")
}

// alternation wraps the rule patterns of tables in a capturing group.
func alternation(tables ...[]Rule) string {
	return "(" + words(tables...) + ")"
}

// valueIndex maps each rule pattern to its value.
func valueIndex(tables ...[]Rule) map[string]int64 {
	index := make(map[string]int64)
	for _, table := range tables {
		for _, r := range table {
			index[r.Pattern] = r.Value
		}
	}
	return index
}
