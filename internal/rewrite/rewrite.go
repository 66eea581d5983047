// Package rewrite provides regex-driven find-and-replace over text with
// access to captured groups.
//
// A Pattern wraps a compiled regexp. Matching is left-to-right and
// non-overlapping; replacements are spliced back into the surrounding text
// in their original order. When nothing matches, the input string is
// returned as-is.
//
// Patterns use Go RE2 syntax. Look-around assertions are not available:
// use \b for word boundaries, or consume the neighbouring character and
// emit it again from the replacement callback.
//
// All methods are safe for concurrent use by multiple goroutines.
package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is a single occurrence of a Pattern in a text.
type Match struct {
	Text   string   // The full matched substring
	Groups []string // Groups[0] is Text, Groups[1..n] are capturing groups; unmatched groups are ""
	Start  int      // Byte offset in the searched text (inclusive)
	End    int      // Byte offset in the searched text (exclusive)
}

// Group returns capturing group i, or "" when i is out of range.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Pattern is a compiled find-and-replace expression.
type Pattern struct {
	re *regexp.Regexp
}

// Option modifies how an expression is compiled.
type Option func(*options)

type options struct {
	caseInsensitive bool
}

// CaseInsensitive makes the pattern ignore letter case.
func CaseInsensitive() Option {
	return func(o *options) { o.caseInsensitive = true }
}

// Compile parses expr into a Pattern.
func Compile(expr string, opts ...Option) (*Pattern, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.caseInsensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("rewrite: compile %q: %w", expr, err)
	}
	return &Pattern{re: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// Intended for package-level and construction-time patterns.
func MustCompile(expr string, opts ...Option) *Pattern {
	p, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// Matches reports whether text contains at least one match.
func (p *Pattern) Matches(text string) bool {
	return p.re.MatchString(text)
}

// FindAll returns every non-overlapping match in text, left to right.
// Returns nil when there is no match.
func (p *Pattern) FindAll(text string) []Match {
	locs := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		matches[i] = newMatch(text, loc)
	}
	return matches
}

// ReplaceFunc replaces every non-overlapping match in text with the string
// returned by fn. Text between matches is kept verbatim.
func (p *Pattern) ReplaceFunc(text string, fn func(Match) string) string {
	locs := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString(fn(newMatch(text, loc)))
		last = loc[1]
	}
	b.WriteString(text[last:])

	return b.String()
}

// Replace replaces every non-overlapping match in text with literal.
// No $-expansion is performed on literal.
func (p *Pattern) Replace(text, literal string) string {
	if !p.re.MatchString(text) {
		return text
	}
	return p.re.ReplaceAllLiteralString(text, literal)
}

// newMatch converts a submatch index slice into a Match.
func newMatch(text string, loc []int) Match {
	groups := make([]string, len(loc)/2)
	for g := range groups {
		start, end := loc[2*g], loc[2*g+1]
		if start >= 0 && end >= 0 {
			groups[g] = text[start:end]
		}
	}
	return Match{
		Text:   groups[0],
		Groups: groups,
		Start:  loc[0],
		End:    loc[1],
	}
}
