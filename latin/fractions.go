package latin

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/numerizer/internal/rewrite"
)

// Fraction words are first rewritten to fractionBar + denominator. The bar is
// turned into "/" by Finalize, after it has had the chance to pick up a
// numerator or take part in a mixed number.
func (p *Provider) compileFractions() {
	var groups []string
	for _, table := range fractionTables {
		for _, r := range table {
			groups = append(groups, "("+r.Pattern+")")
			p.denominators = append(p.denominators, r.Value)
		}
	}
	fraction := "(?:" + strings.Join(groups, "|") + ")"

	p.fractionArticle = rewrite.MustCompile(wordStart + `an?\s` + fraction)
	p.fractionWord = rewrite.MustCompile(wordStart + fraction)

	// "3 and 1/2", "3-1/2", "3 1/2" with the bar standing in for "/"
	p.mixedFraction = rewrite.MustCompile(`(\d+)(?:\s|\sand\s|-)+(?:\x{E000}|\s)*(\d+)\s*\x{E001}\s*(\d+)`)
	p.loneFraction = rewrite.MustCompile(`(^|[^\d])\x{E001}(\d+)`)
}

// RewriteFractions resolves fractional words.
//
// "a fifth" and a bare "fifth" become 1/5, "two fifths" becomes 2/5, and an
// integer followed by a fraction becomes a decimal with three places:
// "one and two thirds" → "1.667".
func (p *Provider) RewriteFractions(text string) string {
	text = replaceWords(p.fractionArticle, text, func(m rewrite.Match) string {
		return m.Group(1) + token(1) + fractionBar + p.denominatorOf(m, 2)
	})

	// The separator before the word is consumed so the bar sits next to the
	// numerator; any other punctuation is kept.
	text = replaceWords(p.fractionWord, text, func(m rewrite.Match) string {
		lead := m.Group(1)
		if strings.TrimSpace(lead) == "" {
			lead = ""
		}
		return lead + fractionBar + p.denominatorOf(m, 2)
	})

	text = p.mixedFraction.ReplaceFunc(text, func(m rewrite.Match) string {
		if s, ok := mixedNumber(m.Group(1), m.Group(2), m.Group(3)); ok {
			return s
		}
		return m.Text
	})

	return p.loneFraction.ReplaceFunc(text, func(m rewrite.Match) string {
		lead := m.Group(1)
		frac := "1/" + m.Group(2)
		if lead == "" {
			return frac
		}
		if r, _ := utf8.DecodeRuneInString(lead); r == '_' || unicode.IsLetter(r) {
			return lead + " " + frac
		}
		return lead + frac
	})
}

// denominatorOf returns the denominator of the alternative that matched,
// looking at capturing groups from first onwards.
func (p *Provider) denominatorOf(m rewrite.Match, first int) string {
	for i, d := range p.denominators {
		if m.Group(first+i) != "" {
			return strconv.FormatInt(d, 10)
		}
	}
	panic(&InvariantError{Stage: "fractions", Value: m.Text})
}

// mixedNumber computes whole + num/den with three decimal places.
// It reports false when the result is not a finite number.
func mixedNumber(whole, num, den string) (string, bool) {
	w, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return "", false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return "", false
	}
	v := w + n/d
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', 3, 64), true
}
