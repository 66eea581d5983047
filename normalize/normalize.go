// Package normalize prepares English number text for numeral rewriting.
//
// Normalize performs, in order:
//
//   - NFC composition and Unicode lowercasing
//   - collapsing every whitespace run to a single space
//   - splitting hyphenated words ("twenty-one" → "twenty one") unless a digit
//     sits on either side of the hyphen, so ranges such as "2-3" survive
//   - removing one trailing indefinite article ("twenty a" → "twenty")
//   - trimming surrounding whitespace
//
// No numeric resolution happens here.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Hyphen splitting is a single left-to-right pass over non-overlapping
//     pairs, so "a-b-c" becomes "a b-c". Normalize is therefore not
//     idempotent for chained hyphens.
//   - Only the English articles "a" and "an" are recognised.
package normalize

import (
	"strings"

	"github.com/az-ai-labs/numerizer/internal/rewrite"
	"github.com/az-ai-labs/numerizer/internal/textcase"
)

var (
	reSpace           = rewrite.MustCompile(`[\s\v\p{Z}\x{85}]+`)
	reHyphen          = rewrite.MustCompile(`([^\d])-([^\d])`)
	reTrailingArticle = rewrite.MustCompile(`\ban?$`)
)

// Normalize returns s prepared for rule application.
// Returns "" for empty or whitespace-only input.
func Normalize(s string) string {
	if s == "" {
		return s
	}

	s = textcase.Fold(s)
	s = unifyHyphens(s)
	s = CollapseSpace(s)
	s = SplitHyphens(s)
	s = TrimTrailingArticle(s)

	return strings.TrimSpace(s)
}

// CollapseSpace replaces every run of whitespace with a single space.
func CollapseSpace(s string) string {
	return reSpace.Replace(s, " ")
}

// SplitHyphens replaces a hyphen with a space when neither neighbour is a
// digit.
func SplitHyphens(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	return reHyphen.ReplaceFunc(s, func(m rewrite.Match) string {
		return m.Group(1) + " " + m.Group(2)
	})
}

// TrimTrailingArticle removes a single "a" or "an" at the very end of s.
// Surrounding whitespace is left for the caller to trim.
func TrimTrailingArticle(s string) string {
	return reTrailingArticle.Replace(s, "")
}

// unifyHyphens maps Unicode hyphen variants to ASCII '-'.
func unifyHyphens(s string) string {
	if strings.IndexFunc(s, func(r rune) bool { return r != '-' && textcase.IsHyphen(r) }) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if textcase.IsHyphen(r) {
			return '-'
		}
		return r
	}, s)
}
