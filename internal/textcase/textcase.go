// Package textcase provides Unicode case folding and composition for
// English number text.
//
// Lowercasing uses the language-neutral Unicode mapping from
// golang.org/x/text/cases, so "TWENTY" folds the same way regardless of
// the process locale. Composition uses full Unicode NFC from
// golang.org/x/text/unicode/norm.
//
// All functions are safe for concurrent use. A cases.Caser is stateful,
// so a fresh one is built per call.
package textcase

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ToLower returns s lowercased with language-neutral Unicode rules.
// ASCII-only input takes a fast path through strings.ToLower.
func ToLower(s string) string {
	if isASCII(s) {
		return strings.ToLower(s)
	}
	return cases.Lower(language.Und).String(s)
}

// ComposeNFC returns s in Unicode Normalization Form C.
// Input that is already NFC is returned without allocation.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Fold composes s to NFC and lowercases it.
func Fold(s string) string {
	return ToLower(ComposeNFC(s))
}

// IsHyphen reports whether r is a hyphen-like rune that joins compound
// number words, including the Unicode hyphen and non-breaking hyphen.
func IsHyphen(r rune) bool {
	switch r {
	case '-', '\u2010', '\u2011':
		return true
	default:
		return false
	}
}

// StripRune returns s with every occurrence of r removed.
func StripRune(s string, r rune) string {
	if !strings.ContainsRune(s, r) {
		return s
	}
	return strings.Map(func(c rune) rune {
		if c == r {
			return -1
		}
		return c
	}, s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
