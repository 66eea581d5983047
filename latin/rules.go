// Lexical rule tables for English number words written with Latin numerals.
package latin

import "slices"

// Rule maps a word, or a regular-expression fragment without capturing
// groups, to its numeric value.
type Rule struct {
	Pattern string
	Value   int64
}

// directNumbers have non-compositional names and are replaced directly.
var directNumbers = []Rule{
	{Pattern: "zero", Value: 0},
	{Pattern: "ten", Value: 10},
	{Pattern: "eleven", Value: 11},
	{Pattern: "twelve", Value: 12},
	{Pattern: "thirteen", Value: 13},
	{Pattern: "fourteen", Value: 14},
	{Pattern: "fifteen", Value: 15},
	{Pattern: "sixteen", Value: 16},
	{Pattern: "seventeen", Value: 17},
	{Pattern: "eighteen", Value: 18},
	{Pattern: "nineteen", Value: 19},
}

// singleDigits excludes zero: it never occupies the ones place of a compound.
var singleDigits = []Rule{
	{Pattern: "one", Value: 1},
	{Pattern: "two", Value: 2},
	{Pattern: "three", Value: 3},
	{Pattern: "four", Value: 4},
	{Pattern: "five", Value: 5},
	{Pattern: "six", Value: 6},
	{Pattern: "seven", Value: 7},
	{Pattern: "eight", Value: 8},
	{Pattern: "nine", Value: 9},
}

var tensPrefixes = []Rule{
	{Pattern: "twenty", Value: 20},
	{Pattern: "thirty", Value: 30},
	{Pattern: "forty", Value: 40},
	{Pattern: "fifty", Value: 50},
	{Pattern: "sixty", Value: 60},
	{Pattern: "seventy", Value: 70},
	{Pattern: "eighty", Value: 80},
	{Pattern: "ninety", Value: 90},
}

// magnitudeSuffixes lists named powers of ten from smallest to largest.
// The order is load-bearing: each suffix is resolved, and adjacent tokens
// are merged, before the next larger suffix is looked at.
var magnitudeSuffixes = []Rule{
	{Pattern: "hundred", Value: 100},
	{Pattern: "thousand", Value: 1_000},
	{Pattern: "lakh", Value: 100_000},
	{Pattern: "million", Value: 1_000_000},
	{Pattern: "crore", Value: 10_000_000},
	{Pattern: "billion", Value: 1_000_000_000},
	{Pattern: "trillion", Value: 1_000_000_000_000},
}

// directNumberFractions are the fractional forms of directNumbers.
// Value is the denominator.
var directNumberFractions = []Rule{
	{Pattern: "tenths?", Value: 10},
	{Pattern: "elevenths?", Value: 11},
	{Pattern: "twelfths?", Value: 12},
	{Pattern: "thirteenths?", Value: 13},
	{Pattern: "fourteenths?", Value: 14},
	{Pattern: "fifteenths?", Value: 15},
	{Pattern: "sixteenths?", Value: 16},
	{Pattern: "seventeenths?", Value: 17},
	{Pattern: "eighteenths?", Value: 18},
	{Pattern: "nineteenths?", Value: 19},
}

// singleDigitFractions are the fractional forms of singleDigits, plus
// "quarter". There is no fractional form of one.
var singleDigitFractions = []Rule{
	{Pattern: "hal(?:f|ves)", Value: 2},
	{Pattern: "thirds?", Value: 3},
	{Pattern: "(?:fourth|quarter)s?", Value: 4},
	{Pattern: "fifths?", Value: 5},
	{Pattern: "sixths?", Value: 6},
	{Pattern: "sevenths?", Value: 7},
	{Pattern: "eighths?", Value: 8},
	{Pattern: "ninths?", Value: 9},
}

var tensPrefixFractions = []Rule{
	{Pattern: "twentieths?", Value: 20},
	{Pattern: "thirtieths?", Value: 30},
	{Pattern: "fortieths?", Value: 40},
	{Pattern: "fiftieths?", Value: 50},
	{Pattern: "sixtieths?", Value: 60},
	{Pattern: "seventieths?", Value: 70},
	{Pattern: "eightieths?", Value: 80},
	{Pattern: "ninetieths?", Value: 90},
}

// fractionTables lists the fractional tables in application order.
var fractionTables = [][]Rule{
	directNumberFractions,
	singleDigitFractions,
	tensPrefixFractions,
}

// Tables returns copies of the seven lexical tables keyed by name, for
// callers that document or test the supported vocabulary.
func Tables() map[string][]Rule {
	return map[string][]Rule{
		"direct_numbers":          slices.Clone(directNumbers),
		"single_digits":           slices.Clone(singleDigits),
		"tens_prefixes":           slices.Clone(tensPrefixes),
		"magnitude_suffixes":      slices.Clone(magnitudeSuffixes),
		"direct_number_fractions": slices.Clone(directNumberFractions),
		"single_digit_fractions":  slices.Clone(singleDigitFractions),
		"tens_prefix_fractions":   slices.Clone(tensPrefixFractions),
	}
}
