package numerize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind classifies a scanned number.
type Kind int

const (
	Integer  Kind = iota // Digits only: "42"
	Decimal              // Digits with a fractional part: "1.667"
	Fraction             // Numerator and denominator: "2/5"
)

var kindNames = [...]string{
	Integer:  "Integer",
	Decimal:  "Decimal",
	Fraction: "Fraction",
}

var kindFromName = map[string]Kind{
	"Integer":  Integer,
	"Decimal":  Decimal,
	"Fraction": Fraction,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON encodes the kind as a JSON string (e.g. "Fraction").
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Fraction") into a Kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, ok := kindFromName[s]
	if !ok {
		return fmt.Errorf("numerize: unknown kind: %q", s)
	}
	*k = kind
	return nil
}

// Number is a numeral found in text.
type Number struct {
	Text  string  `json:"text"`  // The numeral as written
	Start int     `json:"start"` // Byte offset in the scanned text (inclusive)
	End   int     `json:"end"`   // Byte offset in the scanned text (exclusive)
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"` // Fractions are divided out; a zero denominator gives 0
}

// String returns a debug representation, e.g. Fraction("2/5")[4:7].
func (n Number) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", n.Kind, n.Text, n.Start, n.End)
}

// Scan returns the ASCII numerals in s, left to right.
// The invariant s[n.Start:n.End] == n.Text holds for every result.
//
// A number is a digit run, optionally followed by "." or "/" and a second
// digit run. Runs chained by the same separator more than once
// ("21/09/2002", "10.0.0.1") look like dates or addresses and are skipped
// entirely. Digits glued to letters are still reported ("12:01am" yields
// "12" and "01").
func Scan(s string) []Number {
	var nums []Number

	i := 0
	for i < len(s) {
		if !isDigit(s[i]) {
			i++
			continue
		}

		start := i
		i = digitsEnd(s, i)

		sep := byte(0)
		if i+1 < len(s) && (s[i] == '.' || s[i] == '/') && isDigit(s[i+1]) {
			sep = s[i]
			i = digitsEnd(s, i+1)
		}

		if sep != 0 && i+1 < len(s) && s[i] == sep && isDigit(s[i+1]) {
			for i+1 < len(s) && s[i] == sep && isDigit(s[i+1]) {
				i = digitsEnd(s, i+1)
			}
			continue
		}

		nums = append(nums, newNumber(s[start:i], start, sep))
	}

	return nums
}

// newNumber classifies text by its separator and computes its value.
func newNumber(text string, start int, sep byte) Number {
	n := Number{Text: text, Start: start, End: start + len(text)}

	switch sep {
	case '.':
		n.Kind = Decimal
		n.Value = parseValue(text)
	case '/':
		n.Kind = Fraction
		slash := digitsEnd(text, 0)
		if den := parseValue(text[slash+1:]); den != 0 {
			n.Value = parseValue(text[:slash]) / den
		}
	default:
		n.Kind = Integer
		n.Value = parseValue(text)
	}

	return n
}

// parseValue parses an unsigned decimal numeral, saturating at
// math.MaxFloat64 so that Value always encodes as JSON.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.MaxFloat64
	}
	return v
}

// digitsEnd returns the index just past the digit run starting at i.
func digitsEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
