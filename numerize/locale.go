package numerize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedLocale is returned when no rule set exists for a locale.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrUnsupportedNumberingSystem is returned when a locale has no rule set
	// for the requested numbering system.
	ErrUnsupportedNumberingSystem = errors.New("unsupported numbering system")
)

// Locale identifies the language whose number words are recognised.
type Locale int

const (
	English Locale = iota // English number words
)

// localeNames maps Locale values to their string names.
var localeNames = [...]string{
	English: "English",
}

// localeTags maps Locale values to BCP 47 base languages.
var localeTags = [...]language.Base{
	English: language.MustParseBase("en"),
}

// String returns the name of the locale.
func (l Locale) String() string {
	if int(l) >= 0 && int(l) < len(localeNames) {
		return localeNames[l]
	}
	return fmt.Sprintf("Locale(%d)", int(l))
}

// Tag returns the BCP 47 code of the locale, or "" when unknown.
func (l Locale) Tag() string {
	if int(l) >= 0 && int(l) < len(localeTags) {
		return localeTags[l].String()
	}
	return ""
}

// MarshalJSON encodes the locale as its BCP 47 code (e.g. "en").
func (l Locale) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Tag())
}

// UnmarshalJSON decodes a locale name or BCP 47 tag.
func (l *Locale) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	loc, err := ParseLocale(s)
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

// ParseLocale maps a locale name ("english") or a BCP 47 tag ("en",
// "en-US", "en_GB") to a Locale. Matching ignores case and region.
func ParseLocale(s string) (Locale, error) {
	name := strings.TrimSpace(s)
	for i, n := range localeNames {
		if strings.EqualFold(n, name) {
			return Locale(i), nil
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return 0, fmt.Errorf("numerize: locale %q: %w", s, ErrUnsupportedLocale)
	}
	base, _ := tag.Base()
	for i, b := range localeTags {
		if b == base {
			return Locale(i), nil
		}
	}
	return 0, fmt.Errorf("numerize: locale %q: %w", s, ErrUnsupportedLocale)
}

// NumberingSystem identifies the digits numbers are written with.
type NumberingSystem int

const (
	Latin NumberingSystem = iota // Indo-Arabic digits 0-9 (CLDR "latn")
	Roman                        // Roman numerals (CLDR "roman")
)

// systemNames maps NumberingSystem values to CLDR numbering system ids.
var systemNames = [...]string{
	Latin: "latn",
	Roman: "roman",
}

// String returns the CLDR id of the numbering system.
func (n NumberingSystem) String() string {
	if int(n) >= 0 && int(n) < len(systemNames) {
		return systemNames[n]
	}
	return fmt.Sprintf("NumberingSystem(%d)", int(n))
}

// MarshalJSON encodes the numbering system as its CLDR id (e.g. "latn").
func (n NumberingSystem) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a CLDR numbering system id.
func (n *NumberingSystem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	sys, err := ParseNumberingSystem(s)
	if err != nil {
		return err
	}
	*n = sys
	return nil
}

// ParseNumberingSystem maps "latn" (or "latin") and "roman" to a
// NumberingSystem. Matching ignores case.
func ParseNumberingSystem(s string) (NumberingSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latn", "latin":
		return Latin, nil
	case "roman":
		return Roman, nil
	default:
		return 0, fmt.Errorf("numerize: numbering system %q: %w", s, ErrUnsupportedNumberingSystem)
	}
}

// Support describes one locale and the numbering systems it can produce.
type Support struct {
	Locale  Locale            `json:"locale"`
	Name    string            `json:"name"`
	Systems []NumberingSystem `json:"systems"`
}

// Supported lists every locale with a rule set.
func Supported() []Support {
	return []Support{
		{Locale: English, Name: English.String(), Systems: []NumberingSystem{Latin}},
	}
}
