package latin

import (
	"math/big"
	"strings"

	"github.com/az-ai-labs/numerizer/internal/rewrite"
)

type magnitude struct {
	pattern *rewrite.Pattern
	value   *big.Int
}

func (p *Provider) compileMagnitudes() {
	p.magnitudes = make([]magnitude, len(magnitudeSuffixes))
	for i, r := range magnitudeSuffixes {
		p.magnitudes[i] = magnitude{
			pattern: rewrite.MustCompile(`(?:\x{E000})?(\d*)\s?` + r.Pattern),
			value:   big.NewInt(r.Value),
		}
	}
	p.andition = rewrite.MustCompile(`\x{E000}(\d+)\s?(|and\s?)\x{E000}(\d+)\b`)
}

// RewriteMagnitudes multiplies each magnitude word by the number in front of
// it, or by one when there is none, and sums the pieces of compound numbers.
// Suffixes are handled from hundred up to trillion with a Merge after each.
func (p *Provider) RewriteMagnitudes(text string) string {
	text = p.Merge(text)
	for _, mag := range p.magnitudes {
		text = mag.pattern.ReplaceFunc(text, func(m rewrite.Match) string {
			base := big.NewInt(1)
			if digits := m.Group(1); digits != "" {
				base = mustBigInt("magnitudes", digits)
			}
			return bigToken(base.Mul(base, mag.value))
		})
		text = p.Merge(text)
	}
	return p.Merge(text)
}

// Merge sums adjacent marked tokens that belong to one number.
//
// Two tokens joined by "and" are always summed. Two tokens separated by
// whitespace alone are summed only when the first has more digits than the
// second, so "⟨900⟩ ⟨99⟩" becomes 999 while "⟨10⟩ ⟨11⟩" is left alone.
//
// Every pass that changes the text removes at least one token, so the loop
// runs at most once per token plus a final pass that changes nothing.
func (p *Provider) Merge(text string) string {
	for {
		merged := p.andition.ReplaceFunc(text, func(m rewrite.Match) string {
			first, second := m.Group(1), m.Group(3)
			if !strings.Contains(m.Group(2), "and") && len(first) <= len(second) {
				return m.Text
			}
			sum := mustBigInt("merge", first)
			return bigToken(sum.Add(sum, mustBigInt("merge", second)))
		})
		if merged == text {
			return text
		}
		text = merged
	}
}
