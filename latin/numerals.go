package latin

import (
	"github.com/az-ai-labs/numerizer/internal/rewrite"
)

func (p *Provider) compileNumerals() {
	single := alternation(singleDigits)
	tens := alternation(tensPrefixes)

	// "two nineteen" → "two hundred nineteen"
	p.implicitHundreds = rewrite.MustCompile(wordStart + single + `\s` + alternation(tensPrefixes, directNumbers))
	p.plainWords = rewrite.MustCompile(wordStart + alternation(directNumbers, singleDigits))
	p.article = rewrite.MustCompile(wordStart + `(an?)`)
	p.tensWords = rewrite.MustCompile(wordStart + tens + single + `?`)
	p.values = valueIndex(directNumbers, singleDigits, tensPrefixes)
}

// RewriteNumerals replaces cardinal number words with marked tokens.
//
// Words are resolved individually: "forty two" becomes two tokens that
// RewriteMagnitudes later sums. Only the unspaced compound form
// ("fortytwo") is resolved to a single token here.
func (p *Provider) RewriteNumerals(text string) string {
	text = replaceWords(p.implicitHundreds, text, func(m rewrite.Match) string {
		return m.Group(1) + m.Group(2) + " hundred " + m.Group(3)
	})

	text = replaceWords(p.plainWords, text, func(m rewrite.Match) string {
		return m.Group(1) + token(p.values[m.Group(2)])
	})

	text = replaceWords(p.article, text, func(m rewrite.Match) string {
		return m.Group(1) + token(1)
	})

	return replaceWords(p.tensWords, text, func(m rewrite.Match) string {
		n := p.values[m.Group(2)]
		if ones := m.Group(3); ones != "" {
			n += p.values[ones]
		}
		return m.Group(1) + token(n)
	})
}
