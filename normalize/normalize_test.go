package normalize

import (
	"strings"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Case --

		{"mixed case", "tWeNtY   One", "twenty one"},
		{"upper", "FORTY TWO", "forty two"},

		// -- Whitespace --

		{"multiple spaces", "twenty   one", "twenty one"},
		{"tabs and newlines", "twenty\t\none", "twenty one"},
		{"no-break space", "twenty\u00a0one", "twenty one"},
		{"surrounding", "  forty two  ", "forty two"},
		{"whitespace only", " \t ", ""},
		{"empty", "", ""},

		// -- Hyphens --

		{"hyphenated", "twenty-one", "twenty one"},
		{"unicode hyphen", "twenty\u2010one", "twenty one"},
		{"numeric range kept", "2-3", "2-3"},
		{"digit left kept", "2-three", "2-three"},
		{"digit right kept", "two-3", "two-3"},
		{"chained hyphens", "a-b-c", "a b-c"},

		// -- Trailing articles --

		{"trailing a", "twenty a", "twenty"},
		{"trailing an", "twenty an", "twenty"},
		{"only one article removed", "twenty a a", "twenty a"},
		{"article inside word kept", "banana", "banana"},
		{"leading article kept", "a thousand", "a thousand"},
		{"lone article", "a", ""},

		// -- Pass-through --

		{"plain text", "pennyweight", "pennyweight"},
		{"date", "21 Sep 2002 12:01am", "21 sep 2002 12:01am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"a  \t b\n\nc", "a b c"},
		{"a\vb", "a b"},
		{"a\u0085b", "a b"},
		{"a\u2028\u2029b", "a b"},
		{"a\u00a0\u3000b", "a b"},
		{"ab", "ab"},
	}

	for _, tt := range tests {
		if got := CollapseSpace(tt.input); got != tt.want {
			t.Errorf("CollapseSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitHyphens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"forty-two", "forty two"},
		{"1-2", "1-2"},
		{"-", "-"},
		{"x-", "x-"},
		{"no hyphen", "no hyphen"},
	}

	for _, tt := range tests {
		if got := SplitHyphens(tt.input); got != tt.want {
			t.Errorf("SplitHyphens(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimTrailingArticle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"twenty a", "twenty "},
		{"twenty an", "twenty "},
		{"twenty and", "twenty and"},
		{"cobra", "cobra"},
	}

	for _, tt := range tests {
		if got := TrimTrailingArticle(tt.input); got != tt.want {
			t.Errorf("TrimTrailingArticle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for range 100 {
		wg.Go(func() {
			if got := Normalize("Twenty-One  Thousand"); got != "twenty one thousand" {
				t.Errorf("Normalize = %q", got)
			}
		})
	}

	wg.Wait()
}

func TestNormalizeLargeInput(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("Twenty-One ", 10000)
	got := Normalize(input)
	want := strings.TrimSpace(strings.Repeat("twenty one ", 10000))
	if got != want {
		t.Errorf("Normalize(large) length = %d, want %d", len(got), len(want))
	}
}
