package numerize

import (
	"strings"
	"testing"
)

// FuzzNumerize verifies that Numerize never panics and that Scan offsets
// always index the numerized text.
func FuzzNumerize(f *testing.F) {
	f.Add("")
	f.Add("forty two")
	f.Add("one and two thirds")
	f.Add("a hundred lakh and a half")
	f.Add("21/09/2002 10.0.0.1 3/0")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))
	f.Add(strings.Repeat("nine ", 200))

	f.Fuzz(func(t *testing.T, s string) {
		out, nums := Extract(s)
		for _, n := range nums {
			if n.Start < 0 || n.End > len(out) || out[n.Start:n.End] != n.Text {
				t.Fatalf("Extract(%q): bad offsets %v in %q", s, n, out)
			}
		}
	})
}

// FuzzScan verifies that Scan never panics and returns ordered,
// non-overlapping numbers.
func FuzzScan(f *testing.F) {
	f.Add("")
	f.Add("1.5/2")
	f.Add("1//2")
	f.Add("9/")
	f.Add("..1..")

	f.Fuzz(func(t *testing.T, s string) {
		prev := 0
		for _, n := range Scan(s) {
			if n.Start < prev || n.End <= n.Start || s[n.Start:n.End] != n.Text {
				t.Fatalf("Scan(%q): bad number %v", s, n)
			}
			prev = n.End
		}
	})
}
