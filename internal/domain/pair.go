package domain

import "strings"

// Pair is an ordered (base, quote) currency combination. (A,B) and (B,A) are
// distinct pairs.
type Pair struct {
	Base  string
	Quote string
}

func NewPair(base, quote string) Pair { return Pair{Base: base, Quote: quote} }

// String returns the canonical BASE/QUOTE form.
func (p Pair) String() string { return p.Base + "/" + p.Quote }

// ParsePair parses the BASE/QUOTE form. Codes are kept as given.
func ParsePair(s string) (Pair, bool) {
	base, quote, ok := strings.Cut(s, "/")
	if !ok || base == "" || quote == "" || strings.Contains(quote, "/") {
		return Pair{}, false
	}
	return Pair{Base: base, Quote: quote}, true
}
