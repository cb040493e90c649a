package numscan

import "strings"

// scaleEntry binds a magnitude keyword to its multiplier. Declaration order
// is match-priority order: when a text window names several magnitudes, the
// first entry found wins.
type scaleEntry struct {
	word   string
	factor float64
}

var scaleTable = []scaleEntry{
	{"thousand", 1e3},
	{"million", 1e6},
	{"billion", 1e9},
	{"trillion", 1e12},
}

// ResolveScale returns the ambient magnitude multiplier implied by a text
// window. It checks, case-insensitively, for "in <word>" phrasing or the
// parenthesized abbreviation "($<initial>)" (e.g. "($m)" for millions) for
// each keyword in table order, and returns 1 when nothing matches.
func ResolveScale(text string) float64 {
	lower := strings.ToLower(text)
	for _, e := range scaleTable {
		if strings.Contains(lower, "in "+e.word) || strings.Contains(lower, "($"+e.word[:1]+")") {
			return e.factor
		}
	}
	return 1
}

// InlineFactor resolves a trailing word captured next to a literal. The word
// must equal a scale keyword exactly, or the keyword with a trailing "s"
// ("millions" resolves to the million factor). Input is expected lowercased.
func InlineFactor(word string) (float64, bool) {
	w := strings.TrimSuffix(word, "s")
	for _, e := range scaleTable {
		if w == e.word {
			return e.factor, true
		}
	}
	return 1, false
}
