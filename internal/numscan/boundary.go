package numscan

import "regexp"

// boundaryPattern anchors to a newline followed by a fiscal-year table
// header, either "FY" plus a 4-digit year or the phrase "Fiscal Year".
var boundaryPattern = regexp.MustCompile(`\n\s*(?:FY\s*\d{4}|Fiscal Year)\s*`)

// DetectTableBoundaries returns the ordered character offsets at which a new
// reporting table starts in text. The ambient scale established before a
// boundary no longer applies past it and must be recomputed.
func DetectTableBoundaries(text string) []int {
	matches := boundaryPattern.FindAllStringIndex(text, -1)
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		offsets = append(offsets, m[0])
	}
	return offsets
}
