// Package numscan extracts numeric literals from filing text and resolves
// the magnitude scale implied by their surrounding context.
package numscan

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// literalPattern matches a comma-grouped decimal (optional sign, groups of
// 1-3 digits, optional fraction) or a plain decimal. Commas are stripped
// before parsing, not validated for correct grouping.
var literalPattern = regexp.MustCompile(`[-+]?\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?`)

// ExtractLiterals returns every numeric literal in text as a float, in
// left-to-right order, with no deduplication. Matches that fail to parse
// are logged and skipped.
func ExtractLiterals(text string) []float64 {
	matches := literalPattern.FindAllString(text, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			zap.L().Debug("numscan: skipping unparseable literal", zap.String("literal", m))
			continue
		}
		out = append(out, v)
	}
	return out
}
