package numscan

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/filingscan/internal/model"
)

// contextPattern matches a numeric literal with an optional trailing word,
// the candidate inline scale word. The word group also captures ordinary
// words ("net", "total"), which are recorded but contribute no multiplier.
var contextPattern = regexp.MustCompile(`([-+]?\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*(\w+)?`)

// ScanPage runs the contextual scan over one page's text and returns the
// ordered list of annotated number records.
//
// A single ambient scale is tracked left to right. Each time a match lands
// past a pending table boundary, the scale is recomputed from the text span
// between the previously consumed boundary and the match, and exactly one
// boundary is consumed. The inline word's factor stacks multiplicatively on
// top of the ambient scale.
func ScanPage(text string, page int) []model.NumberRecord {
	boundaries := DetectTableBoundaries(text)
	lower := strings.ToLower(text)

	currentScale := 1.0
	lastBoundary := 0
	next := 0

	matches := contextPattern.FindAllStringSubmatchIndex(lower, -1)
	records := make([]model.NumberRecord, 0, len(matches))

	for _, m := range matches {
		pos := m[0]
		raw := lower[m[2]:m[3]]

		original, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			zap.L().Debug("numscan: skipping unparseable literal",
				zap.String("literal", raw),
				zap.Int("page", page),
				zap.Int("position", pos),
			)
			continue
		}

		// One boundary is consumed per match, even when several lie behind
		// the current position. The remainder drain on subsequent matches.
		if next < len(boundaries) && pos > boundaries[next] {
			currentScale = ResolveScale(text[lastBoundary:pos])
			lastBoundary = boundaries[next]
			next++
		}

		scaled := original * currentScale

		scaleWord := model.NoScaleWord
		if m[4] >= 0 {
			scaleWord = lower[m[4]:m[5]]
			if factor, ok := InlineFactor(scaleWord); ok {
				scaled *= factor
			}
		}

		records = append(records, model.NumberRecord{
			Original:  original,
			Scaled:    scaled,
			ScaleWord: scaleWord,
			Position:  pos,
			Page:      page,
		})
	}

	return records
}
