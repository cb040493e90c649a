package numscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTableBoundaries_FYHeader(t *testing.T) {
	offsets := DetectTableBoundaries("intro\nFY2025 table follows")
	assert.Equal(t, []int{5}, offsets)
}

func TestDetectTableBoundaries_FYWithSpace(t *testing.T) {
	offsets := DetectTableBoundaries("before\n  FY 2024 revenue")
	assert.Equal(t, []int{6}, offsets)
}

func TestDetectTableBoundaries_FiscalYearPhrase(t *testing.T) {
	offsets := DetectTableBoundaries("\n  Fiscal Year 2024 summary")
	assert.Equal(t, []int{0}, offsets)
}

func TestDetectTableBoundaries_RequiresNewline(t *testing.T) {
	// A header at the very start of the text has no preceding newline, so it
	// does not count as a boundary.
	assert.Empty(t, DetectTableBoundaries("FY2025 opening table"))
	assert.Empty(t, DetectTableBoundaries("see FY2025 inline"))
}

func TestDetectTableBoundaries_Multiple(t *testing.T) {
	offsets := DetectTableBoundaries("a\nFY 2025 x\nFY2026 y")
	assert.Equal(t, []int{1, 11}, offsets)
}

func TestDetectTableBoundaries_None(t *testing.T) {
	assert.Empty(t, DetectTableBoundaries("no tables at all"))
}
