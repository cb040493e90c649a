package scan

import (
	"sort"

	"github.com/sells-group/filingscan/internal/model"
)

// LargestBase returns the base number with the maximum value across the
// document. Ties keep the first occurrence in input order. ok is false when
// no numbers were found.
func LargestBase(base []model.BaseNumber) (model.BaseNumber, bool) {
	if len(base) == 0 {
		return model.BaseNumber{}, false
	}
	best := base[0]
	for _, b := range base[1:] {
		if b.Value > best.Value {
			best = b
		}
	}
	return best, true
}

// LargestContextual returns the record with the maximum scaled value across
// all pages, visiting pages in ascending order so ties keep the first
// occurrence. ok is false when no records were found.
func LargestContextual(pages model.PageResults) (model.NumberRecord, bool) {
	var best model.NumberRecord
	found := false
	for _, page := range sortedPages(pages) {
		for _, r := range pages[page] {
			if !found || r.Scaled > best.Scaled {
				best = r
				found = true
			}
		}
	}
	return best, found
}

// TopBase returns up to n base numbers sorted descending by value, stable on
// ties (input order preserved).
func TopBase(base []model.BaseNumber, n int) []model.BaseNumber {
	sorted := make([]model.BaseNumber, len(base))
	copy(sorted, base)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value > sorted[j].Value })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopContextual returns up to n records across all pages sorted descending
// by scaled value, stable on ties. Records are flattened in ascending page
// order before sorting so the tie order is deterministic.
func TopContextual(pages model.PageResults, n int) []model.NumberRecord {
	var flat []model.NumberRecord
	for _, page := range sortedPages(pages) {
		flat = append(flat, pages[page]...)
	}
	sort.SliceStable(flat, func(i, j int) bool { return flat[i].Scaled > flat[j].Scaled })
	if len(flat) > n {
		flat = flat[:n]
	}
	return flat
}

func sortedPages(pages model.PageResults) []int {
	nums := make([]int, 0, len(pages))
	for p := range pages {
		nums = append(nums, p)
	}
	sort.Ints(nums)
	return nums
}
