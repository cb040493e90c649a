package model

// NoScaleWord is recorded when a literal has no captured trailing word.
const NoScaleWord = "N/A"

// NumberRecord is one numeric literal found by the contextual scan,
// annotated with the scale in effect at its position.
type NumberRecord struct {
	Original  float64 `json:"original"`
	Scaled    float64 `json:"scaled"`
	ScaleWord string  `json:"scale_word"`
	Position  int     `json:"position"`
	Page      int     `json:"page"`
}

// BaseNumber is one numeric literal found by the base (non-contextual) scan.
type BaseNumber struct {
	Value float64 `json:"value"`
	Page  int     `json:"page"`
}

// PageText is the extracted text of a single document page. Pages are 1-based.
type PageText struct {
	Page int    `json:"page"`
	Text string `json:"text"`
}

// PageResults maps a page number to the contextual records found on it.
// Every scanned page has an entry; pages with no matches map to an empty slice.
type PageResults map[int][]NumberRecord

// ScanResult holds the output of scanning a whole document.
type ScanResult struct {
	Base      []BaseNumber `json:"base"`
	Pages     PageResults  `json:"pages"`
	PageCount int          `json:"page_count"`
}

// TotalRecords returns the number of contextual records across all pages.
func (r *ScanResult) TotalRecords() int {
	n := 0
	for _, recs := range r.Pages {
		n += len(recs)
	}
	return n
}
