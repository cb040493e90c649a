package ocr

import (
	"context"
	"strings"

	"github.com/sells-group/filingscan/internal/model"
)

// ExtractPages extracts the document text and splits it into 1-based pages.
// pdftotext delimits pages with form feeds and emits a trailing one, which
// is dropped; interior empty pages are kept so page numbering stays aligned
// with the source document.
func ExtractPages(ctx context.Context, ex Extractor, pdfPath string) ([]model.PageText, error) {
	text, err := ex.ExtractText(ctx, pdfPath)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(text, "\f")
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}

	pages := make([]model.PageText, 0, len(parts))
	for i, part := range parts {
		pages = append(pages, model.PageText{Page: i + 1, Text: part})
	}
	return pages, nil
}
