// Package ocr extracts text content from PDF documents.
package ocr

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/filingscan/internal/config"
)

// Extractor extracts text content from PDF files.
type Extractor interface {
	ExtractText(ctx context.Context, pdfPath string) (string, error)
}

// NewExtractor creates an Extractor based on config. Only local pdftotext
// extraction is supported; scanned/image-only pages are out of scope.
func NewExtractor(cfg config.OCRConfig) (Extractor, error) {
	switch cfg.Provider {
	case "local", "":
		return NewPdfToText(cfg.PdfToTextPath), nil
	default:
		return nil, eris.Errorf("ocr: unknown provider %q", cfg.Provider)
	}
}
